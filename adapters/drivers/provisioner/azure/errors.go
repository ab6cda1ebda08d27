package azure

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// shorterErrorString collapses an Azure SDK response error to its status
// line for log output.
func shorterErrorString(err error) string {
	errstr := err.Error()
	var responseErr *azcore.ResponseError
	if errors.As(err, &responseErr) {
		errstr = fmt.Sprintf("%d %s (%s)", responseErr.StatusCode, http.StatusText(responseErr.StatusCode), responseErr.ErrorCode)
	}
	return errstr
}

// isNotFound reports whether err is an ARM 404 response.
func isNotFound(err error) bool {
	var responseErr *azcore.ResponseError
	return errors.As(err, &responseErr) && responseErr.StatusCode == http.StatusNotFound
}
