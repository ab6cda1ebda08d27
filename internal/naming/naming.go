// Package naming validates the resource names a plan may carry.
//
// Rules:
// Resource group: Azure RG charset (alnum, '_', '-', '.', '(', ')'),
// max 90 chars, must not end with a period.
// VM / workspace: DNS1123 label, workspace additionally length-capped.
// Firewall rule: NSG rule charset (alnum, '_', '-', '.'), max 80 chars,
// must begin with alnum and end with alnum or '_'.
package naming

import (
	"fmt"
	"regexp"
	"strings"

	utilvalidation "k8s.io/apimachinery/pkg/util/validation"
)

const (
	maxResourceGroupName = 90
	workspaceNameMaxLen  = 33
	ruleNameMaxLength    = 80
)

var (
	resourceGroupRe = regexp.MustCompile(`^[A-Za-z0-9_().-]+$`)
	ruleNameRe      = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9_.-]*[A-Za-z0-9_])?$`)
)

// ValidateResourceGroupName checks an Azure resource group name.
func ValidateResourceGroupName(name string) error {
	if name == "" {
		return fmt.Errorf("resource group name must not be empty")
	}
	if len(name) > maxResourceGroupName {
		return fmt.Errorf("resource group name exceeds %d characters", maxResourceGroupName)
	}
	if strings.HasSuffix(name, ".") {
		return fmt.Errorf("resource group name must not end with a period")
	}
	if !resourceGroupRe.MatchString(name) {
		return fmt.Errorf("invalid resource group name: %q", name)
	}
	return nil
}

func validateDNS1123Label(name string, kind string) error {
	if name == "" {
		return fmt.Errorf("%s name must not be empty", kind)
	}
	if errs := utilvalidation.IsDNS1123Label(name); len(errs) > 0 {
		return fmt.Errorf("invalid %s name: %s", kind, strings.Join(errs, ", "))
	}
	return nil
}

// ValidateVMName checks a virtual machine name.
func ValidateVMName(name string) error {
	return validateDNS1123Label(name, "vm")
}

// ValidateWorkspaceName checks a managed-ML workspace name.
func ValidateWorkspaceName(name string) error {
	if len(name) > workspaceNameMaxLen {
		return fmt.Errorf("workspace name exceeds %d characters", workspaceNameMaxLen)
	}
	return validateDNS1123Label(name, "workspace")
}

// ValidateRuleName checks a firewall (NSG) rule name. NSG rules allow a
// wider charset than DNS labels: underscores and periods are legal and
// names may run to 80 characters.
func ValidateRuleName(name string) error {
	if name == "" {
		return fmt.Errorf("firewall rule name must not be empty")
	}
	if len(name) > ruleNameMaxLength {
		return fmt.Errorf("firewall rule name exceeds %d characters", ruleNameMaxLength)
	}
	if !ruleNameRe.MatchString(name) {
		return fmt.Errorf("invalid firewall rule name: %q", name)
	}
	return nil
}
