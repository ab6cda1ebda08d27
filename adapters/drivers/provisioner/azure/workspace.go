package azure

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/machinelearning/armmachinelearning/v3"

	"github.com/fedlearn/fedops/domain/model"
	"github.com/fedlearn/fedops/internal/logging"
)

// Step params recognized by the workspace kind. The dependent resource IDs
// are optional; when omitted the workspace service provisions defaults.
const (
	paramWSFriendlyName   = "friendly_name"
	paramWSStorageAccount = "storage_account_id"
	paramWSKeyVault       = "key_vault_id"
	paramWSAppInsights    = "app_insights_id"
)

// applyWorkspace creates or updates a managed-ML workspace.
func (d *driver) applyWorkspace(ctx context.Context, step *model.Step) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Minute)
	defer cancel()

	client, err := armmachinelearning.NewWorkspacesClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return fmt.Errorf("failed to create workspaces client: %w", err)
	}

	props := &armmachinelearning.WorkspaceProperties{
		FriendlyName: to.Ptr(step.Param(paramWSFriendlyName, step.Name)),
	}
	if v := step.Param(paramWSStorageAccount, ""); v != "" {
		props.StorageAccount = to.Ptr(v)
	}
	if v := step.Param(paramWSKeyVault, ""); v != "" {
		props.KeyVault = to.Ptr(v)
	}
	if v := step.Param(paramWSAppInsights, ""); v != "" {
		props.ApplicationInsights = to.Ptr(v)
	}

	ws := armmachinelearning.Workspace{
		Location: to.Ptr(d.location(step)),
		Tags: map[string]*string{
			"managed-by": to.Ptr(managedByTag),
		},
		Identity: &armmachinelearning.ManagedServiceIdentity{
			Type: to.Ptr(armmachinelearning.ManagedServiceIdentityTypeSystemAssigned),
		},
		Properties: props,
	}

	logger := logging.FromContext(ctx).With("resource_group", step.ResourceGroup, "name", step.Name)
	poller, err := client.BeginCreateOrUpdate(ctx, step.ResourceGroup, step.Name, ws, nil)
	if err != nil {
		logger.Info(ctx, "AZ:EnsureWorkspace/efail", "err", shorterErrorString(err))
		return fmt.Errorf("failed to create workspace %s: %w", step.Name, err)
	}
	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		logger.Info(ctx, "AZ:EnsureWorkspace/efail", "err", shorterErrorString(err))
		return fmt.Errorf("failed to create workspace %s: %w", step.Name, err)
	}
	logger.Info(ctx, "AZ:EnsureWorkspace/eok")
	return nil
}

func (d *driver) workspaceExists(ctx context.Context, rg, name string) (bool, error) {
	client, err := armmachinelearning.NewWorkspacesClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create workspaces client: %w", err)
	}
	if _, err := client.Get(ctx, rg, name, nil); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
