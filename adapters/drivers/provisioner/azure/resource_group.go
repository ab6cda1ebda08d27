package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/fedlearn/fedops/domain/model"
	"github.com/fedlearn/fedops/internal/logging"
)

// applyResourceGroup creates or updates a resource group. The ARM call is
// idempotent, so re-running a plan past this step is safe.
func (d *driver) applyResourceGroup(ctx context.Context, step *model.Step) error {
	client, err := armresources.NewResourceGroupsClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return fmt.Errorf("failed to create resource groups client: %w", err)
	}

	logger := logging.FromContext(ctx).With("subscription", d.AzureSubscriptionId, "location", d.location(step), "name", step.Name)
	params := armresources.ResourceGroup{
		Location: to.Ptr(d.location(step)),
		Tags: map[string]*string{
			"managed-by": to.Ptr(managedByTag),
		},
	}
	if _, err := client.CreateOrUpdate(ctx, step.Name, params, nil); err != nil {
		logger.Info(ctx, "AZ:EnsureRG/efail", "err", shorterErrorString(err))
		return fmt.Errorf("failed to create resource group %s: %w", step.Name, err)
	}
	logger.Info(ctx, "AZ:EnsureRG/eok")
	return nil
}

func (d *driver) resourceGroupExists(ctx context.Context, name string) (bool, error) {
	client, err := armresources.NewResourceGroupsClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create resource groups client: %w", err)
	}
	if _, err := client.Get(ctx, name, nil); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DestroyResourceGroup deletes the resource group idempotently.
// A group that does not exist is treated as already deleted.
func (d *driver) DestroyResourceGroup(ctx context.Context, name string) error {
	log := logging.FromContext(ctx)

	client, err := armresources.NewResourceGroupsClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return fmt.Errorf("failed to create resource groups client: %w", err)
	}

	// Treat not-found as already deleted. Any other Get failure (auth,
	// throttling) must surface rather than report a successful delete.
	if _, err := client.Get(ctx, name, nil); err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to check resource group %s: %w", name, err)
	}

	log.Info(ctx, "deleting resource group", "resource_group", name, "subscription", d.AzureSubscriptionId)
	poller, err := client.BeginDelete(ctx, name, nil)
	if err != nil {
		return fmt.Errorf("failed to start resource group deletion: %w", err)
	}
	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return fmt.Errorf("failed to delete resource group %s: %w", name, err)
	}
	log.Info(ctx, "resource group deleted", "resource_group", name)
	return nil
}
