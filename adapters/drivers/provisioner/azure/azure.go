// Package azure implements the provisioner driver for Azure. One file per
// resource kind; all clients share the driver's credential and subscription.
package azure

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	provisionerdrv "github.com/fedlearn/fedops/adapters/drivers/provisioner"
	"github.com/fedlearn/fedops/domain/model"
)

// driver implements the Azure provisioner driver.
type driver struct {
	TokenCredential     azcore.TokenCredential
	AzureSubscriptionId string
	AzureLocation       string
}

// ID returns the driver identifier.
func (d *driver) ID() string { return "azure" }

// managedByTag marks resources created by this tool.
const managedByTag = "fedops"

// init registers the Azure driver.
func init() {
	provisionerdrv.Register("azure", func(settings map[string]string) (provisionerdrv.Driver, error) {
		get := func(k string) string {
			if settings == nil {
				return ""
			}
			return strings.TrimSpace(settings[k])
		}

		subscriptionID := get("AZURE_SUBSCRIPTION_ID")
		location := get("AZURE_LOCATION")
		missing := make([]string, 0, 2)
		if subscriptionID == "" {
			missing = append(missing, "AZURE_SUBSCRIPTION_ID")
		}
		if location == "" {
			missing = append(missing, "AZURE_LOCATION")
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("missing required Azure settings: %s", strings.Join(missing, ", "))
		}

		authMethod := get("AZURE_AUTH_METHOD")
		if authMethod == "" {
			return nil, fmt.Errorf("AZURE_AUTH_METHOD must be specified")
		}

		var cred azcore.TokenCredential
		var err error
		switch authMethod {
		case "client_secret":
			tenantID := get("AZURE_TENANT_ID")
			clientID := get("AZURE_CLIENT_ID")
			clientSecret := get("AZURE_CLIENT_SECRET")
			if tenantID == "" || clientID == "" || clientSecret == "" {
				return nil, fmt.Errorf("client_secret auth requires AZURE_TENANT_ID, AZURE_CLIENT_ID, AZURE_CLIENT_SECRET")
			}
			cred, err = azidentity.NewClientSecretCredential(tenantID, clientID, clientSecret, nil)
		case "managed_identity":
			clientID := get("AZURE_CLIENT_ID")
			opts := &azidentity.ManagedIdentityCredentialOptions{}
			if clientID != "" {
				opts.ID = azidentity.ClientID(clientID)
			}
			cred, err = azidentity.NewManagedIdentityCredential(opts)
		case "workload_identity":
			tenantID := get("AZURE_TENANT_ID")
			clientID := get("AZURE_CLIENT_ID")
			tokenFile := get("AZURE_FEDERATED_TOKEN_FILE")
			if tenantID == "" || clientID == "" || tokenFile == "" {
				return nil, fmt.Errorf("workload_identity auth requires AZURE_TENANT_ID, AZURE_CLIENT_ID, AZURE_FEDERATED_TOKEN_FILE")
			}
			cred, err = azidentity.NewWorkloadIdentityCredential(&azidentity.WorkloadIdentityCredentialOptions{
				TenantID:      tenantID,
				ClientID:      clientID,
				TokenFilePath: tokenFile,
			})
		case "azure_cli":
			cred, err = azidentity.NewAzureCLICredential(nil)
		default:
			return nil, fmt.Errorf("unsupported AZURE_AUTH_METHOD: %s", authMethod)
		}
		if err != nil {
			return nil, fmt.Errorf("create Azure credential: %w", err)
		}

		return &driver{
			TokenCredential:     cred,
			AzureSubscriptionId: subscriptionID,
			AzureLocation:       location,
		}, nil
	})
}

// location returns the effective Azure location for a step.
func (d *driver) location(step *model.Step) string {
	if step.Location != "" {
		return step.Location
	}
	return d.AzureLocation
}

// ApplyStep dispatches a step to the resource-specific create path.
func (d *driver) ApplyStep(ctx context.Context, step *model.Step) error {
	switch step.Kind {
	case model.StepKindResourceGroup:
		return d.applyResourceGroup(ctx, step)
	case model.StepKindVM:
		return d.applyVM(ctx, step)
	case model.StepKindFirewallRule:
		return d.applyFirewallRule(ctx, step)
	case model.StepKindWorkspace:
		return d.applyWorkspace(ctx, step)
	}
	return fmt.Errorf("%w: %q", model.ErrStepUnknownKind, step.Kind)
}

// StepState dispatches a step to the resource-specific existence probe.
func (d *driver) StepState(ctx context.Context, step *model.Step) (*model.StepState, error) {
	var exists bool
	var err error
	switch step.Kind {
	case model.StepKindResourceGroup:
		exists, err = d.resourceGroupExists(ctx, step.Name)
	case model.StepKindVM:
		exists, err = d.vmExists(ctx, step.ResourceGroup, step.Name)
	case model.StepKindFirewallRule:
		exists, err = d.firewallRuleExists(ctx, step)
	case model.StepKindWorkspace:
		exists, err = d.workspaceExists(ctx, step.ResourceGroup, step.Name)
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrStepUnknownKind, step.Kind)
	}
	if err != nil {
		return nil, err
	}
	return &model.StepState{Exists: exists}, nil
}

var _ provisionerdrv.Driver = (*driver)(nil)
