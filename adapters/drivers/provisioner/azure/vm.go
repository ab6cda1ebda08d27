package azure

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v6"

	"github.com/fedlearn/fedops/domain/model"
	"github.com/fedlearn/fedops/internal/logging"
)

// Step params recognized by the vm kind.
const (
	paramVMImage         = "image" // "Publisher:Offer:SKU:Version"
	paramVMSize          = "size"
	paramVMAdminUsername = "admin_username"
	paramVMAdminPassword = "admin_password_env" // environment variable holding the password
)

const (
	defaultVMImage         = "Canonical:0001-com-ubuntu-server-jammy:22_04-lts-gen2:latest"
	defaultVMSize          = "Standard_B2ms"
	defaultVMAdminUsername = "fedadmin"
	defaultVMPasswordEnv   = "FEDOPS_VM_ADMIN_PASSWORD"
)

// applyVM creates the coordinator VM together with its implicit networking.
// The admin password is read from the environment at call time and never
// stored on the step or the plan.
func (d *driver) applyVM(ctx context.Context, step *model.Step) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	passwordEnv := step.Param(paramVMAdminPassword, defaultVMPasswordEnv)
	password := os.Getenv(passwordEnv)
	if password == "" {
		return fmt.Errorf("vm %s: admin password environment variable %s is empty", step.Name, passwordEnv)
	}

	imageRef, err := parseImageRef(step.Param(paramVMImage, defaultVMImage))
	if err != nil {
		return fmt.Errorf("vm %s: %w", step.Name, err)
	}

	location := d.location(step)
	nicID, err := d.ensureVMNetwork(ctx, step.ResourceGroup, step.Name, location)
	if err != nil {
		return fmt.Errorf("vm %s: %w", step.Name, err)
	}

	client, err := armcompute.NewVirtualMachinesClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return fmt.Errorf("failed to create virtual machines client: %w", err)
	}

	logger := logging.FromContext(ctx).With("resource_group", step.ResourceGroup, "name", step.Name, "size", step.Param(paramVMSize, defaultVMSize))
	params := armcompute.VirtualMachine{
		Location: to.Ptr(location),
		Tags: map[string]*string{
			"managed-by": to.Ptr(managedByTag),
		},
		Properties: &armcompute.VirtualMachineProperties{
			HardwareProfile: &armcompute.HardwareProfile{
				VMSize: to.Ptr(armcompute.VirtualMachineSizeTypes(step.Param(paramVMSize, defaultVMSize))),
			},
			StorageProfile: &armcompute.StorageProfile{
				ImageReference: imageRef,
				OSDisk: &armcompute.OSDisk{
					CreateOption: to.Ptr(armcompute.DiskCreateOptionTypesFromImage),
					ManagedDisk: &armcompute.ManagedDiskParameters{
						StorageAccountType: to.Ptr(armcompute.StorageAccountTypesStandardLRS),
					},
				},
			},
			OSProfile: &armcompute.OSProfile{
				ComputerName:  to.Ptr(step.Name),
				AdminUsername: to.Ptr(step.Param(paramVMAdminUsername, defaultVMAdminUsername)),
				AdminPassword: to.Ptr(password),
			},
			NetworkProfile: &armcompute.NetworkProfile{
				NetworkInterfaces: []*armcompute.NetworkInterfaceReference{
					{ID: to.Ptr(nicID)},
				},
			},
		},
	}

	poller, err := client.BeginCreateOrUpdate(ctx, step.ResourceGroup, step.Name, params, nil)
	if err != nil {
		logger.Info(ctx, "AZ:EnsureVM/efail", "err", shorterErrorString(err))
		return fmt.Errorf("failed to create VM %s: %w", step.Name, err)
	}
	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		logger.Info(ctx, "AZ:EnsureVM/efail", "err", shorterErrorString(err))
		return fmt.Errorf("failed to create VM %s: %w", step.Name, err)
	}
	logger.Info(ctx, "AZ:EnsureVM/eok")
	return nil
}

func (d *driver) vmExists(ctx context.Context, rg, name string) (bool, error) {
	client, err := armcompute.NewVirtualMachinesClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create virtual machines client: %w", err)
	}
	if _, err := client.Get(ctx, rg, name, nil); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// parseImageRef splits "Publisher:Offer:SKU:Version" into an ImageReference.
func parseImageRef(image string) (*armcompute.ImageReference, error) {
	parts := strings.Split(image, ":")
	if len(parts) != 4 {
		return nil, fmt.Errorf("invalid image %q, expected Publisher:Offer:SKU:Version", image)
	}
	return &armcompute.ImageReference{
		Publisher: to.Ptr(parts[0]),
		Offer:     to.Ptr(parts[1]),
		SKU:       to.Ptr(parts[2]),
		Version:   to.Ptr(parts[3]),
	}, nil
}
