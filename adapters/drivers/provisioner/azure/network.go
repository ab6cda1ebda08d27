package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/fedlearn/fedops/internal/logging"
)

const (
	vnetAddressSpace   = "10.1.0.0/16"
	subnetAddressSpace = "10.1.0.0/24"
)

// ensureVMNetwork creates the vnet, subnet, public IP, NSG, and NIC for a
// VM and returns the NIC resource ID. Mirrors what `az vm create` does
// implicitly; every call is a CreateOrUpdate so re-runs converge.
func (d *driver) ensureVMNetwork(ctx context.Context, rg, vm, location string) (string, error) {
	logger := logging.FromContext(ctx).With("resource_group", rg, "vm", vm)

	vnetClient, err := armnetwork.NewVirtualNetworksClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create virtual networks client: %w", err)
	}
	vnetPoller, err := vnetClient.BeginCreateOrUpdate(ctx, rg, vnetName(vm), armnetwork.VirtualNetwork{
		Location: to.Ptr(location),
		Properties: &armnetwork.VirtualNetworkPropertiesFormat{
			AddressSpace: &armnetwork.AddressSpace{
				AddressPrefixes: []*string{to.Ptr(vnetAddressSpace)},
			},
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create virtual network: %w", err)
	}
	if _, err := vnetPoller.PollUntilDone(ctx, nil); err != nil {
		return "", fmt.Errorf("failed to create virtual network: %w", err)
	}

	subnetClient, err := armnetwork.NewSubnetsClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create subnets client: %w", err)
	}
	subnetPoller, err := subnetClient.BeginCreateOrUpdate(ctx, rg, vnetName(vm), subnetName(vm), armnetwork.Subnet{
		Properties: &armnetwork.SubnetPropertiesFormat{
			AddressPrefix: to.Ptr(subnetAddressSpace),
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create subnet: %w", err)
	}
	subnetRes, err := subnetPoller.PollUntilDone(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create subnet: %w", err)
	}

	pipClient, err := armnetwork.NewPublicIPAddressesClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create public IP client: %w", err)
	}
	pipPoller, err := pipClient.BeginCreateOrUpdate(ctx, rg, pipName(vm), armnetwork.PublicIPAddress{
		Location: to.Ptr(location),
		Properties: &armnetwork.PublicIPAddressPropertiesFormat{
			PublicIPAllocationMethod: to.Ptr(armnetwork.IPAllocationMethodStatic),
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create public IP: %w", err)
	}
	pipRes, err := pipPoller.PollUntilDone(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create public IP: %w", err)
	}

	nsgID, err := d.ensureNSG(ctx, rg, nsgName(vm), location)
	if err != nil {
		return "", err
	}

	nicClient, err := armnetwork.NewInterfacesClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create interfaces client: %w", err)
	}
	nicPoller, err := nicClient.BeginCreateOrUpdate(ctx, rg, nicName(vm), armnetwork.Interface{
		Location: to.Ptr(location),
		Properties: &armnetwork.InterfacePropertiesFormat{
			NetworkSecurityGroup: &armnetwork.SecurityGroup{ID: to.Ptr(nsgID)},
			IPConfigurations: []*armnetwork.InterfaceIPConfiguration{
				{
					Name: to.Ptr("ipconfig1"),
					Properties: &armnetwork.InterfaceIPConfigurationPropertiesFormat{
						Subnet:                    &armnetwork.Subnet{ID: subnetRes.ID},
						PrivateIPAllocationMethod: to.Ptr(armnetwork.IPAllocationMethodDynamic),
						PublicIPAddress:           &armnetwork.PublicIPAddress{ID: pipRes.ID},
					},
				},
			},
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create network interface: %w", err)
	}
	nicRes, err := nicPoller.PollUntilDone(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create network interface: %w", err)
	}

	logger.Info(ctx, "AZ:EnsureVMNetwork/eok", "nic", nicName(vm))
	return *nicRes.ID, nil
}

// ensureNSG creates an empty network security group and returns its ID.
func (d *driver) ensureNSG(ctx context.Context, rg, name, location string) (string, error) {
	nsgClient, err := armnetwork.NewSecurityGroupsClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create security groups client: %w", err)
	}
	poller, err := nsgClient.BeginCreateOrUpdate(ctx, rg, name, armnetwork.SecurityGroup{
		Location: to.Ptr(location),
		Tags: map[string]*string{
			"managed-by": to.Ptr(managedByTag),
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create network security group: %w", err)
	}
	res, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create network security group: %w", err)
	}
	return *res.ID, nil
}
