package azure

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/fedlearn/fedops/domain/model"
	"github.com/fedlearn/fedops/internal/logging"
)

// Step params recognized by the firewall_rule kind.
const (
	paramRulePorts    = "ports" // destination port or range, e.g. "8002-8003"
	paramRulePriority = "priority"
	paramRuleVM       = "vm"  // VM whose NSG receives the rule
	paramRuleNSG      = "nsg" // explicit NSG name, overrides vm
)

const defaultRulePriority = 1001

// applyFirewallRule adds an inbound-allow TCP rule to the NSG of the named
// VM (or an explicitly named NSG). The ARM call is a CreateOrUpdate, so
// re-running a plan past this step is safe.
func (d *driver) applyFirewallRule(ctx context.Context, step *model.Step) error {
	nsg, err := ruleNSGName(step)
	if err != nil {
		return err
	}
	ports := step.Param(paramRulePorts, "")
	if ports == "" {
		return fmt.Errorf("firewall rule %s: ports param is required", step.Name)
	}
	priority := defaultRulePriority
	if v := step.Param(paramRulePriority, ""); v != "" {
		priority, err = strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("firewall rule %s: invalid priority %q: %w", step.Name, v, err)
		}
	}

	client, err := armnetwork.NewSecurityRulesClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return fmt.Errorf("failed to create security rules client: %w", err)
	}

	logger := logging.FromContext(ctx).With("resource_group", step.ResourceGroup, "nsg", nsg, "name", step.Name, "ports", ports)
	rule := armnetwork.SecurityRule{
		Properties: &armnetwork.SecurityRulePropertiesFormat{
			Access:                   to.Ptr(armnetwork.SecurityRuleAccessAllow),
			Direction:                to.Ptr(armnetwork.SecurityRuleDirectionInbound),
			Protocol:                 to.Ptr(armnetwork.SecurityRuleProtocolTCP),
			Priority:                 to.Ptr(int32(priority)),
			SourceAddressPrefix:      to.Ptr("*"),
			SourcePortRange:          to.Ptr("*"),
			DestinationAddressPrefix: to.Ptr("*"),
			DestinationPortRange:     to.Ptr(ports),
		},
	}
	poller, err := client.BeginCreateOrUpdate(ctx, step.ResourceGroup, nsg, step.Name, rule, nil)
	if err != nil {
		logger.Info(ctx, "AZ:EnsureRule/efail", "err", shorterErrorString(err))
		return fmt.Errorf("failed to create firewall rule %s: %w", step.Name, err)
	}
	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		logger.Info(ctx, "AZ:EnsureRule/efail", "err", shorterErrorString(err))
		return fmt.Errorf("failed to create firewall rule %s: %w", step.Name, err)
	}
	logger.Info(ctx, "AZ:EnsureRule/eok")
	return nil
}

func (d *driver) firewallRuleExists(ctx context.Context, step *model.Step) (bool, error) {
	nsg, err := ruleNSGName(step)
	if err != nil {
		return false, err
	}
	client, err := armnetwork.NewSecurityRulesClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create security rules client: %w", err)
	}
	if _, err := client.Get(ctx, step.ResourceGroup, nsg, step.Name, nil); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func ruleNSGName(step *model.Step) (string, error) {
	if v := step.Param(paramRuleNSG, ""); v != "" {
		return v, nil
	}
	if v := step.Param(paramRuleVM, ""); v != "" {
		return nsgName(v), nil
	}
	return "", fmt.Errorf("firewall rule %s: either nsg or vm param is required", step.Name)
}
