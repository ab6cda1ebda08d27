package fedopscfg

import (
	"fmt"

	"github.com/fedlearn/fedops/domain/model"
	"github.com/fedlearn/fedops/internal/naming"
)

// Validate performs semantic validation on the configuration tree.
func (r *Root) Validate() error {
	if r.Provider.Driver == "" {
		return fmt.Errorf("provider: driver is required")
	}
	if err := r.Plan.validate(); err != nil {
		return fmt.Errorf("plan: %w", err)
	}
	return nil
}

func (p *Plan) validate() error {
	if p.ResourceGroup != "" {
		if err := naming.ValidateResourceGroupName(p.ResourceGroup); err != nil {
			return fmt.Errorf("resource_group: %w", err)
		}
	}
	seen := make(map[string]struct{}, len(p.Steps))
	for i, step := range p.Steps {
		if err := step.validate(p.ResourceGroup); err != nil {
			return fmt.Errorf("steps[%d]: %w", i, err)
		}
		key := step.Kind + "/" + step.Name
		if _, exists := seen[key]; exists {
			return fmt.Errorf("steps[%d]: duplicate step %q", i, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func (s *Step) validate(defaultRG string) error {
	kind, err := model.ParseStepKind(s.Kind)
	if err != nil {
		return err
	}
	if s.ResourceGroup == "" && defaultRG == "" && kind != model.StepKindResourceGroup {
		return fmt.Errorf("no resource group: step %q has no override and the plan has no default", s.Name)
	}
	if s.ResourceGroup != "" {
		if err := naming.ValidateResourceGroupName(s.ResourceGroup); err != nil {
			return fmt.Errorf("resource_group: %w", err)
		}
	}
	switch kind {
	case model.StepKindResourceGroup:
		// An unnamed resource_group step resolves to the plan's group.
		if s.Name == "" {
			return nil
		}
		return naming.ValidateResourceGroupName(s.Name)
	case model.StepKindVM:
		return naming.ValidateVMName(s.Name)
	case model.StepKindFirewallRule:
		return naming.ValidateRuleName(s.Name)
	case model.StepKindWorkspace:
		return naming.ValidateWorkspaceName(s.Name)
	}
	return nil
}
