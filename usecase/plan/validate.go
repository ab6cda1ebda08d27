package plan

import (
	"context"
	"fmt"

	"github.com/fedlearn/fedops/domain/model"
	"github.com/fedlearn/fedops/internal/naming"
)

// ValidateInput identifies the plan to validate.
type ValidateInput struct {
	PlanID string `json:"plan_id"`
}

// ValidateOutput wraps the validated plan with its resolved steps.
type ValidateOutput struct {
	Plan  *model.Plan  `json:"plan"`
	Steps []model.Step `json:"steps"`
}

// Validate checks the semantic constraints of a stored plan and returns the
// effective step list: every step has a resource group after plan defaults
// are applied, every name fits its kind, and the referenced provider exists.
func (u *UseCase) Validate(ctx context.Context, in *ValidateInput) (*ValidateOutput, error) {
	if in == nil || in.PlanID == "" {
		return nil, model.ErrPlanInvalid
	}
	p, err := u.Repos.Plan.Get(ctx, in.PlanID)
	if err != nil {
		return nil, err
	}
	if _, err := u.Repos.Provider.Get(ctx, p.ProviderID); err != nil {
		return nil, fmt.Errorf("plan %s: %w", p.Name, err)
	}

	steps := p.EffectiveSteps()
	for i := range steps {
		if err := validateStep(&steps[i]); err != nil {
			return nil, fmt.Errorf("plan %s steps[%d]: %w", p.Name, i, err)
		}
	}
	return &ValidateOutput{Plan: p, Steps: steps}, nil
}

func validateStep(s *model.Step) error {
	if s.ResourceGroup == "" && s.Kind != model.StepKindResourceGroup {
		return fmt.Errorf("%w: step %q has no resource group", model.ErrStepInvalid, s.Name)
	}
	if s.ResourceGroup != "" {
		if err := naming.ValidateResourceGroupName(s.ResourceGroup); err != nil {
			return err
		}
	}
	switch s.Kind {
	case model.StepKindResourceGroup:
		return naming.ValidateResourceGroupName(s.Name)
	case model.StepKindVM:
		return naming.ValidateVMName(s.Name)
	case model.StepKindFirewallRule:
		return naming.ValidateRuleName(s.Name)
	case model.StepKindWorkspace:
		return naming.ValidateWorkspaceName(s.Name)
	}
	return fmt.Errorf("%w: %q", model.ErrStepUnknownKind, s.Kind)
}
