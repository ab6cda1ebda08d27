package run

import (
	"context"

	"github.com/fedlearn/fedops/domain/model"
)

// StatusInput identifies the plan to probe.
type StatusInput struct {
	PlanID string `json:"plan_id"`
	// ResourceGroup overrides the plan's default resource group when set.
	ResourceGroup string `json:"resource_group,omitempty"`
}

// StepReport pairs a resolved step with its current provider-side state.
type StepReport struct {
	Step   model.Step `json:"step"`
	Exists bool       `json:"exists"`
}

// StatusOutput wraps the per-step reports.
type StatusOutput struct {
	Steps []StepReport `json:"steps"`
}

// Status probes each step of the plan against the provider without
// mutating anything. Probes run in step order; the first probe error
// aborts the remainder.
func (u *UseCase) Status(ctx context.Context, in *StatusInput) (*StatusOutput, error) {
	if in == nil || in.PlanID == "" {
		return nil, model.ErrPlanInvalid
	}

	p, err := u.Repos.Plan.Get(ctx, in.PlanID)
	if err != nil {
		return nil, err
	}
	p.Retarget(in.ResourceGroup)

	steps := p.EffectiveSteps()
	out := &StatusOutput{Steps: make([]StepReport, 0, len(steps))}
	for i := range steps {
		state, err := u.ProvisionerPort.StepState(ctx, &steps[i])
		if err != nil {
			return nil, err
		}
		out.Steps = append(out.Steps, StepReport{Step: steps[i], Exists: state.Exists})
	}
	return out, nil
}
