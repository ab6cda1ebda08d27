package run

import (
	"context"

	"github.com/fedlearn/fedops/domain/model"
	"github.com/fedlearn/fedops/internal/logging"
)

// DestroyInput represents a command to delete a plan's resource groups.
type DestroyInput struct {
	PlanID string `json:"plan_id"`
	// ResourceGroup overrides the plan's default resource group when set.
	ResourceGroup string `json:"resource_group,omitempty"`
}

// DestroyOutput lists the resource groups that were deleted.
type DestroyOutput struct {
	ResourceGroups []string `json:"resource_groups"`
}

// Destroy deletes every resource group the plan's steps touch, in step
// order without duplicates. Deleting a group removes all resources inside
// it, so per-resource teardown is unnecessary.
func (u *UseCase) Destroy(ctx context.Context, in *DestroyInput) (*DestroyOutput, error) {
	if in == nil || in.PlanID == "" {
		return nil, model.ErrPlanInvalid
	}

	p, err := u.Repos.Plan.Get(ctx, in.PlanID)
	if err != nil {
		return nil, err
	}
	p.Retarget(in.ResourceGroup)

	logger := logging.FromContext(ctx).With("plan", p.Name)
	seen := make(map[string]struct{})
	var groups []string
	for _, step := range p.EffectiveSteps() {
		rg := step.ResourceGroup
		if step.Kind == model.StepKindResourceGroup {
			rg = step.Name
		}
		if rg == "" {
			continue
		}
		if _, ok := seen[rg]; ok {
			continue
		}
		seen[rg] = struct{}{}
		groups = append(groups, rg)
	}

	for _, rg := range groups {
		logger.Info(ctx, "RUN:destroy/S", "resourceGroup", rg)
		if err := u.ProvisionerPort.DestroyResourceGroup(ctx, rg); err != nil {
			logger.Info(ctx, "RUN:destroy/EFAIL", "resourceGroup", rg, "err", err.Error())
			return nil, err
		}
		logger.Info(ctx, "RUN:destroy/EOK", "resourceGroup", rg)
	}

	return &DestroyOutput{ResourceGroups: groups}, nil
}
