package plan

import (
	"context"

	"github.com/fedlearn/fedops/domain/model"
)

// GetInput identifies the plan to fetch.
type GetInput struct {
	// PlanID is the identifier of the plan.
	PlanID string `json:"plan_id"`
}

// GetOutput wraps the retrieved plan.
type GetOutput struct {
	// Plan is the fetched entity.
	Plan *model.Plan `json:"plan"`
}

// Get retrieves a plan by ID.
func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || in.PlanID == "" {
		return nil, model.ErrPlanInvalid
	}
	p, err := u.Repos.Plan.Get(ctx, in.PlanID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Plan: p}, nil
}
