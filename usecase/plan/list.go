package plan

import (
	"context"

	"github.com/fedlearn/fedops/domain/model"
)

// ListInput has no fields; all plans are returned.
type ListInput struct{}

// ListOutput wraps the listed plans.
type ListOutput struct {
	Plans []*model.Plan `json:"plans"`
}

// List returns all stored plans.
func (u *UseCase) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	plans, err := u.Repos.Plan.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Plans: plans}, nil
}
