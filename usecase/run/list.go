package run

import (
	"context"

	"github.com/fedlearn/fedops/domain/model"
)

// ListInput has no fields; all runs are returned oldest first.
type ListInput struct{}

// ListOutput wraps the listed runs.
type ListOutput struct {
	Runs []*model.Run `json:"runs"`
}

// List returns the recorded run history.
func (u *UseCase) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	runs, err := u.Repos.Run.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Runs: runs}, nil
}
