package run

import (
	"context"

	"github.com/fedlearn/fedops/domain/model"
)

// GetInput identifies the run to fetch.
type GetInput struct {
	RunID string `json:"run_id"`
}

// GetOutput wraps the retrieved run.
type GetOutput struct {
	Run *model.Run `json:"run"`
}

// Get retrieves a run record by ID.
func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || in.RunID == "" {
		return nil, model.ErrRunInvalid
	}
	r, err := u.Repos.Run.Get(ctx, in.RunID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Run: r}, nil
}
