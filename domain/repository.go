package domain

import (
	"context"

	"github.com/fedlearn/fedops/domain/model"
)

// ProviderRepository stores and retrieves Provider aggregates.
type ProviderRepository interface {
	Create(ctx context.Context, p *model.Provider) error
	Get(ctx context.Context, id string) (*model.Provider, error)
	List(ctx context.Context) ([]*model.Provider, error)
	Update(ctx context.Context, p *model.Provider) error
	Delete(ctx context.Context, id string) error
}

// PlanRepository stores and retrieves Plan aggregates.
type PlanRepository interface {
	Create(ctx context.Context, p *model.Plan) error
	Get(ctx context.Context, id string) (*model.Plan, error)
	List(ctx context.Context) ([]*model.Plan, error)
	Update(ctx context.Context, p *model.Plan) error
	Delete(ctx context.Context, id string) error
}

// RunRepository stores and retrieves Run records.
type RunRepository interface {
	Create(ctx context.Context, r *model.Run) error
	Get(ctx context.Context, id string) (*model.Run, error)
	List(ctx context.Context) ([]*model.Run, error)
}

// Repositories groups the repository interfaces handed to use cases.
type Repositories struct {
	Provider ProviderRepository
	Plan     PlanRepository
	Run      RunRepository
}
