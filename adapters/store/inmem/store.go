package inmem

import (
	"context"

	"github.com/fedlearn/fedops/config/fedopscfg"
	"github.com/fedlearn/fedops/domain"
)

// Store provides a unified interface for all in-memory repositories.
type Store struct {
	ProviderRepository *ProviderRepository
	PlanRepository     *PlanRepository
	RunRepository      *RunRepository

	// ProviderID and PlanID identify the entities loaded from fedops.yml.
	ProviderID string
	PlanID     string
}

// NewStore creates a new in-memory store with all repositories.
func NewStore() *Store {
	return &Store{
		ProviderRepository: NewProviderRepository(),
		PlanRepository:     NewPlanRepository(),
		RunRepository:      NewRunRepository(),
	}
}

// LoadFromConfig loads a fedops.yml configuration into the memory store.
// Entities are stored in dependency order: provider, then plan.
func (s *Store) LoadFromConfig(ctx context.Context, cfg *fedopscfg.Root) error {
	provider, plan, err := cfg.ToModels()
	if err != nil {
		return err
	}
	if err := s.ProviderRepository.Create(ctx, provider); err != nil {
		return err
	}
	if err := s.PlanRepository.Create(ctx, plan); err != nil {
		return err
	}
	s.ProviderID = provider.ID
	s.PlanID = plan.ID
	return nil
}

// LoadFromFile loads a fedops.yml file into the memory store.
func (s *Store) LoadFromFile(ctx context.Context, path string) error {
	cfg, err := fedopscfg.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return s.LoadFromConfig(ctx, cfg)
}

// Compile-time assertions
var _ domain.ProviderRepository = (*ProviderRepository)(nil)
var _ domain.PlanRepository = (*PlanRepository)(nil)
var _ domain.RunRepository = (*RunRepository)(nil)
