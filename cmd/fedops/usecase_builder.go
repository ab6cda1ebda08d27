package main

import (
	"context"
	"fmt"

	provisionerdrv "github.com/fedlearn/fedops/adapters/drivers/provisioner"
	"github.com/fedlearn/fedops/usecase/plan"
	"github.com/fedlearn/fedops/usecase/run"
)

// buildPlanUseCase wires repositories for plan use cases.
func buildPlanUseCase(br *builtRepos) *plan.UseCase {
	return &plan.UseCase{
		Repos: &plan.Repos{
			Plan:     br.Repos.Plan,
			Provider: br.Repos.Provider,
		},
	}
}

// buildRunUseCase wires repositories and the provisioner port for the plan
// identified by planID.
func buildRunUseCase(ctx context.Context, br *builtRepos, planID string) (*run.UseCase, error) {
	p, err := br.Repos.Plan.Get(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan %s: %w", planID, err)
	}
	return &run.UseCase{
		Repos: &run.Repos{
			Plan:     br.Repos.Plan,
			Provider: br.Repos.Provider,
			Run:      br.Repos.Run,
		},
		ProvisionerPort: provisionerdrv.GetProvisionerPort(br.Repos.Provider, p.ProviderID),
	}, nil
}
