package run

import (
	"github.com/fedlearn/fedops/domain"
	"github.com/fedlearn/fedops/domain/model"
)

// Repos holds repositories needed for run use cases.
type Repos struct {
	Plan     domain.PlanRepository
	Provider domain.ProviderRepository
	Run      domain.RunRepository
}

// UseCase wires repositories and the provisioner port for run use cases.
type UseCase struct {
	Repos           *Repos
	ProvisionerPort model.ProvisionerPort
}
