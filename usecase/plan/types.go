package plan

import (
	"github.com/fedlearn/fedops/domain"
)

// Repos holds repositories needed for plan use cases.
type Repos struct {
	Plan     domain.PlanRepository
	Provider domain.ProviderRepository
}

// UseCase wires repositories needed for plan use cases.
type UseCase struct {
	Repos *Repos
}
