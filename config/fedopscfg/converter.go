package fedopscfg

import (
	"time"

	"github.com/google/uuid"

	"github.com/fedlearn/fedops/domain/model"
)

// ToModels converts the configuration to domain models with proper references.
// Returns models in the order: provider, plan.
func (r *Root) ToModels() (*model.Provider, *model.Plan, error) {
	now := time.Now().UTC()

	providerID := "prov-" + uuid.NewString()
	planID := "plan-" + uuid.NewString()

	provider := &model.Provider{
		ID:        providerID,
		Name:      r.Provider.Name,
		Driver:    r.Provider.Driver,
		Settings:  r.Provider.Settings,
		CreatedAt: now,
		UpdatedAt: now,
	}

	resourceGroup := r.Plan.ResourceGroup
	if resourceGroup == "" {
		resourceGroup = DefaultResourceGroup
	}
	name := r.Plan.Name
	if name == "" {
		name = "fedlearning"
	}
	steps := r.Plan.Steps
	if len(steps) == 0 {
		steps = defaultSteps()
	}

	plan := &model.Plan{
		ID:            planID,
		Name:          name,
		ProviderID:    providerID,
		ResourceGroup: resourceGroup,
		Location:      r.Plan.Location,
		Steps:         make([]model.Step, 0, len(steps)),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, s := range steps {
		kind, err := model.ParseStepKind(s.Kind)
		if err != nil {
			return nil, nil, err
		}
		plan.Steps = append(plan.Steps, model.Step{
			Name:          s.Name,
			Kind:          kind,
			ResourceGroup: s.ResourceGroup,
			Location:      s.Location,
			Params:        s.Params,
		})
	}

	return provider, plan, nil
}
