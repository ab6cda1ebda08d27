package model

import "time"

// Plan is an ordered provisioning sequence scoped to a default resource group.
type Plan struct {
	ID            string
	Name          string
	ProviderID    string // references Provider
	ResourceGroup string // default resource group for all steps
	Location      string
	Steps         []Step
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Retarget switches the plan to a different default resource group.
// A resource_group step named after the former default follows the new
// group; steps pinned to other groups keep their override. The plan's
// step slice is replaced, never mutated in place.
func (p *Plan) Retarget(resourceGroup string) {
	if resourceGroup == "" || resourceGroup == p.ResourceGroup {
		return
	}
	prev := p.ResourceGroup
	p.ResourceGroup = resourceGroup
	steps := make([]Step, len(p.Steps))
	copy(steps, p.Steps)
	for i := range steps {
		if steps[i].Kind == StepKindResourceGroup && steps[i].Name == prev {
			steps[i].Name = resourceGroup
		}
	}
	p.Steps = steps
}

// EffectiveSteps returns the plan's steps with the default resource group
// applied to every step that does not override it. A resource_group step
// with an empty name resolves to its effective resource group, so changing
// the plan's group retargets the group the sequence creates, not just the
// scope of the later steps. Step order is preserved.
func (p *Plan) EffectiveSteps() []Step {
	out := make([]Step, len(p.Steps))
	for i, s := range p.Steps {
		if s.ResourceGroup == "" {
			s.ResourceGroup = p.ResourceGroup
		}
		if s.Location == "" {
			s.Location = p.Location
		}
		if s.Kind == StepKindResourceGroup && s.Name == "" {
			s.Name = s.ResourceGroup
		}
		out[i] = s
	}
	return out
}
