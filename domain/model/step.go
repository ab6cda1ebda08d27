package model

import (
	"context"
	"fmt"
)

// StepKind identifies the resource a provisioning step creates.
type StepKind string

const (
	StepKindResourceGroup StepKind = "resource_group"
	StepKindVM            StepKind = "vm"
	StepKindFirewallRule  StepKind = "firewall_rule"
	StepKindWorkspace     StepKind = "workspace"
)

// ParseStepKind converts a string to a StepKind.
func ParseStepKind(s string) (StepKind, error) {
	switch StepKind(s) {
	case StepKindResourceGroup, StepKindVM, StepKindFirewallRule, StepKindWorkspace:
		return StepKind(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrStepUnknownKind, s)
}

// Step is a single resource-creation operation in a plan.
// ResourceGroup and Location are empty when the step inherits the plan
// defaults; Plan.EffectiveSteps resolves them before execution.
type Step struct {
	Name          string
	Kind          StepKind
	ResourceGroup string
	Location      string
	Params        map[string]string
}

// Param returns the step parameter for key, or def when absent.
func (s *Step) Param(key, def string) string {
	if v, ok := s.Params[key]; ok && v != "" {
		return v
	}
	return def
}

// StepState reports whether the resource a step describes currently exists.
type StepState struct {
	Exists bool `json:"exists"`
}

// ProvisionerPort is the domain port the sequencer executes steps through.
// Implementations dispatch on Step.Kind; a failed call must leave no retry
// or compensation behind, that contract belongs to the caller.
type ProvisionerPort interface {
	ApplyStep(ctx context.Context, step *Step) error
	StepState(ctx context.Context, step *Step) (*StepState, error)
	DestroyResourceGroup(ctx context.Context, name string) error
}
