package model

import (
	"errors"
	"testing"
)

func TestEffectiveSteps(t *testing.T) {
	p := &Plan{
		ResourceGroup: "default-rg",
		Location:      "eastus",
		Steps: []Step{
			{Name: "a", Kind: StepKindResourceGroup},
			{Name: "b", Kind: StepKindVM, ResourceGroup: "other-rg"},
			{Name: "c", Kind: StepKindWorkspace, Location: "westus"},
		},
	}
	steps := p.EffectiveSteps()
	if steps[0].ResourceGroup != "default-rg" || steps[0].Location != "eastus" {
		t.Errorf("steps[0] defaults not applied: %+v", steps[0])
	}
	if steps[1].ResourceGroup != "other-rg" {
		t.Errorf("steps[1] override lost: %+v", steps[1])
	}
	if steps[2].Location != "westus" {
		t.Errorf("steps[2] location override lost: %+v", steps[2])
	}
	// The plan itself must stay untouched.
	if p.Steps[0].ResourceGroup != "" {
		t.Error("EffectiveSteps mutated the plan")
	}
}

func TestEffectiveStepsUnnamedResourceGroup(t *testing.T) {
	p := &Plan{
		ResourceGroup: "default-rg",
		Steps: []Step{
			{Kind: StepKindResourceGroup},
			{Kind: StepKindResourceGroup, ResourceGroup: "other-rg"},
		},
	}
	steps := p.EffectiveSteps()
	if steps[0].Name != "default-rg" {
		t.Errorf("steps[0].Name = %s, want default-rg", steps[0].Name)
	}
	if steps[1].Name != "other-rg" {
		t.Errorf("steps[1].Name = %s, want other-rg", steps[1].Name)
	}

	// Retargeting the plan's group must carry the unnamed step along.
	p.ResourceGroup = "alt-rg"
	if got := p.EffectiveSteps()[0].Name; got != "alt-rg" {
		t.Errorf("retargeted steps[0].Name = %s, want alt-rg", got)
	}
	if p.Steps[0].Name != "" {
		t.Error("EffectiveSteps mutated the plan")
	}
}

func TestPlanRetarget(t *testing.T) {
	orig := []Step{
		{Name: "fedlearning-rg", Kind: StepKindResourceGroup},
		{Name: "fedserver", Kind: StepKindVM},
		{Name: "pinned", Kind: StepKindResourceGroup, ResourceGroup: "other-rg"},
	}
	p := &Plan{ResourceGroup: "fedlearning-rg", Steps: orig}

	p.Retarget("alt-rg")
	if p.ResourceGroup != "alt-rg" {
		t.Errorf("resource group = %s, want alt-rg", p.ResourceGroup)
	}
	if p.Steps[0].Name != "alt-rg" {
		t.Errorf("steps[0].Name = %s, want alt-rg", p.Steps[0].Name)
	}
	if p.Steps[2].Name != "pinned" {
		t.Errorf("steps[2].Name = %s, want pinned", p.Steps[2].Name)
	}
	// The slice the plan was built from must not change.
	if orig[0].Name != "fedlearning-rg" {
		t.Error("Retarget mutated the original step slice")
	}

	// Empty and same-group retargets are no-ops.
	p2 := &Plan{ResourceGroup: "rg", Steps: []Step{{Name: "rg", Kind: StepKindResourceGroup}}}
	p2.Retarget("")
	p2.Retarget("rg")
	if p2.Steps[0].Name != "rg" {
		t.Errorf("steps[0].Name = %s, want rg", p2.Steps[0].Name)
	}
}

func TestParseStepKind(t *testing.T) {
	for _, s := range []string{"resource_group", "vm", "firewall_rule", "workspace"} {
		if _, err := ParseStepKind(s); err != nil {
			t.Errorf("ParseStepKind(%q) = %v", s, err)
		}
	}
	if _, err := ParseStepKind("cluster"); !errors.Is(err, ErrStepUnknownKind) {
		t.Errorf("ParseStepKind(cluster) = %v, want ErrStepUnknownKind", err)
	}
}

func TestStepParam(t *testing.T) {
	s := &Step{Params: map[string]string{"size": "Standard_B2ms", "empty": ""}}
	if got := s.Param("size", "x"); got != "Standard_B2ms" {
		t.Errorf("Param(size) = %s", got)
	}
	if got := s.Param("empty", "fallback"); got != "fallback" {
		t.Errorf("Param(empty) = %s, want fallback", got)
	}
	if got := s.Param("missing", "fallback"); got != "fallback" {
		t.Errorf("Param(missing) = %s, want fallback", got)
	}
}

func TestRunFailedStep(t *testing.T) {
	r := &Run{Steps: []StepResult{
		{Position: 0, Status: StepStatusSucceeded},
		{Position: 1, Name: "fedserver", Status: StepStatusFailed},
		{Position: 2, Status: StepStatusSkipped},
	}}
	failed := r.FailedStep()
	if failed == nil || failed.Name != "fedserver" {
		t.Errorf("FailedStep = %+v", failed)
	}

	ok := &Run{Steps: []StepResult{{Status: StepStatusSucceeded}}}
	if ok.FailedStep() != nil {
		t.Error("FailedStep on success should be nil")
	}
}
