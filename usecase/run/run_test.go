package run

import (
	"context"
	"errors"
	"testing"

	"github.com/fedlearn/fedops/domain/model"
)

// mockPlanRepo is a mock implementation for testing.
type mockPlanRepo struct {
	getFunc func(ctx context.Context, id string) (*model.Plan, error)
}

func (m *mockPlanRepo) Get(ctx context.Context, id string) (*model.Plan, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPlanRepo) List(ctx context.Context) ([]*model.Plan, error) {
	return nil, errors.New("not implemented")
}

func (m *mockPlanRepo) Create(ctx context.Context, p *model.Plan) error {
	return errors.New("not implemented")
}

func (m *mockPlanRepo) Update(ctx context.Context, p *model.Plan) error {
	return errors.New("not implemented")
}

func (m *mockPlanRepo) Delete(ctx context.Context, id string) error {
	return errors.New("not implemented")
}

// mockRunRepo records created runs.
type mockRunRepo struct {
	created    []*model.Run
	createFunc func(ctx context.Context, r *model.Run) error
}

func (m *mockRunRepo) Create(ctx context.Context, r *model.Run) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, r)
	}
	m.created = append(m.created, r)
	return nil
}

func (m *mockRunRepo) Get(ctx context.Context, id string) (*model.Run, error) {
	return nil, errors.New("not implemented")
}

func (m *mockRunRepo) List(ctx context.Context) ([]*model.Run, error) {
	return nil, errors.New("not implemented")
}

// mockProvisionerPort records every step it receives.
type mockProvisionerPort struct {
	applied     []model.Step
	applyFunc   func(ctx context.Context, step *model.Step) error
	stateFunc   func(ctx context.Context, step *model.Step) (*model.StepState, error)
	destroyed   []string
	destroyFunc func(ctx context.Context, name string) error
}

func (m *mockProvisionerPort) ApplyStep(ctx context.Context, step *model.Step) error {
	m.applied = append(m.applied, *step)
	if m.applyFunc != nil {
		return m.applyFunc(ctx, step)
	}
	return nil
}

func (m *mockProvisionerPort) StepState(ctx context.Context, step *model.Step) (*model.StepState, error) {
	if m.stateFunc != nil {
		return m.stateFunc(ctx, step)
	}
	return &model.StepState{}, nil
}

func (m *mockProvisionerPort) DestroyResourceGroup(ctx context.Context, name string) error {
	m.destroyed = append(m.destroyed, name)
	if m.destroyFunc != nil {
		return m.destroyFunc(ctx, name)
	}
	return nil
}

func testPlan() *model.Plan {
	return &model.Plan{
		ID:            "plan-1",
		Name:          "fedlearning",
		ProviderID:    "prov-1",
		ResourceGroup: "fedlearning-rg",
		Location:      "eastus",
		Steps: []model.Step{
			{Name: "fedlearning-rg", Kind: model.StepKindResourceGroup},
			{Name: "fedserver", Kind: model.StepKindVM},
			{Name: "allow-fl-ports", Kind: model.StepKindFirewallRule, Params: map[string]string{"vm": "fedserver", "ports": "8002-8003"}},
			{Name: "fedsrv", Kind: model.StepKindWorkspace},
			{Name: "fedclient1", Kind: model.StepKindWorkspace},
		},
	}
}

func newTestUseCase(p *model.Plan, port *mockProvisionerPort, runs *mockRunRepo) *UseCase {
	return &UseCase{
		Repos: &Repos{
			Plan: &mockPlanRepo{getFunc: func(ctx context.Context, id string) (*model.Plan, error) {
				if id != p.ID {
					return nil, model.ErrPlanNotFound
				}
				cp := *p
				return &cp, nil
			}},
			Run: runs,
		},
		ProvisionerPort: port,
	}
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	t.Run("invokes steps in listed order", func(t *testing.T) {
		port := &mockProvisionerPort{}
		runs := &mockRunRepo{}
		u := newTestUseCase(testPlan(), port, runs)

		out, err := u.Apply(ctx, &ApplyInput{PlanID: "plan-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"fedlearning-rg", "fedserver", "allow-fl-ports", "fedsrv", "fedclient1"}
		if len(port.applied) != len(want) {
			t.Fatalf("applied %d steps, want %d", len(port.applied), len(want))
		}
		for i, name := range want {
			if port.applied[i].Name != name {
				t.Errorf("applied[%d] = %s, want %s", i, port.applied[i].Name, name)
			}
		}
		if out.Run.Status != model.RunStatusSucceeded {
			t.Errorf("run status = %s, want %s", out.Run.Status, model.RunStatusSucceeded)
		}
		for i, s := range out.Run.Steps {
			if s.Status != model.StepStatusSucceeded {
				t.Errorf("step %d status = %s, want succeeded", i, s.Status)
			}
			if s.Position != i {
				t.Errorf("step %d position = %d", i, s.Position)
			}
		}
	})

	t.Run("fail-fast skips steps after the first failure", func(t *testing.T) {
		port := &mockProvisionerPort{}
		port.applyFunc = func(ctx context.Context, step *model.Step) error {
			if step.Kind == model.StepKindVM {
				return errors.New("quota exceeded")
			}
			return nil
		}
		runs := &mockRunRepo{}
		u := newTestUseCase(testPlan(), port, runs)

		out, err := u.Apply(ctx, &ApplyInput{PlanID: "plan-1"})
		if err == nil {
			t.Fatal("expected error")
		}
		// Only steps 0 and 1 reached the provider.
		if len(port.applied) != 2 {
			t.Fatalf("applied %d steps, want 2", len(port.applied))
		}
		if out.Run.Status != model.RunStatusFailed {
			t.Errorf("run status = %s, want failed", out.Run.Status)
		}
		if len(out.Run.Steps) != 5 {
			t.Fatalf("recorded %d step results, want 5", len(out.Run.Steps))
		}
		if out.Run.Steps[1].Status != model.StepStatusFailed {
			t.Errorf("step 1 status = %s, want failed", out.Run.Steps[1].Status)
		}
		for i := 2; i < 5; i++ {
			if out.Run.Steps[i].Status != model.StepStatusSkipped {
				t.Errorf("step %d status = %s, want skipped", i, out.Run.Steps[i].Status)
			}
		}
		failed := out.Run.FailedStep()
		if failed == nil || failed.Name != "fedserver" {
			t.Errorf("FailedStep = %+v, want fedserver", failed)
		}
	})

	t.Run("default resource group applies to all steps", func(t *testing.T) {
		port := &mockProvisionerPort{}
		u := newTestUseCase(testPlan(), port, &mockRunRepo{})

		if _, err := u.Apply(ctx, &ApplyInput{PlanID: "plan-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i, s := range port.applied {
			if s.ResourceGroup != "fedlearning-rg" {
				t.Errorf("applied[%d].ResourceGroup = %s, want fedlearning-rg", i, s.ResourceGroup)
			}
		}
	})

	t.Run("step-level resource group overrides the default", func(t *testing.T) {
		p := testPlan()
		p.Steps[3].ResourceGroup = "other-rg"
		port := &mockProvisionerPort{}
		u := newTestUseCase(p, port, &mockRunRepo{})

		if _, err := u.Apply(ctx, &ApplyInput{PlanID: "plan-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if port.applied[3].ResourceGroup != "other-rg" {
			t.Errorf("applied[3].ResourceGroup = %s, want other-rg", port.applied[3].ResourceGroup)
		}
		if port.applied[4].ResourceGroup != "fedlearning-rg" {
			t.Errorf("applied[4].ResourceGroup = %s, want fedlearning-rg", port.applied[4].ResourceGroup)
		}
	})

	t.Run("cli resource group override wins over the plan default", func(t *testing.T) {
		port := &mockProvisionerPort{}
		u := newTestUseCase(testPlan(), port, &mockRunRepo{})

		out, err := u.Apply(ctx, &ApplyInput{PlanID: "plan-1", ResourceGroup: "alt-rg"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Run.ResourceGroup != "alt-rg" {
			t.Errorf("run resource group = %s, want alt-rg", out.Run.ResourceGroup)
		}
		for i, s := range port.applied {
			if s.ResourceGroup != "alt-rg" {
				t.Errorf("applied[%d].ResourceGroup = %s, want alt-rg", i, s.ResourceGroup)
			}
		}
		// The group the run creates must be the override, not the name the
		// plan was written with.
		if port.applied[0].Kind != model.StepKindResourceGroup || port.applied[0].Name != "alt-rg" {
			t.Errorf("applied[0] = %s %q, want resource_group alt-rg", port.applied[0].Kind, port.applied[0].Name)
		}
	})

	t.Run("cli override retargets the group the built-in sequence creates", func(t *testing.T) {
		// Built-in sequence shape: the resource_group step is unnamed and
		// resolves to the plan's effective group.
		p := testPlan()
		p.Steps[0].Name = ""
		port := &mockProvisionerPort{}
		u := newTestUseCase(p, port, &mockRunRepo{})

		if _, err := u.Apply(ctx, &ApplyInput{PlanID: "plan-1", ResourceGroup: "alt-rg"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if port.applied[0].Name != "alt-rg" {
			t.Errorf("created group %q, want alt-rg", port.applied[0].Name)
		}
		for i, s := range port.applied {
			if s.ResourceGroup != "alt-rg" {
				t.Errorf("applied[%d].ResourceGroup = %s, want alt-rg", i, s.ResourceGroup)
			}
		}
	})

	t.Run("run record is persisted", func(t *testing.T) {
		runs := &mockRunRepo{}
		u := newTestUseCase(testPlan(), &mockProvisionerPort{}, runs)

		if _, err := u.Apply(ctx, &ApplyInput{PlanID: "plan-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(runs.created) != 1 {
			t.Fatalf("persisted %d runs, want 1", len(runs.created))
		}
	})

	t.Run("history write failure does not mask success", func(t *testing.T) {
		runs := &mockRunRepo{createFunc: func(ctx context.Context, r *model.Run) error {
			return errors.New("disk full")
		}}
		u := newTestUseCase(testPlan(), &mockProvisionerPort{}, runs)

		if _, err := u.Apply(ctx, &ApplyInput{PlanID: "plan-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing plan id", func(t *testing.T) {
		u := newTestUseCase(testPlan(), &mockProvisionerPort{}, &mockRunRepo{})
		if _, err := u.Apply(ctx, &ApplyInput{}); !errors.Is(err, model.ErrPlanInvalid) {
			t.Errorf("err = %v, want ErrPlanInvalid", err)
		}
	})

	t.Run("unknown plan", func(t *testing.T) {
		u := newTestUseCase(testPlan(), &mockProvisionerPort{}, &mockRunRepo{})
		if _, err := u.Apply(ctx, &ApplyInput{PlanID: "nope"}); !errors.Is(err, model.ErrPlanNotFound) {
			t.Errorf("err = %v, want ErrPlanNotFound", err)
		}
	})
}

func TestDestroy(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes each touched resource group once", func(t *testing.T) {
		p := testPlan()
		p.Steps[3].ResourceGroup = "other-rg"
		port := &mockProvisionerPort{}
		u := newTestUseCase(p, port, &mockRunRepo{})

		out, err := u.Destroy(ctx, &DestroyInput{PlanID: "plan-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"fedlearning-rg", "other-rg"}
		if len(out.ResourceGroups) != len(want) {
			t.Fatalf("deleted %v, want %v", out.ResourceGroups, want)
		}
		for i, rg := range want {
			if port.destroyed[i] != rg {
				t.Errorf("destroyed[%d] = %s, want %s", i, port.destroyed[i], rg)
			}
		}
	})

	t.Run("aborts on first deletion failure", func(t *testing.T) {
		p := testPlan()
		p.Steps[3].ResourceGroup = "other-rg"
		port := &mockProvisionerPort{destroyFunc: func(ctx context.Context, name string) error {
			return errors.New("locked")
		}}
		u := newTestUseCase(p, port, &mockRunRepo{})

		if _, err := u.Destroy(ctx, &DestroyInput{PlanID: "plan-1"}); err == nil {
			t.Fatal("expected error")
		}
		if len(port.destroyed) != 1 {
			t.Errorf("destroyed %d groups, want 1", len(port.destroyed))
		}
	})
}

func TestStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("reports per-step existence in order", func(t *testing.T) {
		port := &mockProvisionerPort{stateFunc: func(ctx context.Context, step *model.Step) (*model.StepState, error) {
			return &model.StepState{Exists: step.Kind == model.StepKindResourceGroup}, nil
		}}
		u := newTestUseCase(testPlan(), port, &mockRunRepo{})

		out, err := u.Status(ctx, &StatusInput{PlanID: "plan-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Steps) != 5 {
			t.Fatalf("got %d reports, want 5", len(out.Steps))
		}
		if !out.Steps[0].Exists {
			t.Error("resource group step should exist")
		}
		if out.Steps[1].Exists {
			t.Error("vm step should not exist")
		}
	})

	t.Run("cli override retargets the probed group", func(t *testing.T) {
		var probed []model.Step
		port := &mockProvisionerPort{stateFunc: func(ctx context.Context, step *model.Step) (*model.StepState, error) {
			probed = append(probed, *step)
			return &model.StepState{}, nil
		}}
		u := newTestUseCase(testPlan(), port, &mockRunRepo{})

		if _, err := u.Status(ctx, &StatusInput{PlanID: "plan-1", ResourceGroup: "alt-rg"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if probed[0].Name != "alt-rg" {
			t.Errorf("probed group %q, want alt-rg", probed[0].Name)
		}
		for i, s := range probed {
			if s.ResourceGroup != "alt-rg" {
				t.Errorf("probed[%d].ResourceGroup = %s, want alt-rg", i, s.ResourceGroup)
			}
		}
	})

	t.Run("probe error aborts", func(t *testing.T) {
		port := &mockProvisionerPort{stateFunc: func(ctx context.Context, step *model.Step) (*model.StepState, error) {
			return nil, errors.New("throttled")
		}}
		u := newTestUseCase(testPlan(), port, &mockRunRepo{})
		if _, err := u.Status(ctx, &StatusInput{PlanID: "plan-1"}); err == nil {
			t.Fatal("expected error")
		}
	})
}
