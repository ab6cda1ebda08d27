package inmem

import (
	"context"
	"errors"
	"testing"

	"github.com/fedlearn/fedops/config/fedopscfg"
	"github.com/fedlearn/fedops/domain/model"
)

func TestLoadFromConfig(t *testing.T) {
	ctx := context.Background()
	cfg, err := fedopscfg.Parse([]byte(`
version: v1
provider:
  name: azure-test
  driver: azure
plan:
  name: fedlearning
  resource_group: fedlearning-rg
  steps:
    - name: fedlearning-rg
      kind: resource_group
    - name: fedsrv
      kind: workspace
`))
	if err != nil {
		t.Fatal(err)
	}

	s := NewStore()
	if err := s.LoadFromConfig(ctx, cfg); err != nil {
		t.Fatalf("LoadFromConfig: %v", err)
	}
	if s.ProviderID == "" || s.PlanID == "" {
		t.Fatal("loaded IDs not recorded")
	}

	p, err := s.PlanRepository.Get(ctx, s.PlanID)
	if err != nil {
		t.Fatalf("Get plan: %v", err)
	}
	if p.ProviderID != s.ProviderID {
		t.Error("plan does not reference loaded provider")
	}
	if len(p.Steps) != 2 {
		t.Errorf("steps = %d, want 2", len(p.Steps))
	}
}

func TestPlanRepositoryCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewPlanRepository()
	p := &model.Plan{Name: "x", Steps: []model.Step{{Name: "a", Kind: model.StepKindWorkspace}}}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Get(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	got.Steps[0].Name = "mutated"

	again, err := repo.Get(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if again.Steps[0].Name != "a" {
		t.Error("repository returned shared step slice")
	}
}

func TestRunRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRunRepository()

	if _, err := repo.Get(ctx, "absent"); !errors.Is(err, model.ErrRunNotFound) {
		t.Errorf("Get(absent) = %v, want ErrRunNotFound", err)
	}

	r := &model.Run{PlanID: "plan-1", Status: model.RunStatusSucceeded}
	if err := repo.Create(ctx, r); err != nil {
		t.Fatal(err)
	}
	if r.ID == "" {
		t.Fatal("Create did not assign an ID")
	}

	runs, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].PlanID != "plan-1" {
		t.Errorf("List = %+v", runs)
	}
}
