package rdb

import (
	"context"
	"errors"
	"testing"

	"github.com/fedlearn/fedops/domain/model"
)

func openTestDB(t *testing.T) *RunRepository {
	t.Helper()
	db, err := OpenFromURL("sqlite::memory:")
	if err != nil {
		t.Fatalf("OpenFromURL: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	return NewRunRepository(db)
}

func TestRunRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openTestDB(t)

	run := &model.Run{
		PlanID:        "plan-1",
		PlanName:      "fedlearning",
		ResourceGroup: "fedlearning-rg",
		Status:        model.RunStatusFailed,
		Steps: []model.StepResult{
			{Position: 0, Name: "fedlearning-rg", Kind: model.StepKindResourceGroup, Status: model.StepStatusSucceeded},
			{Position: 1, Name: "fedserver", Kind: model.StepKindVM, Status: model.StepStatusFailed, Error: "quota exceeded"},
			{Position: 2, Name: "fedsrv", Kind: model.StepKindWorkspace, Status: model.StepStatusSkipped},
		},
	}
	if err := repo.Create(ctx, run); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if run.ID == "" {
		t.Fatal("Create did not assign an ID")
	}

	got, err := repo.Get(ctx, run.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != model.RunStatusFailed {
		t.Errorf("status = %s", got.Status)
	}
	if len(got.Steps) != 3 {
		t.Fatalf("steps = %d", len(got.Steps))
	}
	if got.Steps[1].Error != "quota exceeded" {
		t.Errorf("steps[1].Error = %s", got.Steps[1].Error)
	}
	if got.Steps[2].Status != model.StepStatusSkipped {
		t.Errorf("steps[2].Status = %s", got.Steps[2].Status)
	}
}

func TestRunRepositoryNotFound(t *testing.T) {
	repo := openTestDB(t)
	if _, err := repo.Get(context.Background(), "absent"); !errors.Is(err, model.ErrRunNotFound) {
		t.Errorf("err = %v, want ErrRunNotFound", err)
	}
}
