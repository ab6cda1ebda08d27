package rdb

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fedlearn/fedops/domain"
	"github.com/fedlearn/fedops/domain/model"
)

type RunRepository struct{ db *gorm.DB }

func NewRunRepository(db *gorm.DB) *RunRepository { return &RunRepository{db: db} }

func runToRecord(run *model.Run) (*RunRecord, error) {
	steps, err := json.Marshal(run.Steps)
	if err != nil {
		return nil, err
	}
	return &RunRecord{
		ID:            run.ID,
		PlanID:        run.PlanID,
		PlanName:      run.PlanName,
		ResourceGroup: run.ResourceGroup,
		Status:        string(run.Status),
		Steps:         string(steps),
		StartedAt:     run.StartedAt,
		FinishedAt:    run.FinishedAt,
	}, nil
}

func runToModel(r *RunRecord) (*model.Run, error) {
	var steps []model.StepResult
	if r.Steps != "" {
		if err := json.Unmarshal([]byte(r.Steps), &steps); err != nil {
			return nil, err
		}
	}
	return &model.Run{
		ID:            r.ID,
		PlanID:        r.PlanID,
		PlanName:      r.PlanName,
		ResourceGroup: r.ResourceGroup,
		Status:        model.RunStatus(r.Status),
		Steps:         steps,
		StartedAt:     r.StartedAt,
		FinishedAt:    r.FinishedAt,
	}, nil
}

func (r *RunRepository) Create(ctx context.Context, run *model.Run) error {
	if run.ID == "" {
		run.ID = "run-" + uuid.NewString()
	}
	rec, err := runToRecord(run)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *RunRepository) Get(ctx context.Context, id string) (*model.Run, error) {
	var rec RunRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, model.ErrRunNotFound
		}
		return nil, err
	}
	return runToModel(&rec)
}

func (r *RunRepository) List(ctx context.Context) ([]*model.Run, error) {
	var recs []RunRecord
	if err := r.db.WithContext(ctx).Order("started_at ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*model.Run, 0, len(recs))
	for i := range recs {
		run, err := runToModel(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, nil
}

var _ domain.RunRepository = (*RunRepository)(nil)
