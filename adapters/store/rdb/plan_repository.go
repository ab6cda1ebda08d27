package rdb

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fedlearn/fedops/domain"
	"github.com/fedlearn/fedops/domain/model"
)

type PlanRepository struct{ db *gorm.DB }

func NewPlanRepository(db *gorm.DB) *PlanRepository { return &PlanRepository{db: db} }

func planToRecord(p *model.Plan) (*PlanRecord, error) {
	steps, err := json.Marshal(p.Steps)
	if err != nil {
		return nil, err
	}
	return &PlanRecord{
		ID:            p.ID,
		Name:          p.Name,
		ProviderID:    p.ProviderID,
		ResourceGroup: p.ResourceGroup,
		Location:      p.Location,
		Steps:         string(steps),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}, nil
}

func planToModel(r *PlanRecord) (*model.Plan, error) {
	var steps []model.Step
	if r.Steps != "" {
		if err := json.Unmarshal([]byte(r.Steps), &steps); err != nil {
			return nil, err
		}
	}
	return &model.Plan{
		ID:            r.ID,
		Name:          r.Name,
		ProviderID:    r.ProviderID,
		ResourceGroup: r.ResourceGroup,
		Location:      r.Location,
		Steps:         steps,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}, nil
}

func (r *PlanRepository) Create(ctx context.Context, p *model.Plan) error {
	if p.ID == "" {
		p.ID = "plan-" + uuid.NewString()
	}
	rec, err := planToRecord(p)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *PlanRepository) Get(ctx context.Context, id string) (*model.Plan, error) {
	var rec PlanRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, model.ErrPlanNotFound
		}
		return nil, err
	}
	return planToModel(&rec)
}

func (r *PlanRepository) List(ctx context.Context) ([]*model.Plan, error) {
	var recs []PlanRecord
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*model.Plan, 0, len(recs))
	for i := range recs {
		p, err := planToModel(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PlanRepository) Update(ctx context.Context, p *model.Plan) error {
	rec, err := planToRecord(p)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&PlanRecord{}).Where("id = ?", rec.ID).Updates(rec).Error
}

func (r *PlanRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&PlanRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrPlanNotFound
	}
	return nil
}

var _ domain.PlanRepository = (*PlanRepository)(nil)
