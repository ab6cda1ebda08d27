package inmem

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fedlearn/fedops/domain"
	"github.com/fedlearn/fedops/domain/model"
)

// PlanRepository is a thread-safe in-memory implementation.
type PlanRepository struct {
	mu    sync.RWMutex
	items map[string]*model.Plan
	seq   int64
}

func NewPlanRepository() *PlanRepository {
	return &PlanRepository{items: make(map[string]*model.Plan)}
}

func (r *PlanRepository) nextID() string {
	r.seq++
	return fmt.Sprintf("plan-%d-%d", time.Now().UnixNano(), r.seq)
}

func copyPlan(p *model.Plan) *model.Plan {
	cp := *p
	cp.Steps = make([]model.Step, len(p.Steps))
	copy(cp.Steps, p.Steps)
	return &cp
}

func (r *PlanRepository) Create(_ context.Context, p *model.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = r.nextID()
	}
	r.items[p.ID] = copyPlan(p)
	return nil
}

func (r *PlanRepository) Get(_ context.Context, id string) (*model.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[id]
	if !ok {
		return nil, model.ErrPlanNotFound
	}
	return copyPlan(v), nil
}

func (r *PlanRepository) List(_ context.Context) ([]*model.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Plan, 0, len(r.items))
	for _, v := range r.items {
		out = append(out, copyPlan(v))
	}
	return out, nil
}

func (r *PlanRepository) Update(_ context.Context, p *model.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; !ok {
		return model.ErrPlanNotFound
	}
	r.items[p.ID] = copyPlan(p)
	return nil
}

func (r *PlanRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return model.ErrPlanNotFound
	}
	delete(r.items, id)
	return nil
}

var _ domain.PlanRepository = (*PlanRepository)(nil)
