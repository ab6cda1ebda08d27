package inmem

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/fedlearn/fedops/domain"
	"github.com/fedlearn/fedops/domain/model"
)

// RunRepository is a thread-safe in-memory implementation. Runs persisted
// here do not survive the process; use the rdb store for durable history.
type RunRepository struct {
	mu    sync.RWMutex
	items map[string]*model.Run
	seq   int64
}

func NewRunRepository() *RunRepository {
	return &RunRepository{items: make(map[string]*model.Run)}
}

func (r *RunRepository) nextID() string {
	r.seq++
	return fmt.Sprintf("run-%d-%d", time.Now().UnixNano(), r.seq)
}

func copyRun(run *model.Run) *model.Run {
	cp := *run
	cp.Steps = make([]model.StepResult, len(run.Steps))
	copy(cp.Steps, run.Steps)
	return &cp
}

func (r *RunRepository) Create(_ context.Context, run *model.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if run.ID == "" {
		run.ID = r.nextID()
	}
	r.items[run.ID] = copyRun(run)
	return nil
}

func (r *RunRepository) Get(_ context.Context, id string) (*model.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[id]
	if !ok {
		return nil, model.ErrRunNotFound
	}
	return copyRun(v), nil
}

func (r *RunRepository) List(_ context.Context) ([]*model.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Run, 0, len(r.items))
	for _, v := range r.items {
		out = append(out, copyRun(v))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.Before(out[j].StartedAt) })
	return out, nil
}

var _ domain.RunRepository = (*RunRepository)(nil)
