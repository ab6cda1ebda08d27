package run

import (
	"context"
	"fmt"
	"time"

	"github.com/fedlearn/fedops/domain/model"
	"github.com/fedlearn/fedops/internal/logging"
)

// ApplyInput represents a command to execute a plan.
type ApplyInput struct {
	// PlanID identifies the plan to execute.
	PlanID string `json:"plan_id"`
	// ResourceGroup overrides the plan's default resource group when set.
	ResourceGroup string `json:"resource_group,omitempty"`
}

// ApplyOutput wraps the recorded run.
type ApplyOutput struct {
	Run *model.Run `json:"run"`
}

// Apply executes the plan's steps in listed order, fail-fast: the first
// step failure aborts the sequence, the remaining steps are recorded as
// skipped, and no step is retried or rolled back. Whether a re-run after
// partial failure converges depends entirely on the provider's create
// semantics. The run record is persisted either way.
func (u *UseCase) Apply(ctx context.Context, in *ApplyInput) (*ApplyOutput, error) {
	if in == nil || in.PlanID == "" {
		return nil, model.ErrPlanInvalid
	}

	p, err := u.Repos.Plan.Get(ctx, in.PlanID)
	if err != nil {
		return nil, err
	}
	p.Retarget(in.ResourceGroup)
	steps := p.EffectiveSteps()

	logger := logging.FromContext(ctx).With("plan", p.Name, "resourceGroup", p.ResourceGroup)
	run := &model.Run{
		PlanID:        p.ID,
		PlanName:      p.Name,
		ResourceGroup: p.ResourceGroup,
		Status:        model.RunStatusSucceeded,
		Steps:         make([]model.StepResult, 0, len(steps)),
		StartedAt:     time.Now().UTC(),
	}

	var failed error
	for i := range steps {
		step := steps[i]
		result := model.StepResult{
			Position:      i,
			Name:          step.Name,
			Kind:          step.Kind,
			ResourceGroup: step.ResourceGroup,
		}
		if failed != nil {
			result.Status = model.StepStatusSkipped
			run.Steps = append(run.Steps, result)
			continue
		}

		logger.Info(ctx, "RUN:step/S", "position", i, "kind", string(step.Kind), "name", step.Name)
		startAt := time.Now()
		err := u.ProvisionerPort.ApplyStep(ctx, &step)
		result.Elapsed = time.Since(startAt).Seconds()
		if err != nil {
			result.Status = model.StepStatusFailed
			result.Error = err.Error()
			failed = fmt.Errorf("step %d (%s %s): %w", i, step.Kind, step.Name, err)
			logger.Info(ctx, "RUN:step/EFAIL", "position", i, "kind", string(step.Kind), "name", step.Name, "err", err.Error(), "elapsed", result.Elapsed)
		} else {
			result.Status = model.StepStatusSucceeded
			logger.Info(ctx, "RUN:step/EOK", "position", i, "kind", string(step.Kind), "name", step.Name, "elapsed", result.Elapsed)
		}
		run.Steps = append(run.Steps, result)
	}

	run.FinishedAt = time.Now().UTC()
	if failed != nil {
		run.Status = model.RunStatusFailed
	}

	// History persistence is best-effort; a failed write must not mask the
	// outcome of the provisioning sequence.
	if u.Repos.Run != nil {
		if err := u.Repos.Run.Create(ctx, run); err != nil {
			logger.Warn(ctx, "failed to record run history", "err", err.Error())
		}
	}

	return &ApplyOutput{Run: run}, failed
}
