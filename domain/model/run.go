package model

import "time"

// RunStatus is the terminal status of a sequencer run.
type RunStatus string

const (
	RunStatusSucceeded RunStatus = "succeeded"
	RunStatusFailed    RunStatus = "failed"
)

// StepStatus is the outcome of one step within a run.
type StepStatus string

const (
	StepStatusSucceeded StepStatus = "succeeded"
	StepStatusFailed    StepStatus = "failed"
	// StepStatusSkipped marks steps after the first failure; they were
	// never sent to the provider.
	StepStatusSkipped StepStatus = "skipped"
)

// Run records one execution of a plan: which steps ran, in what order,
// and where the sequence stopped.
type Run struct {
	ID            string
	PlanID        string
	PlanName      string
	ResourceGroup string
	Status        RunStatus
	Steps         []StepResult
	StartedAt     time.Time
	FinishedAt    time.Time
}

// StepResult is the per-step record within a run.
type StepResult struct {
	Position      int
	Name          string
	Kind          StepKind
	ResourceGroup string
	Status        StepStatus
	Error         string
	Elapsed       float64 // seconds
}

// FailedStep returns the result of the step that aborted the run,
// or nil when the run succeeded.
func (r *Run) FailedStep() *StepResult {
	for i := range r.Steps {
		if r.Steps[i].Status == StepStatusFailed {
			return &r.Steps[i]
		}
	}
	return nil
}
