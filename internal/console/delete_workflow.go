package console

import (
	"context"
	"fmt"
	"sync"
)

type DeletePhase int

const (
	PhaseIdle DeletePhase = iota
	PhasePendingConfirmation
	PhaseDeleting
)

func (p DeletePhase) String() string {
	switch p {
	case PhasePendingConfirmation:
		return "pending_confirmation"
	case PhaseDeleting:
		return "deleting"
	default:
		return "idle"
	}
}

// DeleteTarget names the employee awaiting deletion.
type DeleteTarget struct {
	ID   string
	Name string
}

// DeleteState is the workflow state. Err is set when the last confirmed delete failed and the
// workflow rolled back to PendingConfirmation.
type DeleteState struct {
	Phase  DeletePhase
	Target DeleteTarget
	Err    error
}

type EmployeeDeleter interface {
	DeleteEmployee(ctx context.Context, id string) error
}

// DeleteWorkflow guards employee deletion behind an explicit confirmation.
//
//	Idle -> PendingConfirmation -> Deleting -> Idle
//	                ^                  |
//	                +---- failure -----+
type DeleteWorkflow struct {
	deleter EmployeeDeleter

	mu    sync.Mutex
	state DeleteState
}

func NewDeleteWorkflow(deleter EmployeeDeleter) *DeleteWorkflow {
	return &DeleteWorkflow{deleter: deleter}
}

func (w *DeleteWorkflow) State() DeleteState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Request asks for confirmation to delete target, replacing any pending target.
func (w *DeleteWorkflow) Request(target DeleteTarget) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state.Phase == PhaseDeleting {
		return ErrDeleteInFlight
	}
	w.state = DeleteState{Phase: PhasePendingConfirmation, Target: target}
	return nil
}

// Cancel discards the pending target without any network call.
func (w *DeleteWorkflow) Cancel() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state.Phase == PhaseDeleting {
		return ErrDeleteInFlight
	}
	w.state = DeleteState{}
	return nil
}

// Escape is the escape-key dismissal.
func (w *DeleteWorkflow) Escape() error { return w.Cancel() }

// ClickOutside is the click-outside-the-dialog dismissal.
func (w *DeleteWorkflow) ClickOutside() error { return w.Cancel() }

// Confirm deletes the pending target. It blocks until the delete call returns; meanwhile the
// workflow is Deleting and further Request, Cancel and Confirm calls get ErrDeleteInFlight.
func (w *DeleteWorkflow) Confirm(ctx context.Context) error {
	w.mu.Lock()
	switch w.state.Phase {
	case PhaseIdle:
		w.mu.Unlock()
		return ErrNoPendingDelete
	case PhaseDeleting:
		w.mu.Unlock()
		return ErrDeleteInFlight
	}
	target := w.state.Target
	w.state = DeleteState{Phase: PhaseDeleting, Target: target}
	w.mu.Unlock()

	err := w.deleter.DeleteEmployee(ctx, target.ID)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.state = DeleteState{Phase: PhasePendingConfirmation, Target: target, Err: err}
		return err
	}
	w.state = DeleteState{}
	return nil
}

// Prompt is the confirmation message for the pending target, or "" when nothing is pending.
func (w *DeleteWorkflow) Prompt() string {
	st := w.State()
	if st.Phase == PhaseIdle {
		return ""
	}
	return fmt.Sprintf("Are you sure you want to delete %s? This action cannot be undone and will remove all associated data.", st.Target.Name)
}
