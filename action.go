package eventschema

import "errors"

type actionKind int

const (
	actionDeleteHard actionKind = iota + 1
	actionDeleteSoft
	actionInvalid
)

// ProcessingAction is an outcome a processor hook may return to abort the
// remainder of a traversal. Actions propagate unchanged through every
// enclosing frame; the engine never catches one partway. The driver folds the
// action back into the annotated value it processed via Annotated.Apply.
type ProcessingAction struct {
	kind   actionKind
	reason string
}

// DeleteValueHard discards the value and its metadata entirely.
var DeleteValueHard = &ProcessingAction{kind: actionDeleteHard}

// DeleteValueSoft discards the value but snapshots it into the meta's
// original-value slot for later inspection.
var DeleteValueSoft = &ProcessingAction{kind: actionDeleteSoft}

// Invalid marks the whole input as invalid. The reason should be a static
// explanatory string.
func Invalid(reason string) *ProcessingAction {
	return &ProcessingAction{kind: actionInvalid, reason: reason}
}

func (a *ProcessingAction) Error() string {
	switch a.kind {
	case actionDeleteHard:
		return "value should be hard-deleted"
	case actionDeleteSoft:
		return "value should be soft-deleted"
	default:
		return "invalid event: " + a.reason
	}
}

// IsDeleteHard reports whether the action is a hard delete.
func (a *ProcessingAction) IsDeleteHard() bool { return a.kind == actionDeleteHard }

// IsDeleteSoft reports whether the action is a soft delete.
func (a *ProcessingAction) IsDeleteSoft() bool { return a.kind == actionDeleteSoft }

// IsInvalid reports whether the action rejects the whole input.
func (a *ProcessingAction) IsInvalid() bool { return a.kind == actionInvalid }

// Reason returns the explanatory string of an Invalid action.
func (a *ProcessingAction) Reason() string { return a.reason }

// AsAction extracts a ProcessingAction from an error chain.
func AsAction(err error) (*ProcessingAction, bool) {
	if err == nil {
		return nil, false
	}
	var a *ProcessingAction
	if errors.As(err, &a) {
		return a, true
	}
	return nil, false
}
