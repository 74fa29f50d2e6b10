package event

import "sendtocal/internal/domain/entity"

// Phase is the position of a session in the extraction lifecycle.
type Phase int

const (
	// PhaseIdle means no extraction has run or the session was reset.
	PhaseIdle Phase = iota
	// PhaseBusy means an extraction call is in flight.
	PhaseBusy
	// PhaseReady means the last extraction succeeded and a draft is held.
	PhaseReady
	// PhaseFailed means the last extraction failed.
	PhaseFailed
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseBusy:
		return "busy"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Session is the immutable caller-side state around the extraction flow.
// At most one extraction is permitted in flight; the Busy phase is the
// gate. The zero value is a valid idle session.
type Session struct {
	Phase Phase

	// Draft holds the last successfully extracted record, editable by
	// the caller until the next Submit or Reset.
	Draft entity.Event

	// Err carries the failure of the last extraction while in PhaseFailed.
	Err error
}

// Action is a transition request applied to a Session by Apply.
type Action interface{ isAction() }

// Submit marks an extraction as started. Ignored unless the session is
// idle, ready, or failed.
type Submit struct{}

// Succeed records a completed extraction with its resulting draft.
type Succeed struct{ Event entity.Event }

// Fail records a failed extraction.
type Fail struct{ Err error }

// Edit replaces the held draft with a caller-edited copy. Ignored while
// an extraction is in flight.
type Edit struct{ Event entity.Event }

// Reset discards the draft and any error, returning to idle.
type Reset struct{}

func (Submit) isAction()  {}
func (Succeed) isAction() {}
func (Fail) isAction()    {}
func (Edit) isAction()    {}
func (Reset) isAction()   {}

// Apply returns the session that results from applying the action.
// Transitions that do not make sense for the current phase return the
// session unchanged; there is no error path.
func Apply(s Session, a Action) Session {
	switch a := a.(type) {
	case Submit:
		if s.Phase == PhaseBusy {
			return s
		}
		return Session{Phase: PhaseBusy, Draft: s.Draft}
	case Succeed:
		if s.Phase != PhaseBusy {
			return s
		}
		return Session{Phase: PhaseReady, Draft: a.Event}
	case Fail:
		if s.Phase != PhaseBusy {
			return s
		}
		return Session{Phase: PhaseFailed, Draft: s.Draft, Err: a.Err}
	case Edit:
		if s.Phase == PhaseBusy {
			return s
		}
		return Session{Phase: PhaseReady, Draft: a.Event}
	case Reset:
		return Session{}
	default:
		return s
	}
}
