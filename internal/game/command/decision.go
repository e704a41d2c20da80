package command

import (
	"github.com/louisbranch/rpgsim/internal/game/event"
	apperrors "github.com/louisbranch/rpgsim/internal/platform/errors"
)

// Decision represents the pure outcome of handling a command.
type Decision struct {
	Events     []event.Event
	Rejections []Rejection
}

// Accepted reports whether the decision carries no rejections.
func (d Decision) Accepted() bool {
	return len(d.Rejections) == 0
}

// Rejection captures a domain-level reason a command was declined.
type Rejection struct {
	Code     apperrors.Code
	Message  string
	Metadata map[string]string
}

// Accept returns a decision that emits the provided events.
func Accept(events ...event.Event) Decision {
	return Decision{Events: append([]event.Event(nil), events...)}
}

// Reject returns a decision that carries the provided rejections.
func Reject(rejections ...Rejection) Decision {
	return Decision{Rejections: append([]Rejection(nil), rejections...)}
}

// RejectionFromError converts err into a rejection, keeping the code and
// metadata of domain errors.
func RejectionFromError(err error) Rejection {
	return Rejection{
		Code:     apperrors.GetCode(err),
		Message:  err.Error(),
		Metadata: apperrors.GetMetadata(err),
	}
}
