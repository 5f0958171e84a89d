package job

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the completion state of a job. It is derived from the vehicle
// reference and the completion timestamp and is never stored.
//
//	Unassigned ──> Assigned ──> Completed
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Unassigned
	Assigned
	Completed
)

// StatusOf derives the status from the persisted facts.
func StatusOf(hasVehicle, completed bool) Status {
	switch {
	case completed:
		return Completed
	case hasVehicle:
		return Assigned
	default:
		return Unassigned
	}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Unassigned: "unassigned",
		Assigned:   "assigned",
		Completed:  "completed",
	}
}

// Validate rejects Unknown and out of range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Completed {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further completion transition exists.
func (s Status) IsTerminal() bool {
	return s == Completed
}
