package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrMarkJobCompletedCommandIsNotConstructed = errors.New(
	"MarkJobCompletedCommand must be created via NewMarkJobCompletedCommand constructor",
)

// MarkJobCompletedCommand records the completion time of a job.
// The time is kept as given; callers are expected to send UTC.
type MarkJobCompletedCommand struct { //nolint:recvcheck //using for validation
	jobID       kernel.UUID
	completedAt time.Time

	guard guard.ConstructorGuard
}

func NewMarkJobCompletedCommand(jobID kernel.UUID, completedAt time.Time) (MarkJobCompletedCommand, error) {
	var completedAtErr error
	if completedAt.IsZero() {
		completedAtErr = errs.NewValueIsRequiredError("completed_at")
	}

	if err := errors.Join(jobID.Validate(), completedAtErr); err != nil {
		return MarkJobCompletedCommand{}, err
	}

	return MarkJobCompletedCommand{
		jobID:       jobID,
		completedAt: completedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c MarkJobCompletedCommand) Validate() error {
	return c.guard.Validate(ErrMarkJobCompletedCommandIsNotConstructed)
}

func (c MarkJobCompletedCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c MarkJobCompletedCommand) CompletedAt() time.Time {
	return c.completedAt
}
