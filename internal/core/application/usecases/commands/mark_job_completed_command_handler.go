package commands

import (
	"context"

	"logistics/internal/core/domain/model/job"
)

// MarkJobCompletedCommandHandler completes a job.
//
// The row is locked while the domain rules run and the write is a
// compare-and-set on completed_at, so of two concurrent completions exactly
// one succeeds and the other gets the "already been marked as completed" error.
//
// Errors:
//   - errs.ObjectNotFoundError when the job does not exist
//   - job.ErrNoVehicleAssigned when the job has no vehicle
//   - errs.PreconditionFailedError when the job was completed before
type MarkJobCompletedCommandHandler struct {
	uowFactory JobUoWFactory
}

func NewMarkJobCompletedCommandHandler(uowFactory JobUoWFactory) MarkJobCompletedCommandHandler {
	return MarkJobCompletedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the job as stored after completion.
func (h MarkJobCompletedCommandHandler) Handle(ctx context.Context, cmd MarkJobCompletedCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()

	j, err := jobRepo.GetForUpdate(ctx, cmd.JobID())
	if err != nil {
		return nil, err
	}

	if err = j.Complete(cmd.CompletedAt()); err != nil {
		return nil, err
	}

	if err = jobRepo.Complete(ctx, j.ID(), cmd.CompletedAt()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return j, nil
}
