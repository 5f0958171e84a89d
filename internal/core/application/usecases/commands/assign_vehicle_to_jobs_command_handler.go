package commands

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/job"
	"logistics/internal/pkg/errs"
)

// AssignVehicleToJobsCommandHandler assigns a vehicle to many jobs at once.
// The vehicle is checked first, then a single bulk update runs inside the
// transaction. Jobs that are already assigned or completed are reassigned.
type AssignVehicleToJobsCommandHandler struct {
	uowFactory UoWFactory
}

func NewAssignVehicleToJobsCommandHandler(uowFactory UoWFactory) AssignVehicleToJobsCommandHandler {
	return AssignVehicleToJobsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns exactly the jobs that matched the given ids.
// An unknown vehicle fails with ErrVehicleNotFound.
func (h AssignVehicleToJobsCommandHandler) Handle(ctx context.Context, cmd AssignVehicleToJobsCommand) ([]*job.Job, error) {
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

	if _, err := uow.VehicleRepository().Get(ctx, cmd.Registration()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrVehicleNotFound, err)
		}
		return nil, err
	}

	if len(cmd.JobIDs()) == 0 {
		if err := uow.Commit(ctx); err != nil {
			return nil, err
		}
		return []*job.Job{}, nil
	}

	jobs, err := uow.JobRepository().AssignVehicle(ctx, cmd.Registration(), cmd.JobIDs())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return jobs, nil
}
