package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/job"
	"logistics/internal/pkg/errs"
)

// CreateJobCommandHandler creates a job and its destination address in one
// transaction. When a vehicle is named it must exist.
//
// Example:
//
//	handler := NewCreateJobCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrVehicleNotFound) {
//	    // registration was not registered
//	}
type CreateJobCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

func NewCreateJobCommandHandler(uowFactory UoWFactory) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle stamps created_at in UTC and returns the persisted job.
func (h CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) (*job.Job, error) {
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

	if reg := cmd.Vehicle(); reg != nil {
		if _, err := uow.VehicleRepository().Get(ctx, *reg); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return nil, fmt.Errorf("%w: %w", ErrVehicleNotFound, err)
			}
			return nil, err
		}
	}

	j, err := job.NewJob(
		cmd.JobID(),
		cmd.Destination(),
		cmd.Income(),
		cmd.Cost(),
		cmd.Slot(),
		h.now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if reg := cmd.Vehicle(); reg != nil {
		if err = j.AssignVehicle(*reg); err != nil {
			return nil, err
		}
	}

	if err = uow.JobRepository().Add(ctx, j); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return j, nil
}
