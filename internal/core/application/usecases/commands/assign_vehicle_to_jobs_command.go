package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/guard"
)

var ErrAssignVehicleToJobsCommandIsNotConstructed = errors.New(
	"AssignVehicleToJobsCommand must be created via NewAssignVehicleToJobsCommand constructor",
)

// AssignVehicleToJobsCommand puts a vehicle on a set of jobs.
// Duplicate job ids are collapsed; an empty set is allowed and assigns nothing.
//
// Example:
//
//	cmd, err := NewAssignVehicleToJobsCommand("ABC123", []kernel.UUID{id1, id2})
//	if err != nil {
//	    return err
//	}
//	jobs, err := handler.Handle(ctx, cmd)
type AssignVehicleToJobsCommand struct { //nolint:recvcheck //using for validation
	registration vehicle.Registration
	jobIDs       []kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignVehicleToJobsCommand(registration string, jobIDs []kernel.UUID) (AssignVehicleToJobsCommand, error) {
	cmd := AssignVehicleToJobsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRegistration(registration),
		cmd.setJobIDs(jobIDs),
	); err != nil {
		return AssignVehicleToJobsCommand{}, err
	}

	return cmd, nil
}

func (c AssignVehicleToJobsCommand) Validate() error {
	return c.guard.Validate(ErrAssignVehicleToJobsCommandIsNotConstructed)
}

func (c AssignVehicleToJobsCommand) Registration() vehicle.Registration {
	return c.registration
}

func (c AssignVehicleToJobsCommand) JobIDs() []kernel.UUID {
	return c.jobIDs
}

func (c *AssignVehicleToJobsCommand) setRegistration(value string) error {
	registration, err := vehicle.NewRegistration(value)
	if err != nil {
		return err
	}

	c.registration = registration
	return nil
}

func (c *AssignVehicleToJobsCommand) setJobIDs(jobIDs []kernel.UUID) error {
	seen := make(map[string]struct{}, len(jobIDs))
	ids := make([]kernel.UUID, 0, len(jobIDs))

	for _, id := range jobIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, ok := seen[id.String()]; ok {
			continue
		}
		seen[id.String()] = struct{}{}
		ids = append(ids, id)
	}

	c.jobIDs = ids
	return nil
}
