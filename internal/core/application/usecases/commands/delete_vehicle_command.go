package commands

import (
	"errors"

	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/guard"
)

var ErrDeleteVehicleCommandIsNotConstructed = errors.New(
	"DeleteVehicleCommand must be created via NewDeleteVehicleCommand constructor",
)

// DeleteVehicleCommand removes a vehicle together with its jobs and their addresses.
type DeleteVehicleCommand struct { //nolint:recvcheck //using for validation
	registration vehicle.Registration

	guard guard.ConstructorGuard
}

func NewDeleteVehicleCommand(registration string) (DeleteVehicleCommand, error) {
	reg, err := vehicle.NewRegistration(registration)
	if err != nil {
		return DeleteVehicleCommand{}, err
	}

	return DeleteVehicleCommand{
		registration: reg,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteVehicleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVehicleCommandIsNotConstructed)
}

func (c DeleteVehicleCommand) Registration() vehicle.Registration {
	return c.registration
}
