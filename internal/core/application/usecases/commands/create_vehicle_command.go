package commands

import (
	"errors"

	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/guard"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand represents a request to register a new vehicle.
//
// Example:
//
//	cmd, err := NewCreateVehicleCommand("ABC123")
//	if err != nil {
//	    return fmt.Errorf("invalid vehicle data: %w", err)
//	}
//	v, err := handler.Handle(ctx, cmd)
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	registration vehicle.Registration

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand validates the registration.
func NewCreateVehicleCommand(registration string) (CreateVehicleCommand, error) {
	cmd := CreateVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRegistration(registration); err != nil {
		return CreateVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

func (c CreateVehicleCommand) Registration() vehicle.Registration {
	return c.registration
}

func (c *CreateVehicleCommand) setRegistration(value string) error {
	registration, err := vehicle.NewRegistration(value)
	if err != nil {
		return err
	}

	c.registration = registration
	return nil
}
