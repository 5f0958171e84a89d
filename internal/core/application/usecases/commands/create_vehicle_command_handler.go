package commands

import (
	"context"

	"logistics/internal/core/domain/model/vehicle"
)

// CreateVehicleCommandHandler registers vehicles.
// A taken registration surfaces as errs.ObjectAlreadyExistsError from the repository.
type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

func NewCreateVehicleCommandHandler(uowFactory VehicleUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the vehicle and returns it.
func (h CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) (*vehicle.Vehicle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	v, err := vehicle.NewVehicle(cmd.Registration())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VehicleRepository().Add(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return v, nil
}
