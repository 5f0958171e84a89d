package commands

import (
	"context"
)

// DeleteVehicleCommandHandler removes a vehicle in a single transaction.
// The addresses owned by the vehicle's jobs are deleted first, which removes
// the jobs through the address cascade, and then the vehicle row itself.
//
// Example:
//
//	cmd, _ := NewDeleteVehicleCommand("ABC123")
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // nothing to delete
//	}
type DeleteVehicleCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteVehicleCommandHandler(uowFactory UoWFactory) DeleteVehicleCommandHandler {
	return DeleteVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the repository NotFound error when the vehicle is unknown.
func (h DeleteVehicleCommandHandler) Handle(ctx context.Context, cmd DeleteVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()
	jobRepo := uow.JobRepository()

	if _, err := vehicleRepo.Get(ctx, cmd.Registration()); err != nil {
		return err
	}

	if _, err := jobRepo.DeleteByVehicle(ctx, cmd.Registration()); err != nil {
		return err
	}

	if err := vehicleRepo.Delete(ctx, cmd.Registration()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
