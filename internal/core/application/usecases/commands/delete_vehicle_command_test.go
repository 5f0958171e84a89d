package commands_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteVehicleCommand(t *testing.T) {
	cmd, err := commands.NewDeleteVehicleCommand("ABC123")
	require.NoError(t, err)
	assert.Equal(t, "ABC123", cmd.Registration().String())

	_, err = commands.NewDeleteVehicleCommand("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestDeleteVehicleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteVehicleCommand("ABC123")
	require.NoError(t, err)
	reg := cmd.Registration()

	vehicleRepo := new(MockVehicleRepository)
	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		vehicleRepo.On("Get", ctx, reg).Return(mustVehicle(t, "ABC123"), nil).Once(),
		jobRepo.On("DeleteByVehicle", ctx, reg).Return(int64(3), nil).Once(),
		vehicleRepo.On("Delete", ctx, reg).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewDeleteVehicleCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	vehicleRepo.AssertExpectations(t)
	jobRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteVehicleCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteVehicleCommand("NOPE")
	require.NoError(t, err)
	reg := cmd.Registration()

	vehicleRepo := new(MockVehicleRepository)
	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		vehicleRepo.On("Get", ctx, reg).Return(nil, errs.NewObjectNotFoundError("vehicle", "NOPE")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewDeleteVehicleCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	jobRepo.AssertNotCalled(t, "DeleteByVehicle", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestDeleteVehicleCommandHandler_Handle_DeleteJobsError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteVehicleCommand("ABC123")
	require.NoError(t, err)
	reg := cmd.Registration()

	vehicleRepo := new(MockVehicleRepository)
	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		vehicleRepo.On("Get", ctx, reg).Return(mustVehicle(t, "ABC123"), nil).Once(),
		jobRepo.On("DeleteByVehicle", ctx, reg).Return(int64(0), errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewDeleteVehicleCommandHandler(factory)

	require.EqualError(t, handler.Handle(ctx, cmd), "database error")
	vehicleRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
