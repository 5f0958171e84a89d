package http_test

import (
	"context"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/mock"
)

type MockCreateVehicleHandler struct{ mock.Mock }

func (m *MockCreateVehicleHandler) Handle(ctx context.Context, cmd commands.CreateVehicleCommand) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

type MockDeleteVehicleHandler struct{ mock.Mock }

func (m *MockDeleteVehicleHandler) Handle(ctx context.Context, cmd commands.DeleteVehicleCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockAssignVehicleToJobsHandler struct{ mock.Mock }

func (m *MockAssignVehicleToJobsHandler) Handle(
	ctx context.Context,
	cmd commands.AssignVehicleToJobsCommand,
) ([]*job.Job, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

type MockGetVehicleHandler struct{ mock.Mock }

func (m *MockGetVehicleHandler) Handle(
	ctx context.Context,
	query queries.GetVehicleByRegistrationQuery,
) (queries.VehicleSummary, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.VehicleSummary), args.Error(1)
}

type MockListVehiclesHandler struct{ mock.Mock }

func (m *MockListVehiclesHandler) Handle(
	ctx context.Context,
	query queries.ListVehiclesQuery,
) (queries.ListVehiclesResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ListVehiclesResponse), args.Error(1)
}

type MockCreateJobHandler struct{ mock.Mock }

func (m *MockCreateJobHandler) Handle(ctx context.Context, cmd commands.CreateJobCommand) (*job.Job, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

type MockMarkJobCompletedHandler struct{ mock.Mock }

func (m *MockMarkJobCompletedHandler) Handle(ctx context.Context, cmd commands.MarkJobCompletedCommand) (*job.Job, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

type MockGetJobHandler struct{ mock.Mock }

func (m *MockGetJobHandler) Handle(ctx context.Context, query queries.GetJobQuery) (*job.Job, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

type MockListJobsHandler struct{ mock.Mock }

func (m *MockListJobsHandler) Handle(ctx context.Context, query queries.ListJobsQuery) (queries.ListJobsResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ListJobsResponse), args.Error(1)
}
