package commands_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, registration vehicle.Registration) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, registration)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, registration vehicle.Registration) error {
	args := m.Called(ctx, registration)
	return args.Error(0)
}

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) Complete(ctx context.Context, id kernel.UUID, completedAt time.Time) error {
	args := m.Called(ctx, id, completedAt)
	return args.Error(0)
}

func (m *MockJobRepository) AssignVehicle(
	ctx context.Context,
	registration vehicle.Registration,
	ids []kernel.UUID,
) ([]*job.Job, error) {
	args := m.Called(ctx, registration, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) DeleteByVehicle(ctx context.Context, registration vehicle.Registration) (int64, error) {
	args := m.Called(ctx, registration)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies UoW, VehicleUoW and JobUoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockVehicleUoWFactory struct{ mock.Mock }

func (m *MockVehicleUoWFactory) Create() commands.VehicleUoW {
	args := m.Called()
	return args.Get(0).(commands.VehicleUoW)
}

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

func testAddressFields() job.AddressFields {
	return job.AddressFields{
		Recipient:     "Jane Doe",
		StreetAddress: "1901 W Madison St",
		City:          "Phoenix",
		State:         "AZ",
		ZipCode:       "85009",
	}
}

func testSlot() (time.Time, time.Time) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return start, start.Add(2 * time.Hour)
}

func newTestJob(t *testing.T, registration string) *job.Job {
	t.Helper()

	addr, err := job.NewAddress(kernel.NewUUID(), testAddressFields())
	require.NoError(t, err)

	start, end := testSlot()
	slot, err := kernel.NewDeliverySlot(start, end)
	require.NoError(t, err)

	j, err := job.NewJob(
		kernel.NewUUID(),
		addr,
		kernel.NewMoney(decimal.RequireFromString("120.00")),
		kernel.NewMoney(decimal.RequireFromString("35.10")),
		slot,
		start.Add(-time.Hour),
	)
	require.NoError(t, err)

	if registration != "" {
		require.NoError(t, j.AssignVehicle(mustRegistration(t, registration)))
	}
	return j
}

func mustRegistration(t *testing.T, value string) vehicle.Registration {
	t.Helper()
	reg, err := vehicle.NewRegistration(value)
	require.NoError(t, err)
	return reg
}

func mustVehicle(t *testing.T, value string) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(mustRegistration(t, value))
	require.NoError(t, err)
	return v
}
