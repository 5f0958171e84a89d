// Package ports defines repository interfaces for the vehicle and delivery
// job aggregates. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicles.
type VehicleRepository interface {
	// Add persists a new vehicle.
	// Returns errs.ObjectAlreadyExistsError when the registration is taken.
	Add(ctx context.Context, v *vehicle.Vehicle) error

	// Get retrieves a vehicle by registration.
	// Returns errs.ObjectNotFoundError when no vehicle has that registration.
	Get(ctx context.Context, registration vehicle.Registration) (*vehicle.Vehicle, error)

	// Delete removes the vehicle. Jobs referencing it are removed by the
	// storage cascade. Returns errs.ObjectNotFoundError when nothing was deleted.
	Delete(ctx context.Context, registration vehicle.Registration) error
}
