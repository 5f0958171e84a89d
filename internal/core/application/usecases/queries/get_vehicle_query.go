package queries

import (
	"errors"

	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/guard"
)

var ErrGetVehicleByRegistrationQueryIsNotConstructed = errors.New(
	"GetVehicleByRegistrationQuery must be created via NewGetVehicleByRegistrationQuery constructor",
)

// GetVehicleByRegistrationQuery looks up one vehicle and its job totals.
type GetVehicleByRegistrationQuery struct {
	registration vehicle.Registration

	guard guard.ConstructorGuard
}

func NewGetVehicleByRegistrationQuery(registration string) (GetVehicleByRegistrationQuery, error) {
	reg, err := vehicle.NewRegistration(registration)
	if err != nil {
		return GetVehicleByRegistrationQuery{}, err
	}
	return GetVehicleByRegistrationQuery{registration: reg, guard: guard.NewConstructorGuard()}, nil
}

func (q GetVehicleByRegistrationQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleByRegistrationQueryIsNotConstructed)
}

func (q GetVehicleByRegistrationQuery) Registration() vehicle.Registration {
	return q.registration
}
