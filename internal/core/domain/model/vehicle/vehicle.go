package vehicle

import "errors"

var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Vehicle is the aggregate root for a registered vehicle.
//
// Example:
//
//	reg, err := vehicle.NewRegistration("ABC123")
//	if err != nil {
//	    return err
//	}
//	v, err := vehicle.NewVehicle(reg)
type Vehicle struct {
	registration  Registration
	isConstructed bool
}

// NewVehicle builds a vehicle from a validated registration.
// It is also used to rebuild vehicles loaded from storage.
func NewVehicle(registration Registration) (*Vehicle, error) {
	if err := registration.Validate(); err != nil {
		return nil, err
	}

	return &Vehicle{
		registration:  registration,
		isConstructed: true,
	}, nil
}

// Validate ensures the vehicle was created through NewVehicle.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

func (v *Vehicle) Registration() Registration {
	return v.registration
}

// IsEqual compares vehicles by registration.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.registration.IsEqual(other.registration)
}
