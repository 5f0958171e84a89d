// Package vehiclerepo maps the vehicle aggregate to the vehicles table and
// implements ports.VehicleRepository on top of GORM.
package vehiclerepo

import (
	"logistics/internal/core/domain/model/vehicle"
)

// VehicleDTO is the vehicles row. The registration is the primary key and
// is compared case-sensitively.
type VehicleDTO struct {
	Registration string `gorm:"type:varchar(10);primaryKey"`
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{Registration: v.Registration().String()}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	registration, err := vehicle.NewRegistration(dto.Registration)
	if err != nil {
		return nil, err
	}
	return vehicle.NewVehicle(registration)
}
