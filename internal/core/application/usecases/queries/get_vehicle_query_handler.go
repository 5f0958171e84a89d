package queries

import (
	"context"

	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetVehicleByRegistrationQueryHandler reuses the list statement with an
// exact registration filter.
type GetVehicleByRegistrationQueryHandler struct {
	list ListVehiclesQueryHandler
}

func NewGetVehicleByRegistrationQueryHandler(db *gorm.DB) GetVehicleByRegistrationQueryHandler {
	return GetVehicleByRegistrationQueryHandler{list: NewListVehiclesQueryHandler(db)}
}

// Handle returns errs.ObjectNotFoundError for unknown registrations.
func (h GetVehicleByRegistrationQueryHandler) Handle(
	ctx context.Context,
	query GetVehicleByRegistrationQuery,
) (VehicleSummary, error) {
	if err := query.Validate(); err != nil {
		return VehicleSummary{}, err
	}

	registration := query.Registration().String()
	filter := VehicleFilter{Registration: RegistrationFilter{Exact: &registration}}

	var rows []vehicleRow
	if err := h.list.vehicles(ctx, filter).Limit(1).Scan(&rows).Error; err != nil {
		return VehicleSummary{}, err
	}
	if len(rows) == 0 {
		return VehicleSummary{}, errs.NewObjectNotFoundError("vehicle", registration)
	}

	return rows[0].toSummary(), nil
}
