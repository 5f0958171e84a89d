package vehiclerepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the SQLSTATE of a unique or primary key conflict.
const pgUniqueViolation = "23505"

// AggregateKind is reported to the aggregate tracker for every written vehicle.
const AggregateKind = "vehicle"

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker records aggregates written inside the current unit of work.
type aggregateTracker interface {
	TrackAggregate(kind string, id string)
}

func NewGormVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the vehicle. A taken registration is reported as
// errs.ObjectAlreadyExistsError.
func (r *GormVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	if err := v.Validate(); err != nil {
		return err
	}

	dto := fromDomain(v)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return errs.NewObjectAlreadyExistsErrorWithCause("vehicle", dto.Registration, err)
		}
		return err
	}

	r.tracker.TrackAggregate(AggregateKind, dto.Registration)
	return nil
}

// Get retrieves a vehicle by registration.
func (r *GormVehicleRepository) Get(ctx context.Context, registration vehicle.Registration) (*vehicle.Vehicle, error) {
	if err := registration.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "registration = ?", registration.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", registration.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the vehicle row; assigned jobs go with it through the
// ON DELETE CASCADE foreign key.
func (r *GormVehicleRepository) Delete(ctx context.Context, registration vehicle.Registration) error {
	if err := registration.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&VehicleDTO{}, "registration = ?", registration.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", registration.String())
	}

	r.tracker.TrackAggregate(AggregateKind, registration.String())
	return nil
}
