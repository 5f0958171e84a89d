package jobrepo

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AggregateKind is reported to the aggregate tracker for every written job.
const AggregateKind = "delivery_job"

// GormJobRepository implements JobRepository using GORM.
type GormJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker records aggregates written inside the current unit of work.
type aggregateTracker interface {
	TrackAggregate(kind string, id string)
}

func NewGormJobRepository(db *gorm.DB, tracker aggregateTracker) *GormJobRepository {
	return &GormJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the destination address and then the job row.
func (r *GormJobRepository) Add(ctx context.Context, j *job.Job) error {
	if err := j.Validate(); err != nil {
		return err
	}

	dto := fromDomain(j)
	db := r.db.WithContext(ctx)

	if err := db.Create(&dto.Destination).Error; err != nil {
		return err
	}
	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(AggregateKind, j.ID().String())
	return nil
}

// Get retrieves a job with its destination.
func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate locks the job row with SELECT ... FOR UPDATE.
func (r *GormJobRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	return r.get(ctx, id, true)
}

// Complete is a compare-and-set on completed_at. When no open row matched,
// the stored job decides the error: already completed, no vehicle or gone.
func (r *GormJobRepository) Complete(ctx context.Context, id kernel.UUID, completedAt time.Time) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&JobDTO{}).
		Where("id = ? AND completed_at IS NULL AND vehicle_registration IS NOT NULL", id.Bytes()).
		Update("completed_at", completedAt)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		stored, err := r.Get(ctx, id)
		if err != nil {
			return err
		}
		if err = stored.Complete(completedAt); err != nil {
			return err
		}
		return errs.NewPreconditionFailedError("job changed while being marked as completed")
	}

	r.tracker.TrackAggregate(AggregateKind, id.String())
	return nil
}

// AssignVehicle runs one UPDATE ... WHERE id IN (...) and reads the matched
// jobs back ordered by creation time.
func (r *GormJobRepository) AssignVehicle(
	ctx context.Context,
	registration vehicle.Registration,
	ids []kernel.UUID,
) ([]*job.Job, error) {
	if err := registration.Validate(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*job.Job{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	db := r.db.WithContext(ctx)
	if err := db.Model(&JobDTO{}).
		Where("id IN ?", raw).
		Update("vehicle_registration", registration.String()).Error; err != nil {
		return nil, err
	}

	var dtos []JobDTO
	if err := db.Preload("Destination").
		Where("id IN ?", raw).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	jobs := make([]*job.Job, 0, len(dtos))
	for _, dto := range dtos {
		j, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
		r.tracker.TrackAggregate(AggregateKind, j.ID().String())
	}

	return jobs, nil
}

// DeleteByVehicle deletes the addresses referenced only by the vehicle's
// jobs. Their jobs follow through the destination foreign key cascade; jobs
// on a shared address are left to the vehicle cascade.
func (r *GormJobRepository) DeleteByVehicle(ctx context.Context, registration vehicle.Registration) (int64, error) {
	if err := registration.Validate(); err != nil {
		return 0, err
	}

	db := r.db.WithContext(ctx)
	owned := db.Session(&gorm.Session{NewDB: true}).
		Model(&JobDTO{}).
		Select("destination_id").
		Where("vehicle_registration = ?", registration.String())
	shared := db.Session(&gorm.Session{NewDB: true}).
		Model(&JobDTO{}).
		Select("destination_id").
		Where("vehicle_registration IS NULL OR vehicle_registration <> ?", registration.String())

	result := db.Where("id IN (?)", owned).
		Where("id NOT IN (?)", shared).
		Delete(&AddressDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *GormJobRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	query := db
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto JobDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	if err := db.First(&dto.Destination, "id = ?", dto.DestinationID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}
