package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
)

// JobRepository defines the persistence contract for delivery jobs and the
// addresses they own.
type JobRepository interface {
	// Add persists a new job together with its destination address.
	Add(ctx context.Context, j *job.Job) error

	// Get retrieves a job with its destination.
	// Returns errs.ObjectNotFoundError when the job does not exist.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// Complete stores completedAt only if the job is still open. When
	// another transaction completed it first, the domain precondition
	// error naming the stored completion time is returned.
	Complete(ctx context.Context, id kernel.UUID, completedAt time.Time) error

	// AssignVehicle sets the vehicle of every listed job in one statement and
	// returns the jobs that exist. Unknown ids are skipped.
	//
	// Example:
	//   jobs, err := repo.AssignVehicle(ctx, reg, []kernel.UUID{id1, id2})
	//   if err != nil {
	//       return fmt.Errorf("bulk assignment failed: %w", err)
	//   }
	//   fmt.Printf("%d jobs now on %s\n", len(jobs), reg)
	AssignVehicle(ctx context.Context, registration vehicle.Registration, ids []kernel.UUID) ([]*job.Job, error)

	// DeleteByVehicle removes the destination addresses used only by jobs
	// assigned to the vehicle, which removes those jobs through the address
	// cascade. Returns the number of addresses removed.
	DeleteByVehicle(ctx context.Context, registration vehicle.Registration) (int64, error)
}
