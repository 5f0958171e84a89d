// Package postgres provides the GORM based Unit of Work and schema migration.
//
// Each unit of work owns at most one transaction. Repositories handed out by
// the unit of work run inside that transaction once Begin was called, and
// record every aggregate they write. After a successful Commit the recorded
// aggregate kinds are reported to an optional CommitObserver.
//
// Basic Transaction Management:
//
//	factory := NewGormUnitOfWorkFactory(db, nil)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.JobRepository().Add(ctx, j); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Completion relies on a row lock plus a conditional update
package postgres

import (
	"context"

	"logistics/internal/adapters/out/postgres/jobrepo"
	"logistics/internal/adapters/out/postgres/vehiclerepo"
	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

// CommitObserver is notified with the kinds of all aggregates written by a
// committed unit of work, one entry per write.
type CommitObserver interface {
	ObserveCommit(kinds []string)
}

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	Kind string
	ID   string
}

var _ ports.UnitOfWorkFactory = (*GormUnitOfWorkFactory)(nil)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db       *gorm.DB
	observer CommitObserver
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. observer may be nil.
func NewGormUnitOfWorkFactory(db *gorm.DB, observer CommitObserver) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, observer: observer}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		observer:          f.observer,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and the aggregates
// written inside it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	observer          CommitObserver
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin twice keeps the first one.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction and reports the tracked aggregates.
// Returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	if uow.observer != nil && len(uow.trackedAggregates) > 0 {
		kinds := make([]string, 0, len(uow.trackedAggregates))
		for _, tracked := range uow.trackedAggregates {
			kinds = append(kinds, tracked.Kind)
		}
		uow.observer.ObserveCommit(kinds)
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]

	return nil
}

// Rollback discards the transaction and everything tracked in it.
// Returns gorm.ErrInvalidTransaction when no transaction is active, which
// is what deferred rollbacks see after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// VehicleRepository is bound to the active transaction, or to the plain
// connection when Begin was not called.
func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return vehiclerepo.NewGormVehicleRepository(uow.conn(), uow)
}

// JobRepository is bound to the active transaction, or to the plain
// connection when Begin was not called.
func (uow *GormUnitOfWork) JobRepository() ports.JobRepository {
	return jobrepo.NewGormJobRepository(uow.conn(), uow)
}

// TrackAggregate is called by repositories for every aggregate they write.
func (uow *GormUnitOfWork) TrackAggregate(kind string, id string) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		Kind: kind,
		ID:   id,
	})
}

// TrackedCount returns the number of writes recorded since the last
// Commit or Rollback.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
