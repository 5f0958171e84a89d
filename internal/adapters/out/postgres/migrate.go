package postgres

import (
	"context"
	"strings"

	"logistics/internal/adapters/out/postgres/jobrepo"
	"logistics/internal/adapters/out/postgres/vehiclerepo"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Models lists every persisted model in dependency order.
func Models() []any {
	return []any{
		&vehiclerepo.VehicleDTO{},
		&jobrepo.AddressDTO{},
		&jobrepo.JobDTO{},
	}
}

// TableNames lists the tables created by Migrate, children first.
func TableNames() []string {
	return []string{
		jobrepo.JobDTO{}.TableName(),
		jobrepo.AddressDTO{}.TableName(),
		vehiclerepo.VehicleDTO{}.TableName(),
	}
}

// Migrate creates or updates the schema, including the cascading foreign keys
// from delivery_jobs to vehicles and addresses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// Truncate empties the given tables and everything referencing them.
func Truncate(ctx context.Context, db *gorm.DB, tables ...string) error {
	quoted := make([]string, len(tables))
	for i, table := range tables {
		quoted[i] = pq.QuoteIdentifier(table)
	}
	return db.WithContext(ctx).Exec("TRUNCATE TABLE " + strings.Join(quoted, ", ") + " CASCADE").Error
}
