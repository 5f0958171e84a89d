package queries

import (
	"time"

	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	jobsTable      = "delivery_jobs"
	addressesTable = "addresses"
	vehiclesTable  = "vehicles"
)

// addressRow is the read side of the addresses table.
type addressRow struct {
	ID             uuid.UUID
	Recipient      string
	StreetAddress  string
	StreetAddress2 string `gorm:"column:street_address_2"`
	City           string
	State          string
	ZipCode        string
}

func (addressRow) TableName() string {
	return addressesTable
}

// jobRow is the read side of the delivery_jobs table with its destination.
type jobRow struct {
	ID                   uuid.UUID
	VehicleRegistration  *string
	DestinationID        uuid.UUID
	Destination          addressRow `gorm:"foreignKey:DestinationID"`
	Income               decimal.Decimal
	Cost                 decimal.Decimal
	DeliverySlotStartsAt time.Time
	DeliverySlotEndsAt   time.Time
	CreatedAt            time.Time
	CompletedAt          *time.Time
}

func (jobRow) TableName() string {
	return jobsTable
}

func (r jobRow) toDomain() (*job.Job, error) {
	return job.FromRecord(job.Record{
		ID:                  r.ID,
		VehicleRegistration: r.VehicleRegistration,
		DestinationID:       r.Destination.ID,
		Destination: job.AddressFields{
			Recipient:      r.Destination.Recipient,
			StreetAddress:  r.Destination.StreetAddress,
			StreetAddress2: r.Destination.StreetAddress2,
			City:           r.Destination.City,
			State:          r.Destination.State,
			ZipCode:        r.Destination.ZipCode,
		},
		Income:       r.Income,
		Cost:         r.Cost,
		SlotStartsAt: r.DeliverySlotStartsAt,
		SlotEndsAt:   r.DeliverySlotEndsAt,
		CreatedAt:    r.CreatedAt,
		CompletedAt:  r.CompletedAt,
	})
}

// vehicleRow is a vehicle annotated with the sums over all its jobs.
type vehicleRow struct {
	Registration string
	TotalIncome  decimal.Decimal
	TotalCost    decimal.Decimal
}

func (r vehicleRow) toSummary() VehicleSummary {
	return VehicleSummary{
		Registration: r.Registration,
		TotalIncome:  kernel.NewMoney(r.TotalIncome),
		TotalCost:    kernel.NewMoney(r.TotalCost),
	}
}
