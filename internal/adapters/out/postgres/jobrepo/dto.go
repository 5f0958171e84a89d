// Package jobrepo maps the delivery job aggregate and its destination
// address to the delivery_jobs and addresses tables.
package jobrepo

import (
	"time"

	"logistics/internal/adapters/out/postgres/vehiclerepo"
	"logistics/internal/core/domain/model/job"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddressDTO is an addresses row. Each row belongs to exactly one job.
type AddressDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Recipient      string    `gorm:"type:varchar(100);not null"`
	StreetAddress  string    `gorm:"type:varchar(100);not null"`
	StreetAddress2 string    `gorm:"column:street_address_2;type:varchar(100);not null;default:''"`
	City           string    `gorm:"type:varchar(50);not null"`
	State          string    `gorm:"type:varchar(2);not null"`
	ZipCode        string    `gorm:"type:varchar(10);not null"`
}

func (AddressDTO) TableName() string {
	return "addresses"
}

// JobDTO is a delivery_jobs row. Both foreign keys cascade on delete:
// removing the vehicle or the destination address removes the job.
type JobDTO struct {
	ID                   uuid.UUID               `gorm:"type:uuid;primaryKey"`
	VehicleRegistration  *string                 `gorm:"type:varchar(10);index"`
	Vehicle              *vehiclerepo.VehicleDTO `gorm:"foreignKey:VehicleRegistration;references:Registration;constraint:OnDelete:CASCADE"`
	DestinationID        uuid.UUID               `gorm:"type:uuid;not null;index"`
	Destination          AddressDTO              `gorm:"foreignKey:DestinationID;constraint:OnDelete:CASCADE"`
	Income               decimal.Decimal         `gorm:"type:numeric(6,2);not null"`
	Cost                 decimal.Decimal         `gorm:"type:numeric(5,2);not null"`
	DeliverySlotStartsAt time.Time               `gorm:"not null"`
	DeliverySlotEndsAt   time.Time               `gorm:"not null"`
	CreatedAt            time.Time               `gorm:"not null;index"`
	CompletedAt          *time.Time
}

func (JobDTO) TableName() string {
	return "delivery_jobs"
}

func fromDomain(j *job.Job) JobDTO {
	r := j.Record()
	return JobDTO{
		ID:                  r.ID,
		VehicleRegistration: r.VehicleRegistration,
		DestinationID:       r.DestinationID,
		Destination: AddressDTO{
			ID:             r.DestinationID,
			Recipient:      r.Destination.Recipient,
			StreetAddress:  r.Destination.StreetAddress,
			StreetAddress2: r.Destination.StreetAddress2,
			City:           r.Destination.City,
			State:          r.Destination.State,
			ZipCode:        r.Destination.ZipCode,
		},
		Income:               r.Income,
		Cost:                 r.Cost,
		DeliverySlotStartsAt: r.SlotStartsAt,
		DeliverySlotEndsAt:   r.SlotEndsAt,
		CreatedAt:            r.CreatedAt,
		CompletedAt:          r.CompletedAt,
	}
}

// toDomain rebuilds the job aggregate. dto.Destination must be loaded.
func toDomain(dto JobDTO) (*job.Job, error) {
	return job.FromRecord(job.Record{
		ID:                  dto.ID,
		VehicleRegistration: dto.VehicleRegistration,
		DestinationID:       dto.Destination.ID,
		Destination: job.AddressFields{
			Recipient:      dto.Destination.Recipient,
			StreetAddress:  dto.Destination.StreetAddress,
			StreetAddress2: dto.Destination.StreetAddress2,
			City:           dto.Destination.City,
			State:          dto.Destination.State,
			ZipCode:        dto.Destination.ZipCode,
		},
		Income:       dto.Income,
		Cost:         dto.Cost,
		SlotStartsAt: dto.DeliverySlotStartsAt,
		SlotEndsAt:   dto.DeliverySlotEndsAt,
		CreatedAt:    dto.CreatedAt,
		CompletedAt:  dto.CompletedAt,
	})
}
