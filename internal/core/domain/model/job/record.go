package job

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record is the flat stored form of a job and its destination. Storage
// adapters and read models map their rows through it.
type Record struct {
	ID                  uuid.UUID
	VehicleRegistration *string
	DestinationID       uuid.UUID
	Destination         AddressFields
	Income              decimal.Decimal
	Cost                decimal.Decimal
	SlotStartsAt        time.Time
	SlotEndsAt          time.Time
	CreatedAt           time.Time
	CompletedAt         *time.Time
}

// Record flattens the job.
func (j *Job) Record() Record {
	var registration *string
	if j.vehicle != nil {
		value := j.vehicle.String()
		registration = &value
	}

	return Record{
		ID:                  j.id.Bytes(),
		VehicleRegistration: registration,
		DestinationID:       j.destination.ID().Bytes(),
		Destination:         j.destination.Fields(),
		Income:              j.income.Amount(),
		Cost:                j.cost.Amount(),
		SlotStartsAt:        j.slot.StartsAt(),
		SlotEndsAt:          j.slot.EndsAt(),
		CreatedAt:           j.createdAt,
		CompletedAt:         j.completedAt,
	}
}

// FromRecord rebuilds the job aggregate. Timestamps are returned in UTC.
func FromRecord(r Record) (*Job, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return nil, err
	}

	addressID, err := kernel.UUIDFromBytes(r.DestinationID[:])
	if err != nil {
		return nil, err
	}

	destination, err := NewAddress(addressID, r.Destination)
	if err != nil {
		return nil, err
	}

	slot, err := kernel.NewDeliverySlot(r.SlotStartsAt.UTC(), r.SlotEndsAt.UTC())
	if err != nil {
		return nil, err
	}

	var registration *vehicle.Registration
	if r.VehicleRegistration != nil {
		reg, regErr := vehicle.NewRegistration(*r.VehicleRegistration)
		if regErr != nil {
			return nil, regErr
		}
		registration = &reg
	}

	var completedAt *time.Time
	if r.CompletedAt != nil {
		at := r.CompletedAt.UTC()
		completedAt = &at
	}

	return RestoreJob(
		id,
		destination,
		kernel.NewMoney(r.Income),
		kernel.NewMoney(r.Cost),
		slot,
		r.CreatedAt.UTC(),
		registration,
		completedAt,
	)
}
