package job

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"
)

const (
	// MaxIncomeIntegerDigits bounds income to numeric(6,2).
	MaxIncomeIntegerDigits int32 = 4
	// MaxCostIntegerDigits bounds cost to numeric(5,2).
	MaxCostIntegerDigits int32 = 3
)

var (
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob constructor")

	// ErrNoVehicleAssigned is returned when completing a job that has no vehicle.
	ErrNoVehicleAssigned = errs.NewPreconditionFailedError("job must have an assigned vehicle to mark it as completed")
)

// Job is a single delivery task and the aggregate root of this package.
//
// Job follows these invariants:
//   - Must have a valid identifier and a destination address
//   - Income and cost are rounded to cents and bounded by their column precision
//   - Completion requires a vehicle and can happen only once
//   - CreatedAt never changes after construction
type Job struct {
	id          kernel.UUID
	vehicle     *vehicle.Registration
	destination Address
	income      kernel.Money
	cost        kernel.Money
	slot        kernel.DeliverySlot
	createdAt   time.Time
	completedAt *time.Time

	isConstructed bool
}

// NewJob creates an unassigned, uncompleted job.
//
// Example:
//
//	slot, _ := kernel.NewDeliverySlot(start, start.Add(2*time.Hour))
//	j, err := job.NewJob(kernel.NewUUID(), addr, income, cost, slot, time.Now().UTC())
//	if err != nil {
//	    return err
//	}
//	_ = j.AssignVehicle(reg)
func NewJob(
	id kernel.UUID,
	destination Address,
	income kernel.Money,
	cost kernel.Money,
	slot kernel.DeliverySlot,
	createdAt time.Time,
) (*Job, error) {
	return RestoreJob(id, destination, income, cost, slot, createdAt, nil, nil)
}

// RestoreJob rebuilds a job read from storage, including its vehicle and
// completion time.
func RestoreJob(
	id kernel.UUID,
	destination Address,
	income kernel.Money,
	cost kernel.Money,
	slot kernel.DeliverySlot,
	createdAt time.Time,
	vehicleRegistration *vehicle.Registration,
	completedAt *time.Time,
) (*Job, error) {
	j := &Job{isConstructed: true}

	if err := errors.Join(
		j.setID(id),
		j.setDestination(destination),
		j.setIncome(income),
		j.setCost(cost),
		j.setSlot(slot),
		j.setCreatedAt(createdAt),
		j.setVehicle(vehicleRegistration),
		j.setCompletedAt(completedAt),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// Validate ensures the job was created through a constructor.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

func (j *Job) ID() kernel.UUID {
	return j.id
}

// Vehicle returns the assigned registration, or nil for unassigned jobs.
func (j *Job) Vehicle() *vehicle.Registration {
	return j.vehicle
}

func (j *Job) Destination() Address {
	return j.destination
}

func (j *Job) Income() kernel.Money {
	return j.income
}

func (j *Job) Cost() kernel.Money {
	return j.cost
}

func (j *Job) Slot() kernel.DeliverySlot {
	return j.slot
}

func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

// CompletedAt returns the completion time, or nil while the job is open.
func (j *Job) CompletedAt() *time.Time {
	return j.completedAt
}

func (j *Job) Completed() bool {
	return j.completedAt != nil
}

func (j *Job) Status() Status {
	return StatusOf(j.vehicle != nil, j.Completed())
}

// AssignVehicle sets the vehicle. Reassignment is allowed; there is no way
// to remove a vehicle once set.
func (j *Job) AssignVehicle(registration vehicle.Registration) error {
	if err := registration.Validate(); err != nil {
		return err
	}
	j.vehicle = &registration
	return nil
}

// Complete records the completion time.
//
// This method enforces the following business rules:
//   - The job must have a vehicle (ErrNoVehicleAssigned)
//   - The job must not be completed already; the error names the existing time
//   - completedAt is not compared against the delivery slot
func (j *Job) Complete(completedAt time.Time) error {
	if completedAt.IsZero() {
		return errs.NewValueIsRequiredError("completed_at")
	}
	if j.vehicle == nil {
		return ErrNoVehicleAssigned
	}
	if j.Status().IsTerminal() {
		return errs.NewPreconditionFailedError(fmt.Sprintf(
			"job has already been marked as completed at %s",
			j.completedAt.Format(time.RFC3339),
		))
	}

	j.completedAt = &completedAt
	return nil
}

func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setDestination(destination Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	j.destination = destination
	return nil
}

func (j *Job) setIncome(income kernel.Money) error {
	if err := income.Validate(); err != nil {
		return err
	}
	if err := income.CheckIntegerDigits("income", MaxIncomeIntegerDigits); err != nil {
		return err
	}
	j.income = income
	return nil
}

func (j *Job) setCost(cost kernel.Money) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	if err := cost.CheckIntegerDigits("cost", MaxCostIntegerDigits); err != nil {
		return err
	}
	j.cost = cost
	return nil
}

func (j *Job) setSlot(slot kernel.DeliverySlot) error {
	if err := slot.Validate(); err != nil {
		return err
	}
	j.slot = slot
	return nil
}

func (j *Job) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created_at")
	}
	j.createdAt = createdAt
	return nil
}

func (j *Job) setVehicle(registration *vehicle.Registration) error {
	if registration == nil {
		return nil
	}
	return j.AssignVehicle(*registration)
}

func (j *Job) setCompletedAt(completedAt *time.Time) error {
	if completedAt == nil {
		return nil
	}
	if completedAt.IsZero() {
		return errs.NewValueIsRequiredError("completed_at")
	}
	at := *completedAt
	j.completedAt = &at
	return nil
}
