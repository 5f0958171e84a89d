package commands

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateJobCommandIsNotConstructed = errors.New(
	"CreateJobCommand must be created via NewCreateJobCommand constructor",
)

// CreateJobCommand represents a request to create a delivery job with a new
// destination address. Identifiers for both are generated here.
//
// Example:
//
//	cmd, err := NewCreateJobCommand(
//	    job.AddressFields{Recipient: "Jane Doe", StreetAddress: "1 Main St", City: "Mesa", State: "AZ", ZipCode: "85201"},
//	    decimal.RequireFromString("120.00"),
//	    decimal.RequireFromString("35.10"),
//	    slotStart, slotEnd,
//	    "ABC123", // empty for an unassigned job
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid job data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID       kernel.UUID
	destination job.Address
	income      kernel.Money
	cost        kernel.Money
	slot        kernel.DeliverySlot
	vehicle     *vehicle.Registration

	guard guard.ConstructorGuard
}

// NewCreateJobCommand validates every field and joins all errors.
// An empty vehicleRegistration creates an unassigned job.
func NewCreateJobCommand(
	destination job.AddressFields,
	income decimal.Decimal,
	cost decimal.Decimal,
	slotStartsAt time.Time,
	slotEndsAt time.Time,
	vehicleRegistration string,
) (CreateJobCommand, error) {
	cmd := CreateJobCommand{
		jobID: kernel.NewUUID(),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDestination(destination),
		cmd.setIncome(income),
		cmd.setCost(cost),
		cmd.setSlot(slotStartsAt, slotEndsAt),
		cmd.setVehicle(vehicleRegistration),
	); err != nil {
		return CreateJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c CreateJobCommand) Destination() job.Address {
	return c.destination
}

func (c CreateJobCommand) Income() kernel.Money {
	return c.income
}

func (c CreateJobCommand) Cost() kernel.Money {
	return c.cost
}

func (c CreateJobCommand) Slot() kernel.DeliverySlot {
	return c.slot
}

// Vehicle returns nil when the job is created unassigned.
func (c CreateJobCommand) Vehicle() *vehicle.Registration {
	return c.vehicle
}

func (c *CreateJobCommand) setDestination(fields job.AddressFields) error {
	addr, err := job.NewAddress(kernel.NewUUID(), fields)
	if err != nil {
		return err
	}

	c.destination = addr
	return nil
}

func (c *CreateJobCommand) setIncome(amount decimal.Decimal) error {
	income := kernel.NewMoney(amount)
	if err := income.CheckIntegerDigits("income", job.MaxIncomeIntegerDigits); err != nil {
		return err
	}

	c.income = income
	return nil
}

func (c *CreateJobCommand) setCost(amount decimal.Decimal) error {
	cost := kernel.NewMoney(amount)
	if err := cost.CheckIntegerDigits("cost", job.MaxCostIntegerDigits); err != nil {
		return err
	}

	c.cost = cost
	return nil
}

func (c *CreateJobCommand) setSlot(startsAt, endsAt time.Time) error {
	slot, err := kernel.NewDeliverySlot(startsAt, endsAt)
	if err != nil {
		return err
	}

	c.slot = slot
	return nil
}

func (c *CreateJobCommand) setVehicle(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	registration, err := vehicle.NewRegistration(value)
	if err != nil {
		return err
	}

	c.vehicle = &registration
	return nil
}
