package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"logistics/cmd"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Registration clashes are retried this many times per vehicle.
const maxRegistrationAttempts = 5

var seedFlags struct {
	vehicles int
	jobs     int
	seed     uint64
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate or remove fake data",
}

var seedCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create fake vehicles and delivery jobs",
	RunE:  runSeedCreate,
}

var seedDestroyCmd = &cobra.Command{
	Use:   "destroy",
	Short: "Delete all vehicles, jobs and addresses",
	RunE:  runSeedDestroy,
}

func init() {
	f := seedCreateCmd.Flags()
	f.IntVar(&seedFlags.vehicles, "vehicles", 2, "Number of vehicles to create")
	f.IntVar(&seedFlags.jobs, "jobs", 10, "Number of delivery jobs to create")
	f.Uint64Var(&seedFlags.seed, "seed", 0, "Random seed, 0 picks a random one")
}

func runSeedCreate(c *cobra.Command, _ []string) error {
	db, config, err := openDatabase()
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	app := cmd.NewCompositionRoot(config, db, slog.New(slog.DiscardHandler))
	s := newSeeder(
		app.CreateCreateVehicleCommandHandler(),
		app.CreateCreateJobCommandHandler(),
		app.CreateMarkJobCompletedCommandHandler(),
		gofakeit.New(seedFlags.seed),
		c.OutOrStdout(),
	)
	return s.create(c.Context(), seedFlags.vehicles, seedFlags.jobs)
}

func runSeedDestroy(c *cobra.Command, _ []string) error {
	db, _, err := openDatabase()
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	if err := postgres.Truncate(c.Context(), db, postgres.TableNames()...); err != nil {
		return fmt.Errorf("destroy: %w", err)
	}
	fmt.Fprintln(c.OutOrStdout(), "Data destroyed.")
	return nil
}

type createVehicleHandler interface {
	Handle(ctx context.Context, command commands.CreateVehicleCommand) (*vehicle.Vehicle, error)
}

type createJobHandler interface {
	Handle(ctx context.Context, command commands.CreateJobCommand) (*job.Job, error)
}

type markJobCompletedHandler interface {
	Handle(ctx context.Context, command commands.MarkJobCompletedCommand) (*job.Job, error)
}

// seeder writes fake data through the regular command handlers so every row
// passes the same validation as API input.
type seeder struct {
	createVehicle createVehicleHandler
	createJob     createJobHandler
	markCompleted markJobCompletedHandler
	faker         *gofakeit.Faker
	now           func() time.Time
	out           io.Writer
}

func newSeeder(
	createVehicle createVehicleHandler,
	createJob createJobHandler,
	markCompleted markJobCompletedHandler,
	faker *gofakeit.Faker,
	out io.Writer,
) *seeder {
	return &seeder{
		createVehicle: createVehicle,
		createJob:     createJob,
		markCompleted: markCompleted,
		faker:         faker,
		now:           time.Now,
		out:           out,
	}
}

// create adds at least one vehicle and one job. Each job gets a random
// vehicle and a slot within the current year; about half are completed
// inside their slot.
func (s *seeder) create(ctx context.Context, vehicles, jobs int) error {
	registrations := make([]string, 0, max(1, vehicles))
	for range max(1, vehicles) {
		registration, err := s.newVehicle(ctx)
		if err != nil {
			return err
		}
		registrations = append(registrations, registration)
	}
	fmt.Fprintf(s.out, "Generated %d vehicle objects\n", len(registrations))

	for range max(1, jobs) {
		if err := s.newJob(ctx, registrations); err != nil {
			return err
		}
	}
	fmt.Fprintf(s.out, "Generated %d delivery job objects\n", max(1, jobs))
	return nil
}

func (s *seeder) newVehicle(ctx context.Context) (string, error) {
	var lastErr error
	for range maxRegistrationAttempts {
		command, err := commands.NewCreateVehicleCommand(s.licensePlate())
		if err != nil {
			return "", err
		}
		created, err := s.createVehicle.Handle(ctx, command)
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			lastErr = err
			continue
		}
		if err != nil {
			return "", err
		}
		return created.Registration().String(), nil
	}
	return "", fmt.Errorf("no free registration after %d attempts: %w", maxRegistrationAttempts, lastErr)
}

func (s *seeder) newJob(ctx context.Context, registrations []string) error {
	startsAt, endsAt, completedAt := s.slot()

	command, err := commands.NewCreateJobCommand(
		s.address(),
		s.amount(999999),
		s.amount(99999),
		startsAt,
		endsAt,
		registrations[s.faker.Number(0, len(registrations)-1)],
	)
	if err != nil {
		return err
	}
	created, err := s.createJob.Handle(ctx, command)
	if err != nil {
		return err
	}
	if completedAt == nil {
		return nil
	}

	complete, err := commands.NewMarkJobCompletedCommand(created.ID(), *completedAt)
	if err != nil {
		return err
	}
	_, err = s.markCompleted.Handle(ctx, complete)
	return err
}

func (s *seeder) licensePlate() string {
	return strings.ToUpper(s.faker.Numerify(s.faker.Lexify("???-####")))
}

func (s *seeder) address() job.AddressFields {
	info := s.faker.Address()
	fields := job.AddressFields{
		Recipient:     s.faker.Name(),
		StreetAddress: info.Street,
		City:          info.City,
		State:         s.faker.StateAbr(),
		ZipCode:       info.Zip,
	}
	if s.faker.Bool() {
		fields.StreetAddress2 = fmt.Sprintf("Apt. %d", s.faker.Number(1, 999))
	}
	return fields
}

// amount returns a positive money value of at most maxCents cents.
func (s *seeder) amount(maxCents int) decimal.Decimal {
	return decimal.New(int64(s.faker.Number(1, maxCents)), -2)
}

func (s *seeder) slot() (time.Time, time.Time, *time.Time) {
	now := s.now().UTC()
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)

	startsAt := s.faker.DateRange(yearStart, yearEnd).Truncate(time.Second)
	endsAt := s.faker.DateRange(startsAt, yearEnd).Truncate(time.Second)
	if s.faker.Bool() {
		return startsAt, endsAt, nil
	}
	completedAt := s.faker.DateRange(startsAt, endsAt).Truncate(time.Second)
	return startsAt, endsAt, &completedAt
}
