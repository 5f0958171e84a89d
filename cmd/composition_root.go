package cmd

import (
	"log/slog"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/metrics"
	"logistics/internal/schedule"

	"github.com/labstack/echo/v4"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	m := metrics.New()
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, m),
		metrics:    m,
		logger:     logger,
	}
}

// OpenDatabase connects to postgres. SQL statements are only logged at warn
// level and above.
func OpenDatabase(config Config) (*gorm.DB, error) {
	return gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Warn),
	})
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteVehicleCommandHandler() commands.DeleteVehicleCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignVehicleToJobsCommandHandler() commands.AssignVehicleToJobsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignVehicleToJobsCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateJobCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkJobCompletedCommandHandler() commands.MarkJobCompletedCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkJobCompletedCommandHandler(f)
}

func (c *CompositionRoot) CreateGetVehicleQueryHandler() queries.GetVehicleByRegistrationQueryHandler {
	return queries.NewGetVehicleByRegistrationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListVehiclesQueryHandler() queries.ListVehiclesQueryHandler {
	return queries.NewListVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobQueryHandler() queries.GetJobQueryHandler {
	return queries.NewGetJobQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListJobsQueryHandler() queries.ListJobsQueryHandler {
	return queries.NewListJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	vehicles := httpin.VehicleHandlers{
		Create:     c.CreateCreateVehicleCommandHandler(),
		Delete:     c.CreateDeleteVehicleCommandHandler(),
		AssignJobs: c.CreateAssignVehicleToJobsCommandHandler(),
		Get:        c.CreateGetVehicleQueryHandler(),
		List:       c.CreateListVehiclesQueryHandler(),
	}
	jobs := httpin.JobHandlers{
		Create:        c.CreateCreateJobCommandHandler(),
		MarkCompleted: c.CreateMarkJobCompletedCommandHandler(),
		Get:           c.CreateGetJobQueryHandler(),
		List:          c.CreateListJobsQueryHandler(),
	}
	return httpin.NewServer(vehicles, jobs, c.logger)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpin.NewRouter(c.CreateHTTPServer(), c.metrics, c.logger)
}

// CreateJobManager returns the scheduled jobs enabled by the configuration.
func (c *CompositionRoot) CreateJobManager() *schedule.JobManager {
	if c.config.ReportSchedule == "" {
		return schedule.NewJobManager()
	}
	report := schedule.NewOverdueJobsReportJob(
		c.CreateListJobsQueryHandler(),
		c.metrics,
		c.config.ReportSchedule,
		c.logger,
	)
	return schedule.NewJobManager(report)
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
