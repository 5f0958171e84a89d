// Package http is the REST adapter: an echo server that validates requests
// against an OpenAPI document and dispatches them to command and query
// handlers.
package http

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

type CreateVehicleHandler interface {
	Handle(ctx context.Context, cmd commands.CreateVehicleCommand) (*vehicle.Vehicle, error)
}

type DeleteVehicleHandler interface {
	Handle(ctx context.Context, cmd commands.DeleteVehicleCommand) error
}

type AssignVehicleToJobsHandler interface {
	Handle(ctx context.Context, cmd commands.AssignVehicleToJobsCommand) ([]*job.Job, error)
}

type GetVehicleHandler interface {
	Handle(ctx context.Context, query queries.GetVehicleByRegistrationQuery) (queries.VehicleSummary, error)
}

type ListVehiclesHandler interface {
	Handle(ctx context.Context, query queries.ListVehiclesQuery) (queries.ListVehiclesResponse, error)
}

type CreateJobHandler interface {
	Handle(ctx context.Context, cmd commands.CreateJobCommand) (*job.Job, error)
}

type MarkJobCompletedHandler interface {
	Handle(ctx context.Context, cmd commands.MarkJobCompletedCommand) (*job.Job, error)
}

type GetJobHandler interface {
	Handle(ctx context.Context, query queries.GetJobQuery) (*job.Job, error)
}

type ListJobsHandler interface {
	Handle(ctx context.Context, query queries.ListJobsQuery) (queries.ListJobsResponse, error)
}

// VehicleHandlers are the use cases behind the /vehicles routes.
type VehicleHandlers struct {
	Create     CreateVehicleHandler
	Delete     DeleteVehicleHandler
	AssignJobs AssignVehicleToJobsHandler
	Get        GetVehicleHandler
	List       ListVehiclesHandler
}

// JobHandlers are the use cases behind the /jobs routes.
type JobHandlers struct {
	Create        CreateJobHandler
	MarkCompleted MarkJobCompletedHandler
	Get           GetJobHandler
	List          ListJobsHandler
}

// Server is the single API facade. It coordinates between HTTP handlers
// and the per-entity application use cases.
type Server struct {
	vehicles VehicleHandlers
	jobs     JobHandlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(vehicles VehicleHandlers, jobs JobHandlers, logger *slog.Logger) *Server {
	return &Server{
		vehicles: vehicles,
		jobs:     jobs,
		logger:   logger,
	}
}

// RegisterRoutes mounts the API on g, which is expected to be rooted at
// /api/v1.
func (s *Server) RegisterRoutes(g *echo.Group) {
	g.GET("/vehicles", s.ListVehicles)
	g.POST("/vehicles", s.CreateVehicle)
	g.GET("/vehicles/:registration", s.GetVehicle)
	g.DELETE("/vehicles/:registration", s.DeleteVehicle)
	g.POST("/vehicles/:registration/jobs", s.AssignVehicleToJobs)

	g.GET("/jobs", s.ListJobs)
	g.POST("/jobs", s.CreateJob)
	g.GET("/jobs/:id", s.GetJob)
	g.POST("/jobs/:id/completion", s.MarkJobCompleted)
}

func pathParam(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	return value, err
}
