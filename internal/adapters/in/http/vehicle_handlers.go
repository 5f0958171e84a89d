package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListVehicles handles GET /api/v1/vehicles - filters, sorts and pages vehicles.
func (s *Server) ListVehicles(ctx echo.Context) error {
	params := ctx.QueryParams()

	filter, err := bindVehicleFilter(params)
	if err != nil {
		return s.fail(ctx, err)
	}
	order, err := bindVehicleOrder(params)
	if err != nil {
		return s.fail(ctx, err)
	}
	page, err := bindPage(params)
	if err != nil {
		return s.fail(ctx, err)
	}

	response, err := s.vehicles.List.Handle(ctx.Request().Context(), queries.NewListVehiclesQuery(filter, order, page))
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleConnectionFromQuery(response))
}

// GetVehicle handles GET /api/v1/vehicles/{registration}.
func (s *Server) GetVehicle(ctx echo.Context) error {
	registration, err := pathParam(ctx, "registration")
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("registration", err))
	}

	query, err := queries.NewGetVehicleByRegistrationQuery(registration)
	if err != nil {
		return s.fail(ctx, err)
	}

	summary, err := s.vehicles.Get.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleFromSummary(summary))
}

// CreateVehicle handles POST /api/v1/vehicles - registers a new vehicle.
// A taken registration is reported as success=false.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var body NewVehicle
	if err := ctx.Bind(&body); err != nil {
		return badRequestBody(ctx)
	}

	cmd, err := commands.NewCreateVehicleCommand(body.Registration)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.vehicles.Create.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, errs.ErrObjectAlreadyExists) {
		return ctx.JSON(http.StatusConflict, CreateVehicleResult{Success: false})
	}
	if err != nil {
		return s.fail(ctx, err)
	}

	result := newVehicleFromDomain(created)
	return ctx.JSON(http.StatusCreated, CreateVehicleResult{Success: true, Vehicle: &result})
}

// DeleteVehicle handles DELETE /api/v1/vehicles/{registration} - removes the
// vehicle together with its jobs.
func (s *Server) DeleteVehicle(ctx echo.Context) error {
	registration, err := pathParam(ctx, "registration")
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("registration", err))
	}

	cmd, err := commands.NewDeleteVehicleCommand(registration)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.vehicles.Delete.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignVehicleToJobs handles POST /api/v1/vehicles/{registration}/jobs.
// Unknown job ids are skipped; an unknown vehicle is reported as
// success=false.
func (s *Server) AssignVehicleToJobs(ctx echo.Context) error {
	registration, err := pathParam(ctx, "registration")
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("registration", err))
	}

	var body VehicleJobs
	if err = ctx.Bind(&body); err != nil {
		return badRequestBody(ctx)
	}

	ids := make([]kernel.UUID, 0, len(body.JobIDs))
	for _, globalID := range body.JobIDs {
		id, decodeErr := jobIDFromGlobalID("job_ids", globalID)
		if decodeErr != nil {
			return s.fail(ctx, decodeErr)
		}
		ids = append(ids, id)
	}

	cmd, err := commands.NewAssignVehicleToJobsCommand(registration, ids)
	if err != nil {
		return s.fail(ctx, err)
	}

	jobs, err := s.vehicles.AssignJobs.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrVehicleNotFound) {
		return ctx.JSON(http.StatusNotFound, AssignVehicleToJobsResult{Success: false, Jobs: []Job{}})
	}
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AssignVehicleToJobsResult{Success: true, Jobs: jobsFromDomain(jobs)})
}
