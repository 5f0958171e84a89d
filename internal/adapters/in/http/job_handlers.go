package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListJobs handles GET /api/v1/jobs - filters and pages delivery jobs.
func (s *Server) ListJobs(ctx echo.Context) error {
	params := ctx.QueryParams()

	filter, err := bindJobFilter(params)
	if err != nil {
		return s.fail(ctx, err)
	}
	page, err := bindPage(params)
	if err != nil {
		return s.fail(ctx, err)
	}

	response, err := s.jobs.List.Handle(ctx.Request().Context(), queries.NewListJobsQuery(filter, page))
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, jobConnectionFromQuery(response))
}

// GetJob handles GET /api/v1/jobs/{id}.
func (s *Server) GetJob(ctx echo.Context) error {
	id, err := jobIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetJobQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	found, err := s.jobs.Get.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, jobFromDomain(found))
}

// CreateJob handles POST /api/v1/jobs - creates a job with a fresh
// destination address.
func (s *Server) CreateJob(ctx echo.Context) error {
	var body NewJob
	if err := ctx.Bind(&body); err != nil {
		return badRequestBody(ctx)
	}

	var registration string
	if body.VehicleRegistration != nil {
		registration = *body.VehicleRegistration
	}

	cmd, err := commands.NewCreateJobCommand(
		addressFields(body.Destination),
		body.Income,
		body.Cost,
		body.DeliverySlotStartsAt,
		body.DeliverySlotEndsAt,
		registration,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.jobs.Create.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, jobFromDomain(created))
}

// MarkJobCompleted handles POST /api/v1/jobs/{id}/completion.
func (s *Server) MarkJobCompleted(ctx echo.Context) error {
	id, err := jobIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body JobCompletion
	if err = ctx.Bind(&body); err != nil {
		return badRequestBody(ctx)
	}

	cmd, err := commands.NewMarkJobCompletedCommand(id, body.CompletedAt)
	if err != nil {
		return s.fail(ctx, err)
	}

	completed, err := s.jobs.MarkCompleted.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, jobFromDomain(completed))
}

func jobIDParam(ctx echo.Context) (kernel.UUID, error) {
	globalID, err := pathParam(ctx, "id")
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return jobIDFromGlobalID("id", globalID)
}
