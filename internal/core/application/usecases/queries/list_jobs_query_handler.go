package queries

import (
	"context"

	"logistics/internal/core/domain/services"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// destinationJoin is the alias GORM gives the joined addresses table.
const destinationJoin = "Destination"

// ListJobsQueryHandler reads jobs with their destinations in one joined
// query and computes page totals from the returned rows.
type ListJobsQueryHandler struct {
	db     *gorm.DB
	totals services.PageTotalsCalculator
}

func NewListJobsQueryHandler(db *gorm.DB) ListJobsQueryHandler {
	return ListJobsQueryHandler{
		db:     db,
		totals: services.NewPageTotalsCalculator(),
	}
}

// Handle orders by created_at and id so cursors stay stable.
func (h ListJobsQueryHandler) Handle(ctx context.Context, query ListJobsQuery) (ListJobsResponse, error) {
	if err := query.Validate(); err != nil {
		return ListJobsResponse{}, err
	}

	db := h.db.WithContext(ctx).
		Model(&jobRow{}).
		Joins(destinationJoin)

	for _, expr := range query.Filter().Predicates(jobsTable, destinationJoin) {
		db = db.Where(expr)
	}

	page := query.Page()
	var rows []jobRow
	err := db.
		Order(clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: column(jobsTable, "created_at")},
			{Column: column(jobsTable, "id")},
		}}).
		Limit(page.limit()).
		Offset(page.Offset()).
		Find(&rows).Error
	if err != nil {
		return ListJobsResponse{}, err
	}

	visible, cursors, info := paginate(page, len(rows))

	response := ListJobsResponse{
		Edges:    make([]JobEdge, 0, visible),
		PageInfo: info,
	}
	for i := range visible {
		j, mapErr := rows[i].toDomain()
		if mapErr != nil {
			return ListJobsResponse{}, mapErr
		}
		response.Edges = append(response.Edges, JobEdge{Cursor: cursors[i], Node: j})
	}

	response.Totals, err = h.totals.Calculate(response.Jobs())
	if err != nil {
		return ListJobsResponse{}, err
	}

	return response, nil
}
