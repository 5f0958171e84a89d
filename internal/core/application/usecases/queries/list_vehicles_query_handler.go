package queries

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	vehicleAlias     = "v"
	totalsJobAlias   = "t"
	filterJobAlias   = "fj"
	filterAddrAlias  = "fa"
	totalIncomeAlias = "total_income"
	totalCostAlias   = "total_cost"
)

// ListVehiclesQueryHandler reads vehicles with per-row totals.
//
// The totals come from a LEFT JOIN over all of a vehicle's jobs. Job
// conditions are applied in a separate EXISTS subquery, so they decide which
// vehicles match without narrowing the sums.
type ListVehiclesQueryHandler struct {
	db *gorm.DB
}

func NewListVehiclesQueryHandler(db *gorm.DB) ListVehiclesQueryHandler {
	return ListVehiclesQueryHandler{db: db}
}

func (h ListVehiclesQueryHandler) Handle(ctx context.Context, query ListVehiclesQuery) (ListVehiclesResponse, error) {
	if err := query.Validate(); err != nil {
		return ListVehiclesResponse{}, err
	}

	page := query.Page()
	var rows []vehicleRow
	err := h.vehicles(ctx, query.Filter()).
		Order(vehicleOrderBy(query.Order())).
		Limit(page.limit()).
		Offset(page.Offset()).
		Scan(&rows).Error
	if err != nil {
		return ListVehiclesResponse{}, err
	}

	visible, cursors, info := paginate(page, len(rows))

	response := ListVehiclesResponse{
		Edges:    make([]VehicleEdge, 0, visible),
		PageInfo: info,
	}
	for i := range visible {
		response.Edges = append(response.Edges, VehicleEdge{Cursor: cursors[i], Node: rows[i].toSummary()})
	}

	return response, nil
}

// vehicles builds the grouped, filtered statement shared with the single
// vehicle lookup.
func (h ListVehiclesQueryHandler) vehicles(ctx context.Context, filter VehicleFilter) *gorm.DB {
	registration := column(vehicleAlias, "registration")

	db := h.db.WithContext(ctx).
		Table(vehiclesTable+" AS "+vehicleAlias).
		Select(
			"? AS registration, COALESCE(SUM(?), 0) AS "+totalIncomeAlias+", COALESCE(SUM(?), 0) AS "+totalCostAlias,
			registration,
			column(totalsJobAlias, "income"),
			column(totalsJobAlias, "cost"),
		).
		Joins(
			"LEFT JOIN "+jobsTable+" AS "+totalsJobAlias+" ON ? = ?",
			column(totalsJobAlias, "vehicle_registration"),
			registration,
		)

	for _, expr := range filter.Registration.Predicates(registration) {
		db = db.Where(expr)
	}

	if jobExprs := filter.Jobs.Predicates(filterJobAlias, filterAddrAlias); len(jobExprs) > 0 {
		sub := h.db.Session(&gorm.Session{NewDB: true}).
			Table(jobsTable+" AS "+filterJobAlias).
			Select("1").
			Joins(
				"JOIN "+addressesTable+" AS "+filterAddrAlias+" ON ? = ?",
				column(filterAddrAlias, "id"),
				column(filterJobAlias, "destination_id"),
			).
			Where(clause.Expr{
				SQL:  "? = ?",
				Vars: []any{column(filterJobAlias, "vehicle_registration"), registration},
			})
		for _, expr := range jobExprs {
			sub = sub.Where(expr)
		}
		db = db.Where("EXISTS (?)", sub)
	}

	return db.Group(vehicleAlias + ".registration")
}

func vehicleOrderBy(order VehicleOrder) clause.OrderBy {
	registration := clause.OrderByColumn{Column: column(vehicleAlias, "registration")}

	if order.Key() == string(OrderByRegistration) {
		registration.Desc = order.Descending()
		return clause.OrderBy{Columns: []clause.OrderByColumn{registration}}
	}

	return clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Name: order.Key(), Raw: true}, Desc: order.Descending()},
		registration,
	}}
}
