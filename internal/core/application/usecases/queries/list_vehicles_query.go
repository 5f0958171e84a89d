package queries

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrListVehiclesQueryIsNotConstructed = errors.New(
	"ListVehiclesQuery must be created via NewListVehiclesQuery constructor",
)

// VehicleOrder is a sort key for vehicle pages. Ties are always broken by
// registration ascending.
type VehicleOrder string

const (
	OrderByRegistration     VehicleOrder = "registration"
	OrderByRegistrationDesc VehicleOrder = "-registration"
	OrderByTotalIncome      VehicleOrder = "total_income"
	OrderByTotalIncomeDesc  VehicleOrder = "-total_income"
	OrderByTotalCost        VehicleOrder = "total_cost"
	OrderByTotalCostDesc    VehicleOrder = "-total_cost"
)

const (
	DefaultVehicleOrder = OrderByRegistration

	descendingSign = "-"
)

// ParseVehicleOrder accepts the names above; an empty string selects
// DefaultVehicleOrder.
func ParseVehicleOrder(s string) (VehicleOrder, error) {
	if s == "" {
		return DefaultVehicleOrder, nil
	}

	switch order := VehicleOrder(s); order {
	case OrderByRegistration, OrderByRegistrationDesc,
		OrderByTotalIncome, OrderByTotalIncomeDesc,
		OrderByTotalCost, OrderByTotalCostDesc:
		return order, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("order_by", fmt.Errorf("unknown sort key %q", s))
	}
}

// Key returns the column name without direction.
func (o VehicleOrder) Key() string {
	return strings.TrimPrefix(string(o), descendingSign)
}

// Descending reports whether the order is reversed.
func (o VehicleOrder) Descending() bool {
	return strings.HasPrefix(string(o), descendingSign)
}

// ListVehiclesQuery selects a page of vehicles with their job totals.
//
// Example:
//
//	min := decimal.RequireFromString("100")
//	filter := VehicleFilter{}
//	filter.Jobs.Income.Gte = &min
//	page, _ := NewPageRequest(nil, nil)
//
//	result, err := handler.Handle(ctx, NewListVehiclesQuery(filter, OrderByTotalIncomeDesc, page))
type ListVehiclesQuery struct {
	filter VehicleFilter
	order  VehicleOrder
	page   PageRequest

	guard guard.ConstructorGuard
}

func NewListVehiclesQuery(filter VehicleFilter, order VehicleOrder, page PageRequest) ListVehiclesQuery {
	if order == "" {
		order = DefaultVehicleOrder
	}
	return ListVehiclesQuery{
		filter: filter,
		order:  order,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}
}

func (q ListVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrListVehiclesQueryIsNotConstructed)
}

func (q ListVehiclesQuery) Filter() VehicleFilter {
	return q.filter
}

func (q ListVehiclesQuery) Order() VehicleOrder {
	return q.order
}

func (q ListVehiclesQuery) Page() PageRequest {
	return q.page
}

// VehicleSummary is a vehicle with income and cost summed over all of its
// jobs, zero when it has none.
type VehicleSummary struct {
	Registration string
	TotalIncome  kernel.Money
	TotalCost    kernel.Money
}

type VehicleEdge struct {
	Cursor string
	Node   VehicleSummary
}

type ListVehiclesResponse struct {
	Edges    []VehicleEdge
	PageInfo PageInfo
}
