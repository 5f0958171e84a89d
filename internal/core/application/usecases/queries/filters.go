package queries

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"
)

// RegistrationFilter matches a vehicle registration column.
// All set operators must hold.
type RegistrationFilter struct {
	Exact    *string
	Contains *string
	IsNull   *bool
}

// Predicates translates the filter into conditions on col.
func (f RegistrationFilter) Predicates(col clause.Column) []clause.Expression {
	var exprs []clause.Expression
	if f.Exact != nil {
		exprs = append(exprs, clause.Eq{Column: col, Value: *f.Exact})
	}
	if f.Contains != nil {
		exprs = append(exprs, clause.Like{Column: col, Value: "%" + escapeLike(*f.Contains) + "%"})
	}
	if f.IsNull != nil {
		exprs = append(exprs, nullCheck(col, *f.IsNull))
	}
	return exprs
}

// TextFilter matches a text column. Pattern operators are case-sensitive.
type TextFilter struct {
	Exact      *string
	Contains   *string
	StartsWith *string
	EndsWith   *string
}

func (f TextFilter) Predicates(col clause.Column) []clause.Expression {
	var exprs []clause.Expression
	if f.Exact != nil {
		exprs = append(exprs, clause.Eq{Column: col, Value: *f.Exact})
	}
	if f.Contains != nil {
		exprs = append(exprs, clause.Like{Column: col, Value: "%" + escapeLike(*f.Contains) + "%"})
	}
	if f.StartsWith != nil {
		exprs = append(exprs, clause.Like{Column: col, Value: escapeLike(*f.StartsWith) + "%"})
	}
	if f.EndsWith != nil {
		exprs = append(exprs, clause.Like{Column: col, Value: "%" + escapeLike(*f.EndsWith)})
	}
	return exprs
}

// RangeFilter compares an ordered column against bounds.
type RangeFilter[T time.Time | decimal.Decimal] struct {
	Exact *T
	Lt    *T
	Lte   *T
	Gt    *T
	Gte   *T
}

func (f RangeFilter[T]) Predicates(col clause.Column) []clause.Expression {
	var exprs []clause.Expression
	if f.Exact != nil {
		exprs = append(exprs, clause.Eq{Column: col, Value: *f.Exact})
	}
	if f.Lt != nil {
		exprs = append(exprs, clause.Lt{Column: col, Value: *f.Lt})
	}
	if f.Lte != nil {
		exprs = append(exprs, clause.Lte{Column: col, Value: *f.Lte})
	}
	if f.Gt != nil {
		exprs = append(exprs, clause.Gt{Column: col, Value: *f.Gt})
	}
	if f.Gte != nil {
		exprs = append(exprs, clause.Gte{Column: col, Value: *f.Gte})
	}
	return exprs
}

// NullableTimeFilter is a time range plus a null check.
type NullableTimeFilter struct {
	RangeFilter[time.Time]
	IsNull *bool
}

func (f NullableTimeFilter) Predicates(col clause.Column) []clause.Expression {
	exprs := f.RangeFilter.Predicates(col)
	if f.IsNull != nil {
		exprs = append(exprs, nullCheck(col, *f.IsNull))
	}
	return exprs
}

// DestinationFilter holds one TextFilter per address field.
type DestinationFilter struct {
	Recipient      TextFilter
	StreetAddress  TextFilter
	StreetAddress2 TextFilter
	City           TextFilter
	State          TextFilter
	ZipCode        TextFilter
}

func (f DestinationFilter) Predicates(table string) []clause.Expression {
	return concat(
		f.Recipient.Predicates(column(table, "recipient")),
		f.StreetAddress.Predicates(column(table, "street_address")),
		f.StreetAddress2.Predicates(column(table, "street_address_2")),
		f.City.Predicates(column(table, "city")),
		f.State.Predicates(column(table, "state")),
		f.ZipCode.Predicates(column(table, "zip_code")),
	)
}

// JobFieldsFilter covers the fields of a job other than its vehicle.
// Vehicles reuse it to filter by their jobs.
type JobFieldsFilter struct {
	Destination          DestinationFilter
	CreatedAt            RangeFilter[time.Time]
	CompletedAt          NullableTimeFilter
	Income               RangeFilter[decimal.Decimal]
	Cost                 RangeFilter[decimal.Decimal]
	DeliverySlotStartsAt RangeFilter[time.Time]
	DeliverySlotEndsAt   RangeFilter[time.Time]
}

// Predicates qualifies job columns with jobTable and address columns with
// addressTable.
func (f JobFieldsFilter) Predicates(jobTable, addressTable string) []clause.Expression {
	return concat(
		f.Destination.Predicates(addressTable),
		f.CreatedAt.Predicates(column(jobTable, "created_at")),
		f.CompletedAt.Predicates(column(jobTable, "completed_at")),
		f.Income.Predicates(column(jobTable, "income")),
		f.Cost.Predicates(column(jobTable, "cost")),
		f.DeliverySlotStartsAt.Predicates(column(jobTable, "delivery_slot_starts_at")),
		f.DeliverySlotEndsAt.Predicates(column(jobTable, "delivery_slot_ends_at")),
	)
}

// JobFilter selects delivery jobs. All conditions are combined with AND.
type JobFilter struct {
	Vehicle RegistrationFilter
	JobFieldsFilter
}

func (f JobFilter) Predicates(jobTable, addressTable string) []clause.Expression {
	return concat(
		f.Vehicle.Predicates(column(jobTable, "vehicle_registration")),
		f.JobFieldsFilter.Predicates(jobTable, addressTable),
	)
}

// VehicleFilter selects vehicles. A vehicle matches the job conditions when
// at least one of its jobs satisfies all of them together.
type VehicleFilter struct {
	Registration RegistrationFilter
	Jobs         JobFieldsFilter
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike protects LIKE wildcards; backslash is the default escape
// character in PostgreSQL.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func nullCheck(col clause.Column, isNull bool) clause.Expression {
	if isNull {
		return clause.Eq{Column: col, Value: nil}
	}
	return clause.Neq{Column: col, Value: nil}
}

func column(table, name string) clause.Column {
	return clause.Column{Table: table, Name: name}
}

func concat(groups ...[]clause.Expression) []clause.Expression {
	var exprs []clause.Expression
	for _, g := range groups {
		exprs = append(exprs, g...)
	}
	return exprs
}
