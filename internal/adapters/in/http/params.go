package http

import (
	"errors"
	"net/url"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/pkg/errs"

	"github.com/oapi-codegen/runtime"
	"github.com/shopspring/decimal"
)

// Operator suffixes appended to a field name; the bare name is exact match.
const (
	opContains   = "__contains"
	opStartsWith = "__startswith"
	opEndsWith   = "__endswith"
	opLt         = "__lt"
	opLte        = "__lte"
	opGt         = "__gt"
	opGte        = "__gte"
	opIsNull     = "__isnull"
)

type filterKind int

const (
	registrationKind filterKind = iota
	textKind
	timeKind
	nullableTimeKind
	decimalKind
)

// operators lists the suffixes a field of this kind accepts.
func (k filterKind) operators() []string {
	switch k {
	case registrationKind:
		return []string{"", opContains, opIsNull}
	case textKind:
		return []string{"", opContains, opStartsWith, opEndsWith}
	case nullableTimeKind:
		return []string{"", opLt, opLte, opGt, opGte, opIsNull}
	default:
		return []string{"", opLt, opLte, opGt, opGte}
	}
}

type filterField struct {
	name string
	kind filterKind
}

const vehicleJobsPrefix = "jobs_"

var jobFilterFields = []filterField{
	{name: "vehicle_registration", kind: registrationKind},
	{name: "destination_recipient", kind: textKind},
	{name: "destination_street_address", kind: textKind},
	{name: "destination_street_address_2", kind: textKind},
	{name: "destination_city", kind: textKind},
	{name: "destination_state", kind: textKind},
	{name: "destination_zip_code", kind: textKind},
	{name: "created_at", kind: timeKind},
	{name: "completed_at", kind: nullableTimeKind},
	{name: "income", kind: decimalKind},
	{name: "cost", kind: decimalKind},
	{name: "delivery_slot_starts_at", kind: timeKind},
	{name: "delivery_slot_ends_at", kind: timeKind},
}

var vehicleFilterFields = []filterField{
	{name: "registration", kind: registrationKind},
	{name: vehicleJobsPrefix + "created_at", kind: timeKind},
	{name: vehicleJobsPrefix + "completed_at", kind: nullableTimeKind},
	{name: vehicleJobsPrefix + "income", kind: decimalKind},
	{name: vehicleJobsPrefix + "cost", kind: decimalKind},
	{name: vehicleJobsPrefix + "delivery_slot_starts_at", kind: timeKind},
	{name: vehicleJobsPrefix + "delivery_slot_ends_at", kind: timeKind},
}

// queryBinder binds optional query parameters with the oapi-codegen runtime
// and collects every failure.
type queryBinder struct {
	params url.Values
	errs   []error
}

func newQueryBinder(params url.Values) *queryBinder {
	return &queryBinder{params: params}
}

func (b *queryBinder) bind(name string, dest any) {
	if err := runtime.BindQueryParameter("form", true, false, name, b.params, dest); err != nil {
		b.errs = append(b.errs, errs.NewValueIsInvalidErrorWithCause(name, err))
	}
}

func (b *queryBinder) decimal(name string, dest **decimal.Decimal) {
	var raw *string
	b.bind(name, &raw)
	if raw == nil {
		return
	}

	value, err := decimal.NewFromString(*raw)
	if err != nil {
		b.errs = append(b.errs, errs.NewValueIsInvalidErrorWithCause(name, err))
		return
	}
	*dest = &value
}

func (b *queryBinder) err() error {
	return errors.Join(b.errs...)
}

func (b *queryBinder) registration(name string, f *queries.RegistrationFilter) {
	b.bind(name, &f.Exact)
	b.bind(name+opContains, &f.Contains)
	b.bind(name+opIsNull, &f.IsNull)
}

func (b *queryBinder) text(name string, f *queries.TextFilter) {
	b.bind(name, &f.Exact)
	b.bind(name+opContains, &f.Contains)
	b.bind(name+opStartsWith, &f.StartsWith)
	b.bind(name+opEndsWith, &f.EndsWith)
}

func (b *queryBinder) timeRange(name string, f *queries.RangeFilter[time.Time]) {
	b.bind(name, &f.Exact)
	b.bind(name+opLt, &f.Lt)
	b.bind(name+opLte, &f.Lte)
	b.bind(name+opGt, &f.Gt)
	b.bind(name+opGte, &f.Gte)
}

func (b *queryBinder) nullableTime(name string, f *queries.NullableTimeFilter) {
	b.timeRange(name, &f.RangeFilter)
	b.bind(name+opIsNull, &f.IsNull)
}

func (b *queryBinder) decimalRange(name string, f *queries.RangeFilter[decimal.Decimal]) {
	b.decimal(name, &f.Exact)
	b.decimal(name+opLt, &f.Lt)
	b.decimal(name+opLte, &f.Lte)
	b.decimal(name+opGt, &f.Gt)
	b.decimal(name+opGte, &f.Gte)
}

// jobFields binds the job columns shared by both filters; prefix is
// prepended to each name.
func (b *queryBinder) jobFields(prefix string, f *queries.JobFieldsFilter) {
	b.timeRange(prefix+"created_at", &f.CreatedAt)
	b.nullableTime(prefix+"completed_at", &f.CompletedAt)
	b.decimalRange(prefix+"income", &f.Income)
	b.decimalRange(prefix+"cost", &f.Cost)
	b.timeRange(prefix+"delivery_slot_starts_at", &f.DeliverySlotStartsAt)
	b.timeRange(prefix+"delivery_slot_ends_at", &f.DeliverySlotEndsAt)
}

func bindJobFilter(params url.Values) (queries.JobFilter, error) {
	var filter queries.JobFilter
	b := newQueryBinder(params)

	b.registration("vehicle_registration", &filter.Vehicle)
	b.text("destination_recipient", &filter.Destination.Recipient)
	b.text("destination_street_address", &filter.Destination.StreetAddress)
	b.text("destination_street_address_2", &filter.Destination.StreetAddress2)
	b.text("destination_city", &filter.Destination.City)
	b.text("destination_state", &filter.Destination.State)
	b.text("destination_zip_code", &filter.Destination.ZipCode)
	b.jobFields("", &filter.JobFieldsFilter)

	if err := b.err(); err != nil {
		return queries.JobFilter{}, err
	}
	return filter, nil
}

func bindVehicleFilter(params url.Values) (queries.VehicleFilter, error) {
	var filter queries.VehicleFilter
	b := newQueryBinder(params)

	b.registration("registration", &filter.Registration)
	b.jobFields(vehicleJobsPrefix, &filter.Jobs)

	if err := b.err(); err != nil {
		return queries.VehicleFilter{}, err
	}
	return filter, nil
}

func bindPage(params url.Values) (queries.PageRequest, error) {
	var (
		first *int
		after *string
	)
	b := newQueryBinder(params)
	b.bind("first", &first)
	b.bind("after", &after)
	if err := b.err(); err != nil {
		return queries.PageRequest{}, err
	}

	return queries.NewPageRequest(first, after)
}

func bindVehicleOrder(params url.Values) (queries.VehicleOrder, error) {
	var orderBy *string
	b := newQueryBinder(params)
	b.bind("order_by", &orderBy)
	if err := b.err(); err != nil {
		return "", err
	}
	if orderBy == nil {
		return queries.DefaultVehicleOrder, nil
	}

	return queries.ParseVehicleOrder(*orderBy)
}
