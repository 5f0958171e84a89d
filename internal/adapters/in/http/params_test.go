package http

import (
	"net/url"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAPIDocument_IsValid(t *testing.T) {
	require.NoError(t, NewOpenAPIDocument().Validate(t.Context()))
}

// sampleValue returns a value accepted by the parameter's schema.
func sampleValue(schema *openapi3.Schema) string {
	switch {
	case schema.Type.Is(openapi3.TypeBoolean):
		return "true"
	case schema.Format == "date-time":
		return "2024-03-01T10:00:00Z"
	case schema.Pattern == moneyPattern:
		return "10.50"
	default:
		return "ABC"
	}
}

func documentedFilters(t *testing.T, path string) []*openapi3.Parameter {
	t.Helper()

	op := NewOpenAPIDocument().Paths.Find(path).Get
	require.NotNil(t, op)

	var params []*openapi3.Parameter
	for _, ref := range op.Parameters {
		switch ref.Value.Name {
		case "first", "after", "order_by":
			continue
		}
		params = append(params, ref.Value)
	}
	return params
}

func TestBindJobFilter_BindsEveryDocumentedParameter(t *testing.T) {
	params := documentedFilters(t, apiPrefix+"/jobs")
	require.Len(t, params, 58)

	for _, param := range params {
		t.Run(param.Name, func(t *testing.T) {
			filter, err := bindJobFilter(url.Values{param.Name: {sampleValue(param.Schema.Value)}})
			require.NoError(t, err)
			assert.NotEqual(t, queries.JobFilter{}, filter)
		})
	}
}

func TestBindVehicleFilter_BindsEveryDocumentedParameter(t *testing.T) {
	params := documentedFilters(t, apiPrefix+"/vehicles")
	require.Len(t, params, 34)

	for _, param := range params {
		t.Run(param.Name, func(t *testing.T) {
			filter, err := bindVehicleFilter(url.Values{param.Name: {sampleValue(param.Schema.Value)}})
			require.NoError(t, err)
			assert.NotEqual(t, queries.VehicleFilter{}, filter)
		})
	}
}

func TestBindJobFilter_Values(t *testing.T) {
	filter, err := bindJobFilter(url.Values{
		"vehicle_registration__contains": {"BC"},
		"completed_at__isnull":           {"true"},
		"income__gte":                    {"100.5"},
		"delivery_slot_ends_at__lt":      {"2024-03-01T10:00:00Z"},
		"destination_state":              {"AZ"},
	})
	require.NoError(t, err)

	assert.Equal(t, "BC", *filter.Vehicle.Contains)
	assert.True(t, *filter.CompletedAt.IsNull)
	assert.True(t, decimal.RequireFromString("100.50").Equal(*filter.Income.Gte))
	assert.True(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC).Equal(*filter.DeliverySlotEndsAt.Lt))
	assert.Equal(t, "AZ", *filter.Destination.State.Exact)
	assert.Nil(t, filter.Vehicle.Exact)
}

func TestBindJobFilter_CollectsErrors(t *testing.T) {
	_, err := bindJobFilter(url.Values{
		"income__gt":           {"lots"},
		"completed_at__isnull": {"maybe"},
		"created_at":           {"yesterday"},
	})

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "income__gt")
	assert.Contains(t, err.Error(), "completed_at__isnull")
	assert.Contains(t, err.Error(), "created_at")
}

func TestBindPage(t *testing.T) {
	page, err := bindPage(url.Values{"first": {"5"}, "after": {queries.EncodeCursor(9)}})
	require.NoError(t, err)
	assert.Equal(t, 5, page.First())
	assert.Equal(t, 10, page.Offset())

	_, err = bindPage(url.Values{"first": {"500"}})
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = bindPage(url.Values{"first": {"many"}})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestBindVehicleOrder(t *testing.T) {
	order, err := bindVehicleOrder(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, queries.DefaultVehicleOrder, order)

	order, err = bindVehicleOrder(url.Values{"order_by": {"-total_income"}})
	require.NoError(t, err)
	assert.Equal(t, queries.OrderByTotalIncomeDesc, order)

	_, err = bindVehicleOrder(url.Values{"order_by": {"colour"}})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
