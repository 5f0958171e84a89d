package http

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

const (
	apiPrefix  = "/api/v1"
	apiVersion = "1.0.0"

	moneyPattern = `^-?[0-9]+(\.[0-9]+)?$`
)

func schemaRef(name string) string {
	return "#/components/schemas/" + name
}

func moneySchema() *openapi3.Schema {
	return openapi3.NewStringSchema().WithPattern(moneyPattern)
}

func boundedString(minLength, maxLength int64) *openapi3.Schema {
	return openapi3.NewStringSchema().WithMinLength(minLength).WithMaxLength(maxLength)
}

func componentSchemas() openapi3.Schemas {
	pageInfo := openapi3.NewObjectSchema().
		WithProperty("has_next_page", openapi3.NewBoolSchema()).
		WithProperty("has_previous_page", openapi3.NewBoolSchema()).
		WithProperty("start_cursor", openapi3.NewStringSchema().WithNullable()).
		WithProperty("end_cursor", openapi3.NewStringSchema().WithNullable())

	address := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewStringSchema()).
		WithProperty("recipient", openapi3.NewStringSchema()).
		WithProperty("street_address", openapi3.NewStringSchema()).
		WithProperty("street_address_2", openapi3.NewStringSchema()).
		WithProperty("city", openapi3.NewStringSchema()).
		WithProperty("state", openapi3.NewStringSchema()).
		WithProperty("zip_code", openapi3.NewStringSchema())

	addressInput := openapi3.NewObjectSchema().
		WithProperty("recipient", boundedString(1, 100)).
		WithProperty("street_address", boundedString(1, 100)).
		WithProperty("street_address_2", boundedString(0, 100)).
		WithProperty("city", boundedString(1, 50)).
		WithProperty("state", boundedString(2, 2)).
		WithProperty("zip_code", boundedString(1, 10)).
		WithRequired([]string{"recipient", "street_address", "city", "state", "zip_code"})

	jobSchema := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewStringSchema()).
		WithProperty("vehicle_registration", openapi3.NewStringSchema().WithNullable()).
		WithPropertyRef("destination", openapi3.NewSchemaRef(schemaRef("Address"), address)).
		WithProperty("income", moneySchema()).
		WithProperty("cost", moneySchema()).
		WithProperty("delivery_slot_starts_at", openapi3.NewDateTimeSchema()).
		WithProperty("delivery_slot_ends_at", openapi3.NewDateTimeSchema()).
		WithProperty("created_at", openapi3.NewDateTimeSchema()).
		WithProperty("completed_at", openapi3.NewDateTimeSchema().WithNullable()).
		WithProperty("completed", openapi3.NewBoolSchema()).
		WithProperty("status", openapi3.NewStringSchema().WithEnum("unassigned", "assigned", "completed"))

	vehicleObject := func() *openapi3.Schema {
		return openapi3.NewObjectSchema().
			WithProperty("id", openapi3.NewStringSchema()).
			WithProperty("registration", openapi3.NewStringSchema()).
			WithProperty("total_income", moneySchema()).
			WithProperty("total_cost", moneySchema())
	}
	vehicleSchema := vehicleObject()

	jobRef := openapi3.NewSchemaRef(schemaRef("Job"), jobSchema)
	vehicleRef := openapi3.NewSchemaRef(schemaRef("Vehicle"), vehicleSchema)
	pageInfoRef := openapi3.NewSchemaRef(schemaRef("PageInfo"), pageInfo)

	edge := func(node *openapi3.SchemaRef) *openapi3.Schema {
		return openapi3.NewObjectSchema().
			WithProperty("cursor", openapi3.NewStringSchema()).
			WithPropertyRef("node", node)
	}

	return openapi3.Schemas{
		"Error": openapi3.NewSchemaRef("", openapi3.NewObjectSchema().
			WithProperty("code", openapi3.NewIntegerSchema()).
			WithProperty("message", openapi3.NewStringSchema()).
			WithRequired([]string{"code", "message"})),
		"PageInfo":     pageInfoRef,
		"Address":      openapi3.NewSchemaRef("", address),
		"AddressInput": openapi3.NewSchemaRef("", addressInput),
		"Job":          jobRef,
		"Vehicle":      vehicleRef,
		"JobConnection": openapi3.NewSchemaRef("", openapi3.NewObjectSchema().
			WithProperty("edges", openapi3.NewArraySchema().WithItems(edge(jobRef))).
			WithPropertyRef("page_info", pageInfoRef).
			WithProperty("current_page_count", openapi3.NewIntegerSchema()).
			WithProperty("total_income", moneySchema()).
			WithProperty("total_cost", moneySchema())),
		"VehicleConnection": openapi3.NewSchemaRef("", openapi3.NewObjectSchema().
			WithProperty("edges", openapi3.NewArraySchema().WithItems(edge(vehicleRef))).
			WithPropertyRef("page_info", pageInfoRef)),
		"NewVehicle": openapi3.NewSchemaRef("", openapi3.NewObjectSchema().
			WithProperty("registration", boundedString(1, 10)).
			WithRequired([]string{"registration"})),
		"CreateVehicleResult": openapi3.NewSchemaRef("", openapi3.NewObjectSchema().
			WithProperty("success", openapi3.NewBoolSchema()).
			WithProperty("vehicle", vehicleObject().WithNullable())),
		"NewJob": openapi3.NewSchemaRef("", openapi3.NewObjectSchema().
			WithPropertyRef("destination", openapi3.NewSchemaRef(schemaRef("AddressInput"), addressInput)).
			WithProperty("income", moneySchema()).
			WithProperty("cost", moneySchema()).
			WithProperty("delivery_slot_starts_at", openapi3.NewDateTimeSchema()).
			WithProperty("delivery_slot_ends_at", openapi3.NewDateTimeSchema()).
			WithProperty("vehicle_registration", boundedString(0, 10).WithNullable()).
			WithRequired([]string{
				"destination", "income", "cost", "delivery_slot_starts_at", "delivery_slot_ends_at",
			})),
		"JobCompletion": openapi3.NewSchemaRef("", openapi3.NewObjectSchema().
			WithProperty("completed_at", openapi3.NewDateTimeSchema()).
			WithRequired([]string{"completed_at"})),
		"VehicleJobs": openapi3.NewSchemaRef("", openapi3.NewObjectSchema().
			WithProperty("job_ids", openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema().WithMinLength(1))).
			WithRequired([]string{"job_ids"})),
		"AssignVehicleToJobsResult": openapi3.NewSchemaRef("", openapi3.NewObjectSchema().
			WithProperty("success", openapi3.NewBoolSchema()).
			WithProperty("jobs", openapi3.NewArraySchema().WithItems(jobSchema))),
	}
}

func filterParameterSchema(kind filterKind, operator string) *openapi3.Schema {
	if operator == opIsNull {
		return openapi3.NewBoolSchema()
	}
	switch kind {
	case timeKind, nullableTimeKind:
		return openapi3.NewDateTimeSchema()
	case decimalKind:
		return moneySchema()
	default:
		return openapi3.NewStringSchema()
	}
}

func filterParameters(fields []filterField) openapi3.Parameters {
	var params openapi3.Parameters
	for _, field := range fields {
		for _, operator := range field.kind.operators() {
			param := openapi3.NewQueryParameter(field.name + operator).
				WithSchema(filterParameterSchema(field.kind, operator))
			params = append(params, &openapi3.ParameterRef{Value: param})
		}
	}
	return params
}

func pageParameters() openapi3.Parameters {
	first := openapi3.NewQueryParameter("first").
		WithDescription("Page size, 1 to 100. Defaults to 100.").
		WithSchema(openapi3.NewIntegerSchema().WithMin(1).WithMax(100))
	after := openapi3.NewQueryParameter("after").
		WithDescription("Cursor of the item the page starts after.").
		WithSchema(openapi3.NewStringSchema())

	return openapi3.Parameters{
		&openapi3.ParameterRef{Value: first},
		&openapi3.ParameterRef{Value: after},
	}
}

func pathParameter(name string) *openapi3.ParameterRef {
	return &openapi3.ParameterRef{
		Value: openapi3.NewPathParameter(name).WithSchema(openapi3.NewStringSchema().WithMinLength(1)),
	}
}

// component references a schema from schemas with its value resolved, so
// request validation can use the document without a loader pass.
func component(schemas openapi3.Schemas, name string) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef(schemaRef(name), schemas[name].Value)
}

func jsonBody(schemas openapi3.Schemas, name string) *openapi3.RequestBodyRef {
	return &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().
			WithRequired(true).
			WithJSONSchemaRef(component(schemas, name)),
	}
}

type response struct {
	status      int
	description string
	schema      string
}

func responses(schemas openapi3.Schemas, items ...response) *openapi3.Responses {
	result := openapi3.NewResponsesWithCapacity(len(items))
	for _, item := range items {
		value := openapi3.NewResponse().WithDescription(item.description)
		if item.schema != "" {
			value = value.WithJSONSchemaRef(component(schemas, item.schema))
		}
		result.Set(strconv.Itoa(item.status), &openapi3.ResponseRef{Value: value})
	}
	return result
}

type operationSpec struct {
	id      string
	summary string
	tag     string
	params  openapi3.Parameters
	body    string
}

func operation(schemas openapi3.Schemas, spec operationSpec, items ...response) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = spec.id
	op.Summary = spec.summary
	op.Tags = []string{spec.tag}
	op.Parameters = spec.params
	if spec.body != "" {
		op.RequestBody = jsonBody(schemas, spec.body)
	}
	op.Responses = responses(schemas, items...)
	return op
}

var (
	badRequest = response{status: http.StatusBadRequest, description: "Invalid request", schema: "Error"}
	notFound   = response{status: http.StatusNotFound, description: "Not found", schema: "Error"}
)

// NewOpenAPIDocument describes the REST API. The same document validates
// incoming requests and is served through Swagger UI.
func NewOpenAPIDocument() *openapi3.T {
	schemas := componentSchemas()
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Logistics API",
			Description: "Vehicles and delivery jobs.",
			Version:     apiVersion,
		},
		Paths:      openapi3.NewPaths(),
		Components: &openapi3.Components{Schemas: schemas},
	}

	orderBy := openapi3.NewQueryParameter("order_by").WithSchema(
		openapi3.NewStringSchema().WithEnum(
			"registration", "-registration",
			"total_income", "-total_income",
			"total_cost", "-total_cost",
		),
	)
	vehicleParams := append(filterParameters(vehicleFilterFields), pageParameters()...)
	vehicleParams = append(vehicleParams, &openapi3.ParameterRef{Value: orderBy})
	registration := openapi3.Parameters{pathParameter("registration")}
	jobID := openapi3.Parameters{pathParameter("id")}

	doc.AddOperation(apiPrefix+"/vehicles", http.MethodGet, operation(schemas,
		operationSpec{id: "listVehicles", summary: "List vehicles with job totals", tag: "vehicles", params: vehicleParams},
		response{status: http.StatusOK, description: "A page of vehicles", schema: "VehicleConnection"},
		badRequest,
	))

	doc.AddOperation(apiPrefix+"/vehicles", http.MethodPost, operation(schemas,
		operationSpec{id: "createVehicle", summary: "Register a vehicle", tag: "vehicles", body: "NewVehicle"},
		response{status: http.StatusCreated, description: "Vehicle created", schema: "CreateVehicleResult"},
		response{status: http.StatusConflict, description: "Registration taken", schema: "CreateVehicleResult"},
		badRequest,
	))

	doc.AddOperation(apiPrefix+"/vehicles/{registration}", http.MethodGet, operation(schemas,
		operationSpec{id: "vehicleByRegistration", summary: "Get a vehicle with job totals", tag: "vehicles", params: registration},
		response{status: http.StatusOK, description: "The vehicle", schema: "Vehicle"},
		badRequest,
		notFound,
	))

	doc.AddOperation(apiPrefix+"/vehicles/{registration}", http.MethodDelete, operation(schemas,
		operationSpec{id: "deleteVehicle", summary: "Delete a vehicle and its jobs", tag: "vehicles", params: registration},
		response{status: http.StatusNoContent, description: "Vehicle deleted"},
		badRequest,
		notFound,
	))

	doc.AddOperation(apiPrefix+"/vehicles/{registration}/jobs", http.MethodPost, operation(schemas,
		operationSpec{
			id:      "assignVehicleToJobs",
			summary: "Assign a vehicle to jobs",
			tag:     "vehicles",
			params:  registration,
			body:    "VehicleJobs",
		},
		response{status: http.StatusOK, description: "Updated jobs", schema: "AssignVehicleToJobsResult"},
		response{status: http.StatusNotFound, description: "Unknown vehicle", schema: "AssignVehicleToJobsResult"},
		badRequest,
	))

	doc.AddOperation(apiPrefix+"/jobs", http.MethodGet, operation(schemas,
		operationSpec{
			id:      "deliveryJobs",
			summary: "List delivery jobs with page totals",
			tag:     "jobs",
			params:  append(filterParameters(jobFilterFields), pageParameters()...),
		},
		response{status: http.StatusOK, description: "A page of jobs", schema: "JobConnection"},
		badRequest,
	))

	doc.AddOperation(apiPrefix+"/jobs", http.MethodPost, operation(schemas,
		operationSpec{id: "createJob", summary: "Create a delivery job", tag: "jobs", body: "NewJob"},
		response{status: http.StatusCreated, description: "Job created", schema: "Job"},
		badRequest,
		notFound,
	))

	doc.AddOperation(apiPrefix+"/jobs/{id}", http.MethodGet, operation(schemas,
		operationSpec{id: "getJob", summary: "Get a delivery job", tag: "jobs", params: jobID},
		response{status: http.StatusOK, description: "The job", schema: "Job"},
		badRequest,
		notFound,
	))

	doc.AddOperation(apiPrefix+"/jobs/{id}/completion", http.MethodPost, operation(schemas,
		operationSpec{id: "markJobCompleted", summary: "Mark a job as completed", tag: "jobs", params: jobID, body: "JobCompletion"},
		response{status: http.StatusOK, description: "The completed job", schema: "Job"},
		badRequest,
		notFound,
		response{status: http.StatusConflict, description: "Job cannot be completed", schema: "Error"},
	))

	return doc
}

// swaggerDoc serves a rendered document to echo-swagger.
type swaggerDoc struct {
	raw string
}

func (d swaggerDoc) ReadDoc() string {
	return d.raw
}

var registerSwagger sync.Once

// RegisterSwaggerDoc publishes doc under the default swag instance name.
// Only the first call has an effect.
func RegisterSwaggerDoc(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	registerSwagger.Do(func() {
		swag.Register(swag.Name, swaggerDoc{raw: string(raw)})
	})
	return nil
}
