package http

import (
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/shopspring/decimal"
)

// Error is the body of every failed request that has no result shape of
// its own.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Address struct {
	ID             string `json:"id"`
	Recipient      string `json:"recipient"`
	StreetAddress  string `json:"street_address"`
	StreetAddress2 string `json:"street_address_2"`
	City           string `json:"city"`
	State          string `json:"state"`
	ZipCode        string `json:"zip_code"`
}

type Job struct {
	ID                   string     `json:"id"`
	VehicleRegistration  *string    `json:"vehicle_registration"`
	Destination          Address    `json:"destination"`
	Income               string     `json:"income"`
	Cost                 string     `json:"cost"`
	DeliverySlotStartsAt time.Time  `json:"delivery_slot_starts_at"`
	DeliverySlotEndsAt   time.Time  `json:"delivery_slot_ends_at"`
	CreatedAt            time.Time  `json:"created_at"`
	CompletedAt          *time.Time `json:"completed_at"`
	Completed            bool       `json:"completed"`
	Status               string     `json:"status"`
}

type Vehicle struct {
	ID           string `json:"id"`
	Registration string `json:"registration"`
	TotalIncome  string `json:"total_income"`
	TotalCost    string `json:"total_cost"`
}

type PageInfo struct {
	HasNextPage     bool    `json:"has_next_page"`
	HasPreviousPage bool    `json:"has_previous_page"`
	StartCursor     *string `json:"start_cursor"`
	EndCursor       *string `json:"end_cursor"`
}

type JobEdge struct {
	Cursor string `json:"cursor"`
	Node   Job    `json:"node"`
}

// JobConnection is a page of jobs. The counters cover only this page.
type JobConnection struct {
	Edges            []JobEdge `json:"edges"`
	PageInfo         PageInfo  `json:"page_info"`
	CurrentPageCount int       `json:"current_page_count"`
	TotalIncome      string    `json:"total_income"`
	TotalCost        string    `json:"total_cost"`
}

type VehicleEdge struct {
	Cursor string  `json:"cursor"`
	Node   Vehicle `json:"node"`
}

type VehicleConnection struct {
	Edges    []VehicleEdge `json:"edges"`
	PageInfo PageInfo      `json:"page_info"`
}

type CreateVehicleResult struct {
	Success bool     `json:"success"`
	Vehicle *Vehicle `json:"vehicle"`
}

type AssignVehicleToJobsResult struct {
	Success bool  `json:"success"`
	Jobs    []Job `json:"jobs"`
}

type NewVehicle struct {
	Registration string `json:"registration"`
}

type AddressInput struct {
	Recipient      string `json:"recipient"`
	StreetAddress  string `json:"street_address"`
	StreetAddress2 string `json:"street_address_2"`
	City           string `json:"city"`
	State          string `json:"state"`
	ZipCode        string `json:"zip_code"`
}

type NewJob struct {
	Destination          AddressInput    `json:"destination"`
	Income               decimal.Decimal `json:"income"`
	Cost                 decimal.Decimal `json:"cost"`
	DeliverySlotStartsAt time.Time       `json:"delivery_slot_starts_at"`
	DeliverySlotEndsAt   time.Time       `json:"delivery_slot_ends_at"`
	VehicleRegistration  *string         `json:"vehicle_registration"`
}

type JobCompletion struct {
	CompletedAt time.Time `json:"completed_at"`
}

type VehicleJobs struct {
	JobIDs []string `json:"job_ids"`
}

func addressFields(in AddressInput) job.AddressFields {
	return job.AddressFields{
		Recipient:      in.Recipient,
		StreetAddress:  in.StreetAddress,
		StreetAddress2: in.StreetAddress2,
		City:           in.City,
		State:          in.State,
		ZipCode:        in.ZipCode,
	}
}

func jobFromDomain(j *job.Job) Job {
	destination := j.Destination()

	var registration *string
	if v := j.Vehicle(); v != nil {
		value := v.String()
		registration = &value
	}

	return Job{
		ID:                  ToGlobalID(DeliveryJobType, j.ID().String()),
		VehicleRegistration: registration,
		Destination: Address{
			ID:             ToGlobalID(AddressType, destination.ID().String()),
			Recipient:      destination.Recipient(),
			StreetAddress:  destination.StreetAddress(),
			StreetAddress2: destination.StreetAddress2(),
			City:           destination.City(),
			State:          destination.State(),
			ZipCode:        destination.ZipCode(),
		},
		Income:               j.Income().String(),
		Cost:                 j.Cost().String(),
		DeliverySlotStartsAt: j.Slot().StartsAt(),
		DeliverySlotEndsAt:   j.Slot().EndsAt(),
		CreatedAt:            j.CreatedAt(),
		CompletedAt:          j.CompletedAt(),
		Completed:            j.Completed(),
		Status:               j.Status().String(),
	}
}

func jobsFromDomain(jobs []*job.Job) []Job {
	result := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		result = append(result, jobFromDomain(j))
	}
	return result
}

// newVehicleFromDomain describes a vehicle that has no jobs yet.
func newVehicleFromDomain(v *vehicle.Vehicle) Vehicle {
	registration := v.Registration().String()
	return Vehicle{
		ID:           ToGlobalID(VehicleType, registration),
		Registration: registration,
		TotalIncome:  kernel.ZeroMoney().String(),
		TotalCost:    kernel.ZeroMoney().String(),
	}
}

func vehicleFromSummary(summary queries.VehicleSummary) Vehicle {
	return Vehicle{
		ID:           ToGlobalID(VehicleType, summary.Registration),
		Registration: summary.Registration,
		TotalIncome:  summary.TotalIncome.String(),
		TotalCost:    summary.TotalCost.String(),
	}
}

func pageInfoFromQuery(info queries.PageInfo) PageInfo {
	return PageInfo{
		HasNextPage:     info.HasNextPage,
		HasPreviousPage: info.HasPreviousPage,
		StartCursor:     info.StartCursor,
		EndCursor:       info.EndCursor,
	}
}

func jobConnectionFromQuery(response queries.ListJobsResponse) JobConnection {
	edges := make([]JobEdge, 0, len(response.Edges))
	for _, edge := range response.Edges {
		edges = append(edges, JobEdge{Cursor: edge.Cursor, Node: jobFromDomain(edge.Node)})
	}

	return JobConnection{
		Edges:            edges,
		PageInfo:         pageInfoFromQuery(response.PageInfo),
		CurrentPageCount: response.Totals.Count,
		TotalIncome:      response.Totals.Income.String(),
		TotalCost:        response.Totals.Cost.String(),
	}
}

func vehicleConnectionFromQuery(response queries.ListVehiclesResponse) VehicleConnection {
	edges := make([]VehicleEdge, 0, len(response.Edges))
	for _, edge := range response.Edges {
		edges = append(edges, VehicleEdge{Cursor: edge.Cursor, Node: vehicleFromSummary(edge.Node)})
	}

	return VehicleConnection{
		Edges:    edges,
		PageInfo: pageInfoFromQuery(response.PageInfo),
	}
}
