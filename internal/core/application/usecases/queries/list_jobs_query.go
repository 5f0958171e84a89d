// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries translate typed filters into SQL predicates and return paginated
// read models.
package queries

import (
	"errors"

	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/guard"
)

var ErrListJobsQueryIsNotConstructed = errors.New(
	"ListJobsQuery must be created via NewListJobsQuery constructor",
)

// ListJobsQuery selects a page of delivery jobs ordered by creation time.
//
// Example:
//
//	isNull := true
//	filter := JobFilter{}
//	filter.CompletedAt.IsNull = &isNull
//	page, _ := NewPageRequest(nil, nil)
//
//	result, err := handler.Handle(ctx, NewListJobsQuery(filter, page))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Totals.Count, result.Totals.Income)
type ListJobsQuery struct {
	filter JobFilter
	page   PageRequest

	guard guard.ConstructorGuard
}

func NewListJobsQuery(filter JobFilter, page PageRequest) ListJobsQuery {
	return ListJobsQuery{
		filter: filter,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}
}

func (q ListJobsQuery) Validate() error {
	return q.guard.Validate(ErrListJobsQueryIsNotConstructed)
}

func (q ListJobsQuery) Filter() JobFilter {
	return q.filter
}

func (q ListJobsQuery) Page() PageRequest {
	return q.page
}

// JobEdge is one job with its cursor.
type JobEdge struct {
	Cursor string
	Node   *job.Job
}

// ListJobsResponse is a page of jobs. Totals cover exactly Edges.
type ListJobsResponse struct {
	Edges    []JobEdge
	PageInfo PageInfo
	Totals   services.PageTotals
}

// Jobs returns the nodes of all edges.
func (r ListJobsResponse) Jobs() []*job.Job {
	jobs := make([]*job.Job, 0, len(r.Edges))
	for _, edge := range r.Edges {
		jobs = append(jobs, edge.Node)
	}
	return jobs
}
