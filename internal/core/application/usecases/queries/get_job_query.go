package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetJobQueryIsNotConstructed = errors.New(
	"GetJobQuery must be created via NewGetJobQuery constructor",
)

// GetJobQuery fetches a single job by id.
type GetJobQuery struct {
	id kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetJobQuery(id kernel.UUID) (GetJobQuery, error) {
	if err := id.Validate(); err != nil {
		return GetJobQuery{}, err
	}
	return GetJobQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetJobQuery) Validate() error {
	return q.guard.Validate(ErrGetJobQueryIsNotConstructed)
}

func (q GetJobQuery) ID() kernel.UUID {
	return q.id
}
