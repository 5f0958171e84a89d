package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/job"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GetJobQueryHandler struct {
	db *gorm.DB
}

func NewGetJobQueryHandler(db *gorm.DB) GetJobQueryHandler {
	return GetJobQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for unknown ids.
func (h GetJobQueryHandler) Handle(ctx context.Context, query GetJobQuery) (*job.Job, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var row jobRow
	err := h.db.WithContext(ctx).
		Joins(destinationJoin).
		Where(clause.Eq{Column: column(jobsTable, "id"), Value: query.ID().Bytes()}).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", query.ID().String())
		}
		return nil, err
	}

	return row.toDomain()
}
