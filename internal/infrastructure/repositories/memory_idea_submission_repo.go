package repositories

import (
	"context"
	"time"

	"crusaiders.backend/internal/domain/entities"
	domainerrors "crusaiders.backend/internal/domain/errors"
	"crusaiders.backend/internal/infrastructure/memstore"
)

type MemoryIdeaSubmissionRepository struct {
	records *memstore.Collection[*entities.IdeaSubmission]
}

func NewMemoryIdeaSubmissionRepository() *MemoryIdeaSubmissionRepository {
	return &MemoryIdeaSubmissionRepository{records: memstore.NewCollection[*entities.IdeaSubmission]()}
}

func (r *MemoryIdeaSubmissionRepository) Create(_ context.Context, input *entities.InsertIdeaSubmission) (*entities.IdeaSubmission, error) {
	now := time.Now()
	return r.records.Insert(func(id int) *entities.IdeaSubmission {
		return input.Record(id, now)
	}), nil
}

func (r *MemoryIdeaSubmissionRepository) GetByID(_ context.Context, id int) (*entities.IdeaSubmission, error) {
	item, ok := r.records.Get(id)
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return item, nil
}

func (r *MemoryIdeaSubmissionRepository) List(_ context.Context) ([]*entities.IdeaSubmission, error) {
	return r.records.List(), nil
}
