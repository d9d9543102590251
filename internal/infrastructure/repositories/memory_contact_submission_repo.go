package repositories

import (
	"context"
	"time"

	"crusaiders.backend/internal/domain/entities"
	domainerrors "crusaiders.backend/internal/domain/errors"
	"crusaiders.backend/internal/infrastructure/memstore"
)

type MemoryContactSubmissionRepository struct {
	records *memstore.Collection[*entities.ContactSubmission]
}

func NewMemoryContactSubmissionRepository() *MemoryContactSubmissionRepository {
	return &MemoryContactSubmissionRepository{records: memstore.NewCollection[*entities.ContactSubmission]()}
}

func (r *MemoryContactSubmissionRepository) Create(_ context.Context, input *entities.InsertContactSubmission) (*entities.ContactSubmission, error) {
	now := time.Now()
	return r.records.Insert(func(id int) *entities.ContactSubmission {
		return input.Record(id, now)
	}), nil
}

func (r *MemoryContactSubmissionRepository) GetByID(_ context.Context, id int) (*entities.ContactSubmission, error) {
	item, ok := r.records.Get(id)
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return item, nil
}

func (r *MemoryContactSubmissionRepository) List(_ context.Context) ([]*entities.ContactSubmission, error) {
	return r.records.List(), nil
}
