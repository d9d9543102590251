package repositories

import (
	"context"

	"crusaiders.backend/internal/domain/entities"
	domainerrors "crusaiders.backend/internal/domain/errors"
	"crusaiders.backend/internal/infrastructure/memstore"
)

type MemoryProjectRepository struct {
	records *memstore.Collection[*entities.Project]
}

func NewMemoryProjectRepository() *MemoryProjectRepository {
	return &MemoryProjectRepository{records: memstore.NewCollection[*entities.Project]()}
}

func (r *MemoryProjectRepository) Create(_ context.Context, input *entities.InsertProject) (*entities.Project, error) {
	return r.records.Insert(input.Record), nil
}

func (r *MemoryProjectRepository) GetByID(_ context.Context, id int) (*entities.Project, error) {
	item, ok := r.records.Get(id)
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return item, nil
}

func (r *MemoryProjectRepository) List(_ context.Context) ([]*entities.Project, error) {
	return r.records.List(), nil
}
