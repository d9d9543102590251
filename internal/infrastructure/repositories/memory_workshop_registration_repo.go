package repositories

import (
	"context"
	"time"

	"crusaiders.backend/internal/domain/entities"
	domainerrors "crusaiders.backend/internal/domain/errors"
	"crusaiders.backend/internal/infrastructure/memstore"
)

type MemoryWorkshopRegistrationRepository struct {
	records *memstore.Collection[*entities.WorkshopRegistration]
}

func NewMemoryWorkshopRegistrationRepository() *MemoryWorkshopRegistrationRepository {
	return &MemoryWorkshopRegistrationRepository{records: memstore.NewCollection[*entities.WorkshopRegistration]()}
}

func (r *MemoryWorkshopRegistrationRepository) Create(_ context.Context, input *entities.InsertWorkshopRegistration) (*entities.WorkshopRegistration, error) {
	now := time.Now()
	return r.records.Insert(func(id int) *entities.WorkshopRegistration {
		return input.Record(id, now)
	}), nil
}

func (r *MemoryWorkshopRegistrationRepository) GetByID(_ context.Context, id int) (*entities.WorkshopRegistration, error) {
	item, ok := r.records.Get(id)
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return item, nil
}

func (r *MemoryWorkshopRegistrationRepository) List(_ context.Context) ([]*entities.WorkshopRegistration, error) {
	return r.records.List(), nil
}
