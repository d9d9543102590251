package repositories

import (
	"context"

	"crusaiders.backend/internal/domain/entities"
	domainerrors "crusaiders.backend/internal/domain/errors"
	"crusaiders.backend/internal/infrastructure/memstore"
)

type MemoryTeamMemberRepository struct {
	records *memstore.Collection[*entities.TeamMember]
}

func NewMemoryTeamMemberRepository() *MemoryTeamMemberRepository {
	return &MemoryTeamMemberRepository{records: memstore.NewCollection[*entities.TeamMember]()}
}

func (r *MemoryTeamMemberRepository) Create(_ context.Context, input *entities.InsertTeamMember) (*entities.TeamMember, error) {
	return r.records.Insert(input.Record), nil
}

func (r *MemoryTeamMemberRepository) GetByID(_ context.Context, id int) (*entities.TeamMember, error) {
	item, ok := r.records.Get(id)
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return item, nil
}

func (r *MemoryTeamMemberRepository) List(_ context.Context) ([]*entities.TeamMember, error) {
	return r.records.List(), nil
}
