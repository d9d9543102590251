package repositories

import (
	"context"

	"crusaiders.backend/internal/domain/entities"
)

type TeamMemberRepository interface {
	Create(ctx context.Context, input *entities.InsertTeamMember) (*entities.TeamMember, error)
	GetByID(ctx context.Context, id int) (*entities.TeamMember, error)
	List(ctx context.Context) ([]*entities.TeamMember, error)
}
