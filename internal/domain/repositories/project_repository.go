package repositories

import (
	"context"

	"crusaiders.backend/internal/domain/entities"
)

type ProjectRepository interface {
	Create(ctx context.Context, input *entities.InsertProject) (*entities.Project, error)
	GetByID(ctx context.Context, id int) (*entities.Project, error)
	List(ctx context.Context) ([]*entities.Project, error)
}
