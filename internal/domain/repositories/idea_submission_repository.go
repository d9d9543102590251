package repositories

import (
	"context"

	"crusaiders.backend/internal/domain/entities"
)

type IdeaSubmissionRepository interface {
	Create(ctx context.Context, input *entities.InsertIdeaSubmission) (*entities.IdeaSubmission, error)
	GetByID(ctx context.Context, id int) (*entities.IdeaSubmission, error)
	List(ctx context.Context) ([]*entities.IdeaSubmission, error)
}
