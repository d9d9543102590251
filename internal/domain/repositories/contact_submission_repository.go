package repositories

import (
	"context"

	"crusaiders.backend/internal/domain/entities"
)

type ContactSubmissionRepository interface {
	Create(ctx context.Context, input *entities.InsertContactSubmission) (*entities.ContactSubmission, error)
	GetByID(ctx context.Context, id int) (*entities.ContactSubmission, error)
	List(ctx context.Context) ([]*entities.ContactSubmission, error)
}
