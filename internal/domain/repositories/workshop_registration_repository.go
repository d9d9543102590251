package repositories

import (
	"context"

	"crusaiders.backend/internal/domain/entities"
)

type WorkshopRegistrationRepository interface {
	Create(ctx context.Context, input *entities.InsertWorkshopRegistration) (*entities.WorkshopRegistration, error)
	GetByID(ctx context.Context, id int) (*entities.WorkshopRegistration, error)
	List(ctx context.Context) ([]*entities.WorkshopRegistration, error)
}
