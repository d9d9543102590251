package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"crusaiders.backend/internal/domain/entities"
	domainerrors "crusaiders.backend/internal/domain/errors"
	"crusaiders.backend/internal/infrastructure/models"
)

type WorkshopRegistrationRepository struct {
	db *gorm.DB
}

func NewWorkshopRegistrationRepository(db *gorm.DB) *WorkshopRegistrationRepository {
	return &WorkshopRegistrationRepository{db: db}
}

func (r *WorkshopRegistrationRepository) Create(ctx context.Context, input *entities.InsertWorkshopRegistration) (*entities.WorkshopRegistration, error) {
	m := &models.WorkshopRegistration{
		FullName:        input.FullName,
		Email:           input.Email,
		Workshop:        input.Workshop,
		PreferredDate:   input.PreferredDate,
		ExperienceLevel: input.ExperienceLevel,
		LearningGoals:   input.LearningGoals,
		AcceptedTerms:   input.AcceptedTerms,
		CreatedAt:       time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *WorkshopRegistrationRepository) GetByID(ctx context.Context, id int) (*entities.WorkshopRegistration, error) {
	var m models.WorkshopRegistration
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *WorkshopRegistrationRepository) List(ctx context.Context) ([]*entities.WorkshopRegistration, error) {
	var ms []models.WorkshopRegistration
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.WorkshopRegistration, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *WorkshopRegistrationRepository) toEntity(m *models.WorkshopRegistration) *entities.WorkshopRegistration {
	return &entities.WorkshopRegistration{
		ID:              m.ID,
		FullName:        m.FullName,
		Email:           m.Email,
		Workshop:        m.Workshop,
		PreferredDate:   m.PreferredDate,
		ExperienceLevel: m.ExperienceLevel,
		LearningGoals:   m.LearningGoals,
		AcceptedTerms:   m.AcceptedTerms,
		CreatedAt:       m.CreatedAt,
	}
}
