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

type ContactSubmissionRepository struct {
	db *gorm.DB
}

func NewContactSubmissionRepository(db *gorm.DB) *ContactSubmissionRepository {
	return &ContactSubmissionRepository{db: db}
}

func (r *ContactSubmissionRepository) Create(ctx context.Context, input *entities.InsertContactSubmission) (*entities.ContactSubmission, error) {
	m := &models.ContactSubmission{
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *ContactSubmissionRepository) GetByID(ctx context.Context, id int) (*entities.ContactSubmission, error) {
	var m models.ContactSubmission
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ContactSubmissionRepository) List(ctx context.Context) ([]*entities.ContactSubmission, error) {
	var ms []models.ContactSubmission
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.ContactSubmission, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *ContactSubmissionRepository) toEntity(m *models.ContactSubmission) *entities.ContactSubmission {
	return &entities.ContactSubmission{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}
