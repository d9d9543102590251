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

type IdeaSubmissionRepository struct {
	db *gorm.DB
}

func NewIdeaSubmissionRepository(db *gorm.DB) *IdeaSubmissionRepository {
	return &IdeaSubmissionRepository{db: db}
}

func (r *IdeaSubmissionRepository) Create(ctx context.Context, input *entities.InsertIdeaSubmission) (*entities.IdeaSubmission, error) {
	m := &models.IdeaSubmission{
		Title:       input.Title,
		Category:    input.Category,
		Description: input.Description,
		Impact:      input.Impact,
		Email:       input.Email,
		CreatedAt:   time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *IdeaSubmissionRepository) GetByID(ctx context.Context, id int) (*entities.IdeaSubmission, error) {
	var m models.IdeaSubmission
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *IdeaSubmissionRepository) List(ctx context.Context) ([]*entities.IdeaSubmission, error) {
	var ms []models.IdeaSubmission
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.IdeaSubmission, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *IdeaSubmissionRepository) toEntity(m *models.IdeaSubmission) *entities.IdeaSubmission {
	return &entities.IdeaSubmission{
		ID:          m.ID,
		Title:       m.Title,
		Category:    m.Category,
		Description: m.Description,
		Impact:      m.Impact,
		Email:       m.Email,
		CreatedAt:   m.CreatedAt,
	}
}
