package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"crusaiders.backend/internal/domain/entities"
	domainerrors "crusaiders.backend/internal/domain/errors"
	"crusaiders.backend/internal/infrastructure/models"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, input *entities.InsertProject) (*entities.Project, error) {
	m := &models.Project{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		Year:        input.Year,
		GithubURL:   input.GithubURL,
		ExternalURL: input.ExternalURL,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int) (*entities.Project, error) {
	var m models.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]*entities.Project, error) {
	var ms []models.Project
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Project, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *ProjectRepository) toEntity(m *models.Project) *entities.Project {
	return &entities.Project{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		Category:    m.Category,
		Year:        m.Year,
		GithubURL:   m.GithubURL,
		ExternalURL: m.ExternalURL,
	}
}
