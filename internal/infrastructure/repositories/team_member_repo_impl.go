package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"crusaiders.backend/internal/domain/entities"
	domainerrors "crusaiders.backend/internal/domain/errors"
	"crusaiders.backend/internal/infrastructure/models"
)

type TeamMemberRepository struct {
	db *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

func (r *TeamMemberRepository) Create(ctx context.Context, input *entities.InsertTeamMember) (*entities.TeamMember, error) {
	m := &models.TeamMember{
		Name:        input.Name,
		Role:        input.Role,
		Bio:         input.Bio,
		ImageURL:    input.ImageURL,
		Skills:      input.Skills,
		LinkedInURL: input.LinkedInURL,
		GithubURL:   input.GithubURL,
		TwitterURL:  input.TwitterURL,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *TeamMemberRepository) GetByID(ctx context.Context, id int) (*entities.TeamMember, error) {
	var m models.TeamMember
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *TeamMemberRepository) List(ctx context.Context) ([]*entities.TeamMember, error) {
	var ms []models.TeamMember
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.TeamMember, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *TeamMemberRepository) toEntity(m *models.TeamMember) *entities.TeamMember {
	return &entities.TeamMember{
		ID:          m.ID,
		Name:        m.Name,
		Role:        m.Role,
		Bio:         m.Bio,
		ImageURL:    m.ImageURL,
		Skills:      m.Skills,
		LinkedInURL: m.LinkedInURL,
		GithubURL:   m.GithubURL,
		TwitterURL:  m.TwitterURL,
	}
}
