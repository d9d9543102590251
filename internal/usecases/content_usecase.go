package usecases

import (
	"context"

	"go.uber.org/zap"

	"crusaiders.backend/internal/domain/entities"
	"crusaiders.backend/internal/domain/repositories"
	"crusaiders.backend/internal/infrastructure/seed"
	"crusaiders.backend/pkg/logger"
)

// ContentUsecase serves the read-only display entities. When the store is
// empty or fails, it falls back to the default seed set so the public pages
// always render a full roster. Store failures are logged, not surfaced.
type ContentUsecase struct {
	teamRepo    repositories.TeamMemberRepository
	projectRepo repositories.ProjectRepository
}

// NewContentUsecase creates a new content usecase
func NewContentUsecase(
	teamRepo repositories.TeamMemberRepository,
	projectRepo repositories.ProjectRepository,
) *ContentUsecase {
	return &ContentUsecase{
		teamRepo:    teamRepo,
		projectRepo: projectRepo,
	}
}

// ListTeamMembers returns all team members, never an empty list.
func (u *ContentUsecase) ListTeamMembers(ctx context.Context) ([]*entities.TeamMember, error) {
	items, err := u.teamRepo.List(ctx)
	if err != nil {
		logger.Warn(ctx, "team member query failed, serving defaults", zap.Error(err))
		return fallbackTeamMembers(), nil
	}
	if len(items) == 0 {
		return fallbackTeamMembers(), nil
	}
	return items, nil
}

// ListProjects returns all projects, never an empty list.
func (u *ContentUsecase) ListProjects(ctx context.Context) ([]*entities.Project, error) {
	items, err := u.projectRepo.List(ctx)
	if err != nil {
		logger.Warn(ctx, "project query failed, serving defaults", zap.Error(err))
		return fallbackProjects(), nil
	}
	if len(items) == 0 {
		return fallbackProjects(), nil
	}
	return items, nil
}

func fallbackTeamMembers() []*entities.TeamMember {
	defaults := seed.TeamMembers()
	items := make([]*entities.TeamMember, 0, len(defaults))
	for i, in := range defaults {
		items = append(items, in.Record(i+1))
	}
	return items
}

func fallbackProjects() []*entities.Project {
	defaults := seed.Projects()
	items := make([]*entities.Project, 0, len(defaults))
	for i, in := range defaults {
		items = append(items, in.Record(i+1))
	}
	return items
}
