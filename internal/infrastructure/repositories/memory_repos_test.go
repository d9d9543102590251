package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crusaiders.backend/internal/domain/entities"
	domainerrors "crusaiders.backend/internal/domain/errors"
)

func TestMemoryContactSubmissionRepository(t *testing.T) {
	repo := NewMemoryContactSubmissionRepository()
	ctx := context.Background()

	input := &entities.InsertContactSubmission{
		Name:    "Jo",
		Email:   "jo@x.com",
		Subject: "question",
		Message: "Hello there!",
	}

	first, err := repo.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.WithinDuration(t, time.Now(), first.CreatedAt, time.Second)

	second, err := repo.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Jo", got.Name)

	_, err = repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestMemoryIdeaSubmissionRepository(t *testing.T) {
	repo := NewMemoryIdeaSubmissionRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &entities.InsertIdeaSubmission{
		Title:       "Open model evaluations",
		Category:    "research",
		Description: "A shared benchmark suite for community model evaluations.",
		Impact:      "Gives small labs a way to compare results with large ones.",
		Email:       "idea@crusaiders.org",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = repo.GetByID(ctx, 2)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMemoryWorkshopRegistrationRepository(t *testing.T) {
	repo := NewMemoryWorkshopRegistrationRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &entities.InsertWorkshopRegistration{
		FullName:        "Ada Lovelace",
		Email:           "ada@crusaiders.org",
		Workshop:        "fundamentals",
		PreferredDate:   "2026-09-15",
		ExperienceLevel: "beginner",
		LearningGoals:   "Understand how transformers work.",
		AcceptedTerms:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.True(t, created.AcceptedTerms)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestMemoryContentRepositories(t *testing.T) {
	teamRepo := NewMemoryTeamMemberRepository()
	projectRepo := NewMemoryProjectRepository()
	ctx := context.Background()

	member, err := teamRepo.Create(ctx, &entities.InsertTeamMember{
		Name: "Ada", Role: "Engineer", Bio: "Builds things",
		Skills: []string{"Go"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, member.ID)

	project, err := projectRepo.Create(ctx, &entities.InsertProject{
		Title: "Toolkit", Description: "A toolkit", Category: "Tool",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, project.ID)

	_, err = teamRepo.GetByID(ctx, 9)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	_, err = projectRepo.GetByID(ctx, 9)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMemoryNewsletterRepositoryIsIdempotent(t *testing.T) {
	repo := NewMemoryNewsletterRepository()
	ctx := context.Background()

	require.NoError(t, repo.Subscribe(ctx, "jo@x.com"))
	require.NoError(t, repo.Subscribe(ctx, "jo@x.com"))
	require.NoError(t, repo.Subscribe(ctx, "ada@x.com"))

	emails, err := repo.ListEmails(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"jo@x.com", "ada@x.com"}, emails)
}
