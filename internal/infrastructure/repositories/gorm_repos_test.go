package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"crusaiders.backend/internal/domain/entities"
	domainerrors "crusaiders.backend/internal/domain/errors"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestGormContactSubmissionRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewContactSubmissionRepository(db)
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
	assert.False(t, first.CreatedAt.IsZero())

	second, err := repo.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "question", got.Subject)

	_, err = repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 2, items[1].ID)
}

func TestGormIdeaSubmissionRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewIdeaSubmissionRepository(db)
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

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "research", got.Category)
}

func TestGormWorkshopRegistrationRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewWorkshopRegistrationRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &entities.InsertWorkshopRegistration{
		FullName:        "Ada Lovelace",
		Email:           "ada@crusaiders.org",
		Workshop:        "ethical",
		PreferredDate:   "2026-09-15",
		ExperienceLevel: "intermediate",
		LearningGoals:   "Build review checklists for model launches.",
		AcceptedTerms:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.AcceptedTerms)
	assert.Equal(t, "ethical", got.Workshop)
}

func TestGormContentRepositories(t *testing.T) {
	db := openTestDB(t)
	teamRepo := NewTeamMemberRepository(db)
	projectRepo := NewProjectRepository(db)
	ctx := context.Background()

	member, err := teamRepo.Create(ctx, &entities.InsertTeamMember{
		Name:      "Ada",
		Role:      "Engineer",
		Bio:       "Builds things",
		Skills:    []string{"Go", "ML"},
		ImageURL:  null.StringFrom("/images/ada.svg"),
		GithubURL: null.StringFrom("#"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, member.ID)

	got, err := teamRepo.GetByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "ML"}, got.Skills)
	assert.Equal(t, "/images/ada.svg", got.ImageURL.String)
	assert.False(t, got.TwitterURL.Valid)

	project, err := projectRepo.Create(ctx, &entities.InsertProject{
		Title:       "Toolkit",
		Description: "A toolkit",
		Category:    "Tool",
		Year:        null.StringFrom("2023"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, project.ID)

	projects, err := projectRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "2023", projects[0].Year.String)
}

func TestGormNewsletterRepositoryIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	repo := NewNewsletterRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Subscribe(ctx, "jo@x.com"))
	require.NoError(t, repo.Subscribe(ctx, "jo@x.com"))
	require.NoError(t, repo.Subscribe(ctx, "ada@x.com"))

	emails, err := repo.ListEmails(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ada@x.com", "jo@x.com"}, emails)
}
