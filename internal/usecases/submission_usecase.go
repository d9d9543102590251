package usecases

import (
	"context"
	"strings"

	"crusaiders.backend/internal/domain/entities"
	domainerrors "crusaiders.backend/internal/domain/errors"
	"crusaiders.backend/internal/domain/repositories"
	"crusaiders.backend/internal/domain/validation"
)

// SubmissionUsecase orchestrates the validate-store-acknowledge pipeline for
// the four submission kinds. A payload that fails validation never reaches
// the store.
type SubmissionUsecase struct {
	contactRepo    repositories.ContactSubmissionRepository
	ideaRepo       repositories.IdeaSubmissionRepository
	workshopRepo   repositories.WorkshopRegistrationRepository
	newsletterRepo repositories.NewsletterRepository
	validator      *validation.Validator
}

// NewSubmissionUsecase creates a new submission usecase
func NewSubmissionUsecase(
	contactRepo repositories.ContactSubmissionRepository,
	ideaRepo repositories.IdeaSubmissionRepository,
	workshopRepo repositories.WorkshopRegistrationRepository,
	newsletterRepo repositories.NewsletterRepository,
	validator *validation.Validator,
) *SubmissionUsecase {
	return &SubmissionUsecase{
		contactRepo:    contactRepo,
		ideaRepo:       ideaRepo,
		workshopRepo:   workshopRepo,
		newsletterRepo: newsletterRepo,
		validator:      validator,
	}
}

// SubmitContact validates and stores a contact form submission.
func (u *SubmissionUsecase) SubmitContact(ctx context.Context, input *entities.InsertContactSubmission) (*entities.ContactSubmission, error) {
	if err := u.validator.Struct(input); err != nil {
		return nil, err
	}
	return u.contactRepo.Create(ctx, input)
}

// SubmitIdea validates and stores an idea submission.
func (u *SubmissionUsecase) SubmitIdea(ctx context.Context, input *entities.InsertIdeaSubmission) (*entities.IdeaSubmission, error) {
	if err := u.validator.Struct(input); err != nil {
		return nil, err
	}
	return u.ideaRepo.Create(ctx, input)
}

// RegisterWorkshop validates and stores a workshop registration.
func (u *SubmissionUsecase) RegisterWorkshop(ctx context.Context, input *entities.InsertWorkshopRegistration) (*entities.WorkshopRegistration, error) {
	if err := u.validator.Struct(input); err != nil {
		return nil, err
	}
	return u.workshopRepo.Create(ctx, input)
}

// SubscribeNewsletter validates the email and adds it to the subscriber
// set. Subscribing an address twice is a no-op.
func (u *SubmissionUsecase) SubscribeNewsletter(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return domainerrors.BadRequest("Email is required")
	}
	if !u.validator.Email(email) {
		return domainerrors.BadRequest("Invalid email address")
	}
	return u.newsletterRepo.Subscribe(ctx, email)
}

// ListNewsletterSubscribers returns all distinct subscribed emails.
func (u *SubmissionUsecase) ListNewsletterSubscribers(ctx context.Context) ([]string, error) {
	return u.newsletterRepo.ListEmails(ctx)
}
