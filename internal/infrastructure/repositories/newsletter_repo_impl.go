package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"crusaiders.backend/internal/infrastructure/models"
)

type NewsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

// Subscribe inserts the email, ignoring duplicates so re-subscribing stays
// a no-op.
func (r *NewsletterRepository) Subscribe(ctx context.Context, email string) error {
	m := &models.NewsletterSubscriber{Email: email}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(m).Error
}

func (r *NewsletterRepository) ListEmails(ctx context.Context) ([]string, error) {
	var emails []string
	if err := r.db.WithContext(ctx).
		Model(&models.NewsletterSubscriber{}).
		Order("email ASC").
		Pluck("email", &emails).Error; err != nil {
		return nil, err
	}
	return emails, nil
}
