package repositories

import (
	"context"

	"crusaiders.backend/internal/infrastructure/memstore"
)

type MemoryNewsletterRepository struct {
	emails *memstore.Set
}

func NewMemoryNewsletterRepository() *MemoryNewsletterRepository {
	return &MemoryNewsletterRepository{emails: memstore.NewSet()}
}

// Subscribe adds email to the subscriber set. Re-subscribing is a no-op.
func (r *MemoryNewsletterRepository) Subscribe(_ context.Context, email string) error {
	r.emails.Add(email)
	return nil
}

func (r *MemoryNewsletterRepository) ListEmails(_ context.Context) ([]string, error) {
	return r.emails.Values(), nil
}
