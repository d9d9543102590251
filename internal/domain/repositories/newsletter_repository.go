package repositories

import "context"

// NewsletterRepository keeps the distinct set of subscribed emails.
// Subscribe is idempotent.
type NewsletterRepository interface {
	Subscribe(ctx context.Context, email string) error
	ListEmails(ctx context.Context) ([]string, error)
}
