package entities

// NewsletterSubscriber is a distinct subscribed email address. Subscribers
// form a set: subscribing the same address twice is a no-op.
type NewsletterSubscriber struct {
	Email string `json:"email"`
}
