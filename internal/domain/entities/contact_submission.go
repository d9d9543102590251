package entities

import "time"

// Contact form subjects accepted by the API.
const (
	SubjectCollaboration = "collaboration"
	SubjectQuestion      = "question"
	SubjectSupport       = "support"
	SubjectOther         = "other"
)

// ContactSubmission is a stored contact form submission.
type ContactSubmission struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertContactSubmission is the insertable projection of ContactSubmission.
// The id and createdAt are assigned by the store.
type InsertContactSubmission struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,oneof=collaboration question support other"`
	Message string `json:"message" validate:"required,min=10"`
}

// Record materializes the insert projection into a full ContactSubmission.
func (in *InsertContactSubmission) Record(id int, createdAt time.Time) *ContactSubmission {
	return &ContactSubmission{
		ID:        id,
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: createdAt,
	}
}
