package entities

import "time"

// Idea categories accepted by the API.
const (
	IdeaCategoryResearch    = "research"
	IdeaCategoryApplication = "application"
	IdeaCategoryEducation   = "education"
	IdeaCategoryPolicy      = "policy"
	IdeaCategoryOther       = "other"
)

// IdeaSubmission is a stored idea form submission.
type IdeaSubmission struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Impact      string    `json:"impact"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
}

// InsertIdeaSubmission is the insertable projection of IdeaSubmission.
type InsertIdeaSubmission struct {
	Title       string `json:"title" validate:"required,min=3"`
	Category    string `json:"category" validate:"required,oneof=research application education policy other"`
	Description string `json:"description" validate:"required,min=20"`
	Impact      string `json:"impact" validate:"required,min=20"`
	Email       string `json:"email" validate:"required,email"`
}

// Record materializes the insert projection into a full IdeaSubmission.
func (in *InsertIdeaSubmission) Record(id int, createdAt time.Time) *IdeaSubmission {
	return &IdeaSubmission{
		ID:          id,
		Title:       in.Title,
		Category:    in.Category,
		Description: in.Description,
		Impact:      in.Impact,
		Email:       in.Email,
		CreatedAt:   createdAt,
	}
}
