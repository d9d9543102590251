package entities

import "time"

// Workshops open for registration.
const (
	WorkshopFundamentals   = "fundamentals"
	WorkshopEthical        = "ethical"
	WorkshopImplementation = "implementation"
)

// Experience levels accepted on registration.
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
)

// WorkshopRegistration is a stored workshop registration.
type WorkshopRegistration struct {
	ID              int       `json:"id"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	Workshop        string    `json:"workshop"`
	PreferredDate   string    `json:"preferredDate"`
	ExperienceLevel string    `json:"experienceLevel"`
	LearningGoals   string    `json:"learningGoals"`
	AcceptedTerms   bool      `json:"acceptedTerms"`
	CreatedAt       time.Time `json:"createdAt"`
}

// InsertWorkshopRegistration is the insertable projection of
// WorkshopRegistration. AcceptedTerms must be literally true.
type InsertWorkshopRegistration struct {
	FullName        string `json:"fullName" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Workshop        string `json:"workshop" validate:"required,oneof=fundamentals ethical implementation"`
	PreferredDate   string `json:"preferredDate" validate:"required"`
	ExperienceLevel string `json:"experienceLevel" validate:"required,oneof=beginner intermediate advanced"`
	LearningGoals   string `json:"learningGoals" validate:"required,min=10"`
	AcceptedTerms   bool   `json:"acceptedTerms" validate:"eq=true"`
}

// Record materializes the insert projection into a full WorkshopRegistration.
func (in *InsertWorkshopRegistration) Record(id int, createdAt time.Time) *WorkshopRegistration {
	return &WorkshopRegistration{
		ID:              id,
		FullName:        in.FullName,
		Email:           in.Email,
		Workshop:        in.Workshop,
		PreferredDate:   in.PreferredDate,
		ExperienceLevel: in.ExperienceLevel,
		LearningGoals:   in.LearningGoals,
		AcceptedTerms:   in.AcceptedTerms,
		CreatedAt:       createdAt,
	}
}
