package models

import "time"

type WorkshopRegistration struct {
	ID              int    `gorm:"primaryKey;autoIncrement"`
	FullName        string `gorm:"type:text;not null"`
	Email           string `gorm:"type:text;not null"`
	Workshop        string `gorm:"type:text;not null"`
	PreferredDate   string `gorm:"type:text;not null"`
	ExperienceLevel string `gorm:"type:text;not null"`
	LearningGoals   string `gorm:"type:text;not null"`
	AcceptedTerms   bool   `gorm:"not null"`
	CreatedAt       time.Time
}

func (WorkshopRegistration) TableName() string { return "workshop_registrations" }
