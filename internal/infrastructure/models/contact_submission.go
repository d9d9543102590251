package models

import "time"

type ContactSubmission struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:text;not null"`
	Email     string `gorm:"type:text;not null"`
	Subject   string `gorm:"type:text;not null"`
	Message   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (ContactSubmission) TableName() string { return "contact_submissions" }
