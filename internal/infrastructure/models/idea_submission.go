package models

import "time"

type IdeaSubmission struct {
	ID          int    `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"type:text;not null"`
	Category    string `gorm:"type:text;not null"`
	Description string `gorm:"type:text;not null"`
	Impact      string `gorm:"type:text;not null"`
	Email       string `gorm:"type:text;not null"`
	CreatedAt   time.Time
}

func (IdeaSubmission) TableName() string { return "idea_submissions" }
