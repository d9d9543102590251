package models

import (
	"github.com/volatiletech/null/v8"
)

type Project struct {
	ID          int         `gorm:"primaryKey;autoIncrement"`
	Title       string      `gorm:"type:text;not null"`
	Description string      `gorm:"type:text;not null"`
	ImageURL    null.String `gorm:"type:text"`
	Category    string      `gorm:"type:text;not null"`
	Year        null.String `gorm:"type:text"`
	GithubURL   null.String `gorm:"type:text"`
	ExternalURL null.String `gorm:"type:text"`
}

func (Project) TableName() string { return "projects" }
