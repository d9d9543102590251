package models

import (
	"github.com/volatiletech/null/v8"
)

type TeamMember struct {
	ID          int         `gorm:"primaryKey;autoIncrement"`
	Name        string      `gorm:"type:text;not null"`
	Role        string      `gorm:"type:text;not null"`
	Bio         string      `gorm:"type:text;not null"`
	ImageURL    null.String `gorm:"type:text"`
	Skills      []string    `gorm:"serializer:json"`
	LinkedInURL null.String `gorm:"column:linkedin_url;type:text"`
	GithubURL   null.String `gorm:"type:text"`
	TwitterURL  null.String `gorm:"type:text"`
}

func (TeamMember) TableName() string { return "team_members" }
