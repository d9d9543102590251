package entities

import (
	"github.com/volatiletech/null/v8"
)

// Project is an organization project shown on the public projects section.
type Project struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	ImageURL    null.String `json:"imageUrl"`
	Category    string      `json:"category"`
	Year        null.String `json:"year"`
	GithubURL   null.String `json:"githubUrl"`
	ExternalURL null.String `json:"externalUrl"`
}

// InsertProject is the insertable projection of Project.
type InsertProject struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	ImageURL    null.String `json:"imageUrl"`
	Category    string      `json:"category"`
	Year        null.String `json:"year"`
	GithubURL   null.String `json:"githubUrl"`
	ExternalURL null.String `json:"externalUrl"`
}

// Record materializes the insert projection into a full Project.
func (in *InsertProject) Record(id int) *Project {
	return &Project{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Year:        in.Year,
		GithubURL:   in.GithubURL,
		ExternalURL: in.ExternalURL,
	}
}
