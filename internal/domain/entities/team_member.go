package entities

import (
	"github.com/volatiletech/null/v8"
)

// TeamMember is a member shown on the public team section.
type TeamMember struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Role        string      `json:"role"`
	Bio         string      `json:"bio"`
	ImageURL    null.String `json:"imageUrl"`
	Skills      []string    `json:"skills"`
	LinkedInURL null.String `json:"linkedinUrl"`
	GithubURL   null.String `json:"githubUrl"`
	TwitterURL  null.String `json:"twitterUrl"`
}

// InsertTeamMember is the insertable projection of TeamMember. The id is
// assigned by the store.
type InsertTeamMember struct {
	Name        string      `json:"name"`
	Role        string      `json:"role"`
	Bio         string      `json:"bio"`
	ImageURL    null.String `json:"imageUrl"`
	Skills      []string    `json:"skills"`
	LinkedInURL null.String `json:"linkedinUrl"`
	GithubURL   null.String `json:"githubUrl"`
	TwitterURL  null.String `json:"twitterUrl"`
}

// Record materializes the insert projection into a full TeamMember.
func (in *InsertTeamMember) Record(id int) *TeamMember {
	return &TeamMember{
		ID:          id,
		Name:        in.Name,
		Role:        in.Role,
		Bio:         in.Bio,
		ImageURL:    in.ImageURL,
		Skills:      in.Skills,
		LinkedInURL: in.LinkedInURL,
		GithubURL:   in.GithubURL,
		TwitterURL:  in.TwitterURL,
	}
}
