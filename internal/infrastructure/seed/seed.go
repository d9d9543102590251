package seed

import (
	"context"

	"github.com/volatiletech/null/v8"

	"crusaiders.backend/internal/domain/entities"
	"crusaiders.backend/internal/domain/repositories"
)

// TeamMembers returns the default team roster shown when the store holds no
// team data.
func TeamMembers() []*entities.InsertTeamMember {
	return []*entities.InsertTeamMember{
		{
			Name:        "Prathap Chandran",
			Role:        "EVP of Data",
			Bio:         "Shapes the organization's data and AI vision, governing data quality, scaling AI initiatives, and enabling every department to build with confidence.",
			Skills:      []string{"Data Strategy", "AI Enablement", "Insurance Innovation"},
			LinkedInURL: null.StringFrom("#"),
			GithubURL:   null.StringFrom("#"),
			ImageURL:    null.StringFrom("/images/team/researcher.svg"),
		},
		{
			Name:        "Estefany Montoya",
			Role:        "Machine Learning Engineer",
			Bio:         "Builds AI-powered systems that drive automation, accuracy, and agility across core products and processes.",
			Skills:      []string{"AI Solutions", "Scalability", "Research"},
			LinkedInURL: null.StringFrom("#"),
			TwitterURL:  null.StringFrom("#"),
			ImageURL:    null.StringFrom("/images/team/ethics.svg"),
		},
		{
			Name:        "Lisanne Teschner",
			Role:        "Customer Experience Rep – Operations",
			Bio:         "Acts as the voice of the user, ensuring AI tools and processes are intuitive, accessible, and impactful in day-to-day operations.",
			Skills:      []string{"User Advocacy", "AI Adoption", "Operational Insights"},
			LinkedInURL: null.StringFrom("#"),
			GithubURL:   null.StringFrom("#"),
			ImageURL:    null.StringFrom("/images/team/engineer.svg"),
		},
	}
}

// Projects returns the default project showcase.
func Projects() []*entities.InsertProject {
	return []*entities.InsertProject{
		{
			Title:       "AI Accessibility Framework",
			Description: "An open-source framework designed to make AI tools accessible to developers with limited resources.",
			Category:    "Research",
			Year:        null.StringFrom("2023"),
			GithubURL:   null.StringFrom("#"),
			ExternalURL: null.StringFrom("#"),
		},
		{
			Title:       "Ethics in AI Toolkit",
			Description: "Comprehensive resources to help organizations implement ethical guidelines in their AI development.",
			Category:    "Tool",
			Year:        null.StringFrom("2022"),
			GithubURL:   null.StringFrom("#"),
			ExternalURL: null.StringFrom("#"),
		},
		{
			Title:       "Community AI Training",
			Description: "Free training program bringing AI education to underserved communities and emerging economies.",
			Category:    "Education",
			Year:        null.StringFrom("2023"),
			ExternalURL: null.StringFrom("#"),
		},
	}
}

// Apply inserts the default team and project records into empty stores. A
// store that already holds data is left alone.
func Apply(ctx context.Context, teams repositories.TeamMemberRepository, projects repositories.ProjectRepository) error {
	existing, err := teams.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		for _, m := range TeamMembers() {
			if _, err := teams.Create(ctx, m); err != nil {
				return err
			}
		}
	}

	existingProjects, err := projects.List(ctx)
	if err != nil {
		return err
	}
	if len(existingProjects) == 0 {
		for _, p := range Projects() {
			if _, err := projects.Create(ctx, p); err != nil {
				return err
			}
		}
	}
	return nil
}
