package repositories

import (
	"gorm.io/gorm"

	"crusaiders.backend/internal/infrastructure/models"
)

// Migrate creates the tables backing the database-driven store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.TeamMember{},
		&models.Project{},
		&models.ContactSubmission{},
		&models.IdeaSubmission{},
		&models.WorkshopRegistration{},
		&models.NewsletterSubscriber{},
	)
}
