package models

type NewsletterSubscriber struct {
	Email string `gorm:"primaryKey;type:text"`
}

func (NewsletterSubscriber) TableName() string { return "newsletter_subscribers" }
