package models

import "time"

// NewsletterSubscriber is a newsletter signup. Uniqueness of Email is left to
// the store schema.
type NewsletterSubscriber struct {
	ID        uint64    `gorm:"primaryKey"`
	Email     string    `gorm:"size:255;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName maps NewsletterSubscriber to the newsletter_subscribers table.
func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}
