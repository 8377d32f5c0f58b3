package models

import "time"

// ContactMessage is a message sent through the contact form. Rows are only
// ever inserted.
type ContactMessage struct {
	ID        uint64    `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"size:255;not null"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName maps ContactMessage to the contacts table.
func (ContactMessage) TableName() string {
	return "contacts"
}
