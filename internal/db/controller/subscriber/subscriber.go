// Package subscriber stores newsletter signups.
package subscriber

import (
	"context"

	"gorm.io/gorm"

	"github.com/vinoteka/vinoteka/internal/db/controller"
	"github.com/vinoteka/vinoteka/internal/db/models"
)

// Create inserts sub. Duplicate emails are only rejected if the schema has a
// unique constraint, which surfaces as a *controller.StoreError.
func Create(ctx context.Context, db *gorm.DB, sub *models.NewsletterSubscriber) error {
	if db == nil {
		return controller.ErrDBNil
	}

	return controller.Wrap("insert", sub.TableName(), db.WithContext(ctx).Create(sub).Error)
}

// Count returns the number of subscribers.
func Count(ctx context.Context, db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, controller.ErrDBNil
	}

	var total int64
	err := db.WithContext(ctx).Model(&models.NewsletterSubscriber{}).Count(&total).Error

	return total, controller.Wrap("count", models.NewsletterSubscriber{}.TableName(), err)
}

// Store inserts newsletter subscribers through a gorm connection.
type Store struct {
	db *gorm.DB
}

// NewStore returns a Store writing to db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// InsertSubscriber implements submission.SubscriberStore.
func (s *Store) InsertSubscriber(ctx context.Context, sub *models.NewsletterSubscriber) error {
	return Create(ctx, s.db, sub)
}
