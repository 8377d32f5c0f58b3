// Package contact stores contact form messages.
package contact

import (
	"context"

	"gorm.io/gorm"

	"github.com/vinoteka/vinoteka/internal/db/controller"
	"github.com/vinoteka/vinoteka/internal/db/models"
)

// Create inserts msg. The row is stored as given, CreatedAt included;
// presence is checked by the caller.
func Create(ctx context.Context, db *gorm.DB, msg *models.ContactMessage) error {
	if db == nil {
		return controller.ErrDBNil
	}

	return controller.Wrap("insert", msg.TableName(), db.WithContext(ctx).Create(msg).Error)
}

// Store inserts contact messages through a gorm connection.
type Store struct {
	db *gorm.DB
}

// NewStore returns a Store writing to db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// InsertContact implements submission.ContactStore.
func (s *Store) InsertContact(ctx context.Context, msg *models.ContactMessage) error {
	return Create(ctx, s.db, msg)
}
