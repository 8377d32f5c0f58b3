package contact

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vinoteka/vinoteka/internal/db/controller"
	"github.com/vinoteka/vinoteka/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T, migrate bool) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	if migrate {
		require.NoError(t, db.AutoMigrate(&models.ContactMessage{}), "failed to migrate test database")
	}

	return db
}

func TestCreate(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		db            *gorm.DB
		msg           models.ContactMessage
		expectedError error
		storeError    bool
	}{
		{
			name:          "nil database",
			msg:           models.ContactMessage{Name: "Ana", Email: "a@x.com", Message: "Hola"},
			expectedError: controller.ErrDBNil,
		},
		{
			name: "blank fields are stored as given",
			db:   setupTestDB(t, true),
			msg:  models.ContactMessage{Name: " ", Email: "a@x.com", Message: "  ", CreatedAt: now},
		},
		{
			name:       "missing table",
			db:         setupTestDB(t, false),
			msg:        models.ContactMessage{Name: "Ana", Email: "a@x.com", Message: "Hola", CreatedAt: now},
			storeError: true,
		},
		{
			name: "successful insert",
			db:   setupTestDB(t, true),
			msg:  models.ContactMessage{Name: "Ana", Email: "a@x.com", Message: "Hola", CreatedAt: now},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg := tc.msg
			err := NewStore(tc.db).InsertContact(context.Background(), &msg)

			switch {
			case tc.expectedError != nil:
				require.ErrorIs(t, err, tc.expectedError)
			case tc.storeError:
				require.Error(t, err)
				assert.True(t, controller.IsStoreError(err))
			default:
				require.NoError(t, err)
				assert.NotZero(t, msg.ID)

				var stored models.ContactMessage
				require.NoError(t, tc.db.First(&stored, msg.ID).Error)
				assert.Equal(t, tc.msg.Name, stored.Name)
				assert.Equal(t, tc.msg.Message, stored.Message)
				assert.True(t, now.Equal(stored.CreatedAt))
			}
		})
	}
}
