package wine

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vinoteka/vinoteka/internal/db/controller"
	"github.com/vinoteka/vinoteka/internal/db/models"
)

func strPtr(s string) *string { return &s }

// setupTestDB creates an in-memory SQLite database seeded with wines.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	require.NoError(t, db.AutoMigrate(&models.Wine{}), "failed to migrate test database")

	wines := []models.Wine{
		{ID: 1, Title: "Catena Zapata Malbec 2018", Country: "Argentina", Points: 92,
			Variety: strPtr("Malbec"), Winery: strPtr("Catena Zapata"), Province: strPtr("Mendoza")},
		{ID: 2, Title: "Vega Sicilia Unico", Country: "Spain", Points: 97,
			Variety: strPtr("Tempranillo"), Winery: strPtr("Vega Sicilia"), Province: strPtr("Castilla y Leon")},
		{ID: 3, Title: "Rioja Reserva", Country: "Spain", Points: 88,
			Variety: strPtr("Tempranillo"), Winery: strPtr("Muga"), Province: strPtr("Northern Spain")},
		{ID: 4, Title: "100% Garnacha", Country: "Spain", Points: 86,
			Variety: strPtr("Garnacha"), Winery: strPtr("Bodegas Borsao"), Province: strPtr("Aragon")},
		{ID: 5, Title: "Old_Vines Zinfandel", Country: "US", Points: 89,
			Variety: strPtr("Zinfandel"), Province: strPtr("California")},
		{ID: 6, Title: "Unnamed red", Country: "Chile", Points: 80},
		{ID: 7, Title: "ÁLVAREZ ÑANDÚ Reserva", Country: "Argentina", Points: 90,
			Variety: strPtr("Torrontés"), Winery: strPtr("Pazo de Señorans"), Province: strPtr("Salta")},
	}
	require.NoError(t, db.Create(&wines).Error, "failed to seed test data")

	return db
}

func ids(wines []models.Wine) []int64 {
	out := make([]int64, 0, len(wines))
	for _, w := range wines {
		out = append(out, w.ID)
	}

	return out
}

func TestPattern(t *testing.T) {
	assert.Equal(t, "%MalBec%", Pattern("MalBec"))
	assert.Equal(t, "%100!%%", Pattern("100%"))
	assert.Equal(t, "%Old!_Vines%", Pattern("Old_Vines"))
	assert.Equal(t, "%a!!b%", Pattern("a!b"))
	assert.Equal(t, "%%", Pattern(""))
}

func TestCount(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	testCases := []struct {
		name     string
		term     string
		expected int64
	}{
		{name: "empty term counts all", term: "", expected: 7},
		{name: "title match is case insensitive", term: "RIOJA", expected: 1},
		{name: "variety match", term: "tempranillo", expected: 2},
		{name: "winery match", term: "muga", expected: 1},
		{name: "province match", term: "mendoza", expected: 1},
		{name: "country is not searched", term: "argentina", expected: 0},
		{name: "percent is literal", term: "%", expected: 1},
		{name: "underscore is literal", term: "_", expected: 1},
		{name: "no match", term: "pinot", expected: 0},
		{name: "accented exact case", term: "ÁLVAREZ ÑANDÚ", expected: 1},
		{name: "accented title with ascii lower case", term: "ÁlVAREZ", expected: 1},
		{name: "accented variety", term: "Torrontés", expected: 1},
		{name: "accented winery mixed ascii case", term: "PAZO DE Señorans", expected: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			total, err := Count(ctx, db, tc.term)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, total)
		})
	}
}

func TestWindow(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	t.Run("first page ordered by id", func(t *testing.T) {
		wines, err := Window(ctx, db, "", 0, 3)
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3}, ids(wines))
	})

	t.Run("second page", func(t *testing.T) {
		wines, err := Window(ctx, db, "", 3, 6)
		require.NoError(t, err)
		assert.Equal(t, []int64{4, 5, 6}, ids(wines))
	})

	t.Run("window past the end is short", func(t *testing.T) {
		wines, err := Window(ctx, db, "", 4, 14)
		require.NoError(t, err)
		assert.Equal(t, []int64{5, 6, 7}, ids(wines))
	})

	t.Run("filtered window", func(t *testing.T) {
		wines, err := Window(ctx, db, "spain", 0, 10)
		require.NoError(t, err)
		assert.Equal(t, []int64{3}, ids(wines))
	})

	t.Run("nullable columns come back nil", func(t *testing.T) {
		wines, err := Window(ctx, db, "unnamed", 0, 10)
		require.NoError(t, err)
		require.Len(t, wines, 1)
		assert.Nil(t, wines[0].Variety)
		assert.Nil(t, wines[0].Price)
		assert.Nil(t, wines[0].Vintage)
	})

	t.Run("empty window", func(t *testing.T) {
		wines, err := Window(ctx, db, "", 2, 2)
		require.NoError(t, err)
		assert.NotNil(t, wines)
		assert.Empty(t, wines)
	})

	t.Run("invalid window", func(t *testing.T) {
		_, err := Window(ctx, db, "", 5, 2)
		require.ErrorIs(t, err, ErrInvalidWindow)

		_, err = Window(ctx, db, "", -1, 2)
		require.ErrorIs(t, err, ErrInvalidWindow)
	})
}

func TestNilDB(t *testing.T) {
	_, err := Count(context.Background(), nil, "")
	require.ErrorIs(t, err, controller.ErrDBNil)

	_, err = Window(context.Background(), nil, "", 0, 10)
	require.ErrorIs(t, err, controller.ErrDBNil)
}

func TestStoreFailure(t *testing.T) {
	// no migration: every query fails with "no such table"
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	store := NewStore(db)

	_, err = store.Count(context.Background(), "x")
	require.Error(t, err)
	assert.True(t, controller.IsStoreError(err))

	_, err = store.Window(context.Background(), "x", 0, 10)
	require.Error(t, err)
	assert.True(t, controller.IsStoreError(err))
}

func TestStore(t *testing.T) {
	store := NewStore(setupTestDB(t))

	total, err := store.Count(context.Background(), "garnacha")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	wines, err := store.Window(context.Background(), "garnacha", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, ids(wines))
}
