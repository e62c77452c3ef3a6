package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/briefly"
	"github.com/fwojciec/briefly/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recipeRecord(title string) *briefly.Record {
	return &briefly.Record{
		Variant: briefly.VariantRecipe,
		URL:     "https://example.com/" + title,
		Title:   title,
		Recipe: &briefly.Recipe{
			Title:       title,
			Servings:    "4",
			Ingredients: []string{"2 eggs", "1 cup flour"},
			Steps:       []string{"Mix.", "Fry."},
			IsRecipe:    true,
		},
		Text: "Ingredients: 2 eggs, 1 cup flour. Mix and fry.",
	}
}

func summaryRecord(title string) *briefly.Record {
	return &briefly.Record{
		Variant: briefly.VariantSummary,
		URL:     briefly.ManualInputURL,
		Title:   title,
		Summary: &briefly.Summary{
			Summary:         "The council passed a budget.",
			Keywords:        []string{"council", "budget"},
			Tone:            briefly.ToneNeutral,
			IsPolitical:     true,
			PoliticalTopics: []string{"local government"},
		},
		Text: "The council met on Tuesday and passed the budget.",
	}
}

func TestRecordService_CreateRecord(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID, timestamp and content hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)

		record := recipeRecord("pancakes")
		err := svc.CreateRecord(context.Background(), record)

		require.NoError(t, err)
		assert.NotEmpty(t, record.ID)
		assert.False(t, record.CreatedAt.IsZero())
		assert.Len(t, record.ContentHash, 16)
	})

	t.Run("hashes identical text identically", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		a := recipeRecord("a")
		b := recipeRecord("b")
		c := recipeRecord("c")
		c.Text = "Something else entirely."
		require.NoError(t, svc.CreateRecord(ctx, a))
		require.NoError(t, svc.CreateRecord(ctx, b))
		require.NoError(t, svc.CreateRecord(ctx, c))

		assert.Equal(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ContentHash, c.ContentHash)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("returns error for invalid record", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)

		err := svc.CreateRecord(context.Background(), &briefly.Record{Variant: briefly.VariantRecipe})

		require.Error(t, err)
		assert.Equal(t, briefly.EINVALID, briefly.ErrorCode(err))
	})
}

func TestRecordService_FindRecordByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips recipe payload", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		record := recipeRecord("pancakes")
		require.NoError(t, svc.CreateRecord(ctx, record))

		found, err := svc.FindRecordByID(ctx, record.ID)

		require.NoError(t, err)
		assert.Equal(t, record.ID, found.ID)
		assert.Equal(t, briefly.VariantRecipe, found.Variant)
		assert.Equal(t, record.URL, found.URL)
		assert.Equal(t, record.ContentHash, found.ContentHash)
		assert.Equal(t, record.Recipe, found.Recipe)
		assert.Nil(t, found.Summary)
		assert.True(t, record.CreatedAt.Equal(found.CreatedAt))
		assert.Empty(t, found.Text)
	})

	t.Run("round-trips summary payload", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		record := summaryRecord("council")
		require.NoError(t, svc.CreateRecord(ctx, record))

		found, err := svc.FindRecordByID(ctx, record.ID)

		require.NoError(t, err)
		assert.Equal(t, briefly.ManualInputURL, found.URL)
		assert.Equal(t, record.Summary, found.Summary)
		assert.Nil(t, found.Recipe)
	})

	t.Run("returns ENOTFOUND for missing record", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)

		_, err := svc.FindRecordByID(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, briefly.ENOTFOUND, briefly.ErrorCode(err))
	})
}

func TestRecordService_FindRecords(t *testing.T) {
	t.Parallel()

	t.Run("returns newest first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			require.NoError(t, svc.CreateRecord(ctx, recipeRecord(fmt.Sprintf("r%d", i))))
		}

		records, err := svc.FindRecords(ctx, briefly.RecordFilter{})

		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "r2", records[0].Title)
		assert.Equal(t, "r1", records[1].Title)
		assert.Equal(t, "r0", records[2].Title)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			require.NoError(t, svc.CreateRecord(ctx, recipeRecord(fmt.Sprintf("r%d", i))))
		}

		records, err := svc.FindRecords(ctx, briefly.RecordFilter{Limit: 2})
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "r4", records[0].Title)

		records, err = svc.FindRecords(ctx, briefly.RecordFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "r2", records[0].Title)

		records, err = svc.FindRecords(ctx, briefly.RecordFilter{Offset: 4})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "r0", records[0].Title)
	})

	t.Run("filters by variant", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateRecord(ctx, recipeRecord("pancakes")))
		require.NoError(t, svc.CreateRecord(ctx, summaryRecord("council")))

		variant := briefly.VariantSummary
		records, err := svc.FindRecords(ctx, briefly.RecordFilter{Variant: &variant})

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "council", records[0].Title)
	})

	t.Run("returns empty slice when no records", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)

		records, err := svc.FindRecords(context.Background(), briefly.RecordFilter{})

		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})
}
