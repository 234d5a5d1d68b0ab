package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hugely/internal/model"
)

func TestVisitorRepository_Counts(t *testing.T) {
	repo := NewVisitorRepository(newTestDB(t))
	ctx := context.Background()

	midnight := time.Date(2024, 5, 20, 0, 0, 0, 0, time.Local)
	stamps := []time.Time{
		midnight.Add(-72 * time.Hour),
		midnight.Add(-time.Minute),
		midnight,
		midnight.Add(5 * time.Hour),
	}
	for _, ts := range stamps {
		require.NoError(t, repo.Create(ctx, &model.Visitor{IP: "127.0.0.1", Terminal: "X11", CreatedAt: ts, UpdatedAt: ts}))
	}

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)

	today, err := repo.CountCreatedSince(ctx, midnight)
	require.NoError(t, err)
	assert.EqualValues(t, 2, today)

	yesterday, err := repo.CountUpdatedBetween(ctx, midnight.Add(-24*time.Hour), midnight)
	require.NoError(t, err)
	assert.EqualValues(t, 1, yesterday)
}
