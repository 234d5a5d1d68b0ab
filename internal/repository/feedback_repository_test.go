package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "hugely/internal/errors"
	"hugely/internal/model"
)

func TestFeedBackRepository_CreateDefaultsToPending(t *testing.T) {
	repo := NewFeedBackRepository(newTestDB(t))
	fb := &model.FeedBack{Name: "bob", Email: "bob@example.com", Content: "hello"}
	require.NoError(t, repo.Create(context.Background(), fb))

	loaded, err := repo.FindByID(context.Background(), fb.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReplyStatusPending, loaded.ReplyStatus)
}

func TestFeedBackRepository_MarkReplied(t *testing.T) {
	repo := NewFeedBackRepository(newTestDB(t))
	fb := &model.FeedBack{Name: "bob", Email: "bob@example.com", Content: "hello"}
	require.NoError(t, repo.Create(context.Background(), fb))

	require.NoError(t, repo.MarkReplied(context.Background(), fb.ID))
	loaded, err := repo.FindByID(context.Background(), fb.ID)
	require.NoError(t, err)
	assert.True(t, loaded.Replied())

	err = repo.MarkReplied(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFeedBackRepository_PaginateFiltersContent(t *testing.T) {
	repo := NewFeedBackRepository(newTestDB(t))
	now := time.Now()
	for i, content := range []string{"price question", "great site", "price list please"} {
		fb := &model.FeedBack{Name: "n", Email: "a@b.cn", Content: content, CreatedAt: now.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, repo.Create(context.Background(), fb))
	}

	page, err := repo.Paginate(context.Background(), "price", 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "price list please", page.Items[0].Content)
	assert.Equal(t, 1, page.TotalPages)
}

func TestFeedBackRepository_Delete(t *testing.T) {
	repo := NewFeedBackRepository(newTestDB(t))
	fb := &model.FeedBack{Name: "bob", Email: "bob@example.com", Content: "bye"}
	require.NoError(t, repo.Create(context.Background(), fb))
	require.NoError(t, repo.Delete(context.Background(), fb))

	_, err := repo.FindByID(context.Background(), fb.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
