package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "hugely/internal/errors"
	"hugely/internal/model"
	"hugely/internal/repository"
)

func TestNewsService_Publish(t *testing.T) {
	tests := []struct {
		name          string
		input         NewsInput
		persistErr    error
		expectCreate  bool
		expectedError error
	}{
		{
			name:         "https link",
			input:        NewsInput{Title: "Launch", Link: "https://hugely.cn/news/1", Digest: "We launched"},
			expectCreate: true,
		},
		{
			name:         "bare domain link",
			input:        NewsInput{Title: "Launch", Link: "www.hugely.cn/news", Digest: "We launched"},
			expectCreate: true,
		},
		{
			name:          "malformed link",
			input:         NewsInput{Title: "Launch", Link: "not a url", Digest: "We launched"},
			expectedError: apperrors.ErrValidation,
		},
		{
			name:          "title longer than the column",
			input:         NewsInput{Title: strings.Repeat("t", 257), Link: "https://hugely.cn", Digest: "d"},
			expectedError: apperrors.ErrValidation,
		},
		{
			name:          "digest longer than the column",
			input:         NewsInput{Title: "t", Link: "https://hugely.cn", Digest: strings.Repeat("d", 513)},
			expectedError: apperrors.ErrValidation,
		},
		{
			name:         "digest at the column limit",
			input:        NewsInput{Title: "t", Link: "https://hugely.cn", Digest: strings.Repeat("字", 512)},
			expectCreate: true,
		},
		{
			name:          "missing digest",
			input:         NewsInput{Title: "Launch", Link: "https://hugely.cn"},
			expectedError: apperrors.ErrValidation,
		},
		{
			name:          "database failure",
			input:         NewsInput{Title: "Launch", Link: "http://hugely.cn", Digest: "d"},
			persistErr:    fmt.Errorf("deadlock"),
			expectCreate:  true,
			expectedError: apperrors.ErrDatabase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockNewsRepository)
			if tt.expectCreate {
				repo.On("Create", mock.Anything, mock.MatchedBy(func(n *model.News) bool {
					return n.UserID != nil && *n.UserID == 7 && n.Title == tt.input.Title
				})).Return(tt.persistErr).Once()
			}

			news, err := NewNewsService(repo, nopLog).Publish(context.Background(), tt.input, 7)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, news)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.input.Link, news.Link)
			}
			repo.AssertExpectations(t)
			if !tt.expectCreate {
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestNewsService_List(t *testing.T) {
	owner := &model.User{ID: 1, Name: "admin"}
	items := make([]model.News, 5)
	for i := range items {
		items[i] = model.News{ID: uint(i + 1), Title: fmt.Sprintf("n%d", i), User: owner, CreatedAt: time.Now()}
	}

	repo := new(MockNewsRepository)
	repo.On("Paginate", mock.Anything, "", 2).Return(&repository.Page[model.News]{
		Items: items, Total: 15, CurrentPage: 2, TotalPages: 2,
	}, nil)

	page, err := NewNewsService(repo, nopLog).List(context.Background(), 2, "")
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 2, page.TotalPage)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, "admin", page.Items[0].UserName)
}

func TestNewsService_ListDegradesOnQueryFault(t *testing.T) {
	repo := new(MockNewsRepository)
	repo.On("Paginate", mock.Anything, "foo", 1).Return(nil, fmt.Errorf("no such table"))

	page, err := NewNewsService(repo, nopLog).List(context.Background(), 1, "foo")
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.TotalPage)
}

func TestNewsService_ListFailsOnOrphan(t *testing.T) {
	repo := new(MockNewsRepository)
	repo.On("Paginate", mock.Anything, "", 1).Return(&repository.Page[model.News]{
		Items: []model.News{{ID: 1, Title: "orphan"}}, Total: 1, CurrentPage: 1, TotalPages: 1,
	}, nil)

	_, err := NewNewsService(repo, nopLog).List(context.Background(), 1, "")
	assert.ErrorIs(t, err, apperrors.ErrDataIntegrity)
}

func TestNewsService_Get(t *testing.T) {
	repo := new(MockNewsRepository)
	repo.On("FindByID", mock.Anything, uint(1)).Return(&model.News{ID: 1, User: &model.User{Name: "admin"}}, nil)
	repo.On("FindByID", mock.Anything, uint(2)).Return(&model.News{ID: 2}, nil)
	repo.On("FindByID", mock.Anything, uint(3)).Return(nil, fmt.Errorf("news 3: %w", apperrors.ErrNotFound))
	svc := NewNewsService(repo, nopLog)

	view, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "admin", view.UserName)

	_, err = svc.Get(context.Background(), 2)
	assert.ErrorIs(t, err, apperrors.ErrDataIntegrity)

	_, err = svc.Get(context.Background(), 3)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestNewsService_Edit(t *testing.T) {
	author := uint(1)
	existing := &model.News{ID: 4, Title: "old", Link: "http://a.cn", Digest: "old", UserID: &author}

	repo := new(MockNewsRepository)
	repo.On("FindByID", mock.Anything, uint(4)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(n *model.News) bool {
		return n.Title == "new" && n.Digest == "new digest" && *n.UserID == 9
	})).Return(nil)

	err := NewNewsService(repo, nopLog).Edit(context.Background(), 4,
		NewsInput{Title: "new", Link: "http://b.cn", Digest: "new digest"}, 9)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestNewsService_EditErrors(t *testing.T) {
	repo := new(MockNewsRepository)
	repo.On("FindByID", mock.Anything, uint(5)).Return(nil, fmt.Errorf("news 5: %w", apperrors.ErrNotFound))
	repo.On("FindByID", mock.Anything, uint(6)).Return(&model.News{ID: 6}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(fmt.Errorf("disk full"))
	svc := NewNewsService(repo, nopLog)
	in := NewsInput{Title: "t", Link: "http://x.cn", Digest: "d"}

	assert.ErrorIs(t, svc.Edit(context.Background(), 5, in, 1), apperrors.ErrNotFound)
	assert.ErrorIs(t, svc.Edit(context.Background(), 6, in, 1), apperrors.ErrDatabase)
	assert.ErrorIs(t, svc.Edit(context.Background(), 6, NewsInput{Title: "t"}, 1), apperrors.ErrValidation)
}

func TestNewsService_Delete(t *testing.T) {
	repo := new(MockNewsRepository)
	target := &model.News{ID: 8}
	repo.On("FindByID", mock.Anything, uint(8)).Return(target, nil)
	repo.On("Delete", mock.Anything, target).Return(nil)
	repo.On("FindByID", mock.Anything, uint(99)).Return(nil, fmt.Errorf("news 99: %w", apperrors.ErrNotFound))
	svc := NewNewsService(repo, nopLog)

	require.NoError(t, svc.Delete(context.Background(), 8))
	assert.ErrorIs(t, svc.Delete(context.Background(), 99), apperrors.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), 0), apperrors.ErrValidation)

	repo.AssertNumberOfCalls(t, "Delete", 1)
}
