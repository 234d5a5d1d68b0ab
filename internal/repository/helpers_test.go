package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hugely/internal/db"
	"hugely/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gormDB, err := db.NewSQLite(dsn)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gormDB
}

func seedAdmin(t *testing.T, gormDB *gorm.DB, name string) *model.User {
	t.Helper()
	u := &model.User{Name: name, IsAdmin: true, LastLogin: time.Now()}
	require.NoError(t, u.SetPassword("secret"))
	require.NoError(t, NewUserRepository(gormDB).Create(context.Background(), u))
	return u
}

func seedNews(t *testing.T, repo NewsRepository, owner *model.User, title string, created time.Time) *model.News {
	t.Helper()
	n := &model.News{
		Title:     title,
		Link:      "http://example.com/" + title,
		Digest:    "digest of " + title,
		UserID:    &owner.ID,
		CreatedAt: created,
	}
	require.NoError(t, repo.Create(context.Background(), n))
	return n
}
