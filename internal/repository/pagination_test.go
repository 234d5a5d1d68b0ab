package repository

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"hugely/internal/model"
)

func TestPaginate_PagesPastTheEndAreEmpty(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewNewsRepository(gormDB)
	admin := seedAdmin(t, gormDB, "admin")
	for _, title := range []string{"a", "b", "c"} {
		seedNews(t, repo, admin, title, time.Now())
	}

	for _, page := range []int{2, 1844674407370955162, math.MaxInt / PerPage, math.MaxInt} {
		p, err := repo.Paginate(context.Background(), "", page)
		require.NoError(t, err)
		assert.Empty(t, p.Items, "page %d", page)
		assert.Equal(t, page, p.CurrentPage)
		assert.Equal(t, 1, p.TotalPages)
	}
}

func TestContaining_MySQLComparesBinary(t *testing.T) {
	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "user:pass@tcp(127.0.0.1:1)/hugely?parseTime=True",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	stmt := gormDB.Scopes(containing("title", "Foo")).Find(&[]model.News{}).Statement
	assert.Contains(t, stmt.SQL.String(), "INSTR(BINARY title, ?) > 0")
	assert.Equal(t, []interface{}{"Foo"}, stmt.Vars)
}

func TestContaining_SQLite(t *testing.T) {
	gormDB := newTestDB(t)

	stmt := gormDB.Session(&gorm.Session{DryRun: true}).
		Scopes(containing("fb_content", "Price")).
		Find(&[]model.FeedBack{}).Statement
	assert.Contains(t, stmt.SQL.String(), "INSTR(fb_content, ?) > 0")
	assert.NotContains(t, stmt.SQL.String(), "BINARY")
}
