package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "hugely/internal/errors"
)

func TestUserRepository_FindByName(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewUserRepository(gormDB)
	admin := seedAdmin(t, gormDB, "admin")

	found, err := repo.FindByName(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, found.ID)
	assert.True(t, found.CheckPassword("secret"))

	_, err = repo.FindByName(context.Background(), "nobody")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserRepository_TouchLastLogin(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewUserRepository(gormDB)
	admin := seedAdmin(t, gormDB, "admin")

	at := time.Date(2025, 1, 1, 9, 30, 0, 0, time.Local)
	require.NoError(t, repo.TouchLastLogin(context.Background(), admin.ID, at))

	found, err := repo.FindByID(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.True(t, at.Equal(found.LastLogin))
}
