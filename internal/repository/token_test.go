package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRepository_Create(t *testing.T) {
	conn := newTestDB(t)
	users := NewUserRepository(conn)
	tokens := NewTokenRepository(conn)
	ctx := context.Background()

	user := createTestUser(t, users, "a@b.com")

	row, err := tokens.Create(ctx, "opaque-token", user.ID, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.NotZero(t, row.ID)
	assert.Equal(t, user.ID, row.UserID)

	count, err := tokens.CountByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// Token strings are unique.
	_, err = tokens.Create(ctx, "opaque-token", user.ID, time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrConflict)
}

func TestTokenRepository_Create_UnknownUser(t *testing.T) {
	conn := newTestDB(t)
	tokens := NewTokenRepository(conn)

	_, err := tokens.Create(context.Background(), "stray-token", 404, time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrConflict)
}
