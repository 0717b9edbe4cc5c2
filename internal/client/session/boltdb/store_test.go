package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/tutorhub/internal/client/session"
)

// newTestStore создает BoltDB хранилище во временной директории
func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := New(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func testSession() *session.Session {
	return &session.Session{
		UserID:          "user-123",
		Email:           "tutor@example.com",
		Name:            "Test Tutor",
		Role:            "tutor",
		AccessToken:     "access_token",
		RefreshToken:    "refresh_token",
		AccessExpiresAt: time.Now().Add(time.Hour).Truncate(time.Second),
		TTLDays:         0,
		ClientID:        "client-uuid",
	}
}

// TestStore_SaveGet проверяет сохранение и чтение сессии
func TestStore_SaveGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sess := testSession()
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, sess.AccessToken, got.AccessToken)
	assert.Equal(t, sess.RefreshToken, got.RefreshToken)
	assert.Equal(t, sess.UserID, got.UserID)
	assert.Equal(t, sess.Role, got.Role)
	assert.True(t, sess.AccessExpiresAt.Equal(got.AccessExpiresAt))
}

// TestStore_SaveNil проверяет отказ сохранять nil
func TestStore_SaveNil(t *testing.T) {
	store := newTestStore(t)

	err := store.Save(context.Background(), nil)
	require.Error(t, err)
}

// TestStore_SaveOverwrites проверяет перезапись пары токенов
func TestStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession()))

	rotated := testSession()
	rotated.AccessToken = "rotated_access"
	rotated.RefreshToken = "rotated_refresh"
	require.NoError(t, store.Save(ctx, rotated))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rotated_access", got.AccessToken)
	assert.Equal(t, "rotated_refresh", got.RefreshToken)
}

// TestStore_GetNotFound проверяет ошибку при отсутствии сессии
func TestStore_GetNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background())
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

// TestStore_Clear проверяет удаление сессии
func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession()))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	assert.ErrorIs(t, store.Clear(ctx), session.ErrSessionNotFound)
}

// TestStore_IsAuthenticated проверяет определение авторизованности
func TestStore_IsAuthenticated(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ok, err := store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, testSession()))
	ok, err = store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	expired := testSession()
	expired.AccessExpiresAt = time.Now().Add(-time.Hour)
	require.NoError(t, store.Save(ctx, expired))
	ok, err = store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestStore_Persistence проверяет чтение сессии после переоткрытия базы
func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	store, err := New(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, testSession()))
	require.NoError(t, store.Close())

	reopened, err := New(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access_token", got.AccessToken)
}
