package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession() *Session {
	return &Session{
		UserID:          "user-123",
		Email:           "student@example.com",
		Name:            "Test Student",
		Role:            "student",
		AccessToken:     "access_token",
		RefreshToken:    "refresh_token",
		AccessExpiresAt: time.Now().Add(time.Hour).Truncate(time.Second),
		TTLDays:         0,
		ClientID:        "client-uuid",
	}
}

// TestFileStore_SaveGet проверяет сохранение и чтение сессии
func TestFileStore_SaveGet(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	ctx := context.Background()

	sess := testSession()
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	// Пара токенов и запись пользователя читаются в точности как записаны
	assert.Equal(t, sess.AccessToken, got.AccessToken)
	assert.Equal(t, sess.RefreshToken, got.RefreshToken)
	assert.Equal(t, sess.UserID, got.UserID)
	assert.Equal(t, sess.Role, got.Role)
	assert.Equal(t, sess.ClientID, got.ClientID)
	assert.True(t, sess.AccessExpiresAt.Equal(got.AccessExpiresAt))
}

// TestFileStore_SaveNil проверяет отказ сохранять nil
func TestFileStore_SaveNil(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))

	err := store.Save(context.Background(), nil)
	require.Error(t, err)
}

// TestFileStore_SaveOverwrites проверяет перезапись предыдущей сессии
func TestFileStore_SaveOverwrites(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	ctx := context.Background()

	first := testSession()
	require.NoError(t, store.Save(ctx, first))

	second := testSession()
	second.AccessToken = "rotated_access"
	second.RefreshToken = "rotated_refresh"
	require.NoError(t, store.Save(ctx, second))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rotated_access", got.AccessToken)
	assert.Equal(t, "rotated_refresh", got.RefreshToken)
}

// TestFileStore_GetNotFound проверяет ошибку при отсутствии сессии
func TestFileStore_GetNotFound(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))

	_, err := store.Get(context.Background())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// TestFileStore_Clear проверяет удаление сессии
func TestFileStore_Clear(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession()))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Повторная очистка — сессии уже нет
	assert.ErrorIs(t, store.Clear(ctx), ErrSessionNotFound)
}

// TestFileStore_IsAuthenticated проверяет определение авторизованности
func TestFileStore_IsAuthenticated(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	ctx := context.Background()

	// Без сессии не авторизованы
	ok, err := store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// С действующим токеном авторизованы
	require.NoError(t, store.Save(ctx, testSession()))
	ok, err = store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	// С просроченным токеном не авторизованы
	expired := testSession()
	expired.AccessExpiresAt = time.Now().Add(-time.Hour)
	require.NoError(t, store.Save(ctx, expired))
	ok, err = store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestFileStore_FilePermissions проверяет права файла сессии
func TestFileStore_FilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)

	require.NoError(t, store.Save(context.Background(), testSession()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

// TestFileStore_CreatesParentDir проверяет создание директории хранилища
func TestFileStore_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "session.json")
	store := NewFileStore(path)

	require.NoError(t, store.Save(context.Background(), testSession()))

	_, err := os.Stat(path)
	require.NoError(t, err)
}
