package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ttask/internal/service"
	"ttask/internal/session"
)

func testUser() service.User {
	return service.User{ID: "1", Email: "a@x.com", Name: "A"}
}

func TestStore_SetRestoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := session.NewStore(dir)

	require.NoError(t, store.Set("tok-123", testUser()))

	sess, err := store.Restore()
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "tok-123", sess.Token)
	assert.Equal(t, testUser(), sess.User)
}

func TestStore_RestoreSurvivesReload(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, session.NewStore(dir).Set("tok-123", testUser()))

	// A fresh store over the same directory simulates a process restart.
	sess, err := session.NewStore(dir).Restore()
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "tok-123", sess.Token)
	assert.Equal(t, "a@x.com", sess.User.Email)
}

func TestStore_RestoreEmptyDir(t *testing.T) {
	store := session.NewStore(t.TempDir())

	sess, err := store.Restore()
	require.NoError(t, err)
	assert.Nil(t, sess)
	assert.False(t, store.IsAuthenticated())
}

func TestStore_PartialStateIsAbsent(t *testing.T) {
	t.Run("token only", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, session.TokenFile), []byte("tok\n"), 0600))

		sess, err := session.NewStore(dir).Restore()
		require.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("profile only", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, session.UserFile), []byte(`{"id":"1","email":"a@x.com"}`), 0600))

		sess, err := session.NewStore(dir).Restore()
		require.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("corrupt profile", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, session.TokenFile), []byte("tok\n"), 0600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, session.UserFile), []byte("not json"), 0600))

		sess, err := session.NewStore(dir).Restore()
		require.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("blank token", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, session.TokenFile), []byte("  \n"), 0600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, session.UserFile), []byte(`{"id":"1","email":"a@x.com"}`), 0600))

		sess, err := session.NewStore(dir).Restore()
		require.NoError(t, err)
		assert.Nil(t, sess)
	})
}

func TestStore_ClearRemovesBothEntries(t *testing.T) {
	dir := t.TempDir()
	store := session.NewStore(dir)
	require.NoError(t, store.Set("tok", testUser()))

	require.NoError(t, store.Clear())

	_, err := os.Stat(filepath.Join(dir, session.TokenFile))
	assert.True(t, os.IsNotExist(err), "token file should be gone")
	_, err = os.Stat(filepath.Join(dir, session.UserFile))
	assert.True(t, os.IsNotExist(err), "user file should be gone")

	sess, err := store.Restore()
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestStore_ClearWhenEmpty(t *testing.T) {
	store := session.NewStore(t.TempDir())
	assert.NoError(t, store.Clear())
}

func TestStore_SetCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "ttask")
	store := session.NewStore(dir)

	require.NoError(t, store.Set("tok", testUser()))
	assert.True(t, store.IsAuthenticated())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestStore_SetOverwritesPreviousSession(t *testing.T) {
	dir := t.TempDir()
	store := session.NewStore(dir)
	require.NoError(t, store.Set("tok-old", testUser()))

	next := service.User{ID: "2", Email: "b@x.com", Name: "B"}
	require.NoError(t, store.Set("tok-new", next))

	sess, err := store.Restore()
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "tok-new", sess.Token)
	assert.Equal(t, next, sess.User)
}
