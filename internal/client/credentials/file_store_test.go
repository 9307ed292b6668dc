package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devportfolio/portfolio/pkg/sdk"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := NewFileStoreAt(filepath.Join(t.TempDir(), ".portfolio"))
	require.NoError(t, err)

	_, err = store.LoadCredentials()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	in := &sdk.Credentials{Token: "tok", User: &sdk.User{ID: "u1", Email: "a@example.com"}}
	require.NoError(t, store.SaveCredentials(in))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	out, err := store.LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, "tok", out.Token)
	assert.Equal(t, "u1", out.User.ID)

	require.NoError(t, store.DeleteCredentials())
	require.NoError(t, store.DeleteCredentials(), "deleting twice is fine")
	_, err = store.LoadCredentials()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestFileStore_CorruptFile(t *testing.T) {
	store, err := NewFileStoreAt(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{"), 0o600))

	_, err = store.LoadCredentials()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotLoggedIn)
}
