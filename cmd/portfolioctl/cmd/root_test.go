package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devportfolio/portfolio/internal/client/credentials"
	"github.com/devportfolio/portfolio/pkg/sdk"
)

// run executes the root command with args against a fresh HOME.
func run(t *testing.T, args ...string) error {
	t.Helper()
	apiURL, listFeatured = "", false
	projectInput = sdk.ProjectInput{}
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(context.Background())
}

func withHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestProjectsList_Featured(t *testing.T) {
	withHome(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/projects", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("featured"))
		_, _ = w.Write([]byte(`[{"id":"p1","title":"Site","technologies":["go"],"featured":true}]`))
	}))
	defer srv.Close()

	require.NoError(t, run(t, "--api-url", srv.URL+"/api", "projects", "list", "--featured"))
}

func TestProjectsCreate_RequiresLogin(t *testing.T) {
	withHome(t)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	err := run(t, "--api-url", srv.URL+"/api", "projects", "create", "--title", "T", "--description", "D")
	require.Error(t, err)
	assert.Equal(t, "Not authorized, no token", err.Error())
	assert.Zero(t, hits.Load(), "no request may be sent without a session")
}

func TestLoginThenLogout(t *testing.T) {
	home := withHome(t)
	var revoked atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			_, _ = w.Write([]byte(`{"token":"tok","user":{"id":"u1","name":"Ada","email":"ada@example.com","role":"user"}}`))
		case "/api/auth/logout":
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			revoked.Store(true)
			_, _ = w.Write([]byte(`{"message":"Logged out"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	require.NoError(t, run(t, "--api-url", srv.URL+"/api", "login", "--email", "ada@example.com", "--password", "secret1"))

	store, err := credentials.NewFileStoreAt(filepath.Join(home, ".portfolio"))
	require.NoError(t, err)
	saved, err := store.LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, "tok", saved.Token)
	assert.Equal(t, "u1", saved.User.ID)

	require.NoError(t, run(t, "--api-url", srv.URL+"/api", "logout"))
	assert.True(t, revoked.Load())

	_, err = os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestLogin_ServerMessageSurfaced(t *testing.T) {
	withHome(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid email or password"}`))
	}))
	defer srv.Close()

	err := run(t, "--api-url", srv.URL+"/api", "login", "--email", "ada@example.com", "--password", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", err.Error())
}
