package core

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/platefit/platefit/internal/contract"
	"github.com/platefit/platefit/internal/store"
	"github.com/platefit/platefit/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seededCfg opens a throwaway SQLite store, seeds it with one user and one
// menu, and returns a config pointing at it.
func seededCfg(t *testing.T) *contract.Config {
	t.Helper()
	cfg := &contract.Config{
		RestaurantID: "r1",
		UserID:       "u1",
		Timezone:     "UTC",
		Now:          time.Date(2026, 8, 28, 13, 0, 0, 0, time.UTC),
		Output:       schema.TextOut,
		Precision:    1,
		StoreBackend: schema.SQLiteBackend,
		StoreConnect: filepath.Join(t.TempDir(), "core.db"),
	}

	rs, err := store.Open(cfg.StoreBackend, cfg.StoreConnect)
	require.NoError(t, err)
	defer func() { _ = rs.Close() }()

	user := testUser()
	user.Goals = nil // derived on demand
	require.NoError(t, rs.PutUser(user))
	require.NoError(t, rs.PutMenu(testMenu()))
	return cfg
}

// TestLoadRequest tests request assembly from the record store.
func TestLoadRequest(t *testing.T) {
	cfg := seededCfg(t)

	req, err := LoadRequest(cfg)
	require.NoError(t, err)
	require.NotNil(t, req.User)
	require.NotNil(t, req.Menu)
	assert.Equal(t, "u1", req.User.ID)
	assert.Equal(t, "r1", req.Menu.ID)
	assert.Equal(t, cfg.Now, req.Now)

	t.Run("missing documents answer empty", func(t *testing.T) {
		cfg := seededCfg(t)
		cfg.UserID = "ghost"
		cfg.RestaurantID = "nowhere"

		req, err := LoadRequest(cfg)
		require.NoError(t, err)
		assert.Nil(t, req.User)
		assert.Nil(t, req.Menu)
		assert.Empty(t, Recommend(&req))
	})
}

// TestEnsureGoals tests on-demand goal derivation.
func TestEnsureGoals(t *testing.T) {
	cfg := seededCfg(t)

	req, err := LoadRequest(cfg)
	require.NoError(t, err)
	require.Nil(t, req.User.Goals)

	require.NoError(t, EnsureGoals(&req))
	require.NotNil(t, req.User.Goals)
	assert.Greater(t, req.User.Goals.LiveGoal.Kcal, 0.0)

	t.Run("existing goals untouched", func(t *testing.T) {
		user := testUser()
		req := RecommendRequest{User: user, Now: cfg.Now}
		require.NoError(t, EnsureGoals(&req))
		assert.Equal(t, testGoal(), user.Goals.LiveGoal)
	})

	t.Run("nil user is a no-op", func(t *testing.T) {
		req := RecommendRequest{}
		assert.NoError(t, EnsureGoals(&req))
	})

	t.Run("underivable profile fails", func(t *testing.T) {
		user := testUser()
		user.Goals = nil
		user.DateOfBirth = "someday"
		req := RecommendRequest{User: user, Now: cfg.Now}
		assert.Error(t, EnsureGoals(&req))
	})
}
