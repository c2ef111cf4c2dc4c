package contract

import (
	"testing"
	"time"

	"github.com/platefit/platefit/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		RestaurantID: " r1 ",
		UserID:       "u1",
		IsGroupStr:   "TRUE",
		Cuisine:      " indian ",
		NowStr:       "2026-08-28T13:00:00Z",
		Output:       "JSON",
		Precision:    2,
		StoreBackend: "sqlite",
	}
}

// TestProcessAndValidate tests raw input parsing and validation.
func TestProcessAndValidate(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		var cfg Config
		require.NoError(t, ProcessAndValidate(&cfg, validInput()))

		assert.Equal(t, "r1", cfg.RestaurantID)
		assert.Equal(t, "u1", cfg.UserID)
		assert.True(t, cfg.IsGroup)
		assert.Equal(t, "indian", cfg.Cuisine)
		assert.Equal(t, DefaultTimezone, cfg.Timezone)
		assert.Equal(t, time.Date(2026, 8, 28, 13, 0, 0, 0, time.UTC), cfg.Now)
		assert.Equal(t, schema.JSONOut, cfg.Output)
		assert.Equal(t, 2, cfg.Precision)
		assert.Equal(t, schema.SQLiteBackend, cfg.StoreBackend)
	})

	t.Run("invalid reference time", func(t *testing.T) {
		input := validInput()
		input.NowStr = "yesterday"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("precision out of range", func(t *testing.T) {
		for _, p := range []int{0, 3, -1} {
			input := validInput()
			input.Precision = p
			assert.Error(t, ProcessAndValidate(&Config{}, input), "precision=%d", p)
		}
	})

	t.Run("invalid output mode", func(t *testing.T) {
		input := validInput()
		input.Output = "yaml"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("invalid store backend", func(t *testing.T) {
		input := validInput()
		input.StoreBackend = "mongodb"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("mysql requires a connection string", func(t *testing.T) {
		input := validInput()
		input.StoreBackend = "mysql"
		input.StoreConnect = "just-a-host"
		assert.Error(t, ProcessAndValidate(&Config{}, input))

		input.StoreConnect = "user:pass@tcp(localhost:3306)/platefit"
		assert.NoError(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("postgresql requires a connection string", func(t *testing.T) {
		input := validInput()
		input.StoreBackend = "postgresql"
		input.StoreConnect = ""
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("group flag parses textual booleans", func(t *testing.T) {
		input := validInput()
		input.IsGroupStr = "nonsense"
		var cfg Config
		require.NoError(t, ProcessAndValidate(&cfg, input))
		assert.False(t, cfg.IsGroup)
	})
}

// TestReferenceTime tests the wall-clock fallback.
func TestReferenceTime(t *testing.T) {
	fixed := time.Date(2026, 8, 28, 13, 0, 0, 0, time.UTC)
	cfg := &Config{Now: fixed}
	assert.Equal(t, fixed, cfg.ReferenceTime())

	empty := &Config{}
	assert.WithinDuration(t, time.Now(), empty.ReferenceTime(), time.Minute)
}

// TestClone tests that per-request overrides stay off the base config.
func TestClone(t *testing.T) {
	base := &Config{UserID: "u1", RestaurantID: "r1"}
	clone := base.Clone()
	clone.UserID = "u2"

	assert.Equal(t, "u1", base.UserID)
	assert.Equal(t, "u2", clone.UserID)
	assert.Equal(t, "r1", clone.RestaurantID)
}
