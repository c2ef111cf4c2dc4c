package mcp_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/platefit/platefit/internal/contract"
	mcp_internal "github.com/platefit/platefit/internal/mcp"
	"github.com/platefit/platefit/internal/store"
	"github.com/platefit/platefit/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCfg points the server at a throwaway SQLite store.
func testCfg(t *testing.T) *contract.Config {
	t.Helper()
	return &contract.Config{
		Output:       schema.TextOut,
		Precision:    1,
		Timezone:     "UTC",
		StoreBackend: schema.SQLiteBackend,
		StoreConnect: filepath.Join(t.TempDir(), "mcp.db"),
	}
}

// seedMenu stores one small menu document for the tool handlers to read.
func seedMenu(t *testing.T, cfg *contract.Config) {
	t.Helper()
	rs, err := store.Open(cfg.StoreBackend, cfg.StoreConnect)
	require.NoError(t, err)
	defer func() { _ = rs.Close() }()

	require.NoError(t, rs.PutMenu(&schema.MenuRecord{
		ID: "r1",
		Menu: []schema.Dish{
			{ID: "d1", Name: "Paneer Tikka", FoodCategory: "veg", MealCategories: []string{"Starters"}},
			{ID: "d2", Name: "Chicken Curry", FoodCategory: "non-veg", MealCategories: []string{"Mains"}},
		},
	}))
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	tool := s.GetTool(name)
	require.NotNil(t, tool, "tool %s should exist", name)

	res, err := tool.Handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	})
	require.NoError(t, err, "handlers report failures in the result, not as raw errors")
	return res
}

func TestMCPServerTools(t *testing.T) {
	cfg := testCfg(t)
	seedMenu(t, cfg)
	s := mcp_internal.NewMCPServer(cfg)

	t.Run("get_dish_counts answers the tally", func(t *testing.T) {
		res := callTool(t, s, "get_dish_counts", map[string]any{"restro_id": "r1"})
		assert.False(t, res.IsError)
		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, `"veg": 1`)
		assert.Contains(t, text, `"non_veg": 1`)
		assert.Contains(t, text, `"total": 2`)
	})

	t.Run("list_meal_categories answers the labels", func(t *testing.T) {
		res := callTool(t, s, "list_meal_categories", map[string]any{"restro_id": "r1"})
		assert.False(t, res.IsError)
		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, "Starters")
		assert.Contains(t, text, "Mains")
	})

	t.Run("get_dish_data unknown dish", func(t *testing.T) {
		res := callTool(t, s, "get_dish_data", map[string]any{
			"restro_id": "r1",
			"dish_name": "sushi",
		})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "not on menu")
	})

	t.Run("missing menu reports lookup failure", func(t *testing.T) {
		res := callTool(t, s, "get_dish_counts", map[string]any{"restro_id": "ghost"})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "menu lookup failed")
	})

	t.Run("get_nutrition_target missing user", func(t *testing.T) {
		res := callTool(t, s, "get_nutrition_target", map[string]any{"user_id": "ghost"})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "user lookup failed")
	})
}
