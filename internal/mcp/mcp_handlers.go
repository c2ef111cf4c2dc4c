package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/platefit/platefit/core"
	"github.com/platefit/platefit/internal/contract"
	"github.com/platefit/platefit/internal/store"
	"github.com/platefit/platefit/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// withMenu opens the store, fetches one menu and runs fn on it. Every
// read-only menu tool shares this shape.
func (h *toolHandler) withMenu(restroID string, fn func(menu *schema.MenuRecord) (any, error)) (*mcp.CallToolResult, error) {
	st, err := store.Open(h.baseCfg.StoreBackend, h.baseCfg.StoreConnect)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("store unavailable: %v", err)), nil
	}
	defer func() { _ = st.Close() }()

	menu, err := st.GetMenu(restroID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("menu lookup failed: %v", err)), nil
	}

	out, err := fn(menu)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(out)
}

// jsonResult marshals a tool answer as indented JSON text.
func jsonResult(out any) (*mcp.CallToolResult, error) {
	jsonData, _ := json.MarshalIndent(out, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRecommendDishes(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.RestaurantID = request.GetString("restro_id", "")
	cfg.UserID = request.GetString("user_id", "")
	if g := request.GetString("is_group", ""); g != "" {
		cfg.IsGroup = contract.ParseBoolString(g)
	}
	if c := request.GetString("cuisine", ""); c != "" {
		cfg.Cuisine = c
	}

	req, err := core.LoadRequest(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("recommendation failed: %v", err)), nil
	}
	if err := core.EnsureGoals(&req); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("recommendation failed: %v", err)), nil
	}

	return jsonResult(core.Recommend(&req))
}

func (h *toolHandler) handleGetNutritionTarget(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID := request.GetString("user_id", "")

	st, err := store.Open(h.baseCfg.StoreBackend, h.baseCfg.StoreConnect)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("store unavailable: %v", err)), nil
	}
	defer func() { _ = st.Close() }()

	user, err := st.GetUser(userID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("user lookup failed: %v", err)), nil
	}

	report, err := core.ComputeTargetReport(&user.UserProfile, h.baseCfg.ReferenceTime())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("target calculation failed: %v", err)), nil
	}
	return jsonResult(report)
}

func (h *toolHandler) handleGetDishData(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dishName := request.GetString("dish_name", "")
	return h.withMenu(request.GetString("restro_id", ""), func(menu *schema.MenuRecord) (any, error) {
		dish := core.FindDish(menu, dishName)
		if dish == nil {
			return nil, fmt.Errorf("dish %q not on menu", dishName)
		}
		return dish, nil
	})
}

func (h *toolHandler) handleGetDishCounts(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.withMenu(request.GetString("restro_id", ""), func(menu *schema.MenuRecord) (any, error) {
		veg, nonVeg := core.DishCounts(menu)
		return map[string]int{"veg": veg, "non_veg": nonVeg, "total": len(menu.Menu)}, nil
	})
}

func (h *toolHandler) handleListMealCategories(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.withMenu(request.GetString("restro_id", ""), func(menu *schema.MenuRecord) (any, error) {
		return core.MealCategories(menu), nil
	})
}

func (h *toolHandler) handleListDishesInCategory(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := request.GetString("category", "")
	return h.withMenu(request.GetString("restro_id", ""), func(menu *schema.MenuRecord) (any, error) {
		return core.DishesInCategory(menu, category), nil
	})
}

func (h *toolHandler) handleGetDishIngredients(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dishName := request.GetString("dish_name", "")
	return h.withMenu(request.GetString("restro_id", ""), func(menu *schema.MenuRecord) (any, error) {
		ingredients, ok := core.DishIngredients(menu, dishName)
		if !ok {
			return nil, fmt.Errorf("dish %q not on menu", dishName)
		}
		return ingredients, nil
	})
}
