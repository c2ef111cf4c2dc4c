// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/platefit/platefit/internal/contract"
)

// NewMCPServer initializes and configures the Platefit MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Platefit Recommendation Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: recommend_dishes ---
	s.AddTool(mcp.NewTool("recommend_dishes",
		mcp.WithDescription("Recommend dishes from a restaurant menu against a user's nutrition goals, bucketized into best and good matches."),
		mcp.WithString("restro_id", mcp.Description("Restaurant identifier whose menu to score."), mcp.Required()),
		mcp.WithString("user_id", mcp.Description("User identifier whose goals to score against."), mcp.Required()),
		mcp.WithString("is_group", mcp.Description("Whether the user is dining in a group ('true'/'false'). Defaults to solo.")),
		mcp.WithString("cuisine", mcp.Description("Optional cuisine tag for context adjustment (e.g. 'indian').")),
	), h.handleRecommendDishes)

	// --- 2. Tool: get_nutrition_target ---
	s.AddTool(mcp.NewTool("get_nutrition_target",
		mcp.WithDescription("Compute the nutrition target report for a user: BMR, TDEE chain, per-meal calories and the live/default goal pair."),
		mcp.WithString("user_id", mcp.Description("User identifier whose profile to use."), mcp.Required()),
	), h.handleGetNutritionTarget)

	// --- 3. Tool: get_dish_data ---
	s.AddTool(mcp.NewTool("get_dish_data",
		mcp.WithDescription("Look up one dish's full nutrient and tag data by name."),
		mcp.WithString("restro_id", mcp.Description("Restaurant identifier whose menu to search."), mcp.Required()),
		mcp.WithString("dish_name", mcp.Description("Dish name, case-insensitive."), mcp.Required()),
	), h.handleGetDishData)

	// --- 4. Tool: get_dish_counts ---
	s.AddTool(mcp.NewTool("get_dish_counts",
		mcp.WithDescription("Count vegetarian and non-vegetarian dishes on a restaurant menu."),
		mcp.WithString("restro_id", mcp.Description("Restaurant identifier whose menu to count."), mcp.Required()),
	), h.handleGetDishCounts)

	// --- 5. Tool: list_meal_categories ---
	s.AddTool(mcp.NewTool("list_meal_categories",
		mcp.WithDescription("List the distinct meal categories on a restaurant menu."),
		mcp.WithString("restro_id", mcp.Description("Restaurant identifier whose menu to list."), mcp.Required()),
	), h.handleListMealCategories)

	// --- 6. Tool: list_dishes_in_category ---
	s.AddTool(mcp.NewTool("list_dishes_in_category",
		mcp.WithDescription("List the dish names carrying a given meal category tag."),
		mcp.WithString("restro_id", mcp.Description("Restaurant identifier whose menu to search."), mcp.Required()),
		mcp.WithString("category", mcp.Description("Meal category tag, matched exactly."), mcp.Required()),
	), h.handleListDishesInCategory)

	// --- 7. Tool: get_dish_ingredients ---
	s.AddTool(mcp.NewTool("get_dish_ingredients",
		mcp.WithDescription("Return one dish's ingredient list with quantities."),
		mcp.WithString("restro_id", mcp.Description("Restaurant identifier whose menu to search."), mcp.Required()),
		mcp.WithString("dish_name", mcp.Description("Dish name, case-insensitive."), mcp.Required()),
	), h.handleGetDishIngredients)

	return s
}

// StartMCPServer starts the Platefit MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
