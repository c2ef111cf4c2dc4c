package core

import (
	"strings"

	"github.com/platefit/platefit/schema"
)

// Read-only menu projections used by the menu CLI surface and the agent
// tools. All of them tolerate a nil menu.

// FindDish looks a dish up by name, case-insensitive and tolerant of the
// non-breaking hyphen some menu feeds carry. Returns nil when absent.
func FindDish(menu *schema.MenuRecord, name string) *schema.Dish {
	if menu == nil {
		return nil
	}
	want := schema.NormalizeDishName(name)
	for i := range menu.Menu {
		if schema.NormalizeDishName(menu.Menu[i].Name) == want {
			return &menu.Menu[i]
		}
	}
	return nil
}

// DishCounts tallies vegetarian and non-vegetarian dishes by their food
// category tag. Categories naming neither count as neither.
func DishCounts(menu *schema.MenuRecord) (veg, nonVeg int) {
	if menu == nil {
		return 0, 0
	}
	for i := range menu.Menu {
		cat := strings.ToLower(menu.Menu[i].FoodCategory)
		cat = strings.NewReplacer("-", "", "_", "", " ", "").Replace(cat)
		switch {
		case strings.Contains(cat, "nonveg"):
			nonVeg++
		case strings.Contains(cat, "veg"):
			veg++
		}
	}
	return veg, nonVeg
}

// DishFoodCategory pairs a dish name with its food category tag.
type DishFoodCategory struct {
	Name         string `json:"dish_name"`
	FoodCategory string `json:"food_category"`
}

// FoodCategories lists every dish with its food category, in menu order.
func FoodCategories(menu *schema.MenuRecord) []DishFoodCategory {
	if menu == nil {
		return nil
	}
	out := make([]DishFoodCategory, 0, len(menu.Menu))
	for i := range menu.Menu {
		out = append(out, DishFoodCategory{
			Name:         menu.Menu[i].Name,
			FoodCategory: menu.Menu[i].FoodCategory,
		})
	}
	return out
}

// MealCategories lists the distinct meal categories of a menu in first
// appearance order.
func MealCategories(menu *schema.MenuRecord) []string {
	if menu == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for i := range menu.Menu {
		for _, c := range menu.Menu[i].MealCategories {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

// DishesInCategory lists the names of dishes carrying the given meal
// category tag, in menu order. The match is exact, as categories are
// restaurant-curated labels.
func DishesInCategory(menu *schema.MenuRecord, category string) []string {
	if menu == nil {
		return nil
	}
	var out []string
	for i := range menu.Menu {
		for _, c := range menu.Menu[i].MealCategories {
			if c == category {
				out = append(out, menu.Menu[i].Name)
				break
			}
		}
	}
	return out
}

// BuildMenuSummary projects a menu record into its render model: veg and
// non-veg tallies plus per-category dish lists.
func BuildMenuSummary(menu *schema.MenuRecord) *schema.MenuSummary {
	veg, nonVeg := DishCounts(menu)
	categories := make(map[string][]string)
	for _, c := range MealCategories(menu) {
		categories[c] = DishesInCategory(menu, c)
	}
	summary := &schema.MenuSummary{
		VegCount:    veg,
		NonVegCount: nonVeg,
		Categories:  categories,
	}
	if menu != nil {
		summary.RestaurantID = menu.ID
		summary.RestaurantName = menu.RestaurantName
		summary.DishCount = len(menu.Menu)
	}
	return summary
}

// DishIngredients returns a dish's ingredient map by name. The boolean is
// false when the dish is not on the menu.
func DishIngredients(menu *schema.MenuRecord, name string) (map[string]string, bool) {
	dish := FindDish(menu, name)
	if dish == nil {
		return nil, false
	}
	return dish.Ingredients, true
}
