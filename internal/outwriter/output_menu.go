package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/platefit/platefit/internal/contract"
	"github.com/platefit/platefit/schema"

	"github.com/olekukonko/tablewriter"
)

// writeMenuSummary outputs the menu summary, dispatching based on the
// output format configured.
func writeMenuSummary(summary *schema.MenuSummary, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"category", "dish"}, func(cw *csv.Writer) error {
				for _, category := range sortedCategoryNames(summary) {
					for _, dish := range summary.Categories[category] {
						if err := cw.Write([]string{category, dish}); err != nil {
							return err
						}
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMenuTable(summary, w)
		}, "Wrote table")
	}
}

// sortedCategoryNames returns the summary's category names in sorted
// order so output is deterministic across runs.
func sortedCategoryNames(summary *schema.MenuSummary) []string {
	names := make([]string, 0, len(summary.Categories))
	for c := range summary.Categories {
		names = append(names, c)
	}
	sort.Strings(names)
	return names
}

// writeMenuTable generates and writes the human-readable menu summary.
func writeMenuTable(summary *schema.MenuSummary, writer io.Writer) error {
	name := summary.RestaurantName
	if name == "" {
		name = summary.RestaurantID
	}
	if _, err := fmt.Fprintf(writer, "Menu for %s: %d dishes (%d veg, %d non-veg)\n",
		name, summary.DishCount, summary.VegCount, summary.NonVegCount); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Category", "Dishes", "Count"})

	var data [][]string
	for _, category := range sortedCategoryNames(summary) {
		dishes := summary.Categories[category]
		data = append(data, []string{
			category,
			strings.Join(dishes, ", "),
			strconv.Itoa(len(dishes)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeDishDetail outputs one dish's nutrient detail, dispatching based on
// the output format configured.
func writeDishDetail(dish *schema.Dish, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, dish)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"field", "value"}, func(cw *csv.Writer) error {
				for _, row := range dishRows(dish, fmtFloat) {
					if err := cw.Write(row); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			table := tablewriter.NewWriter(w)
			table.Header([]string{"Field", "Value"})
			if err := table.Bulk(dishRows(dish, fmtFloat)); err != nil {
				return err
			}
			return table.Render()
		}, "Wrote table")
	}
}

// dishRows flattens a dish into field/value rows shared by the table and
// CSV renderings.
func dishRows(dish *schema.Dish, fmtFloat func(float64) string) [][]string {
	rows := [][]string{
		{"name", dish.Name},
		{"serving_size_g", fmtFloat(dish.ServingSizeGrams)},
		{"energy_kcal", fmtFloat(dish.Nutrients.Energy)},
		{"protein_g", fmtFloat(dish.Nutrients.Protein)},
		{"carbs_g", fmtFloat(dish.Nutrients.Carbs)},
		{"fats_g", fmtFloat(dish.Nutrients.Fats)},
		{"fiber_g", fmtFloat(dish.Nutrients.Fiber)},
		{"sugar_g", fmtFloat(dish.Nutrients.Sugar)},
		{"sodium_mg", fmtFloat(dish.Nutrients.Sodium)},
		{"cholesterol_mg", fmtFloat(dish.Nutrients.Cholesterol)},
		{"food_category", dish.FoodCategory},
		{"course_types", strings.Join(dish.CourseTypes, ", ")},
		{"timing", strings.Join(dish.TimingCategories, ", ")},
		{"meal_categories", strings.Join(dish.MealCategories, ", ")},
	}
	if len(dish.Ingredients) > 0 {
		names := make([]string, 0, len(dish.Ingredients))
		for ing := range dish.Ingredients {
			names = append(names, ing)
		}
		sort.Strings(names)
		parts := make([]string, 0, len(names))
		for _, ing := range names {
			parts = append(parts, fmt.Sprintf("%s (%s)", ing, dish.Ingredients[ing]))
		}
		rows = append(rows, []string{"ingredients", strings.Join(parts, ", ")})
	}
	return rows
}
