package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/platefit/platefit/internal/contract"
	"github.com/platefit/platefit/schema"

	"github.com/olekukonko/tablewriter"
)

// targetJSON is the JSON shape of one target calculation: the report plus
// the live-vs-default drift.
type targetJSON struct {
	*schema.TargetReport
	Drift schema.GoalDrift `json:"goal_drift"`
}

// writeTargetReport outputs a nutrition target report, dispatching based
// on the output format configured.
func writeTargetReport(report *schema.TargetReport, drift schema.GoalDrift, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, targetJSON{TargetReport: report, Drift: drift})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTargetCSV(w, report, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTargetTable(report, drift, cfg, fmtFloat, w)
		}, "Wrote table")
	}
}

// goalRows flattens one goal into per-macro table rows.
func goalRows(label string, goal schema.GoalNutrients, fmtFloat func(float64) string) [][]string {
	return [][]string{
		{label, "energy", fmtFloat(goal.Kcal), ""},
		{label, "protein", fmtFloat(goal.Protein.Grams), fmtFloat(goal.Protein.Percent)},
		{label, "carbs", fmtFloat(goal.Carbs.Grams), fmtFloat(goal.Carbs.Percent)},
		{label, "fats", fmtFloat(goal.Fats.Grams), fmtFloat(goal.Fats.Percent)},
		{label, "fiber", fmtFloat(goal.Fiber.Grams), fmtFloat(goal.Fiber.Percent)},
	}
}

// writeTargetTable generates and writes the human-readable target tables.
func writeTargetTable(report *schema.TargetReport, drift schema.GoalDrift, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "Age %d, BMR %s kcal/day\n", report.Age, fmtFloat(report.BMR)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "TDEE: activity %s, exercise %s, goal %s kcal/day\n",
		fmtFloat(report.TDEEActivity), fmtFloat(report.TDEEExercise), fmtFloat(report.TDEEGoal)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Active meal: %s (%s kcal)\n\n",
		report.MealSlot, fmtFloat(report.MealCalories[report.MealSlot])); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Goal", "Nutrient", "Grams", "Percent"})

	var data [][]string
	data = append(data, goalRows("live", report.Target.LiveGoal, fmtFloat)...)
	data = append(data, goalRows("default", report.Target.DefaultGoal, fmtFloat)...)
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if cfg.Detail {
		if _, err := fmt.Fprintf(writer, "Ratio bands: carbs %s-%s g, protein %s-%s g, fats %s-%s g, fiber %s-%s g\n",
			fmtFloat(report.RatioMacros.Carbs.Low), fmtFloat(report.RatioMacros.Carbs.High),
			fmtFloat(report.RatioMacros.Protein.Low), fmtFloat(report.RatioMacros.Protein.High),
			fmtFloat(report.RatioMacros.Fats.Low), fmtFloat(report.RatioMacros.Fats.High),
			fmtFloat(report.RatioMacros.Fiber.Low), fmtFloat(report.RatioMacros.Fiber.High)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(writer, "Goal drift vs default: energy %s%%, protein %s%%, carbs %s%%, fats %s%%, fiber %s%%\n",
		fmtFloat(drift.Energy), fmtFloat(drift.Protein), fmtFloat(drift.Carbs), fmtFloat(drift.Fats), fmtFloat(drift.Fiber))
	return err
}

// writeTargetCSV writes the goal pair in CSV format.
func writeTargetCSV(w io.Writer, report *schema.TargetReport, fmtFloat func(float64) string) error {
	header := []string{"goal", "nutrient", "grams", "percent"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, row := range goalRows("live", report.Target.LiveGoal, fmtFloat) {
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		for _, row := range goalRows("default", report.Target.DefaultGoal, fmtFloat) {
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
