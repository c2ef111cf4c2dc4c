package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/platefit/platefit/internal/contract"
	"github.com/platefit/platefit/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeRecommendationResult outputs the final bucketed recommendation,
// dispatching based on the output format configured.
func writeRecommendationResult(result schema.RecommendationResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"category", "dish"}, func(cw *csv.Writer) error {
				for _, bucket := range result {
					for _, dish := range bucket.Dishes {
						if err := cw.Write([]string{bucket.Category, dish}); err != nil {
							return err
						}
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRecommendationTable(result, cfg, w)
		}, "Wrote table")
	}
}

// writeRecommendationTable generates and writes the human-readable bucket
// table.
func writeRecommendationTable(result schema.RecommendationResult, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Category", "Dishes"})

	var data [][]string
	total := 0
	for _, bucket := range result {
		total += len(bucket.Dishes)
		data = append(data, []string{
			bucket.Category,
			strings.Join(bucket.Dishes, ", "),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Recommended %d dishes across %d buckets\n", total, len(result)); err != nil {
		return err
	}
	return nil
}

// writeScoredDishResults outputs the full ranked dish list, dispatching
// based on the output format configured.
func writeScoredDishResults(dishes []schema.ScoredDish, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoredDishJSON(w, dishes)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoredDishCSV(w, dishes, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoredDishTable(dishes, cfg, fmtFloat, w)
		}, "Wrote table")
	}
}

// writeScoredDishTable generates and writes the human-readable score table.
func writeScoredDishTable(dishes []schema.ScoredDish, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"Rank", "Dish", "Score", "Label"}
	if cfg.Detail {
		headers = append(headers, "Density", "Euclid", "Satiety", "Rules", "Timing")
	}
	if cfg.Explain {
		headers = append(headers, "Guardrail")
	}
	table.Header(headers)

	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for i, d := range dishes {
		row := []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(d.Dish.Name, nameWidth),
			fmtFloat(d.Score),
			contract.GetColorLabel(d.Score),
		}
		if cfg.Detail {
			row = append(
				row,
				fmtFloat(d.Breakdown.Density),
				fmtFloat(d.Breakdown.Euclidean),
				fmtFloat(d.Breakdown.Satiety),
				fmtFloat(d.Breakdown.Rules),
				fmtFloat(d.Breakdown.Timing),
			)
		}
		if cfg.Explain {
			row = append(row, formatGuardrail(d.Breakdown))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Scored %d dishes\n", len(dishes)); err != nil {
		return err
	}
	return nil
}

// formatGuardrail renders the guardrail column: outlier count plus the
// damper applied.
func formatGuardrail(b schema.ScoreBreakdown) string {
	if b.Outliers == 0 {
		return "clean"
	}
	return fmt.Sprintf("%d out, x%.2f", b.Outliers, b.GuardMult)
}

// writeScoredDishCSV writes the ranked dish list in CSV format.
func writeScoredDishCSV(w io.Writer, dishes []schema.ScoredDish, fmtFloat func(float64) string) error {
	header := []string{
		"rank",
		"dish",
		"score",
		"label",
		"density",
		"euclidean",
		"satiety",
		"rules",
		"timing",
		"outliers",
		"guard_mult",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, d := range dishes {
			rec := []string{
				strconv.Itoa(i + 1),
				d.Dish.Name,
				fmtFloat(d.Score),
				contract.GetPlainLabel(d.Score),
				fmtFloat(d.Breakdown.Density),
				fmtFloat(d.Breakdown.Euclidean),
				fmtFloat(d.Breakdown.Satiety),
				fmtFloat(d.Breakdown.Rules),
				fmtFloat(d.Breakdown.Timing),
				strconv.Itoa(d.Breakdown.Outliers),
				fmtFloat(d.Breakdown.GuardMult),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeScoredDishJSON writes the ranked dish list in JSON format.
func writeScoredDishJSON(w io.Writer, dishes []schema.ScoredDish) error {
	type JSONScoredDish struct {
		Rank      int                    `json:"rank"`
		Name      string                 `json:"dish_name"`
		Score     float64                `json:"score"`
		Label     string                 `json:"label"`
		Snapshot  schema.MacroSnapshot  `json:"macro_snapshot"`
		Breakdown schema.ScoreBreakdown `json:"breakdown"`
	}

	output := make([]JSONScoredDish, len(dishes))
	for i, d := range dishes {
		output[i] = JSONScoredDish{
			Rank:      i + 1,
			Name:      d.Dish.Name,
			Score:     d.Score,
			Label:     contract.GetPlainLabel(d.Score),
			Snapshot:  d.Snapshot,
			Breakdown: d.Breakdown,
		}
	}
	return writeJSON(w, output)
}
