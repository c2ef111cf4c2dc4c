// Package core implements the recommendation pipeline: meal-window
// resolution, nutrition targets, context-adjusted weights, dish scoring
// and bucketized ranking.
package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/platefit/platefit/internal/contract"
	"github.com/platefit/platefit/internal/outwriter"
	"github.com/platefit/platefit/internal/parquet"
	"github.com/platefit/platefit/internal/store"
	"github.com/platefit/platefit/schema"
)

// LoadRequest opens the record store and assembles a scoring request from
// the configured identifiers. Missing documents are tolerated: the
// pipeline answers an empty result instead of failing, so a half-seeded
// store still responds.
func LoadRequest(cfg *contract.Config) (RecommendRequest, error) {
	req := RecommendRequest{
		IsGroup:  cfg.IsGroup,
		Cuisine:  cfg.Cuisine,
		Timezone: cfg.Timezone,
		Now:      cfg.ReferenceTime(),
	}

	st, err := store.Open(cfg.StoreBackend, cfg.StoreConnect)
	if err != nil {
		return req, err
	}
	defer func() { _ = st.Close() }()

	user, err := st.GetUser(cfg.UserID)
	switch {
	case err == nil:
		req.User = user
	case errors.Is(err, store.ErrNotFound):
		contract.LogWarning(fmt.Sprintf("user %q not found, answering empty", cfg.UserID))
	default:
		return req, err
	}

	menu, err := st.GetMenu(cfg.RestaurantID)
	switch {
	case err == nil:
		req.Menu = menu
	case errors.Is(err, store.ErrNotFound):
		contract.LogWarning(fmt.Sprintf("menu %q not found, answering empty", cfg.RestaurantID))
	default:
		return req, err
	}

	return req, nil
}

// EnsureGoals fills the request's nutrition target from the profile when
// the stored user document carries none.
func EnsureGoals(req *RecommendRequest) error {
	if req.User == nil || req.User.Goals != nil {
		return nil
	}
	target, err := ComputeTarget(&req.User.UserProfile, req.Now)
	if err != nil {
		return fmt.Errorf("derive goals for user %q: %w", req.User.ID, err)
	}
	req.User.Goals = target
	return nil
}

// ExecuteRecommend runs the full pipeline and prints the bucketized
// recommendation. With detail or explain set it prints the ranked score
// sheet instead, exposing the sub-scores behind each pick.
func ExecuteRecommend(_ context.Context, cfg *contract.Config) error {
	req, err := LoadRequest(cfg)
	if err != nil {
		return err
	}
	if err := EnsureGoals(&req); err != nil {
		return err
	}

	ow := outwriter.NewOutWriter()
	if cfg.Detail || cfg.Explain {
		return ow.WriteScoredDishes(ScoreMenu(&req), cfg)
	}
	return ow.WriteRecommendation(Recommend(&req), cfg)
}

// ExecuteTarget computes and prints the nutrition target report for the
// configured user, including the drift of the live goal from the daily
// default.
func ExecuteTarget(_ context.Context, cfg *contract.Config) error {
	st, err := store.Open(cfg.StoreBackend, cfg.StoreConnect)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	user, err := st.GetUser(cfg.UserID)
	if err != nil {
		return err
	}

	report, err := ComputeTargetReport(&user.UserProfile, cfg.ReferenceTime())
	if err != nil {
		return err
	}

	drift := ComputeGoalDrift(&report.Target)
	return outwriter.NewOutWriter().WriteTarget(report, drift, cfg)
}

// ExecuteMenu prints the menu projection summary for the configured
// restaurant.
func ExecuteMenu(_ context.Context, cfg *contract.Config) error {
	st, err := store.Open(cfg.StoreBackend, cfg.StoreConnect)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	menu, err := st.GetMenu(cfg.RestaurantID)
	if err != nil {
		return err
	}

	return outwriter.NewOutWriter().WriteMenuSummary(BuildMenuSummary(menu), cfg)
}

// ExecuteDish prints one dish's nutrient detail looked up by name.
func ExecuteDish(_ context.Context, cfg *contract.Config, dishName string) error {
	st, err := store.Open(cfg.StoreBackend, cfg.StoreConnect)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	menu, err := st.GetMenu(cfg.RestaurantID)
	if err != nil {
		return err
	}

	dish := FindDish(menu, dishName)
	if dish == nil {
		return fmt.Errorf("dish %q not on menu %q", dishName, cfg.RestaurantID)
	}
	return outwriter.NewOutWriter().WriteDish(dish, cfg)
}

// ExecuteLoad seeds the record store from JSON document files. Each user
// file holds one user record, each menu file one menu record.
func ExecuteLoad(_ context.Context, cfg *contract.Config, userFiles, menuFiles []string) error {
	st, err := store.Open(cfg.StoreBackend, cfg.StoreConnect)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	for _, path := range userFiles {
		var user schema.UserRecord
		if err := readJSONFile(path, &user); err != nil {
			return err
		}
		if err := st.PutUser(&user); err != nil {
			return fmt.Errorf("store user from %s: %w", path, err)
		}
	}

	for _, path := range menuFiles {
		var menu schema.MenuRecord
		if err := readJSONFile(path, &menu); err != nil {
			return err
		}
		if err := st.PutMenu(&menu); err != nil {
			return fmt.Errorf("store menu from %s: %w", path, err)
		}
	}

	fmt.Printf("Loaded %d user(s) and %d menu(s)\n", len(userFiles), len(menuFiles))
	return nil
}

// readJSONFile decodes one JSON document file into out.
func readJSONFile(path string, out any) error {
	body, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// ExecuteExport scores the configured menu and writes the ranked sheet to
// a Parquet file for offline analysis.
func ExecuteExport(_ context.Context, cfg *contract.Config, outputPath string) error {
	req, err := LoadRequest(cfg)
	if err != nil {
		return err
	}
	if err := EnsureGoals(&req); err != nil {
		return err
	}

	scoredAt := cfg.ReferenceTime()
	rows := parquet.ConvertScoredDishes(ScoreMenu(&req), cfg.RestaurantID, cfg.UserID, scoredAt)
	if err := parquet.WriteDishScoresParquet(rows, outputPath); err != nil {
		return err
	}

	fmt.Printf("Exported %d dish scores to %s\n", len(rows), outputPath)
	return nil
}

// ExecuteStatus prints the record store summary: backend, document counts
// and the most recent write.
func ExecuteStatus(_ context.Context, cfg *contract.Config) error {
	st, err := store.Open(cfg.StoreBackend, cfg.StoreConnect)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	status, err := st.GetStatus()
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteStatus(status, cfg)
}
