package core

import (
	"time"

	"github.com/platefit/platefit/schema"
)

// RecommendRequest bundles the inputs of one recommendation run. The core
// is pure over these inputs: same request plus same reference time means
// the same ordered output.
type RecommendRequest struct {
	User     *schema.UserRecord
	Menu     *schema.MenuRecord
	IsGroup  bool
	Cuisine  string
	Timezone string    // optional override, falls back to the profile's zone
	Now      time.Time // reference time; zero means wall clock
}

// referenceTime resolves the request's local reference time.
func (r *RecommendRequest) referenceTime() time.Time {
	now := r.Now
	if now.IsZero() {
		now = time.Now()
	}
	tz := r.Timezone
	if tz == "" && r.User != nil {
		tz = r.User.Timezone
	}
	return now.In(LoadLocation(tz))
}

// isoWeekday converts Go's Sunday-based weekday to Monday=0..Sunday=6, so
// the weekend test is a single >= 5 comparison.
func isoWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// isBirthday reports whether the reference date matches the profile's
// birth month and day. Unparseable birth dates are simply not birthdays.
func isBirthday(profile *schema.UserProfile, now time.Time) bool {
	birth, ok := schema.ParseBirthDate(profile.DateOfBirth)
	if !ok {
		return false
	}
	return birth.Month() == now.Month() && birth.Day() == now.Day()
}

// BuildContext derives the scoring context of one request from the
// reference time and the user's profile.
func BuildContext(req *RecommendRequest) schema.ScoringContext {
	local := req.referenceTime()
	ctx := schema.ScoringContext{
		Hour:    local.Hour(),
		Weekday: isoWeekday(local),
		IsGroup: req.IsGroup,
		Cuisine: req.Cuisine,
	}
	if req.User != nil {
		ctx.Birthday = isBirthday(&req.User.UserProfile, local)
		ctx.ActivityLevel = schema.NormalizeActivityLevel(string(req.User.DailyRoutine))
	}
	return ctx
}

// usable reports whether the request carries enough data to score at all.
// Missing user, hunger level, goals or menu short-circuits to an empty
// result rather than an error.
func (r *RecommendRequest) usable() bool {
	if r.User == nil || r.User.HungerLevel == "" || r.User.Goals == nil {
		return false
	}
	return r.Menu != nil && len(r.Menu.Menu) > 0
}

// ScoreMenu scores every dish of the request's menu against the user's
// live goal, descending by score. Dishes without an identifier are
// skipped; nothing a single dish contains can abort the batch.
func ScoreMenu(req *RecommendRequest) []schema.ScoredDish {
	if !req.usable() {
		return nil
	}

	ctx := BuildContext(req)
	weights, rules := AdjustFactors(schema.DefaultFactorWeights(), schema.DefaultRuleWeights(), ctx)

	live := req.User.Goals.LiveGoal
	goalPct := GoalPercentsOf(live)

	scored := make([]schema.ScoredDish, 0, len(req.Menu.Menu))
	for i := range req.Menu.Menu {
		dish := &req.Menu.Menu[i]
		if dish.ID == "" {
			continue
		}
		scored = append(scored, ScoreDish(dish, live, goalPct, req.User.HungerLevel, ctx.Hour, weights, rules))
	}

	SortByScore(scored)
	return scored
}

// Recommend runs the full pipeline: score, sort, bucketize. Missing input
// data yields an empty result.
func Recommend(req *RecommendRequest) schema.RecommendationResult {
	scored := ScoreMenu(req)
	if len(scored) == 0 {
		return schema.RecommendationResult{}
	}
	return Bucketize(scored)
}

// ComputeGoalDrift reports the percent deviation of the live goal from the
// default goal, per macro and energy. Telemetry only.
func ComputeGoalDrift(target *schema.NutritionTarget) schema.GoalDrift {
	if target == nil {
		return schema.GoalDrift{}
	}
	pct := func(live, dflt float64) float64 {
		den := dflt
		if den > -epsilon && den < epsilon {
			den = epsilon
		}
		return round2((live - dflt) / den * 100)
	}
	return schema.GoalDrift{
		Protein: pct(target.LiveGoal.Protein.Grams, target.DefaultGoal.Protein.Grams),
		Carbs:   pct(target.LiveGoal.Carbs.Grams, target.DefaultGoal.Carbs.Grams),
		Fats:    pct(target.LiveGoal.Fats.Grams, target.DefaultGoal.Fats.Grams),
		Fiber:   pct(target.LiveGoal.Fiber.Grams, target.DefaultGoal.Fiber.Grams),
		Energy:  pct(target.LiveGoal.Kcal, target.DefaultGoal.Kcal),
	}
}
