package schema

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Percent is a percentage value that unmarshals from either a JSON number
// or a string like "22%". Malformed values decode to 0 instead of failing
// the document, matching the defensive posture of the rule functions.
type Percent float64

// UnmarshalJSON implements json.Unmarshaler.
func (p *Percent) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*p = Percent(num)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*p = 0
		return nil
	}
	*p = ParsePercent(s)
	return nil
}

// ParsePercent converts a percentage string to its numeric value, stripping
// a trailing '%' and surrounding whitespace. Invalid input yields 0.
func ParsePercent(s string) Percent {
	s = strings.TrimSpace(strings.ReplaceAll(s, "%", ""))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return Percent(v)
}

// activityAliases collapses the free-text activity vocabulary seen in user
// documents onto the five normalized levels. Keys are lowercased with
// spaces and hyphens folded to underscores.
var activityAliases = map[string]ActivityLevel{
	// sedentary
	"sedentary": ActivitySedentary,
	"very_low":  ActivitySedentary,
	"low":       ActivitySedentary,
	"deskjob":   ActivitySedentary,
	"inactive":  ActivitySedentary,

	// light
	"light":          ActivityLight,
	"lightly_active": ActivityLight,
	"mild":           ActivityLight,
	"casual":         ActivityLight,
	"walking":        ActivityLight,

	// moderate
	"moderate": ActivityModerate,
	"medium":   ActivityModerate,
	"average":  ActivityModerate,
	"balanced": ActivityModerate,
	"normal":   ActivityModerate,

	// heavy
	"heavy":        ActivityHeavy,
	"high":         ActivityHeavy,
	"active":       ActivityHeavy,
	"post_workout": ActivityHeavy,
	"training":     ActivityHeavy,
	"workout":      ActivityHeavy,

	// very heavy
	"very_heavy":       ActivityVeryHeavy,
	"veryactive":       ActivityVeryHeavy,
	"very_active":      ActivityVeryHeavy,
	"super_active":     ActivityVeryHeavy,
	"extremely_active": ActivityVeryHeavy,
	"athlete":          ActivityVeryHeavy,
	"intense":          ActivityVeryHeavy,
	"extreme":          ActivityVeryHeavy,
}

// activityNumerics maps legacy numeric encodings of the activity level.
var activityNumerics = map[string]ActivityLevel{
	"1": ActivitySedentary,
	"2": ActivityLight,
	"3": ActivityHeavy,
	"4": ActivityVeryHeavy,
}

// NormalizeActivityLevel maps a free-text activity value onto one of the
// five normalized levels. Matching is case- and separator-insensitive;
// unrecognized or empty values default to sedentary for empty input and
// moderate otherwise, as the original vocabulary did.
func NormalizeActivityLevel(raw string) ActivityLevel {
	if strings.TrimSpace(raw) == "" {
		return ActivitySedentary
	}
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	if lvl, ok := activityNumerics[s]; ok {
		return lvl
	}
	if lvl, ok := activityAliases[s]; ok {
		return lvl
	}
	return ActivityModerate
}

// birthDateLayouts are the accepted birth date formats, tried in order.
var birthDateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"01/02/2006",
	"01-02-2006",
}

// ParseBirthDate parses a birth date string in any of the accepted layouts,
// falling back to RFC 3339. Returns the zero time and false when nothing
// matches.
func ParseBirthDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse(time.RFC3339, strings.Replace(s, "Z", "+00:00", 1)); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// NormalizeDishName canonicalizes a dish name for lookup: lowercase,
// trimmed, with the non-breaking hyphen folded to a regular one.
func NormalizeDishName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(strings.ToLower(name)), "‑", "-")
}

// NormalizeTagSet lowercases and trims a tag list into a set, dropping
// empty entries.
func NormalizeTagSet(tags []string) map[string]struct{} {
	out := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out[t] = struct{}{}
		}
	}
	return out
}
