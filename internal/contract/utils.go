package contract

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Match label constants.
const (
	BestValue = "Best" // Best match tier
	GoodValue = "Good" // Good match tier
	FairValue = "Fair" // Mid-score dish
	WeakValue = "Weak" // Low-score dish
)

// Color variables for console output.
var (
	BestColor = color.New(color.FgGreen, color.Bold) // bestColor marks the strongest matches.
	GoodColor = color.New(color.FgCyan, color.Bold)  // goodColor marks solid matches.
	FairColor = color.New(color.FgYellow)            // fairColor represents a middling fit.
	WeakColor = color.New(color.FgRed)               // weakColor represents a poor fit.
)

// GetPlainLabel returns a plain text label for a dish score. This is the
// core logic used for CSV, JSON and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 75:
		return BestValue
	case score >= 55:
		return GoodValue
	case score >= 35:
		return FairValue
	default:
		return WeakValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch text {
	case BestValue:
		return BestColor.Sprint(text)
	case GoodValue:
		return GoodColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	default: // "Weak"
		return WeakColor.Sprint(text)
	}
}

// ParseBoolString interprets textual booleans the way the invocation
// contract specifies: "true" (any casing) is true, everything else is
// false.
func ParseBoolString(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// GetStoreDBFilePath returns the path to the SQLite DB file for the record
// store.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".platefit.db"
	}
	return filepath.Join(homeDir, ".platefit.db")
}

// TruncateName shortens a dish name to maxWidth runes, keeping the tail
// readable with a leading ellipsis the way long paths are shown.
func TruncateName(name string, maxWidth int) string {
	if maxWidth <= 0 {
		return name
	}
	rr := []rune(name)
	if len(rr) <= maxWidth {
		return name
	}
	if maxWidth <= 3 {
		return string(rr[:maxWidth])
	}
	return "..." + string(rr[len(rr)-(maxWidth-3):])
}
