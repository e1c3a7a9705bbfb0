package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Consensus label constants, keyed off the keep percentage.
const (
	StrongValue    = "Strong"    // Broad agreement to keep
	FavoredValue   = "Favored"   // Majority keeps
	ContestedValue = "Contested" // Split decisions
	RejectedValue  = "Rejected"  // Mostly discarded
)

// Color variables for console output.
var (
	StrongColor    = color.New(color.FgGreen, color.Bold)
	FavoredColor   = color.New(color.FgCyan)
	ContestedColor = color.New(color.FgYellow)
	RejectedColor  = color.New(color.FgRed)
)

// GetPlainLabel returns a plain text consensus label for a keep percentage.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 80:
		return StrongValue
	case score >= 60:
		return FavoredValue
	case score >= 40:
		return ContestedValue
	default:
		return RejectedValue
	}
}

// GetColorLabel returns a colored consensus label for table output.
// It uses GetPlainLabel to determine the string, then applies the color.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch text {
	case StrongValue:
		return StrongColor.Sprint(text)
	case FavoredValue:
		return FavoredColor.Sprint(text)
	case ContestedValue:
		return ContestedColor.Sprint(text)
	default: // "Rejected"
		return RejectedColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateText truncates display text to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 so there is space for the ellipsis and at least one
// character of content.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// GetSessionDBFilePath returns the path to the SQLite DB file for the local
// session store.
func GetSessionDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".stackdeck_sessions.db"
	}
	return filepath.Join(homeDir, ".stackdeck_sessions.db")
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
