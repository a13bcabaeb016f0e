package validation

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/habedi/gols/pkg/clierr"
)

const (
	MinThreads = 1
	MaxThreads = 20
)

func ValidateThreadCount(threads int) error {
	if threads < MinThreads || threads > MaxThreads {
		return clierr.Customf("thread count must be between %d and %d, got %d", MinThreads, MaxThreads, threads)
	}
	return nil
}

func ValidateNonEmptyString(fieldName, value string) error {
	if value == "" {
		return clierr.Customf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidateFormat checks that format is one of valid.
func ValidateFormat(format string, valid []string) error {
	if !slices.Contains(valid, format) {
		return clierr.Customf("invalid format: %s (must be one of: %s)", format, strings.Join(valid, ", "))
	}
	return nil
}

// ValidatePatterns checks that every pattern is a well-formed glob.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if _, err := filepath.Match(p, ""); err != nil {
			return clierr.Customf("invalid exclude pattern: %s", p)
		}
	}
	return nil
}
