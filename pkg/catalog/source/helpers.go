package source

import (
	"regexp"

	"github.com/davidcollom/dbcost/pkg/logger"
)

// matchesAny reports whether value matches one of the regular expressions.
func matchesAny(value string, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		matched, err := regexp.MatchString(pattern, value)
		if err != nil {
			logger.Errorf("Error matching regex pattern: %v", err)
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
