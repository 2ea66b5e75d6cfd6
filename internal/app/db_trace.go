package app

import (
	"regexp"
	"strings"
)

const maxTracedQueryLength = 512

var (
	queryWhitespace = regexp.MustCompile(`\s+`)
	// four or more comma separated placeholders, as emitted for row inserts
	placeholderRun = regexp.MustCompile(`\$\d+(?:, ?\$\d+){3,}`)
)

// formatDBQueryForTrace flattens a query for the db.statement attribute and folds
// long placeholder lists to "$first..$last".
func formatDBQueryForTrace(query string) string {
	normalized := strings.TrimSpace(queryWhitespace.ReplaceAllString(query, " "))
	if normalized == "" {
		return normalized
	}

	normalized = placeholderRun.ReplaceAllStringFunc(normalized, func(run string) string {
		first, _, _ := strings.Cut(run, ",")
		last := run[strings.LastIndex(run, ",")+1:]
		return strings.TrimSpace(first) + ".." + strings.TrimSpace(last)
	})
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}
