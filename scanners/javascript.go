package scanners

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/JA3G3R/jscheck/config"
	"github.com/JA3G3R/jscheck/types"
)

// Rule names, as used in config disabled_rules and JSON output.
const (
	RuleNoConsoleLog         = "no_console_log"
	RuleStrictEquality       = "strict_equality"
	RuleNoTrailingWhitespace = "no_trailing_whitespace"
	RuleBalancedBraces       = "balanced_braces"
)

var (
	// Two consecutive '=' that are not part of ===, !=, <= or >=.
	// Purely textual: a == inside a string literal still matches.
	looseEqualityRe = regexp.MustCompile(`[^=!<>]==[^=]`)

	lineCommentRe  = regexp.MustCompile(`//.*$`)
	blockCommentRe = regexp.MustCompile(`/\*.*?\*/`)
)

// ScanJavaScript reads one JavaScript file and returns every style
// issue found, in line order with checks applied in a fixed order per
// line. The brace-balance issue, if any, is always last. A file that
// cannot be read yields an error and no issues.
func ScanJavaScript(path string, cfg *config.Config) ([]types.Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return scanLines(path, splitLines(data), cfg), nil
}

func scanLines(path string, lines []string, cfg *config.Config) []types.Issue {
	var issues []types.Issue

	for i, line := range lines {
		n := i + 1

		if cfg.RuleEnabled(RuleNoConsoleLog) &&
			strings.Contains(line, "console.log(") && !strings.Contains(line, "debugLog") {
			issues = append(issues, types.Issue{
				Scanner: "javascript",
				Rule:    RuleNoConsoleLog,
				File:    path,
				Line:    n,
				Details: "Found console.log - should use debugLog",
			})
		}

		// Loose equality is skipped on comment lines; everywhere else
		// it is a heuristic match, not a tokenization.
		if cfg.RuleEnabled(RuleStrictEquality) &&
			!strings.HasPrefix(strings.TrimSpace(line), "//") &&
			looseEqualityRe.MatchString(line) {
			issues = append(issues, types.Issue{
				Scanner: "javascript",
				Rule:    RuleStrictEquality,
				File:    path,
				Line:    n,
				Details: "Found == - consider using ===",
			})
		}

		if cfg.RuleEnabled(RuleNoTrailingWhitespace) &&
			strings.TrimRightFunc(line, unicode.IsSpace) != line {
			issues = append(issues, types.Issue{
				Scanner: "javascript",
				Rule:    RuleNoTrailingWhitespace,
				File:    path,
				Line:    n,
				Details: "Trailing whitespace",
			})
		}
	}

	if cfg.RuleEnabled(RuleBalancedBraces) {
		if delta := braceBalance(lines); delta != 0 {
			issues = append(issues, types.Issue{
				Scanner: "javascript",
				Rule:    RuleBalancedBraces,
				File:    path,
				Details: braceDetails(delta),
			})
		}
	}

	return issues
}

// braceBalance counts '{' minus '}' across all lines, ignoring text
// behind a // comment and inside line-local /* ... */ pairs. Block
// comments spanning multiple lines are not tracked.
func braceBalance(lines []string) int {
	var open int
	for _, line := range lines {
		clean := lineCommentRe.ReplaceAllString(line, "")
		clean = blockCommentRe.ReplaceAllString(clean, "")
		open += strings.Count(clean, "{")
		open -= strings.Count(clean, "}")
	}
	return open
}

func braceDetails(delta int) string {
	if delta > 0 {
		return fmt.Sprintf("Unbalanced braces: %d extra opening braces", delta)
	}
	return fmt.Sprintf("Unbalanced braces: %d extra closing braces", -delta)
}

// splitLines splits file content on '\n' without keeping the
// terminator; a trailing newline does not produce a final empty line.
// Carriage returns are left in place so CRLF endings still count as
// trailing whitespace.
func splitLines(data []byte) []string {
	lines := strings.Split(string(data), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
