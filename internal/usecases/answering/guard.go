package answering

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnsafeSQL marks a generated query that failed the safety guard. Guarded
// queries are never executed.
var ErrUnsafeSQL = errors.New("generated query failed the safety guard")

// Keywords that end the conversation with the database. The scan runs on
// whole identifiers with string literals blanked out, so a customer called
// 'DROP Pharmacy' or a column named created_at never trips the guard.
var forbiddenKeywords = map[string]bool{
	"insert":   true,
	"update":   true,
	"delete":   true,
	"drop":     true,
	"alter":    true,
	"create":   true,
	"truncate": true,
	"grant":    true,
	"revoke":   true,
	"vacuum":   true,
	"copy":     true,
	"merge":    true,
	"call":     true,
	"execute":  true,
}

var (
	literalPattern    = regexp.MustCompile(`'(?:[^']|'')*'`)
	identifierPattern = regexp.MustCompile(`[a-z_][a-z0-9_]*`)
)

// validateSQL enforces the read-only contract on model-written SQL: exactly
// one statement, SELECT or WITH at the front, no data-modifying keywords. A
// single trailing semicolon is tolerated.
func validateSQL(query string) error {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return fmt.Errorf("%w: empty statement", ErrUnsafeSQL)
	}

	trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, ";"))
	if strings.Contains(trimmed, ";") {
		return fmt.Errorf("%w: multiple statements", ErrUnsafeSQL)
	}

	lower := strings.ToLower(trimmed)
	if !strings.HasPrefix(lower, "select") && !strings.HasPrefix(lower, "with") {
		return fmt.Errorf("%w: statement must start with SELECT or WITH", ErrUnsafeSQL)
	}

	scrubbed := literalPattern.ReplaceAllString(lower, "''")
	for _, identifier := range identifierPattern.FindAllString(scrubbed, -1) {
		if forbiddenKeywords[identifier] {
			return fmt.Errorf("%w: forbidden keyword %s", ErrUnsafeSQL, strings.ToUpper(identifier))
		}
	}

	return nil
}
