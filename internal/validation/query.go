package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MinQueryLen is the shortest accepted search query
	MinQueryLen = 2
	// MaxQueryLen is the longest accepted search query
	MaxQueryLen = 100
)

// queryStrip removes everything except letters, digits and whitespace.
// FTS metacharacters ("*", quotes, parens, "^", "-") would otherwise
// leak into the index query syntax.
var queryStrip = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)

var whitespace = regexp.MustCompile(`\s+`)

// SanitizeQuery normalizes a raw search query: strips metacharacters,
// collapses whitespace and trims. The result may be empty.
func SanitizeQuery(query string) string {
	q := queryStrip.ReplaceAllString(query, " ")
	q = whitespace.ReplaceAllString(q, " ")
	return strings.TrimSpace(q)
}

// NormalizeQuery sanitizes a raw query and caps it at MaxQueryLen
// runes. ok is false when the result is shorter than MinQueryLen,
// which callers treat as "nothing to search for".
func NormalizeQuery(raw string) (string, bool) {
	q := SanitizeQuery(raw)
	if runes := []rune(q); len(runes) > MaxQueryLen {
		q = strings.TrimSpace(string(runes[:MaxQueryLen]))
	}
	if utf8.RuneCountInString(q) < MinQueryLen {
		return "", false
	}
	return q, true
}

// emailPattern is deliberately loose; the server is the authority.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail checks the login email shape.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("email address is not valid")
	}
	return nil
}

// ValidatePassword checks the minimum login password requirements.
func ValidatePassword(password string) error {
	const minPasswordLen = 8

	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLen)
	}
	return nil
}
