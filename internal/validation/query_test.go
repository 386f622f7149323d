package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "dune messiah", "dune messiah"},
		{"fts wildcards", `dune* "messiah"`, "dune messiah"},
		{"parens and caret", "(dune) ^messiah", "dune messiah"},
		{"hyphenated", "science-fiction", "science fiction"},
		{"extra whitespace", "  dune \t messiah  ", "dune messiah"},
		{"unicode letters", "günter grass", "günter grass"},
		{"only metacharacters", `*"()^-`, ""},
		{"digits survive", "catch 22", "catch 22"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeQuery(tt.input))
		})
	}
}

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"plain", "dune messiah", "dune messiah", true},
		{"two chars is enough", "du", "du", true},
		{"two runes is enough", "üü", "üü", true},
		{"empty", "", "", false},
		{"single char", "d", "", false},
		{"metacharacters only", `*"()^`, "", false},
		{"capped at max length", strings.Repeat("a", 150), strings.Repeat("a", MaxQueryLen), true},
		{"exactly max length", strings.Repeat("a", MaxQueryLen), strings.Repeat("a", MaxQueryLen), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeQuery(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("reader@listenup.example"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("two@@example.com"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("long-enough-password"))
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("short"))
}
