package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestFormatterWithColor(t *testing.T) {
	// Setenv restores the original value on cleanup.
	t.Setenv("NO_COLOR", "")
	os.Unsetenv("NO_COLOR")
	color.NoColor = false

	result := Slot.Sprint("prod")
	assert.NotContains(t, result, "'")
	assert.True(t, strings.Contains(result, "\x1b["), "expected ANSI escape codes, got %q", result)
}

func TestFormatterWithNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "kubecm view", "`kubecm view`"},
		{"Path has no decoration", Path, "~/.kube/config", "~/.kube/config"},
		{"Slot adds quotes", Slot, "prod", "'prod'"},
		{"Success has no decoration", Success, "✓", "✓"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Warning has no decoration", Warning, "⚠", "⚠"},
		{"Info has no decoration", Info, "→", "→"},
		{"Muted adds parentheses", Muted, "uninitialized", "(uninitialized)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.formatter.Sprint(tt.input))
		})
	}
}

func TestFormatterSprintf(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, "`kubecm activate staging`", Code.Sprintf("kubecm activate %s", "staging"))
}

func TestEnsureNewline(t *testing.T) {
	assert.Equal(t, "\n", EnsureNewline(""))
	assert.Equal(t, "done\n", EnsureNewline("done"))
	assert.Equal(t, "done\n", EnsureNewline("done\n"))
}
