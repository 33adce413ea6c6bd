package choices

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "mixed separators and empty segment",
			input:    "Pizza, Tacos,, Sushi\nRamen ",
			expected: []string{"Pizza", "Tacos", "Sushi", "Ramen"},
		},
		{
			name:     "empty string",
			input:    "",
			expected: []string{},
		},
		{
			name:     "duplicates kept in order",
			input:    "a, b, a",
			expected: []string{"a", "b", "a"},
		},
		{
			name:     "windows line endings",
			input:    "one\r\ntwo\r\n",
			expected: []string{"one", "two"},
		},
		{
			name:     "inner spaces preserved",
			input:    "  ice cream  ,  hot dog",
			expected: []string{"ice cream", "hot dog"},
		},
		{
			name:     "only separators",
			input:    ",,\n , \n\t,",
			expected: []string{},
		},
		{
			name:     "single choice",
			input:    "Solo",
			expected: []string{"Solo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Parse(tt.input))
		})
	}
}

func TestJoin(t *testing.T) {
	require.Equal(t, "a, b, c", Join([]string{"a", "b", "c"}))
	require.Equal(t, "", Join(nil))
}

// ===========================================================================
// Property-Based Tests (using pgregory.net/rapid)
// ===========================================================================

func TestProperty_ParseJoinRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		raw := rapid.StringMatching(`[a-z ,\n\t]{0,40}`).Draw(rt, "raw")

		first := Parse(raw)
		second := Parse(Join(first))

		require.Equal(t, first, second, "parse should be stable through join")
	})
}

func TestProperty_SeparatorsOnlyParseEmpty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		raw := rapid.StringMatching(`[ ,\n\t\r]{0,30}`).Draw(rt, "raw")

		require.Empty(t, Parse(raw))
	})
}

func TestProperty_ChoicesAreTrimmedAndNonEmpty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		raw := rapid.String().Draw(rt, "raw")

		for _, c := range Parse(raw) {
			require.NotEmpty(t, c)
			require.Equal(t, strings.TrimSpace(c), c)
			require.NotContains(t, c, ",")
			require.NotContains(t, c, "\n")
		}
	})
}
