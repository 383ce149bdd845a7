package episodes

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestParseCast(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Cast
	}{
		{
			name:     "single quoted list",
			raw:      "['Mariska Hargitay', 'Ice-T', 'Dann Florek']",
			expected: Cast{"Mariska Hargitay", "Ice-T", "Dann Florek"},
		},
		{
			name:     "double quotes hold apostrophes",
			raw:      `["Chris O'Donnell", 'Peter Scanavino']`,
			expected: Cast{"Chris O'Donnell", "Peter Scanavino"},
		},
		{
			name:     "escaped quote",
			raw:      `['Michael O\'Keefe']`,
			expected: Cast{"Michael O'Keefe"},
		},
		{
			name:     "surrounding whitespace and trailing comma",
			raw:      "  [ 'A' ,'B', ]  ",
			expected: Cast{"A", "B"},
		},
		{
			name:     "duplicates and blanks dropped",
			raw:      "['A', ' ', 'B', 'A']",
			expected: Cast{"A", "B"},
		},
		{
			name:     "empty list",
			raw:      "[]",
			expected: Cast{},
		},
		{
			name:     "empty string",
			raw:      "",
			expected: Cast{},
		},
		{
			name:     "plain name is not a list",
			raw:      "Mariska Hargitay",
			expected: Cast{},
		},
		{
			name:     "unterminated string",
			raw:      "['Mariska",
			expected: Cast{},
		},
		{
			name:     "non string element",
			raw:      "['A', 3]",
			expected: Cast{},
		},
		{
			name:     "trailing garbage",
			raw:      "['A'] extra",
			expected: Cast{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseCast(tt.raw)
			if result == nil {
				t.Fatal("Expected non-nil cast")
			}
			if !slices.Equal(result, tt.expected) {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestCastNormalizeIdempotent(t *testing.T) {
	inputs := []Cast{
		{" Mariska Hargitay ", "Ice-T", "Ice-T", ""},
		ParseCast("['A', 'B', 'C']"),
		{},
		nil,
	}

	for _, in := range inputs {
		once := in.Normalize()
		twice := once.Normalize()
		if !slices.Equal(once, twice) {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestCastUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected Cast
	}{
		{name: "array", data: `["A","B"]`, expected: Cast{"A", "B"}},
		{name: "serialized string", data: `"['A', 'B']"`, expected: Cast{"A", "B"}},
		{name: "null", data: `null`, expected: Cast{}},
		{name: "number", data: `42`, expected: Cast{}},
		{name: "malformed string", data: `"not a list"`, expected: Cast{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cast
			if err := json.Unmarshal([]byte(tt.data), &c); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if !slices.Equal(c, tt.expected) {
				t.Errorf("Expected %q, got %q", tt.expected, c)
			}
		})
	}
}
