package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"hello", "hello", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Hello", "hello", 1},
		{"createdat", "updatedat", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.expected {
				t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}

			if got := Distance(tt.b, tt.a); got != tt.expected {
				t.Errorf("Distance(%q, %q) = %d, want %d", tt.b, tt.a, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"FirstName", "firstname"},
		{"first_name", "firstname"},
		{"first-name", "firstname"},
		{"first name", "firstname"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeIdent(tt.in), tt.in)
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("first_name", "FirstName"), 1e-9)
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 0.833, Similarity("Salry", "Salary"), 0.001)
}

func TestSuggest(t *testing.T) {
	known := []string{"Name", "Salary", "SalaryCents", "Email", "ID"}

	assert.Equal(t, []string{"Salary"}, Suggest("Salry", known, 2))
	assert.Equal(t, []string{"SalaryCents", "Salary"}, Suggest("SalaryCent", known, 2))
	assert.Equal(t, []string{"Salary"}, Suggest("salary", known, 3))
	assert.Empty(t, Suggest("Completely", known, 3))
	assert.Equal(t, []string{"SalaryCents"}, Suggest("SalaryCent", known, 1))
}
