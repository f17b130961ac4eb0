package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"title", "title", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Hello", "hello", 1},

		// Multi-byte runes count once
		{"café", "cafe", 1},
		{"é", "", 1},

		// Field labels
		{"title", "titel", 2},
		{"skills", "skill", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "distance must be symmetric")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 0.001)
	assert.InDelta(t, 1.0, Similarity("same", "same"), 0.001)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 0.001)
	assert.InDelta(t, 1.0-3.0/7.0, Similarity("kitten", "sitting"), 0.001)
}

func TestKeySimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, KeySimilarity("Company name", "company_name"), 0.001)
	assert.Greater(t, KeySimilarity("Minimum salary", "Maximum salary"), 0.7)
	assert.Less(t, KeySimilarity("Title", "Applicants"), 0.5)
}

func BenchmarkKeySimilarity(b *testing.B) {
	for i := 0; i < b.N; i++ {
		KeySimilarity("Education details", "education_detail")
	}
}
