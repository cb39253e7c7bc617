package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRating(t *testing.T) {
	assert.False(t, IsValidRating(0))
	assert.True(t, IsValidRating(1))
	assert.True(t, IsValidRating(3))
	assert.True(t, IsValidRating(5))
	assert.False(t, IsValidRating(6))
	assert.False(t, IsValidRating(-1))
}

func TestSummarizeRatings(t *testing.T) {
	ratings := func(values ...int) []*Review {
		reviews := make([]*Review, 0, len(values))
		for _, v := range values {
			reviews = append(reviews, &Review{Rating: v})
		}
		return reviews
	}

	tests := []struct {
		name        string
		reviews     []*Review
		wantCount   int
		wantAverage string
	}{
		{"no reviews", nil, 0, "0"},
		{"single review", ratings(4), 1, "4"},
		{"average rounds to one decimal", ratings(5, 4, 4), 3, "4.3"},
		{"repeating average rounds half up", ratings(1, 2), 2, "1.5"},
		{"all fives", ratings(5, 5, 5, 5), 4, "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := SummarizeRatings(tt.reviews)

			assert.Equal(t, tt.wantCount, summary.Count)
			assert.Equal(t, tt.wantAverage, summary.Average.String())
		})
	}
}
