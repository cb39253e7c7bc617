package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Review represents a customer review left for a completed booking
type Review struct {
	ID         int64
	BookingID  int64
	ActivityID int64
	UserID     int64
	Rating     int // 1..5
	Comment    *string
	CreatedAt  time.Time
}

// IsValidRating returns true if the rating is within bounds
func IsValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

// RatingSummary is the aggregate rating of an activity
type RatingSummary struct {
	Count   int
	Average decimal.Decimal // rounded to 1 decimal place
}

// SummarizeRatings aggregates review ratings into count and average
// Average is rounded to 1 decimal place; empty input yields a zero summary
func SummarizeRatings(reviews []*Review) RatingSummary {
	if len(reviews) == 0 {
		return RatingSummary{Average: decimal.Zero}
	}

	sum := decimal.Zero
	for _, review := range reviews {
		sum = sum.Add(decimal.NewFromInt(int64(review.Rating)))
	}

	return RatingSummary{
		Count:   len(reviews),
		Average: sum.Div(decimal.NewFromInt(int64(len(reviews)))).Round(1),
	}
}
