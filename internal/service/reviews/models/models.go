package models

import (
	"time"

	"github.com/soltours/booking-service/internal/domain"
)

// Request модели

// CreateReviewRequest запрос на создание отзыва
type CreateReviewRequest struct {
	UserID    int64   `json:"userId"`
	BookingID int64   `json:"bookingId"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
}

// Response модели

// ReviewResponse ответ с данными отзыва
type ReviewResponse struct {
	ID         int64     `json:"id"`
	BookingID  int64     `json:"bookingId"`
	ActivityID int64     `json:"activityId"`
	UserID     int64     `json:"userId"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReviewListResponse ответ со списком отзывов и агрегатом
type ReviewListResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	ReviewCount   int              `json:"reviewCount"`
	AverageRating string           `json:"averageRating"`
}

// Методы конвертации

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(r *domain.Review) *ReviewResponse {
	if r == nil {
		return nil
	}

	return &ReviewResponse{
		ID:         r.ID,
		BookingID:  r.BookingID,
		ActivityID: r.ActivityID,
		UserID:     r.UserID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

// FromDomainReviewList конвертирует список отзывов с агрегатом в DTO
func FromDomainReviewList(reviews []*domain.Review, summary domain.RatingSummary) *ReviewListResponse {
	resp := &ReviewListResponse{
		Reviews:       make([]ReviewResponse, 0, len(reviews)),
		ReviewCount:   summary.Count,
		AverageRating: summary.Average.StringFixed(1),
	}

	for _, review := range reviews {
		if reviewResp := FromDomainReview(review); reviewResp != nil {
			resp.Reviews = append(resp.Reviews, *reviewResp)
		}
	}

	return resp
}
