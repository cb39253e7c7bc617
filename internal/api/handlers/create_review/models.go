package create_review

import "github.com/soltours/booking-service/internal/service/reviews/models"

// CreateReviewRequest HTTP request model
type CreateReviewRequest struct {
	BookingID int64   `json:"bookingId"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateReviewRequest) ToServiceRequest(userID int64) *models.CreateReviewRequest {
	return &models.CreateReviewRequest{
		UserID:    userID,
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}
