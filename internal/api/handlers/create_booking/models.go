package create_booking

import (
	"time"

	"github.com/soltours/booking-service/internal/domain"
	createBooking "github.com/soltours/booking-service/internal/usecase/create_booking"
	"github.com/soltours/booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ActivityID  int64   `json:"activityId"`
	BookingDate string  `json:"bookingDate"` // "2025-07-15"
	StartTime   string  `json:"startTime"`   // "09:00"
	Adults      int     `json:"adults"`
	Children    int     `json:"children"`
	Seniors     int     `json:"seniors"`
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	Reference     string  `json:"reference"`
	UserID        int64   `json:"userId"`
	ActivityID    int64   `json:"activityId"`
	BookingDate   string  `json:"bookingDate"`
	StartTime     string  `json:"startTime"`
	Adults        int     `json:"adults"`
	Children      int     `json:"children"`
	Seniors       int     `json:"seniors"`
	TotalAmount   string  `json:"totalAmount"`
	Status        string  `json:"status"`
	ActivityTitle string  `json:"activityTitle"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:     userID,
		ActivityID: r.ActivityID,
		Date:       bookingDate,
		StartTime:  startTime,
		Participants: domain.Participants{
			Adults:   r.Adults,
			Children: r.Children,
			Seniors:  r.Seniors,
		},
		Notes: r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		Reference:     resp.Reference,
		UserID:        resp.UserID,
		ActivityID:    resp.ActivityID,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		Adults:        resp.Adults,
		Children:      resp.Children,
		Seniors:       resp.Seniors,
		TotalAmount:   resp.TotalAmount,
		Status:        resp.Status,
		ActivityTitle: resp.ActivityTitle,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
