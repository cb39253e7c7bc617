package modify_booking

import (
	"time"

	"github.com/soltours/booking-service/internal/domain"
	modifyBooking "github.com/soltours/booking-service/internal/usecase/modify_booking"
	"github.com/soltours/booking-service/pkg/types"
)

// ModifyBookingRequest HTTP request model
type ModifyBookingRequest struct {
	BookingDate string `json:"bookingDate"` // "2025-07-15"
	StartTime   string `json:"startTime"`   // "09:00"
	Adults      int    `json:"adults"`
	Children    int    `json:"children"`
	Seniors     int    `json:"seniors"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ModifyBookingRequest) ToUseCaseRequest(userID, bookingID int64) (*modifyBooking.Request, error) {
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

	return &modifyBooking.Request{
		UserID:    userID,
		BookingID: bookingID,
		Date:      bookingDate,
		StartTime: startTime,
		Participants: domain.Participants{
			Adults:   r.Adults,
			Children: r.Children,
			Seniors:  r.Seniors,
		},
	}, nil
}
