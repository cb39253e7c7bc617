package quote_modification

import (
	"time"

	"github.com/soltours/booking-service/internal/domain"
	modifyBooking "github.com/soltours/booking-service/internal/usecase/modify_booking"
	"github.com/soltours/booking-service/pkg/types"
)

// QuoteModificationRequest HTTP request model
// Поля повторяют запрос изменения: квота считается для тех же параметров
type QuoteModificationRequest struct {
	BookingDate string `json:"bookingDate"` // "2025-07-15"
	StartTime   string `json:"startTime"`   // "09:00"
	Adults      int    `json:"adults"`
	Children    int    `json:"children"`
	Seniors     int    `json:"seniors"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteModificationRequest) ToUseCaseRequest(userID, bookingID int64) (*modifyBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

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
