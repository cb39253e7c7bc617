package quote_modification

import (
	"context"

	modifyBooking "github.com/soltours/booking-service/internal/usecase/modify_booking"
)

type ModifyBookingUseCase interface {
	Quote(ctx context.Context, req *modifyBooking.Request) (*modifyBooking.QuoteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
