package quote_cancellation

import (
	"context"

	cancelBooking "github.com/soltours/booking-service/internal/usecase/cancel_booking"
)

type CancelBookingUseCase interface {
	Quote(ctx context.Context, req *cancelBooking.QuoteRequest) (*cancelBooking.QuoteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
