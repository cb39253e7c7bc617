package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentKind describes what a payment record represents
type PaymentKind string

const (
	PaymentCapture    PaymentKind = "capture"    // initial charge for a booking
	PaymentRefund     PaymentKind = "refund"     // refund issued on cancellation
	PaymentAdjustment PaymentKind = "adjustment" // delta charged or refunded on modification
)

// PaymentStatus represents the processing status of a payment record
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment is an audit record of money movement for a booking.
// Amount is signed for adjustments: positive means charged to the
// customer, negative means refunded.
type Payment struct {
	ID             int64
	BookingID      int64
	Kind           PaymentKind
	Amount         decimal.Decimal
	Currency       string
	ProviderRef    *string
	IdempotencyKey string
	Status         PaymentStatus
	CreatedAt      time.Time
}
