package models

import (
	"errors"
	"time"

	"github.com/soltours/booking-service/internal/domain"
	"github.com/soltours/booking-service/pkg/ptr"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// Response модели

// PaymentResponse платёжная запись бронирования
type PaymentResponse struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Amount    string    `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64  `json:"id"`
	Reference   string `json:"reference"`
	UserID      int64  `json:"userId"`
	ActivityID  int64  `json:"activityId"`
	BookingDate string `json:"bookingDate"` // "2025-07-15"
	StartTime   string `json:"startTime"`   // "10:00"
	Adults      int    `json:"adults"`
	Children    int    `json:"children"`
	Seniors     int    `json:"seniors"`
	TotalAmount string `json:"totalAmount"`
	Status      string `json:"status"`

	// Денормализованные данные
	ActivityTitle string  `json:"activityTitle"`
	Notes         *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	RefundAmount       *string `json:"refundAmount,omitempty"`
	CancellationFee    *string `json:"cancellationFee,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	Payments []PaymentResponse `json:"payments,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		Reference:          b.Reference,
		UserID:             b.UserID,
		ActivityID:         b.ActivityID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		Adults:             b.Participants.Adults,
		Children:           b.Participants.Children,
		Seniors:            b.Participants.Seniors,
		TotalAmount:        b.TotalAmount.StringFixed(2),
		Status:             string(b.Status),
		ActivityTitle:      b.ActivityTitle,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.RefundAmount != nil {
		resp.RefundAmount = ptr.Ptr(b.RefundAmount.StringFixed(2))
	}

	if b.CancellationFee != nil {
		resp.CancellationFee = ptr.Ptr(b.CancellationFee.StringFixed(2))
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		resp.CancelledAt = ptr.Ptr(b.CancelledAt.Format(time.RFC3339))
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// FromDomainPayments конвертирует платёжные записи в DTO
func FromDomainPayments(payments []*domain.Payment) []PaymentResponse {
	resp := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, PaymentResponse{
			ID:        p.ID,
			Kind:      string(p.Kind),
			Amount:    p.Amount.StringFixed(2),
			Currency:  p.Currency,
			Status:    string(p.Status),
			CreatedAt: p.CreatedAt,
		})
	}
	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusNoShow,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
