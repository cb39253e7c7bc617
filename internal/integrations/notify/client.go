package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Event тип события уведомления
type Event string

const (
	EventBookingConfirmed Event = "booking_confirmed"
	EventBookingCancelled Event = "booking_cancelled"
	EventBookingModified  Event = "booking_modified"
)

// Notification уведомление пользователю о событии бронирования
type Notification struct {
	UserID           int64             `json:"user_id"`
	Event            Event             `json:"event"`
	BookingReference string            `json:"booking_reference"`
	Payload          map[string]string `json:"payload,omitempty"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент сервиса уведомлений
// Уведомления best-effort: ошибки отправки логируются, но не
// прерывают бизнес-операцию
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет уведомление
func (c *Client) Send(ctx context.Context, n *Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal notification: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/notifications", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	return nil
}

// SendBestEffort отправляет уведомление, не возвращая ошибку наружу
func (c *Client) SendBestEffort(ctx context.Context, n *Notification) {
	if err := c.Send(ctx, n); err != nil {
		c.log.Warn("Failed to send %s notification for booking=%s: %v", n.Event, n.BookingReference, err)
		return
	}
	c.log.Info("Sent %s notification for booking=%s", n.Event, n.BookingReference)
}
