package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Client клиент платёжного провайдера
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр платёжного клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Capture списывает средства за бронирование
func (c *Client) Capture(ctx context.Context, req *ChargeRequest) (*TransactionResponse, error) {
	return c.post(ctx, "/v1/charges", req)
}

// Refund возвращает средства по отменённому бронированию
func (c *Client) Refund(ctx context.Context, req *RefundRequest) (*TransactionResponse, error) {
	return c.post(ctx, "/v1/refunds", req)
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) (*TransactionResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusPaymentRequired, http.StatusUnprocessableEntity:
		return nil, ErrPaymentDeclined
	default:
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var tx TransactionResponse
	if err := json.NewDecoder(resp.Body).Decode(&tx); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &tx, nil
}

// CaptureWithGracefulDegradation списывает средства с graceful degradation
// При недоступности провайдера возвращает ErrServiceDegraded: бронирование
// остаётся в pending и будет оплачено позднее
func (c *Client) CaptureWithGracefulDegradation(ctx context.Context, reference string, amount decimal.Decimal, currency, idempotencyKey string) (*TransactionResponse, error) {
	c.log.Info("Capturing payment for booking=%s amount=%s %s", reference, amount.StringFixed(2), currency)

	tx, err := c.Capture(ctx, &ChargeRequest{
		Amount:         amount,
		Currency:       currency,
		Reference:      reference,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		// Отклонение платежа - бизнес-ошибка, пробрасываем её дальше
		if err == ErrPaymentDeclined {
			c.log.Warn("Payment declined for booking=%s", reference)
			return nil, err
		}

		// Для остальных ошибок (недоступность провайдера, timeout и т.д.)
		// применяем graceful degradation
		c.log.Error("Payment provider unavailable, applying graceful degradation for booking=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: booking=%s, error=%v", ErrServiceDegraded, reference, err)
	}

	c.log.Info("Payment captured for booking=%s, transaction=%s", reference, tx.TransactionID)
	return tx, nil
}

// RefundWithGracefulDegradation возвращает средства с graceful degradation
// При недоступности провайдера возврат остаётся в pending и не блокирует отмену
func (c *Client) RefundWithGracefulDegradation(ctx context.Context, reference string, amount decimal.Decimal, currency, idempotencyKey string) (*TransactionResponse, error) {
	c.log.Info("Refunding booking=%s amount=%s %s", reference, amount.StringFixed(2), currency)

	tx, err := c.Refund(ctx, &RefundRequest{
		Amount:         amount,
		Currency:       currency,
		Reference:      reference,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		c.log.Error("Payment provider unavailable, applying graceful degradation for refund booking=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: booking=%s, error=%v", ErrServiceDegraded, reference, err)
	}

	c.log.Info("Refund issued for booking=%s, transaction=%s", reference, tx.TransactionID)
	return tx, nil
}
