package payos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/eduwallet/pkg/clients"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	codeSuccess       = "00"
	paymentRequestsV2 = "/v2/payment-requests"
	maxDescriptionLen = 25
)

var (
	ErrInvalidSignature = errors.New("payos: invalid signature")
	ErrGateway          = errors.New("payos: gateway error")
	ErrMalformedPayload = errors.New("payos: malformed payload")
)

type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomePaid
	OutcomeFailed
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomePaid:
		return "PAID"
	case OutcomeFailed:
		return "FAILED"
	case OutcomeCancelled:
		return "CANCELLED"
	default:
		return "PENDING"
	}
}

type Config struct {
	BaseURL     string
	ClientID    string
	APIKey      string
	ChecksumKey string
	ReturnURL   string
	CancelURL   string
	// AllowUnsigned accepts callbacks that carry no signature at all. A
	// signature that is present is always verified.
	AllowUnsigned bool
}

type Client struct {
	cfg    Config
	client clients.HTTPClientI
}

func New(cfg Config, client clients.HTTPClientI) *Client {
	return &Client{cfg: cfg, client: client}
}

type CheckoutRequest struct {
	OrderCode   int64
	Amount      decimal.Decimal
	Description string
}

type Checkout struct {
	CheckoutURL   string `json:"checkoutUrl"`
	PaymentLinkID string `json:"paymentLinkId"`
	QRCode        string `json:"qrCode"`
	Status        string `json:"status"`
}

type PaymentInfo struct {
	ID         string          `json:"id"`
	OrderCode  int64           `json:"orderCode"`
	Amount     decimal.Decimal `json:"amount"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
	Status     string          `json:"status"`
}

func (p PaymentInfo) Outcome() Outcome {
	return statusOutcome(p.Status)
}

type envelope struct {
	Code      string          `json:"code"`
	Desc      string          `json:"desc"`
	Data      json.RawMessage `json:"data"`
	Signature string          `json:"signature"`
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("x-client-id", c.cfg.ClientID)
	h.Set("x-api-key", c.cfg.APIKey)
	return h
}

// CreatePaymentLink registers a checkout at the gateway. The request is signed
// over amount, cancelUrl, description, orderCode and returnUrl.
func (c *Client) CreatePaymentLink(ctx context.Context, req CheckoutRequest) (*Checkout, error) {
	description := req.Description
	if len(description) > maxDescriptionLen {
		description = description[:maxDescriptionLen]
	}
	amount := req.Amount.Round(0).IntPart()

	signed := map[string]any{
		"amount":      json.Number(strconv.FormatInt(amount, 10)),
		"cancelUrl":   c.cfg.CancelURL,
		"description": description,
		"orderCode":   json.Number(strconv.FormatInt(req.OrderCode, 10)),
		"returnUrl":   c.cfg.ReturnURL,
	}
	body, err := json.Marshal(map[string]any{
		"orderCode":   req.OrderCode,
		"amount":      amount,
		"description": description,
		"cancelUrl":   c.cfg.CancelURL,
		"returnUrl":   c.cfg.ReturnURL,
		"signature":   Sign(c.cfg.ChecksumKey, signed),
	})
	if err != nil {
		return nil, err
	}

	status, respBody, err := c.client.Post(ctx, c.cfg.BaseURL+paymentRequestsV2, c.headers(), body)
	if err != nil {
		zap.L().Error("payos create payment link failed", zap.Int64("order_code", req.OrderCode), zap.Error(err))
		return nil, fmt.Errorf("create payment link: %w", err)
	}

	var checkout Checkout
	if err := decodeEnvelope(status, respBody, &checkout); err != nil {
		zap.L().Error("payos rejected payment link", zap.Int64("order_code", req.OrderCode), zap.Error(err))
		return nil, err
	}
	return &checkout, nil
}

func (c *Client) GetPaymentInfo(ctx context.Context, orderCode int64) (*PaymentInfo, error) {
	url := fmt.Sprintf("%s%s/%d", c.cfg.BaseURL, paymentRequestsV2, orderCode)
	status, respBody, err := c.client.Get(ctx, url, c.headers())
	if err != nil {
		return nil, fmt.Errorf("get payment info: %w", err)
	}

	var info PaymentInfo
	if err := decodeEnvelope(status, respBody, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func decodeEnvelope(status int, body []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%w: status %d", ErrMalformedPayload, status)
	}
	if status != http.StatusOK || env.Code != codeSuccess {
		return fmt.Errorf("%w: status %d code %s: %s", ErrGateway, status, env.Code, env.Desc)
	}
	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return fmt.Errorf("%w: empty data", ErrMalformedPayload)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return nil
}

func statusOutcome(status string) Outcome {
	switch status {
	case "PAID":
		return OutcomePaid
	case "CANCELLED", "EXPIRED":
		return OutcomeCancelled
	case "FAILED":
		return OutcomeFailed
	default:
		return OutcomePending
	}
}
