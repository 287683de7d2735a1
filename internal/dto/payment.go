package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/eduwallet/internal/domain"
)

type CheckoutResponseDTO struct {
	Reference   string          `json:"reference" example:"3f0c7f43-6f0e-4d3b-9a52-5b0f2b0e4c11"`
	OrderCode   int64           `json:"order_code" example:"1709287200000123"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"100000"`
	CheckoutURL string          `json:"checkout_url" example:"https://pay.payos.vn/web/abc"`
	QRCode      string          `json:"qr_code,omitempty"`
}

type PremiumRequestDTO struct {
	Plan string `json:"plan" example:"MONTHLY" validate:"required,oneof=MONTHLY YEARLY"`
}

type VerifyResponseDTO struct {
	Reference string `json:"reference" example:"3f0c7f43-6f0e-4d3b-9a52-5b0f2b0e4c11"`
	Status    string `json:"status" example:"COMPLETED"`
	Verified  bool   `json:"verified" example:"true"`
	Duplicate bool   `json:"duplicate" example:"false"`
}

type PaymentResponseDTO struct {
	Reference     string          `json:"reference" example:"3f0c7f43-6f0e-4d3b-9a52-5b0f2b0e4c11"`
	OrderCode     int64           `json:"order_code" example:"1709287200000123"`
	Purpose       string          `json:"purpose" example:"WALLET_TOPUP"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"100000"`
	Status        string          `json:"status" example:"PENDING"`
	CheckoutURL   string          `json:"checkout_url,omitempty"`
	FailureReason string          `json:"failure_reason,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
}

type SubscriptionResponseDTO struct {
	PlanCode    string    `json:"plan_code" example:"MONTHLY"`
	ActivatedAt time.Time `json:"activated_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	Active      bool      `json:"active" example:"true"`
}

func NewPaymentResponse(p *domain.PaymentTransaction) PaymentResponseDTO {
	return PaymentResponseDTO{
		Reference:     p.Reference,
		OrderCode:     p.OrderCode,
		Purpose:       string(p.Purpose),
		Amount:        p.Amount,
		Status:        string(p.Status),
		CheckoutURL:   p.CheckoutURL,
		FailureReason: p.FailureReason,
		CreatedAt:     p.CreatedAt,
		CompletedAt:   p.CompletedAt,
	}
}

func NewSubscriptionResponse(s *domain.PremiumSubscription, now time.Time) SubscriptionResponseDTO {
	return SubscriptionResponseDTO{
		PlanCode:    s.PlanCode,
		ActivatedAt: s.ActivatedAt,
		ExpiresAt:   s.ExpiresAt,
		Active:      s.ExpiresAt.After(now),
	}
}
