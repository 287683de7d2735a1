package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentCompleted || s == PaymentFailed || s == PaymentCancelled
}

type PaymentPurpose string

const (
	PurposeWalletTopUp  PaymentPurpose = "WALLET_TOPUP"
	PurposeCoinPurchase PaymentPurpose = "COIN_PURCHASE"
	PurposePremium      PaymentPurpose = "PREMIUM_SUBSCRIPTION"
)

const GatewayPayOS = "payos"

// PaymentTransaction is an outbound gateway order and the unit of callback idempotency.
type PaymentTransaction struct {
	ID               int64           `db:"id"`
	Reference        string          `db:"reference"`
	OrderCode        int64           `db:"order_code"`
	UserID           int64           `db:"user_id"`
	WalletID         int64           `db:"wallet_id"`
	Purpose          PaymentPurpose  `db:"purpose"`
	Gateway          string          `db:"gateway"`
	Amount           decimal.Decimal `db:"amount"`
	CoinAmount       int64           `db:"coin_amount"`
	PlanCode         string          `db:"plan_code"`
	PlanDays         int             `db:"plan_days"`
	Status           PaymentStatus   `db:"status"`
	CheckoutURL      string          `db:"checkout_url"`
	GatewayReference string          `db:"gateway_reference"`
	FailureReason    string          `db:"failure_reason"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
	CompletedAt      *time.Time      `db:"completed_at"`
}
