package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type WalletStatus string

const (
	WalletStatusActive    WalletStatus = "ACTIVE"
	WalletStatusSuspended WalletStatus = "SUSPENDED"
	WalletStatusLocked    WalletStatus = "LOCKED"
	WalletStatusClosed    WalletStatus = "CLOSED"
)

func (s WalletStatus) Valid() bool {
	switch s {
	case WalletStatusActive, WalletStatusSuspended, WalletStatusLocked, WalletStatusClosed:
		return true
	}
	return false
}

type CurrencyType string

const (
	CurrencyCash CurrencyType = "CASH"
	CurrencyCoin CurrencyType = "COIN"
)

type TransactionType string

const (
	TxDepositCash     TransactionType = "DEPOSIT_CASH"
	TxWithdrawalCash  TransactionType = "WITHDRAWAL_CASH"
	TxSpendCash       TransactionType = "SPEND_CASH"
	TxPurchaseCoins   TransactionType = "PURCHASE_COINS"
	TxEarnCoins       TransactionType = "EARN_COINS"
	TxSpendCoins      TransactionType = "SPEND_COINS"
	TxTipSent         TransactionType = "TIP_SENT"
	TxTipReceived     TransactionType = "TIP_RECEIVED"
	TxAdminAdjustment TransactionType = "ADMIN_ADJUSTMENT"
)

type ReferenceType string

const (
	RefPayment      ReferenceType = "PAYMENT"
	RefWithdrawal   ReferenceType = "WITHDRAWAL"
	RefCoinExchange ReferenceType = "COIN_EXCHANGE"
	RefTip          ReferenceType = "TIP"
	RefBooking      ReferenceType = "BOOKING"
	RefAdmin        ReferenceType = "ADMIN"
)

const LedgerStatusCompleted = "COMPLETED"

type Wallet struct {
	ID                 int64           `db:"id"`
	UserID             int64           `db:"user_id"`
	CashBalance        decimal.Decimal `db:"cash_balance"`
	FrozenCashBalance  decimal.Decimal `db:"frozen_cash_balance"`
	CoinBalance        int64           `db:"coin_balance"`
	TotalDeposited     decimal.Decimal `db:"total_deposited"`
	TotalWithdrawn     decimal.Decimal `db:"total_withdrawn"`
	TotalCoinsEarned   int64           `db:"total_coins_earned"`
	TotalCoinsSpent    int64           `db:"total_coins_spent"`
	Status             WalletStatus    `db:"status"`
	BankName           string          `db:"bank_name"`
	BankAccountNumber  string          `db:"bank_account_number"`
	BankAccountName    string          `db:"bank_account_name"`
	TransactionPINHash string          `db:"transaction_pin_hash"`
	TwoFASecret        string          `db:"two_fa_secret"`
	Require2FA         bool            `db:"require_2fa"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

// LedgerEntry is an immutable record of one balance change.
type LedgerEntry struct {
	ID            int64           `db:"id"`
	WalletID      int64           `db:"wallet_id"`
	Type          TransactionType `db:"transaction_type"`
	Currency      CurrencyType    `db:"currency_type"`
	Amount        decimal.Decimal `db:"amount"`
	BalanceAfter  decimal.Decimal `db:"balance_after"`
	Fee           decimal.Decimal `db:"fee"`
	Status        string          `db:"status"`
	ReferenceType ReferenceType   `db:"reference_type"`
	ReferenceID   string          `db:"reference_id"`
	Description   string          `db:"description"`
	CreatedAt     time.Time       `db:"created_at"`
}

// LedgerRef names the event that caused a mutation.
type LedgerRef struct {
	ReferenceType ReferenceType
	ReferenceID   string
	Description   string
}

type BankDetails struct {
	BankName      string
	AccountNumber string
	AccountName   string
}

type PremiumSubscription struct {
	UserID           int64     `db:"user_id"`
	PlanCode         string    `db:"plan_code"`
	ActivatedAt      time.Time `db:"activated_at"`
	ExpiresAt        time.Time `db:"expires_at"`
	PaymentReference string    `db:"payment_reference"`
}

type ReconciliationReport struct {
	WalletID      int64
	CashBalance   decimal.Decimal
	CashLedgerSum decimal.Decimal
	CoinBalance   int64
	CoinLedgerSum int64
	Balanced      bool
}
