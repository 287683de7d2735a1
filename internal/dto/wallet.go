package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/eduwallet/internal/domain"
)

type WalletResponseDTO struct {
	ID                int64           `json:"id" example:"7"`
	UserID            int64           `json:"user_id" example:"70"`
	CashBalance       decimal.Decimal `json:"cash_balance" swaggertype:"string" example:"1000000"`
	FrozenCashBalance decimal.Decimal `json:"frozen_cash_balance" swaggertype:"string" example:"200000"`
	AvailableCash     decimal.Decimal `json:"available_cash" swaggertype:"string" example:"800000"`
	CoinBalance       int64           `json:"coin_balance" example:"120"`
	TotalDeposited    decimal.Decimal `json:"total_deposited" swaggertype:"string" example:"1500000"`
	TotalWithdrawn    decimal.Decimal `json:"total_withdrawn" swaggertype:"string" example:"500000"`
	TotalCoinsEarned  int64           `json:"total_coins_earned" example:"300"`
	TotalCoinsSpent   int64           `json:"total_coins_spent" example:"180"`
	Status            string          `json:"status" example:"ACTIVE"`
	BankName          string          `json:"bank_name,omitempty" example:"Vietcombank"`
	BankAccountNumber string          `json:"bank_account_number,omitempty" example:"0123456789"`
	BankAccountName   string          `json:"bank_account_name,omitempty" example:"NGUYEN VAN A"`
	HasPIN            bool            `json:"has_pin" example:"true"`
	Require2FA        bool            `json:"require_2fa" example:"false"`
}

func NewWalletResponse(w *domain.Wallet) WalletResponseDTO {
	return WalletResponseDTO{
		ID:                w.ID,
		UserID:            w.UserID,
		CashBalance:       w.CashBalance,
		FrozenCashBalance: w.FrozenCashBalance,
		AvailableCash:     w.AvailableCash(),
		CoinBalance:       w.CoinBalance,
		TotalDeposited:    w.TotalDeposited,
		TotalWithdrawn:    w.TotalWithdrawn,
		TotalCoinsEarned:  w.TotalCoinsEarned,
		TotalCoinsSpent:   w.TotalCoinsSpent,
		Status:            string(w.Status),
		BankName:          w.BankName,
		BankAccountNumber: w.BankAccountNumber,
		BankAccountName:   w.BankAccountName,
		HasPIN:            w.TransactionPINHash != "",
		Require2FA:        w.Require2FA,
	}
}

type TransactionDTO struct {
	ID            int64           `json:"id" example:"42"`
	Type          string          `json:"transaction_type" example:"DEPOSIT_CASH"`
	Currency      string          `json:"currency_type" example:"CASH"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"100000"`
	BalanceAfter  decimal.Decimal `json:"balance_after" swaggertype:"string" example:"1100000"`
	Fee           decimal.Decimal `json:"fee" swaggertype:"string" example:"0"`
	Status        string          `json:"status" example:"COMPLETED"`
	ReferenceType string          `json:"reference_type,omitempty" example:"PAYMENT"`
	ReferenceID   string          `json:"reference_id,omitempty" example:"3f0c7f43-6f0e-4d3b-9a52-5b0f2b0e4c11"`
	Description   string          `json:"description,omitempty" example:"Wallet top-up"`
	CreatedAt     time.Time       `json:"created_at" example:"2024-03-01T10:00:00Z"`
}

func NewTransactionList(entries []domain.LedgerEntry) []TransactionDTO {
	out := make([]TransactionDTO, len(entries))
	for i, e := range entries {
		out[i] = TransactionDTO{
			ID:            e.ID,
			Type:          string(e.Type),
			Currency:      string(e.Currency),
			Amount:        e.Amount,
			BalanceAfter:  e.BalanceAfter,
			Fee:           e.Fee,
			Status:        e.Status,
			ReferenceType: string(e.ReferenceType),
			ReferenceID:   e.ReferenceID,
			Description:   e.Description,
			CreatedAt:     e.CreatedAt,
		}
	}
	return out
}

type DepositRequestDTO struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"100000" validate:"dpositive"`
}

type PurchaseCoinsRequestDTO struct {
	Coins int64 `json:"coins" example:"50" validate:"required,min=1"`
}

type TipRequestDTO struct {
	ToUserID int64  `json:"to_user_id" example:"71" validate:"required,min=1"`
	Coins    int64  `json:"coins" example:"5" validate:"required,min=1"`
	Note     string `json:"note" example:"Great lesson!" validate:"max=255"`
}

type SetPINRequestDTO struct {
	PIN        string `json:"pin" example:"123456" validate:"required,len=6,numeric"`
	CurrentPIN string `json:"current_pin,omitempty" example:"654321"`
}

type BankAccountRequestDTO struct {
	BankName      string `json:"bank_name" example:"Vietcombank" validate:"required,max=100"`
	AccountNumber string `json:"account_number" example:"0123456789" validate:"required,numeric,min=6,max=30"`
	AccountName   string `json:"account_name" example:"NGUYEN VAN A" validate:"required,max=100"`
}

type TwoFASetupResponseDTO struct {
	Secret string `json:"secret" example:"JBSWY3DPEHPK3PXP"`
	URL    string `json:"url" example:"otpauth://totp/EduWallet:user-70?secret=JBSWY3DPEHPK3PXP"`
}

type TwoFACodeRequestDTO struct {
	Code string `json:"code" example:"123456" validate:"required,len=6,numeric"`
}

type AdjustRequestDTO struct {
	Currency string          `json:"currency" example:"CASH" validate:"required,oneof=CASH COIN"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"string" example:"-50000"`
	Reason   string          `json:"reason" example:"Refund for cancelled booking" validate:"required,max=255"`
}

type WalletStatusRequestDTO struct {
	Status string `json:"status" example:"SUSPENDED" validate:"required,oneof=ACTIVE SUSPENDED LOCKED CLOSED"`
}

type ReconcileResponseDTO struct {
	WalletID      int64           `json:"wallet_id" example:"7"`
	CashBalance   decimal.Decimal `json:"cash_balance" swaggertype:"string" example:"800000"`
	CashLedgerSum decimal.Decimal `json:"cash_ledger_sum" swaggertype:"string" example:"800000"`
	CoinBalance   int64           `json:"coin_balance" example:"120"`
	CoinLedgerSum int64           `json:"coin_ledger_sum" example:"120"`
	Balanced      bool            `json:"balanced" example:"true"`
}

func NewReconcileResponse(r *domain.ReconciliationReport) ReconcileResponseDTO {
	return ReconcileResponseDTO{
		WalletID:      r.WalletID,
		CashBalance:   r.CashBalance,
		CashLedgerSum: r.CashLedgerSum,
		CoinBalance:   r.CoinBalance,
		CoinLedgerSum: r.CoinLedgerSum,
		Balanced:      r.Balanced,
	}
}
