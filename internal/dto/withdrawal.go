package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/eduwallet/internal/domain"
)

// WithdrawalRequestDTO creates a withdrawal. Bank fields are optional; when
// omitted the account saved on the wallet is used.
type WithdrawalRequestDTO struct {
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"200000" validate:"dpositive"`
	BankName      string          `json:"bank_name,omitempty" example:"Vietcombank" validate:"max=100"`
	AccountNumber string          `json:"account_number,omitempty" example:"0123456789" validate:"omitempty,numeric,min=6,max=30"`
	AccountName   string          `json:"account_name,omitempty" example:"NGUYEN VAN A" validate:"max=100"`
	Card          bool            `json:"card" example:"false"`
	PIN           string          `json:"pin" example:"123456" validate:"required"`
	OTPCode       string          `json:"otp_code,omitempty" example:"654321" validate:"omitempty,len=6,numeric"`
	Note          string          `json:"note,omitempty" example:"Monthly payout" validate:"max=255"`
}

func (r WithdrawalRequestDTO) Destination() *domain.BankDetails {
	if r.BankName == "" && r.AccountNumber == "" && r.AccountName == "" {
		return nil
	}
	return &domain.BankDetails{
		BankName:      r.BankName,
		AccountNumber: r.AccountNumber,
		AccountName:   r.AccountName,
	}
}

type WithdrawalResponseDTO struct {
	ID                int64           `json:"id" example:"11"`
	RequestCode       string          `json:"request_code" example:"WD-1709287200-0042"`
	Amount            decimal.Decimal `json:"amount" swaggertype:"string" example:"200000"`
	Fee               decimal.Decimal `json:"fee" swaggertype:"string" example:"0"`
	NetAmount         decimal.Decimal `json:"net_amount" swaggertype:"string" example:"200000"`
	BankName          string          `json:"bank_name" example:"Vietcombank"`
	BankAccountNumber string          `json:"bank_account_number" example:"0123456789"`
	BankAccountName   string          `json:"bank_account_name" example:"NGUYEN VAN A"`
	Status            string          `json:"status" example:"PENDING"`
	Priority          int             `json:"priority" example:"0"`
	RetryCount        int             `json:"retry_count" example:"0"`
	ErrorMessage      string          `json:"error_message,omitempty"`
	UserNote          string          `json:"user_note,omitempty"`
	AdminNote         string          `json:"admin_note,omitempty"`
	RejectionReason   string          `json:"rejection_reason,omitempty"`
	BankTransactionID string          `json:"bank_transaction_id,omitempty"`
	ApprovedAt        *time.Time      `json:"approved_at,omitempty"`
	CompletedAt       *time.Time      `json:"completed_at,omitempty"`
	ExpiresAt         time.Time       `json:"expires_at" example:"2024-03-04T10:00:00Z"`
	CreatedAt         time.Time       `json:"created_at" example:"2024-03-01T10:00:00Z"`
}

func NewWithdrawalResponse(r *domain.WithdrawalRequest) WithdrawalResponseDTO {
	return WithdrawalResponseDTO{
		ID:                r.ID,
		RequestCode:       r.RequestCode,
		Amount:            r.Amount,
		Fee:               r.Fee,
		NetAmount:         r.NetAmount,
		BankName:          r.BankName,
		BankAccountNumber: r.BankAccountNumber,
		BankAccountName:   r.BankAccountName,
		Status:            string(r.Status),
		Priority:          r.Priority,
		RetryCount:        r.RetryCount,
		ErrorMessage:      r.ErrorMessage,
		UserNote:          r.UserNote,
		AdminNote:         r.AdminNote,
		RejectionReason:   r.RejectionReason,
		BankTransactionID: r.BankTransactionID,
		ApprovedAt:        r.ApprovedAt,
		CompletedAt:       r.CompletedAt,
		ExpiresAt:         r.ExpiresAt,
		CreatedAt:         r.CreatedAt,
	}
}

func NewWithdrawalList(requests []domain.WithdrawalRequest) []WithdrawalResponseDTO {
	out := make([]WithdrawalResponseDTO, len(requests))
	for i := range requests {
		out[i] = NewWithdrawalResponse(&requests[i])
	}
	return out
}

type ApproveRequestDTO struct {
	Note string `json:"note,omitempty" example:"Verified account owner" validate:"max=500"`
}

type RejectRequestDTO struct {
	Reason string `json:"reason" example:"Account name does not match" validate:"required,max=500"`
}

type CompleteRequestDTO struct {
	BankTransactionID string `json:"bank_transaction_id" example:"FT24061123456" validate:"required,max=100"`
}

type FailRequestDTO struct {
	Error string `json:"error" example:"Bank rail timeout" validate:"required,max=500"`
}

type SweepResponseDTO struct {
	Claimed int `json:"claimed" example:"3"`
	Expired int `json:"expired" example:"2"`
	Skipped int `json:"skipped" example:"1"`
}
