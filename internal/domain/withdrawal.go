package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type WithdrawalStatus string

const (
	WithdrawalPending    WithdrawalStatus = "PENDING"
	WithdrawalApproved   WithdrawalStatus = "APPROVED"
	WithdrawalProcessing WithdrawalStatus = "PROCESSING"
	WithdrawalCompleted  WithdrawalStatus = "COMPLETED"
	WithdrawalRejected   WithdrawalStatus = "REJECTED"
	WithdrawalCancelled  WithdrawalStatus = "CANCELLED"
	WithdrawalFailed     WithdrawalStatus = "FAILED"
	WithdrawalExpired    WithdrawalStatus = "EXPIRED"
)

const (
	PriorityNormal = 0
	PriorityHigh   = 1
)

var withdrawalTransitions = map[WithdrawalStatus][]WithdrawalStatus{
	WithdrawalPending:    {WithdrawalApproved, WithdrawalRejected, WithdrawalCancelled, WithdrawalExpired},
	WithdrawalApproved:   {WithdrawalProcessing, WithdrawalCompleted, WithdrawalCancelled, WithdrawalExpired},
	WithdrawalProcessing: {WithdrawalCompleted, WithdrawalFailed},
	WithdrawalFailed:     {WithdrawalProcessing, WithdrawalCancelled, WithdrawalExpired},
}

// ExpirableWithdrawalStatuses are swept once expires_at passes. PROCESSING is
// the one non-terminal state that never expires: the bank transfer may already
// be in flight, so releasing the frozen funds could pay out twice. It leaves
// PROCESSING only through Complete or Fail.
var ExpirableWithdrawalStatuses = []WithdrawalStatus{WithdrawalPending, WithdrawalApproved, WithdrawalFailed}

func (s WithdrawalStatus) CanTransitionTo(next WithdrawalStatus) bool {
	for _, allowed := range withdrawalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s WithdrawalStatus) IsTerminal() bool {
	return len(withdrawalTransitions[s]) == 0
}

type WithdrawalRequest struct {
	ID                int64            `db:"id"`
	RequestCode       string           `db:"request_code"`
	UserID            int64            `db:"user_id"`
	WalletID          int64            `db:"wallet_id"`
	Amount            decimal.Decimal  `db:"amount"`
	Fee               decimal.Decimal  `db:"fee"`
	NetAmount         decimal.Decimal  `db:"net_amount"`
	BankName          string           `db:"bank_name"`
	BankAccountNumber string           `db:"bank_account_number"`
	BankAccountName   string           `db:"bank_account_name"`
	PINVerified       bool             `db:"pin_verified"`
	TwoFAVerified     bool             `db:"two_fa_verified"`
	Status            WithdrawalStatus `db:"status"`
	Priority          int              `db:"priority"`
	RetryCount        int              `db:"retry_count"`
	ErrorMessage      string           `db:"error_message"`
	UserNote          string           `db:"user_note"`
	AdminNote         string           `db:"admin_note"`
	ApprovedBy        *int64           `db:"approved_by"`
	ApprovedAt        *time.Time       `db:"approved_at"`
	RejectionReason   string           `db:"rejection_reason"`
	BankTransactionID string           `db:"bank_transaction_id"`
	ProcessedAt       *time.Time       `db:"processed_at"`
	CompletedAt       *time.Time       `db:"completed_at"`
	CancelledBy       *int64           `db:"cancelled_by"`
	ExpiresAt         time.Time        `db:"expires_at"`
	CreatedAt         time.Time        `db:"created_at"`
	UpdatedAt         time.Time        `db:"updated_at"`
}

// TransitionTo moves the request to next or returns ErrWithdrawalState.
func (r *WithdrawalRequest) TransitionTo(next WithdrawalStatus) error {
	if !r.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrWithdrawalState, r.Status, next)
	}
	r.Status = next
	return nil
}

func (r *WithdrawalRequest) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
