package withdrawalservice

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/eduwallet/internal/domain"
	"github.com/GlebRadaev/eduwallet/internal/events"
	"github.com/GlebRadaev/eduwallet/internal/pg"
	"github.com/GlebRadaev/eduwallet/pkg/validate"
)

//go:generate mockgen -source=withdrawalservice.go -destination=mock_withdrawalservice.go -package=withdrawalservice

const codeAttempts = 3

type WithdrawalRepo interface {
	Create(ctx context.Context, wr *domain.WithdrawalRequest) error
	GetByID(ctx context.Context, id int64) (*domain.WithdrawalRequest, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.WithdrawalRequest, error)
	Update(ctx context.Context, wr *domain.WithdrawalRequest) error
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.WithdrawalRequest, error)
	ListPending(ctx context.Context, limit, offset int) ([]domain.WithdrawalRequest, error)
	ClaimExpired(ctx context.Context, now time.Time, limit int, exclude []int64) ([]domain.WithdrawalRequest, error)
}

type Wallets interface {
	GetOrCreateWallet(ctx context.Context, userID int64) (*domain.Wallet, error)
	VerifyCredentials(w *domain.Wallet, pin, otpCode string) (bool, error)
	Freeze(ctx context.Context, walletID int64, amount decimal.Decimal) (*domain.Wallet, error)
	Unfreeze(ctx context.Context, walletID int64, amount decimal.Decimal) (*domain.Wallet, error)
	CompleteWithdrawal(ctx context.Context, walletID int64, amount, fee decimal.Decimal, ref domain.LedgerRef) (*domain.Wallet, error)
}

type Config struct {
	MinAmount          decimal.Decimal
	FeePercent         decimal.Decimal
	HighPriorityAmount decimal.Decimal
	TTL                time.Duration
	MaxRetries         int
}

// CreateInput is a user's withdrawal request. A nil Destination falls back to
// the bank account saved on the wallet.
type CreateInput struct {
	Amount      decimal.Decimal
	Destination *domain.BankDetails
	Card        bool
	PIN         string
	OTPCode     string
	Note        string
}

// Actor identifies who is acting on a request. Users only see their own requests.
type Actor struct {
	UserID  int64
	IsAdmin bool
}

type SweepResult struct {
	Claimed int `json:"claimed"`
	Expired int `json:"expired"`
	Skipped int `json:"skipped"`
	// SkippedIDs are still overdue; pass them back as exclude to reach the
	// requests queued behind them.
	SkippedIDs []int64 `json:"skipped_ids,omitempty"`
}

type Service struct {
	repo      WithdrawalRepo
	wallets   Wallets
	txManager pg.TXManager
	publisher events.Publisher
	cfg       Config
	now       func() time.Time
}

func New(repo WithdrawalRepo, wallets Wallets, txManager pg.TXManager, publisher events.Publisher, cfg Config) *Service {
	return &Service{
		repo:      repo,
		wallets:   wallets,
		txManager: txManager,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *Service) Create(ctx context.Context, userID int64, in CreateInput) (*domain.WithdrawalRequest, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if in.Amount.LessThan(s.cfg.MinAmount) {
		return nil, fmt.Errorf("%w: minimum withdrawal is %s", domain.ErrInvalidAmount, s.cfg.MinAmount)
	}

	wallet, err := s.wallets.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	twoFA, err := s.wallets.VerifyCredentials(wallet, in.PIN, in.OTPCode)
	if err != nil {
		return nil, err
	}
	dest, err := destination(wallet, in)
	if err != nil {
		return nil, err
	}

	now := s.now()
	fee := in.Amount.Mul(s.cfg.FeePercent).Div(decimal.NewFromInt(100)).Round(2)
	req := &domain.WithdrawalRequest{
		UserID:            userID,
		WalletID:          wallet.ID,
		Amount:            in.Amount,
		Fee:               fee,
		NetAmount:         in.Amount.Sub(fee),
		BankName:          dest.BankName,
		BankAccountNumber: dest.AccountNumber,
		BankAccountName:   dest.AccountName,
		PINVerified:       true,
		TwoFAVerified:     twoFA,
		Status:            domain.WithdrawalPending,
		Priority:          domain.PriorityNormal,
		UserNote:          in.Note,
		ExpiresAt:         now.Add(s.cfg.TTL),
	}
	if !s.cfg.HighPriorityAmount.IsZero() && in.Amount.GreaterThanOrEqual(s.cfg.HighPriorityAmount) {
		req.Priority = domain.PriorityHigh
	}

	for attempt := 1; ; attempt++ {
		req.RequestCode = requestCode(now)
		err = s.txManager.Begin(ctx, func(ctx context.Context) error {
			if _, err := s.wallets.Freeze(ctx, wallet.ID, req.Amount); err != nil {
				return err
			}
			return s.repo.Create(ctx, req)
		})
		if err == nil {
			break
		}
		if !pg.IsUniqueViolation(err) || attempt == codeAttempts {
			return nil, err
		}
		zap.L().Warn("withdrawal request code collision, retrying", zap.String("code", req.RequestCode), zap.Int("attempt", attempt))
	}

	s.publish(ctx, req)
	return req, nil
}

func destination(w *domain.Wallet, in CreateInput) (domain.BankDetails, error) {
	dest := domain.BankDetails{
		BankName:      w.BankName,
		AccountNumber: w.BankAccountNumber,
		AccountName:   w.BankAccountName,
	}
	if in.Destination != nil {
		dest = *in.Destination
	}
	if dest.BankName == "" || dest.AccountNumber == "" || dest.AccountName == "" {
		return dest, fmt.Errorf("%w: destination bank account is required", domain.ErrInvalidInput)
	}
	if in.Card && !validate.IsCardNumber(dest.AccountNumber) {
		return dest, fmt.Errorf("%w: card number fails the Luhn check", domain.ErrInvalidInput)
	}
	return dest, nil
}

func requestCode(now time.Time) string {
	return fmt.Sprintf("WD-%d-%04d", now.Unix(), rand.IntN(10000))
}

type transition func(ctx context.Context, req *domain.WithdrawalRequest, now time.Time) error

// apply locks the request row, then runs fn, which may lock the wallet row.
// The sweeper takes locks in the same order.
func (s *Service) apply(ctx context.Context, id int64, fn transition) (*domain.WithdrawalRequest, error) {
	var req *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		r, err := s.repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(ctx, r, s.now()); err != nil {
			return err
		}
		if err := s.repo.Update(ctx, r); err != nil {
			return err
		}
		req = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, req)
	return req, nil
}

func (s *Service) Approve(ctx context.Context, id, adminID int64, note string) (*domain.WithdrawalRequest, error) {
	return s.apply(ctx, id, func(_ context.Context, r *domain.WithdrawalRequest, now time.Time) error {
		if err := r.TransitionTo(domain.WithdrawalApproved); err != nil {
			return err
		}
		r.ApprovedBy = &adminID
		r.ApprovedAt = &now
		r.AdminNote = note
		return nil
	})
}

func (s *Service) Reject(ctx context.Context, id, adminID int64, reason string) (*domain.WithdrawalRequest, error) {
	return s.apply(ctx, id, func(ctx context.Context, r *domain.WithdrawalRequest, _ time.Time) error {
		if err := r.TransitionTo(domain.WithdrawalRejected); err != nil {
			return err
		}
		if _, err := s.wallets.Unfreeze(ctx, r.WalletID, r.Amount); err != nil {
			return err
		}
		r.RejectionReason = reason
		zap.L().Info("withdrawal rejected", zap.String("code", r.RequestCode), zap.Int64("admin_id", adminID))
		return nil
	})
}

// Cancel releases the hold. Users may cancel their own PENDING or APPROVED
// requests; an admin may also cancel a FAILED one.
func (s *Service) Cancel(ctx context.Context, id int64, actor Actor) (*domain.WithdrawalRequest, error) {
	return s.apply(ctx, id, func(ctx context.Context, r *domain.WithdrawalRequest, _ time.Time) error {
		if !actor.IsAdmin {
			if r.UserID != actor.UserID {
				return fmt.Errorf("withdrawal request %d: %w", id, domain.ErrNotFound)
			}
			if r.Status == domain.WithdrawalFailed {
				return fmt.Errorf("%w: failed requests are cancelled by an operator", domain.ErrWithdrawalState)
			}
		}
		if err := r.TransitionTo(domain.WithdrawalCancelled); err != nil {
			return err
		}
		if _, err := s.wallets.Unfreeze(ctx, r.WalletID, r.Amount); err != nil {
			return err
		}
		r.CancelledBy = &actor.UserID
		return nil
	})
}

// MarkProcessing flags the request as sent to the bank. From FAILED it is a
// retry and only allowed while retries remain.
func (s *Service) MarkProcessing(ctx context.Context, id int64) (*domain.WithdrawalRequest, error) {
	return s.apply(ctx, id, func(_ context.Context, r *domain.WithdrawalRequest, now time.Time) error {
		if r.Status == domain.WithdrawalFailed && r.RetryCount >= s.cfg.MaxRetries {
			return fmt.Errorf("%w: retries exhausted (%d)", domain.ErrWithdrawalState, r.RetryCount)
		}
		if err := r.TransitionTo(domain.WithdrawalProcessing); err != nil {
			return err
		}
		r.ProcessedAt = &now
		return nil
	})
}

// Complete settles the hold. A completed request cannot be completed again.
func (s *Service) Complete(ctx context.Context, id, adminID int64, bankTxID string) (*domain.WithdrawalRequest, error) {
	return s.apply(ctx, id, func(ctx context.Context, r *domain.WithdrawalRequest, now time.Time) error {
		if err := r.TransitionTo(domain.WithdrawalCompleted); err != nil {
			return err
		}
		ref := domain.LedgerRef{
			ReferenceType: domain.RefWithdrawal,
			ReferenceID:   r.RequestCode,
			Description:   fmt.Sprintf("Withdrawal to %s %s", r.BankName, r.BankAccountNumber),
		}
		if _, err := s.wallets.CompleteWithdrawal(ctx, r.WalletID, r.Amount, r.Fee, ref); err != nil {
			return err
		}
		if r.ApprovedBy == nil {
			r.ApprovedBy = &adminID
			r.ApprovedAt = &now
		}
		r.BankTransactionID = bankTxID
		r.CompletedAt = &now
		return nil
	})
}

// Fail records a bank rail error. Funds stay frozen.
func (s *Service) Fail(ctx context.Context, id int64, errMsg string) (*domain.WithdrawalRequest, error) {
	return s.apply(ctx, id, func(_ context.Context, r *domain.WithdrawalRequest, _ time.Time) error {
		if err := r.TransitionTo(domain.WithdrawalFailed); err != nil {
			return err
		}
		r.RetryCount++
		r.ErrorMessage = errMsg
		return nil
	})
}

func (s *Service) Get(ctx context.Context, id int64, actor Actor) (*domain.WithdrawalRequest, error) {
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin && req.UserID != actor.UserID {
		return nil, fmt.Errorf("withdrawal request %d: %w", id, domain.ErrNotFound)
	}
	return req, nil
}

func (s *Service) List(ctx context.Context, userID int64, limit, offset int) ([]domain.WithdrawalRequest, error) {
	return s.repo.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) ListPending(ctx context.Context, limit, offset int) ([]domain.WithdrawalRequest, error) {
	return s.repo.ListPending(ctx, limit, offset)
}

// ExpireDue expires one batch of overdue requests and releases their holds.
// Claimed rows are locked with SKIP LOCKED, so concurrent sweeps never share a row.
func (s *Service) ExpireDue(ctx context.Context, batch int, exclude []int64) (*SweepResult, error) {
	now := s.now()
	result := &SweepResult{}
	var expired []domain.WithdrawalRequest

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		claimed, err := s.repo.ClaimExpired(ctx, now, batch, exclude)
		if err != nil {
			return err
		}
		result.Claimed = len(claimed)

		for i := range claimed {
			r := &claimed[i]
			if err := r.TransitionTo(domain.WithdrawalExpired); err != nil {
				zap.L().Warn("skipping withdrawal on expiry", zap.String("code", r.RequestCode), zap.Error(err))
				result.Skipped++
				result.SkippedIDs = append(result.SkippedIDs, r.ID)
				continue
			}
			if _, err := s.wallets.Unfreeze(ctx, r.WalletID, r.Amount); err != nil {
				if !isDomainError(err) {
					return err
				}
				zap.L().Warn("can't release hold on expiry", zap.String("code", r.RequestCode), zap.Error(err))
				result.Skipped++
				result.SkippedIDs = append(result.SkippedIDs, r.ID)
				continue
			}
			if err := s.repo.Update(ctx, r); err != nil {
				return err
			}
			expired = append(expired, *r)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("withdrawal expiry sweep failed", zap.Error(err))
		return nil, err
	}

	result.Expired = len(expired)
	for i := range expired {
		s.publish(ctx, &expired[i])
	}
	if result.Claimed > 0 {
		zap.L().Info("withdrawal expiry sweep",
			zap.Int("claimed", result.Claimed),
			zap.Int("expired", result.Expired),
			zap.Int("skipped", result.Skipped),
		)
	}
	return result, nil
}

func isDomainError(err error) bool {
	return errors.Is(err, domain.ErrInsufficientBalance) ||
		errors.Is(err, domain.ErrWalletNotActive) ||
		errors.Is(err, domain.ErrInvalidAmount) ||
		errors.Is(err, domain.ErrNotFound)
}

func (s *Service) publish(ctx context.Context, r *domain.WithdrawalRequest) {
	s.publisher.Publish(ctx, events.Event{
		Type:     events.WithdrawalPrefix + string(r.Status),
		UserID:   r.UserID,
		EntityID: strconv.FormatInt(r.ID, 10),
		Payload: map[string]string{
			"request_code": r.RequestCode,
			"amount":       r.Amount.String(),
		},
	})
}
