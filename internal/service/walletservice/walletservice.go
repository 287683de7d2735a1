package walletservice

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/eduwallet/internal/domain"
	"github.com/GlebRadaev/eduwallet/internal/events"
	"github.com/GlebRadaev/eduwallet/internal/pg"
	"github.com/GlebRadaev/eduwallet/pkg/auth"
)

//go:generate mockgen -source=walletservice.go -destination=mock_walletservice.go -package=walletservice

type WalletRepo interface {
	GetByID(ctx context.Context, walletID int64) (*domain.Wallet, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Wallet, error)
	LockByID(ctx context.Context, walletID int64) (*domain.Wallet, error)
	LockByUserID(ctx context.Context, userID int64) (*domain.Wallet, error)
	CreateIfNotExists(ctx context.Context, userID int64) error
	SaveBalances(ctx context.Context, w *domain.Wallet) error
	UpdateStatus(ctx context.Context, walletID int64, status domain.WalletStatus) error
	UpdateSettings(ctx context.Context, w *domain.Wallet) error
}

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) error
	ListByWallet(ctx context.Context, walletID int64, limit, offset int) ([]domain.LedgerEntry, error)
	SumByCurrency(ctx context.Context, walletID int64) (cash, coins decimal.Decimal, err error)
}

type Service struct {
	walletRepo WalletRepo
	ledgerRepo LedgerRepo
	txManager  pg.TXManager
	hasher     auth.HashServiceInterface
	totp       auth.TOTPServiceInterface
	publisher  events.Publisher
	coinRate   decimal.Decimal
}

func New(
	walletRepo WalletRepo,
	ledgerRepo LedgerRepo,
	txManager pg.TXManager,
	hasher auth.HashServiceInterface,
	totp auth.TOTPServiceInterface,
	publisher events.Publisher,
	coinRate decimal.Decimal,
) *Service {
	return &Service{
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
		txManager:  txManager,
		hasher:     hasher,
		totp:       totp,
		publisher:  publisher,
		coinRate:   coinRate,
	}
}

// mutation changes a locked wallet and returns the ledger entries describing
// the change. Entries must be built after the balance helper ran so that
// BalanceAfter carries the post-mutation snapshot.
type mutation func(w *domain.Wallet) ([]domain.LedgerEntry, error)

func (s *Service) mutate(ctx context.Context, walletID int64, fn mutation) (*domain.Wallet, error) {
	var wallet *domain.Wallet
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		w, err := s.walletRepo.LockByID(ctx, walletID)
		if err != nil {
			return err
		}
		entries, err := fn(w)
		if err != nil {
			return err
		}
		if err := s.persist(ctx, w, entries); err != nil {
			return err
		}
		wallet = w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return wallet, nil
}

func (s *Service) persist(ctx context.Context, w *domain.Wallet, entries []domain.LedgerEntry) error {
	if err := s.walletRepo.SaveBalances(ctx, w); err != nil {
		return err
	}
	for i := range entries {
		if err := s.ledgerRepo.Append(ctx, &entries[i]); err != nil {
			return err
		}
	}
	return nil
}

func entry(w *domain.Wallet, txType domain.TransactionType, currency domain.CurrencyType, amount decimal.Decimal, ref domain.LedgerRef) domain.LedgerEntry {
	return domain.LedgerEntry{
		WalletID:      w.ID,
		Type:          txType,
		Currency:      currency,
		Amount:        amount,
		BalanceAfter:  w.Snapshot(currency),
		Fee:           decimal.Zero,
		Status:        domain.LedgerStatusCompleted,
		ReferenceType: ref.ReferenceType,
		ReferenceID:   ref.ReferenceID,
		Description:   ref.Description,
	}
}

func coins(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func (s *Service) GetOrCreateWallet(ctx context.Context, userID int64) (*domain.Wallet, error) {
	if err := s.walletRepo.CreateIfNotExists(ctx, userID); err != nil {
		zap.L().Error("failed to ensure wallet", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return s.walletRepo.GetByUserID(ctx, userID)
}

func (s *Service) GetByID(ctx context.Context, walletID int64) (*domain.Wallet, error) {
	return s.walletRepo.GetByID(ctx, walletID)
}

func (s *Service) DepositCash(ctx context.Context, walletID int64, amount decimal.Decimal, ref domain.LedgerRef) (*domain.Wallet, error) {
	return s.mutate(ctx, walletID, func(w *domain.Wallet) ([]domain.LedgerEntry, error) {
		if err := w.DepositCash(amount); err != nil {
			return nil, err
		}
		return []domain.LedgerEntry{entry(w, domain.TxDepositCash, domain.CurrencyCash, amount, ref)}, nil
	})
}

// DeductCash debits available cash; txType names the reason (SPEND_CASH,
// PURCHASE_COINS, ...).
func (s *Service) DeductCash(ctx context.Context, walletID int64, amount decimal.Decimal, txType domain.TransactionType, ref domain.LedgerRef) (*domain.Wallet, error) {
	return s.mutate(ctx, walletID, func(w *domain.Wallet) ([]domain.LedgerEntry, error) {
		if err := w.DeductCash(amount); err != nil {
			return nil, err
		}
		return []domain.LedgerEntry{entry(w, txType, domain.CurrencyCash, amount.Neg(), ref)}, nil
	})
}

func (s *Service) AddCoins(ctx context.Context, walletID int64, n int64, txType domain.TransactionType, ref domain.LedgerRef) (*domain.Wallet, error) {
	return s.mutate(ctx, walletID, func(w *domain.Wallet) ([]domain.LedgerEntry, error) {
		if err := w.AddCoins(n); err != nil {
			return nil, err
		}
		return []domain.LedgerEntry{entry(w, txType, domain.CurrencyCoin, coins(n), ref)}, nil
	})
}

func (s *Service) DeductCoins(ctx context.Context, walletID int64, n int64, txType domain.TransactionType, ref domain.LedgerRef) (*domain.Wallet, error) {
	return s.mutate(ctx, walletID, func(w *domain.Wallet) ([]domain.LedgerEntry, error) {
		if err := w.DeductCoins(n); err != nil {
			return nil, err
		}
		return []domain.LedgerEntry{entry(w, txType, domain.CurrencyCoin, coins(n).Neg(), ref)}, nil
	})
}

func (s *Service) EarnCoins(ctx context.Context, walletID int64, n int64, ref domain.LedgerRef) (*domain.Wallet, error) {
	return s.mutate(ctx, walletID, func(w *domain.Wallet) ([]domain.LedgerEntry, error) {
		if err := w.EarnCoins(n); err != nil {
			return nil, err
		}
		return []domain.LedgerEntry{entry(w, domain.TxEarnCoins, domain.CurrencyCoin, coins(n), ref)}, nil
	})
}

func (s *Service) SpendCoins(ctx context.Context, walletID int64, n int64, ref domain.LedgerRef) (*domain.Wallet, error) {
	return s.mutate(ctx, walletID, func(w *domain.Wallet) ([]domain.LedgerEntry, error) {
		if err := w.SpendCoins(n); err != nil {
			return nil, err
		}
		return []domain.LedgerEntry{entry(w, domain.TxSpendCoins, domain.CurrencyCoin, coins(n).Neg(), ref)}, nil
	})
}

// Freeze and Unfreeze move money between available and held cash only, so
// they write no ledger entry.
func (s *Service) Freeze(ctx context.Context, walletID int64, amount decimal.Decimal) (*domain.Wallet, error) {
	return s.mutate(ctx, walletID, func(w *domain.Wallet) ([]domain.LedgerEntry, error) {
		return nil, w.Freeze(amount)
	})
}

func (s *Service) Unfreeze(ctx context.Context, walletID int64, amount decimal.Decimal) (*domain.Wallet, error) {
	return s.mutate(ctx, walletID, func(w *domain.Wallet) ([]domain.LedgerEntry, error) {
		return nil, w.Unfreeze(amount)
	})
}

func (s *Service) CompleteWithdrawal(ctx context.Context, walletID int64, amount, fee decimal.Decimal, ref domain.LedgerRef) (*domain.Wallet, error) {
	return s.mutate(ctx, walletID, func(w *domain.Wallet) ([]domain.LedgerEntry, error) {
		if err := w.CompleteWithdrawal(amount); err != nil {
			return nil, err
		}
		e := entry(w, domain.TxWithdrawalCash, domain.CurrencyCash, amount.Neg(), ref)
		e.Fee = fee
		return []domain.LedgerEntry{e}, nil
	})
}

// PurchaseCoinsWithCash converts cash into coins at the configured rate. Both
// legs are written under one wallet lock.
func (s *Service) PurchaseCoinsWithCash(ctx context.Context, userID int64, n int64) (*domain.Wallet, error) {
	if n <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	wallet, err := s.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	cost := s.coinRate.Mul(coins(n))
	ref := domain.LedgerRef{
		ReferenceType: domain.RefCoinExchange,
		ReferenceID:   uuid.NewString(),
		Description:   fmt.Sprintf("Purchase %d coins", n),
	}

	return s.mutate(ctx, wallet.ID, func(w *domain.Wallet) ([]domain.LedgerEntry, error) {
		if err := w.DeductCash(cost); err != nil {
			return nil, err
		}
		cashLeg := entry(w, domain.TxPurchaseCoins, domain.CurrencyCash, cost.Neg(), ref)
		if err := w.AddCoins(n); err != nil {
			return nil, err
		}
		coinLeg := entry(w, domain.TxPurchaseCoins, domain.CurrencyCoin, coins(n), ref)
		return []domain.LedgerEntry{cashLeg, coinLeg}, nil
	})
}

// TipCoins moves coins between two users. Wallet rows are locked in ascending
// id order so opposite tips cannot deadlock.
func (s *Service) TipCoins(ctx context.Context, fromUserID, toUserID int64, n int64, note string) (*domain.Wallet, error) {
	if n <= 0 || fromUserID == toUserID {
		return nil, domain.ErrInvalidAmount
	}
	sender, err := s.GetOrCreateWallet(ctx, fromUserID)
	if err != nil {
		return nil, err
	}
	recipient, err := s.GetOrCreateWallet(ctx, toUserID)
	if err != nil {
		return nil, err
	}

	ref := domain.LedgerRef{ReferenceType: domain.RefTip, ReferenceID: uuid.NewString(), Description: note}
	var result *domain.Wallet
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		first, second := sender.ID, recipient.ID
		if first > second {
			first, second = second, first
		}
		locked := make(map[int64]*domain.Wallet, 2)
		for _, id := range []int64{first, second} {
			w, err := s.walletRepo.LockByID(ctx, id)
			if err != nil {
				return err
			}
			locked[id] = w
		}
		from, to := locked[sender.ID], locked[recipient.ID]

		if err := from.SpendCoins(n); err != nil {
			return err
		}
		if err := to.EarnCoins(n); err != nil {
			return fmt.Errorf("recipient: %w", err)
		}
		if err := s.persist(ctx, from, []domain.LedgerEntry{entry(from, domain.TxTipSent, domain.CurrencyCoin, coins(n).Neg(), ref)}); err != nil {
			return err
		}
		if err := s.persist(ctx, to, []domain.LedgerEntry{entry(to, domain.TxTipReceived, domain.CurrencyCoin, coins(n), ref)}); err != nil {
			return err
		}
		result = from
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AdminAdjust applies a signed correction. It is still bound by the balance
// invariants: a debit larger than available funds fails.
func (s *Service) AdminAdjust(ctx context.Context, walletID int64, currency domain.CurrencyType, delta decimal.Decimal, adminID int64, reason string) (*domain.Wallet, error) {
	ref := domain.LedgerRef{
		ReferenceType: domain.RefAdmin,
		ReferenceID:   strconv.FormatInt(adminID, 10),
		Description:   reason,
	}
	switch currency {
	case domain.CurrencyCash:
		if !delta.Equal(delta.Round(2)) {
			return nil, domain.ErrInvalidAmount
		}
	case domain.CurrencyCoin:
		if !delta.IsInteger() {
			return nil, domain.ErrInvalidAmount
		}
	default:
		return nil, fmt.Errorf("%w: currency %q", domain.ErrInvalidInput, currency)
	}

	return s.mutate(ctx, walletID, func(w *domain.Wallet) ([]domain.LedgerEntry, error) {
		var err error
		if currency == domain.CurrencyCoin {
			err = w.AdjustCoins(delta.IntPart())
		} else {
			err = w.AdjustCash(delta)
		}
		if err != nil {
			return nil, err
		}
		return []domain.LedgerEntry{entry(w, domain.TxAdminAdjustment, currency, delta, ref)}, nil
	})
}

func (s *Service) SetStatus(ctx context.Context, walletID int64, status domain.WalletStatus) (*domain.Wallet, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, status)
	}

	var wallet *domain.Wallet
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		w, err := s.walletRepo.LockByID(ctx, walletID)
		if err != nil {
			return err
		}
		if status == domain.WalletStatusClosed && (!w.CashBalance.IsZero() || w.CoinBalance != 0) {
			return domain.ErrWalletNotEmpty
		}
		if err := s.walletRepo.UpdateStatus(ctx, walletID, status); err != nil {
			return err
		}
		w.Status = status
		wallet = w
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.Event{
		Type:     events.WalletStatusChanged,
		UserID:   wallet.UserID,
		EntityID: strconv.FormatInt(wallet.ID, 10),
		Payload:  map[string]string{"status": string(status)},
	})
	return wallet, nil
}

func (s *Service) History(ctx context.Context, userID int64, limit, offset int) ([]domain.LedgerEntry, error) {
	wallet, err := s.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.ledgerRepo.ListByWallet(ctx, wallet.ID, limit, offset)
}

// Reconcile replays the ledger sums against the stored balances.
func (s *Service) Reconcile(ctx context.Context, walletID int64) (*domain.ReconciliationReport, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, err
	}
	cashSum, coinSum, err := s.ledgerRepo.SumByCurrency(ctx, walletID)
	if err != nil {
		return nil, err
	}

	report := &domain.ReconciliationReport{
		WalletID:      walletID,
		CashBalance:   wallet.CashBalance,
		CashLedgerSum: cashSum,
		CoinBalance:   wallet.CoinBalance,
		CoinLedgerSum: coinSum.IntPart(),
	}
	report.Balanced = cashSum.Equal(wallet.CashBalance) && coinSum.Equal(coins(wallet.CoinBalance))
	if !report.Balanced {
		zap.L().Warn("wallet ledger mismatch",
			zap.Int64("wallet_id", walletID),
			zap.String("cash_balance", wallet.CashBalance.String()),
			zap.String("cash_ledger", cashSum.String()),
			zap.Int64("coin_balance", wallet.CoinBalance),
			zap.String("coin_ledger", coinSum.String()),
		)
	}
	return report, nil
}
