package walletrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/eduwallet/internal/domain"
	"github.com/GlebRadaev/eduwallet/internal/pg"
	"go.uber.org/zap"
)

const walletColumns = `id, user_id, cash_balance, frozen_cash_balance, coin_balance,
	total_deposited, total_withdrawn, total_coins_earned, total_coins_spent, status,
	bank_name, bank_account_number, bank_account_name, transaction_pin_hash,
	two_fa_secret, require_2fa, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet
	err := row.Scan(
		&w.ID, &w.UserID, &w.CashBalance, &w.FrozenCashBalance, &w.CoinBalance,
		&w.TotalDeposited, &w.TotalWithdrawn, &w.TotalCoinsEarned, &w.TotalCoinsSpent, &w.Status,
		&w.BankName, &w.BankAccountNumber, &w.BankAccountName, &w.TransactionPINHash,
		&w.TwoFASecret, &w.Require2FA, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) get(ctx context.Context, query string, arg int64) (*domain.Wallet, error) {
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("wallet: %w", domain.ErrNotFound)
		}
		zap.L().Error("failed to get wallet", zap.Int64("key", arg), zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) GetByID(ctx context.Context, walletID int64) (*domain.Wallet, error) {
	return r.get(ctx, `SELECT `+walletColumns+` FROM wallets WHERE id = $1`, walletID)
}

func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.Wallet, error) {
	return r.get(ctx, `SELECT `+walletColumns+` FROM wallets WHERE user_id = $1`, userID)
}

// LockByID reads the wallet with a row lock held until the surrounding
// transaction ends.
func (r *Repository) LockByID(ctx context.Context, walletID int64) (*domain.Wallet, error) {
	return r.get(ctx, `SELECT `+walletColumns+` FROM wallets WHERE id = $1 FOR UPDATE`, walletID)
}

func (r *Repository) LockByUserID(ctx context.Context, userID int64) (*domain.Wallet, error) {
	return r.get(ctx, `SELECT `+walletColumns+` FROM wallets WHERE user_id = $1 FOR UPDATE`, userID)
}

// CreateIfNotExists inserts an empty ACTIVE wallet for the user unless one exists.
func (r *Repository) CreateIfNotExists(ctx context.Context, userID int64) error {
	query := `
		INSERT INTO wallets (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("failed to create wallet", zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SaveBalances(ctx context.Context, w *domain.Wallet) error {
	query := `
		UPDATE wallets
		SET cash_balance = $1, frozen_cash_balance = $2, coin_balance = $3,
			total_deposited = $4, total_withdrawn = $5,
			total_coins_earned = $6, total_coins_spent = $7, updated_at = NOW()
		WHERE id = $8
	`
	tag, err := r.db.Exec(ctx, query,
		w.CashBalance, w.FrozenCashBalance, w.CoinBalance,
		w.TotalDeposited, w.TotalWithdrawn,
		w.TotalCoinsEarned, w.TotalCoinsSpent, w.ID,
	)
	if err != nil {
		zap.L().Error("failed to save wallet balances", zap.Int64("wallet_id", w.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet %d: %w", w.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, walletID int64, status domain.WalletStatus) error {
	query := `UPDATE wallets SET status = $1, updated_at = NOW() WHERE id = $2`
	tag, err := r.db.Exec(ctx, query, string(status), walletID)
	if err != nil {
		zap.L().Error("failed to update wallet status", zap.Int64("wallet_id", walletID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet %d: %w", walletID, domain.ErrNotFound)
	}
	return nil
}

// UpdateSettings persists the bank destination and credential fields.
func (r *Repository) UpdateSettings(ctx context.Context, w *domain.Wallet) error {
	query := `
		UPDATE wallets
		SET bank_name = $1, bank_account_number = $2, bank_account_name = $3,
			transaction_pin_hash = $4, two_fa_secret = $5, require_2fa = $6, updated_at = NOW()
		WHERE id = $7
	`
	_, err := r.db.Exec(ctx, query,
		w.BankName, w.BankAccountNumber, w.BankAccountName,
		w.TransactionPINHash, w.TwoFASecret, w.Require2FA, w.ID,
	)
	if err != nil {
		zap.L().Error("failed to update wallet settings", zap.Int64("wallet_id", w.ID), zap.Error(err))
		return err
	}
	return nil
}
