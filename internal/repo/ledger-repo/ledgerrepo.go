package ledgerrepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/eduwallet/internal/domain"
	"github.com/GlebRadaev/eduwallet/internal/pg"
	"go.uber.org/zap"
)

// Repository is the only writer of wallet_transactions and it never updates
// or deletes a row.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Append(ctx context.Context, entry *domain.LedgerEntry) error {
	query := `
		INSERT INTO wallet_transactions (wallet_id, transaction_type, currency_type, amount,
			balance_after, fee, status, reference_type, reference_id, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		entry.WalletID, string(entry.Type), string(entry.Currency), entry.Amount,
		entry.BalanceAfter, entry.Fee, entry.Status, string(entry.ReferenceType), entry.ReferenceID, entry.Description,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't append ledger entry",
			zap.Int64("wallet_id", entry.WalletID), zap.String("type", string(entry.Type)), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByWallet(ctx context.Context, walletID int64, limit, offset int) ([]domain.LedgerEntry, error) {
	query := `
		SELECT id, wallet_id, transaction_type, currency_type, amount, balance_after, fee,
			status, reference_type, reference_id, description, created_at
		FROM wallet_transactions
		WHERE wallet_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, walletID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.LedgerEntry, 0)
	for rows.Next() {
		var e domain.LedgerEntry
		err := rows.Scan(&e.ID, &e.WalletID, &e.Type, &e.Currency, &e.Amount, &e.BalanceAfter, &e.Fee,
			&e.Status, &e.ReferenceType, &e.ReferenceID, &e.Description, &e.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan ledger entry", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate ledger entries", zap.Error(err))
		return nil, err
	}

	return entries, nil
}

// SumByCurrency returns the signed ledger totals used by reconciliation.
func (r *Repository) SumByCurrency(ctx context.Context, walletID int64) (cash, coins decimal.Decimal, err error) {
	query := `
		SELECT COALESCE(SUM(amount) FILTER (WHERE currency_type = 'CASH'), 0),
			COALESCE(SUM(amount) FILTER (WHERE currency_type = 'COIN'), 0)
		FROM wallet_transactions
		WHERE wallet_id = $1
	`
	err = r.db.QueryRow(ctx, query, walletID).Scan(&cash, &coins)
	if err != nil {
		zap.L().Error("failed to sum ledger", zap.Int64("wallet_id", walletID), zap.Error(err))
		return decimal.Zero, decimal.Zero, err
	}
	return cash, coins, nil
}
