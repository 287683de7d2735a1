package withdrawalrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/eduwallet/internal/domain"
	"github.com/GlebRadaev/eduwallet/internal/pg"
	"go.uber.org/zap"
)

const requestColumns = `id, request_code, user_id, wallet_id, amount, fee, net_amount,
	bank_name, bank_account_number, bank_account_name, pin_verified, two_fa_verified,
	status, priority, retry_count, error_message, user_note, admin_note,
	approved_by, approved_at, rejection_reason, bank_transaction_id,
	processed_at, completed_at, cancelled_by, expires_at, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanRequest(row pgx.Row) (*domain.WithdrawalRequest, error) {
	var wr domain.WithdrawalRequest
	err := row.Scan(
		&wr.ID, &wr.RequestCode, &wr.UserID, &wr.WalletID, &wr.Amount, &wr.Fee, &wr.NetAmount,
		&wr.BankName, &wr.BankAccountNumber, &wr.BankAccountName, &wr.PINVerified, &wr.TwoFAVerified,
		&wr.Status, &wr.Priority, &wr.RetryCount, &wr.ErrorMessage, &wr.UserNote, &wr.AdminNote,
		&wr.ApprovedBy, &wr.ApprovedAt, &wr.RejectionReason, &wr.BankTransactionID,
		&wr.ProcessedAt, &wr.CompletedAt, &wr.CancelledBy, &wr.ExpiresAt, &wr.CreatedAt, &wr.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &wr, nil
}

// Create inserts a PENDING request. A duplicate request_code surfaces as the
// raw unique violation so the caller can regenerate the code.
func (r *Repository) Create(ctx context.Context, wr *domain.WithdrawalRequest) error {
	query := `
		INSERT INTO withdrawal_requests (request_code, user_id, wallet_id, amount, fee, net_amount,
			bank_name, bank_account_number, bank_account_name, pin_verified, two_fa_verified,
			status, priority, user_note, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		wr.RequestCode, wr.UserID, wr.WalletID, wr.Amount, wr.Fee, wr.NetAmount,
		wr.BankName, wr.BankAccountNumber, wr.BankAccountName, wr.PINVerified, wr.TwoFAVerified,
		string(wr.Status), wr.Priority, wr.UserNote, wr.ExpiresAt,
	).Scan(&wr.ID, &wr.CreatedAt, &wr.UpdatedAt)
	if err != nil {
		if !pg.IsUniqueViolation(err) {
			zap.L().Error("can't save withdrawal request", zap.Error(err))
		}
		return err
	}
	return nil
}

func (r *Repository) get(ctx context.Context, query string, id int64) (*domain.WithdrawalRequest, error) {
	wr, err := scanRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("withdrawal request %d: %w", id, domain.ErrNotFound)
		}
		zap.L().Error("failed to get withdrawal request", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return wr, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.WithdrawalRequest, error) {
	return r.get(ctx, `SELECT `+requestColumns+` FROM withdrawal_requests WHERE id = $1`, id)
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.WithdrawalRequest, error) {
	return r.get(ctx, `SELECT `+requestColumns+` FROM withdrawal_requests WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) Update(ctx context.Context, wr *domain.WithdrawalRequest) error {
	query := `
		UPDATE withdrawal_requests
		SET status = $1, retry_count = $2, error_message = $3, admin_note = $4,
			approved_by = $5, approved_at = $6, rejection_reason = $7, bank_transaction_id = $8,
			processed_at = $9, completed_at = $10, cancelled_by = $11, updated_at = NOW()
		WHERE id = $12
	`
	tag, err := r.db.Exec(ctx, query,
		string(wr.Status), wr.RetryCount, wr.ErrorMessage, wr.AdminNote,
		wr.ApprovedBy, wr.ApprovedAt, wr.RejectionReason, wr.BankTransactionID,
		wr.ProcessedAt, wr.CompletedAt, wr.CancelledBy, wr.ID,
	)
	if err != nil {
		zap.L().Error("failed to update withdrawal request", zap.Int64("id", wr.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("withdrawal request %d: %w", wr.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.WithdrawalRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	requests := make([]domain.WithdrawalRequest, 0)
	for rows.Next() {
		wr, err := scanRequest(rows)
		if err != nil {
			zap.L().Error("failed to scan withdrawal request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *wr)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate withdrawal requests", zap.Error(err))
		return nil, err
	}

	return requests, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.WithdrawalRequest, error) {
	query := `SELECT ` + requestColumns + `
		FROM withdrawal_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, query, userID, limit, offset)
}

// ListPending is the admin queue: high priority first, then oldest first.
func (r *Repository) ListPending(ctx context.Context, limit, offset int) ([]domain.WithdrawalRequest, error) {
	query := `SELECT ` + requestColumns + `
		FROM withdrawal_requests
		WHERE status = $1
		ORDER BY priority DESC, created_at ASC
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, query, string(domain.WithdrawalPending), limit, offset)
}

// ClaimExpired locks up to limit overdue requests, leaving out the exclude ids.
// Rows already locked by a concurrent transition or another sweeper are
// skipped, not waited on.
func (r *Repository) ClaimExpired(ctx context.Context, now time.Time, limit int, exclude []int64) ([]domain.WithdrawalRequest, error) {
	if exclude == nil {
		exclude = []int64{}
	}
	statuses := make([]string, 0, len(domain.ExpirableWithdrawalStatuses))
	for _, s := range domain.ExpirableWithdrawalStatuses {
		statuses = append(statuses, string(s))
	}
	query := `SELECT ` + requestColumns + `
		FROM withdrawal_requests
		WHERE status = ANY($1) AND expires_at < $2 AND id <> ALL($3)
		ORDER BY expires_at
		LIMIT $4
		FOR UPDATE SKIP LOCKED
	`
	return r.list(ctx, query, statuses, now, exclude, limit)
}
