package paymentrepo

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

const paymentColumns = `id, reference, order_code, user_id, wallet_id, purpose, gateway, amount,
	coin_amount, plan_code, plan_days, status, checkout_url, gateway_reference,
	failure_reason, created_at, updated_at, completed_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanPayment(row pgx.Row) (*domain.PaymentTransaction, error) {
	var p domain.PaymentTransaction
	err := row.Scan(
		&p.ID, &p.Reference, &p.OrderCode, &p.UserID, &p.WalletID, &p.Purpose, &p.Gateway, &p.Amount,
		&p.CoinAmount, &p.PlanCode, &p.PlanDays, &p.Status, &p.CheckoutURL, &p.GatewayReference,
		&p.FailureReason, &p.CreatedAt, &p.UpdatedAt, &p.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, p *domain.PaymentTransaction) error {
	query := `
		INSERT INTO payment_transactions (reference, order_code, user_id, wallet_id, purpose, gateway,
			amount, coin_amount, plan_code, plan_days, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		p.Reference, p.OrderCode, p.UserID, p.WalletID, string(p.Purpose), p.Gateway,
		p.Amount, p.CoinAmount, p.PlanCode, p.PlanDays, string(p.Status),
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if !pg.IsUniqueViolation(err) {
			zap.L().Error("can't save payment transaction", zap.Error(err))
		}
		return err
	}
	return nil
}

func (r *Repository) get(ctx context.Context, query string, arg any) (*domain.PaymentTransaction, error) {
	p, err := scanPayment(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("payment %v: %w", arg, domain.ErrNotFound)
		}
		zap.L().Error("failed to get payment transaction", zap.Any("key", arg), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.PaymentTransaction, error) {
	return r.get(ctx, `SELECT `+paymentColumns+` FROM payment_transactions WHERE reference = $1`, reference)
}

// GetByOrderCodeForUpdate serialises concurrent callbacks for one order.
func (r *Repository) GetByOrderCodeForUpdate(ctx context.Context, orderCode int64) (*domain.PaymentTransaction, error) {
	return r.get(ctx, `SELECT `+paymentColumns+` FROM payment_transactions WHERE order_code = $1 FOR UPDATE`, orderCode)
}

func (r *Repository) Update(ctx context.Context, p *domain.PaymentTransaction) error {
	query := `
		UPDATE payment_transactions
		SET status = $1, checkout_url = $2, gateway_reference = $3, failure_reason = $4,
			completed_at = $5, updated_at = NOW()
		WHERE id = $6
	`
	tag, err := r.db.Exec(ctx, query,
		string(p.Status), p.CheckoutURL, p.GatewayReference, p.FailureReason, p.CompletedAt, p.ID,
	)
	if err != nil {
		zap.L().Error("failed to update payment transaction", zap.Int64("id", p.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment %d: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}

// FindPending returns PENDING payments created before the cutoff, oldest first.
func (r *Repository) FindPending(ctx context.Context, createdBefore time.Time, limit uint32) ([]domain.PaymentTransaction, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payment_transactions
		WHERE status = $1 AND created_at < $2
		ORDER BY created_at
		LIMIT $3
	`
	rows, err := r.db.Query(ctx, query, string(domain.PaymentPending), createdBefore, limit)
	if err != nil {
		zap.L().Error("failed to fetch pending payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	payments := make([]domain.PaymentTransaction, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			zap.L().Error("failed to scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return payments, nil
}
