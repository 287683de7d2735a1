package subscriptionrepo

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

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Activate upserts the user's premium plan. An unexpired subscription is
// extended from its current expiry rather than from now.
func (r *Repository) Activate(ctx context.Context, userID int64, planCode string, days int, reference string, now time.Time) (*domain.PremiumSubscription, error) {
	query := `
		INSERT INTO premium_subscriptions (user_id, plan_code, activated_at, expires_at, payment_reference)
		VALUES ($1, $2, $3::timestamptz, $3::timestamptz + make_interval(days => $4::int), $5)
		ON CONFLICT (user_id) DO UPDATE
		SET plan_code = EXCLUDED.plan_code,
			activated_at = EXCLUDED.activated_at,
			expires_at = GREATEST(premium_subscriptions.expires_at, EXCLUDED.activated_at) + make_interval(days => $4::int),
			payment_reference = EXCLUDED.payment_reference
		RETURNING user_id, plan_code, activated_at, expires_at, payment_reference
	`
	var sub domain.PremiumSubscription
	err := r.db.QueryRow(ctx, query, userID, planCode, now, days, reference).
		Scan(&sub.UserID, &sub.PlanCode, &sub.ActivatedAt, &sub.ExpiresAt, &sub.PaymentReference)
	if err != nil {
		zap.L().Error("failed to activate premium subscription", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &sub, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.PremiumSubscription, error) {
	query := `
		SELECT user_id, plan_code, activated_at, expires_at, payment_reference
		FROM premium_subscriptions
		WHERE user_id = $1
	`
	var sub domain.PremiumSubscription
	err := r.db.QueryRow(ctx, query, userID).
		Scan(&sub.UserID, &sub.PlanCode, &sub.ActivatedAt, &sub.ExpiresAt, &sub.PaymentReference)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("subscription: %w", domain.ErrNotFound)
		}
		zap.L().Error("failed to get premium subscription", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &sub, nil
}
