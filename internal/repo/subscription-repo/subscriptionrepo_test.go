package subscriptionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/eduwallet/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testReference = "6f1c1d7e-8a0b-4c39-9d0e-2b7f5f0a1c11"

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	return New(mockDB), mockDB
}

func TestRepository_Activate(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	cols := []string{"user_id", "plan_code", "activated_at", "expires_at", "payment_reference"}

	t.Run("upserted", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (user_id) DO UPDATE`)).
			WithArgs(int64(42), "MONTHLY", now, 30, testReference).
			WillReturnRows(pgxmock.NewRows(cols).AddRow(int64(42), "MONTHLY", now, now.AddDate(0, 0, 30), testReference))

		sub, err := repo.Activate(ctx, 42, "MONTHLY", 30, testReference, now)
		require.NoError(t, err)
		assert.Equal(t, &domain.PremiumSubscription{
			UserID:           42,
			PlanCode:         "MONTHLY",
			ActivatedAt:      now,
			ExpiresAt:        now.AddDate(0, 0, 30),
			PaymentReference: testReference,
		}, sub)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO premium_subscriptions`)).
			WillReturnError(errors.New("database error"))

		sub, err := repo.Activate(ctx, 42, "MONTHLY", 30, testReference, now)
		assert.Error(t, err)
		assert.Nil(t, sub)
	})
}

func TestRepository_GetByUserID(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM premium_subscriptions WHERE user_id = $1`)).
		WithArgs(int64(7)).
		WillReturnError(pgx.ErrNoRows)

	sub, err := repo.GetByUserID(ctx, 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, sub)
	assert.NoError(t, mock.ExpectationsWereMet())
}
