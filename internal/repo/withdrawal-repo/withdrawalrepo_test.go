package withdrawalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/eduwallet/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var requestCols = []string{
	"id", "request_code", "user_id", "wallet_id", "amount", "fee", "net_amount",
	"bank_name", "bank_account_number", "bank_account_name", "pin_verified", "two_fa_verified",
	"status", "priority", "retry_count", "error_message", "user_note", "admin_note",
	"approved_by", "approved_at", "rejection_reason", "bank_transaction_id",
	"processed_at", "completed_at", "cancelled_by", "expires_at", "created_at", "updated_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	return New(mockDB), mockDB
}

func addRequestRow(rows *pgxmock.Rows, id int64, status domain.WithdrawalStatus, priority int, now time.Time) *pgxmock.Rows {
	return rows.AddRow(
		id, "WD-1700000000-0001", int64(42), int64(1), "200000.00", "0.00", "200000.00",
		"VCB", "0123456789", "NGUYEN VAN A", true, false,
		status, priority, 0, "", "rent", "",
		nil, nil, "", "",
		nil, nil, nil, now.Add(72*time.Hour), now, now,
	)
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	newRequest := func() *domain.WithdrawalRequest {
		return &domain.WithdrawalRequest{
			RequestCode:       "WD-1700000000-0001",
			UserID:            42,
			WalletID:          1,
			Amount:            decimal.NewFromInt(200000),
			Fee:               decimal.Zero,
			NetAmount:         decimal.NewFromInt(200000),
			BankName:          "VCB",
			BankAccountNumber: "0123456789",
			BankAccountName:   "NGUYEN VAN A",
			PINVerified:       true,
			Status:            domain.WithdrawalPending,
			Priority:          domain.PriorityNormal,
			UserNote:          "rent",
			ExpiresAt:         now.Add(72 * time.Hour),
		}
	}

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface, wr *domain.WithdrawalRequest)
		check     func(t *testing.T, wr *domain.WithdrawalRequest, err error)
	}{
		{
			name: "created",
			mockSetup: func(mock pgxmock.PgxPoolIface, wr *domain.WithdrawalRequest) {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO withdrawal_requests`)).
					WithArgs("WD-1700000000-0001", int64(42), int64(1), wr.Amount, wr.Fee, wr.NetAmount,
						"VCB", "0123456789", "NGUYEN VAN A", true, false,
						"PENDING", 0, "rent", wr.ExpiresAt).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(5), now, now))
			},
			check: func(t *testing.T, wr *domain.WithdrawalRequest, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(5), wr.ID)
				assert.Equal(t, now, wr.CreatedAt)
			},
		},
		{
			name: "duplicate request code",
			mockSetup: func(mock pgxmock.PgxPoolIface, wr *domain.WithdrawalRequest) {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO withdrawal_requests`)).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			check: func(t *testing.T, wr *domain.WithdrawalRequest, err error) {
				var pgErr *pgconn.PgError
				require.True(t, errors.As(err, &pgErr))
				assert.Equal(t, "23505", pgErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			wr := newRequest()
			tt.mockSetup(mock, wr)

			err := repo.Create(ctx, wr)
			tt.check(t, wr, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetByIDForUpdate(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM withdrawal_requests WHERE id = $1 FOR UPDATE`)).
			WithArgs(int64(5)).
			WillReturnRows(addRequestRow(pgxmock.NewRows(requestCols), 5, domain.WithdrawalApproved, 1, now))

		wr, err := repo.GetByIDForUpdate(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), wr.ID)
		assert.Equal(t, domain.WithdrawalApproved, wr.Status)
		assert.Equal(t, domain.PriorityHigh, wr.Priority)
		assert.True(t, wr.Amount.Equal(decimal.NewFromInt(200000)))
		assert.Nil(t, wr.ApprovedBy)
		assert.Nil(t, wr.CompletedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM withdrawal_requests WHERE id = $1`)).
			WithArgs(int64(6)).
			WillReturnError(pgx.ErrNoRows)

		wr, err := repo.GetByID(ctx, 6)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, wr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	admin := int64(900)
	wr := &domain.WithdrawalRequest{
		ID:         5,
		Status:     domain.WithdrawalApproved,
		AdminNote:  "ok",
		ApprovedBy: &admin,
		ApprovedAt: &now,
	}

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "updated",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE withdrawal_requests SET status = $1`)).
					WithArgs("APPROVED", 0, "", "ok", &admin, &now, "", "",
						(*time.Time)(nil), (*time.Time)(nil), (*int64)(nil), int64(5)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "missing row",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE withdrawal_requests`)).
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			err := repo.Update(ctx, wr)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Lists(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("ListPending orders by priority", func(t *testing.T) {
		repo, mock := NewMock(t)
		rows := pgxmock.NewRows(requestCols)
		addRequestRow(rows, 7, domain.WithdrawalPending, 1, now)
		addRequestRow(rows, 3, domain.WithdrawalPending, 0, now)
		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY priority DESC, created_at ASC`)).
			WithArgs("PENDING", 50, 0).
			WillReturnRows(rows)

		result, err := repo.ListPending(ctx, 50, 0)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, int64(7), result[0].ID)
		assert.Equal(t, int64(3), result[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListByUser", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1`)).
			WithArgs(int64(42), 20, 0).
			WillReturnRows(addRequestRow(pgxmock.NewRows(requestCols), 1, domain.WithdrawalCompleted, 0, now))

		result, err := repo.ListByUser(ctx, 42, 20, 0)
		require.NoError(t, err)
		assert.Len(t, result, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ClaimExpired skips locked rows", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE SKIP LOCKED`)).
			WithArgs([]string{"PENDING", "APPROVED", "FAILED"}, now, []int64{}, 100).
			WillReturnRows(addRequestRow(pgxmock.NewRows(requestCols), 9, domain.WithdrawalFailed, 0, now))

		result, err := repo.ClaimExpired(ctx, now, 100, nil)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, domain.WithdrawalFailed, result[0].Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ClaimExpired leaves out excluded ids", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(`expires_at < $2 AND id <> ALL($3)`)).
			WithArgs([]string{"PENDING", "APPROVED", "FAILED"}, now, []int64{3, 4}, 2).
			WillReturnRows(addRequestRow(pgxmock.NewRows(requestCols), 9, domain.WithdrawalPending, 0, now))

		result, err := repo.ClaimExpired(ctx, now, 2, []int64{3, 4})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, int64(9), result[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM withdrawal_requests`)).
			WillReturnError(errors.New("database error"))

		_, err := repo.ListPending(ctx, 50, 0)
		assert.Error(t, err)
	})
}
