package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/eduwallet/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	return New(mockDB), mockDB
}

func TestRepository_Append(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	newEntry := func() *domain.LedgerEntry {
		return &domain.LedgerEntry{
			WalletID:      1,
			Type:          domain.TxDepositCash,
			Currency:      domain.CurrencyCash,
			Amount:        decimal.NewFromInt(100),
			BalanceAfter:  decimal.NewFromInt(600),
			Fee:           decimal.Zero,
			Status:        domain.LedgerStatusCompleted,
			ReferenceType: domain.RefPayment,
			ReferenceID:   "ref-1",
			Description:   "top-up",
		}
	}

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface, e *domain.LedgerEntry)
		expectErr bool
	}{
		{
			name: "appended",
			mockSetup: func(mock pgxmock.PgxPoolIface, e *domain.LedgerEntry) {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO wallet_transactions`)).
					WithArgs(int64(1), "DEPOSIT_CASH", "CASH", e.Amount, e.BalanceAfter, e.Fee,
						"COMPLETED", "PAYMENT", "ref-1", "top-up").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(10), now))
			},
		},
		{
			name: "database error",
			mockSetup: func(mock pgxmock.PgxPoolIface, e *domain.LedgerEntry) {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO wallet_transactions`)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			entry := newEntry()
			tt.mockSetup(mock, entry)

			err := repo.Append(ctx, entry)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(10), entry.ID)
				assert.Equal(t, now, entry.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListByWallet(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	cols := []string{"id", "wallet_id", "transaction_type", "currency_type", "amount", "balance_after", "fee",
		"status", "reference_type", "reference_id", "description", "created_at"}

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		result    []domain.LedgerEntry
	}{
		{
			name: "newest first",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(cols).
					AddRow(int64(2), int64(1), domain.TxPurchaseCoins, domain.CurrencyCoin, "10", "10", "0",
						"COMPLETED", domain.RefCoinExchange, "", "buy coins", now).
					AddRow(int64(1), int64(1), domain.TxDepositCash, domain.CurrencyCash, "100.00", "100.00", "0",
						"COMPLETED", domain.RefPayment, "ref-1", "top-up", now)
				mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`)).
					WithArgs(int64(1), 20, 0).
					WillReturnRows(rows)
			},
			result: []domain.LedgerEntry{
				{ID: 2, WalletID: 1, Type: domain.TxPurchaseCoins, Currency: domain.CurrencyCoin,
					Amount: decimal.RequireFromString("10"), BalanceAfter: decimal.RequireFromString("10"),
					Fee: decimal.RequireFromString("0"), Status: "COMPLETED", ReferenceType: domain.RefCoinExchange,
					Description: "buy coins", CreatedAt: now},
				{ID: 1, WalletID: 1, Type: domain.TxDepositCash, Currency: domain.CurrencyCash,
					Amount: decimal.RequireFromString("100.00"), BalanceAfter: decimal.RequireFromString("100.00"),
					Fee: decimal.RequireFromString("0"), Status: "COMPLETED", ReferenceType: domain.RefPayment,
					ReferenceID: "ref-1", Description: "top-up", CreatedAt: now},
			},
		},
		{
			name: "empty",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wallet_transactions`)).
					WithArgs(int64(1), 20, 0).
					WillReturnRows(pgxmock.NewRows(cols))
			},
			result: []domain.LedgerEntry{},
		},
		{
			name: "database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wallet_transactions`)).
					WithArgs(int64(1), 20, 0).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			result, err := repo.ListByWallet(ctx, 1, 20, 0)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_SumByCurrency(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FILTER (WHERE currency_type = 'CASH')`)).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"cash", "coins"}).AddRow("400.00", "25"))

	cash, coins, err := repo.SumByCurrency(ctx, 1)
	assert.NoError(t, err)
	assert.True(t, cash.Equal(decimal.NewFromInt(400)))
	assert.Equal(t, int64(25), coins.IntPart())

	mock.ExpectQuery(regexp.QuoteMeta(`FROM wallet_transactions`)).
		WithArgs(int64(2)).
		WillReturnError(errors.New("database error"))
	_, _, err = repo.SumByCurrency(ctx, 2)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
