package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newWallet() *Wallet {
	return &Wallet{Status: WalletStatusActive}
}

func TestWallet_CashFlow(t *testing.T) {
	w := newWallet()

	require.NoError(t, w.DepositCash(dec("100")))
	require.NoError(t, w.Freeze(dec("70")))
	assert.True(t, w.AvailableCash().Equal(dec("30")))

	assert.ErrorIs(t, w.DeductCash(dec("30.01")), ErrInsufficientBalance)
	require.NoError(t, w.DeductCash(dec("30")))
	assert.True(t, w.CashBalance.Equal(dec("70")))

	require.NoError(t, w.CompleteWithdrawal(dec("70")))
	assert.True(t, w.CashBalance.IsZero())
	assert.True(t, w.FrozenCashBalance.IsZero())
	assert.True(t, w.TotalWithdrawn.Equal(dec("70")))
	assert.True(t, w.TotalDeposited.Equal(dec("100")))
}

func TestWallet_RejectsNonPositive(t *testing.T) {
	w := newWallet()

	tests := []struct {
		name string
		fn   func() error
	}{
		{"deposit zero", func() error { return w.DepositCash(decimal.Zero) }},
		{"deposit negative", func() error { return w.DepositCash(dec("-1")) }},
		{"deduct zero", func() error { return w.DeductCash(decimal.Zero) }},
		{"freeze negative", func() error { return w.Freeze(dec("-5")) }},
		{"add zero coins", func() error { return w.AddCoins(0) }},
		{"deduct negative coins", func() error { return w.DeductCoins(-3) }},
		{"zero cash adjustment", func() error { return w.AdjustCash(decimal.Zero) }},
		{"zero coin adjustment", func() error { return w.AdjustCoins(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.fn(), ErrInvalidAmount)
		})
	}
}

func TestWallet_InactiveRejectsMutations(t *testing.T) {
	for _, status := range []WalletStatus{WalletStatusSuspended, WalletStatusLocked, WalletStatusClosed} {
		t.Run(string(status), func(t *testing.T) {
			w := &Wallet{Status: status, CashBalance: dec("10"), CoinBalance: 10}
			assert.ErrorIs(t, w.DepositCash(dec("1")), ErrWalletNotActive)
			assert.ErrorIs(t, w.EarnCoins(1), ErrWalletNotActive)
			assert.ErrorIs(t, w.Freeze(dec("1")), ErrWalletNotActive)
		})
	}
}

func TestWallet_Coins(t *testing.T) {
	w := newWallet()

	require.NoError(t, w.EarnCoins(10))
	require.NoError(t, w.SpendCoins(4))
	assert.Equal(t, int64(6), w.CoinBalance)
	assert.Equal(t, int64(10), w.TotalCoinsEarned)
	assert.Equal(t, int64(4), w.TotalCoinsSpent)

	assert.ErrorIs(t, w.SpendCoins(7), ErrInsufficientBalance)
	assert.Equal(t, int64(6), w.CoinBalance)
	assert.Equal(t, int64(4), w.TotalCoinsSpent)

	require.NoError(t, w.AdjustCoins(-6))
	assert.Zero(t, w.CoinBalance)
	assert.True(t, w.Snapshot(CurrencyCoin).IsZero())
}

func TestWallet_UnfreezeBeyondHold(t *testing.T) {
	w := newWallet()
	require.NoError(t, w.DepositCash(dec("50")))
	require.NoError(t, w.Freeze(dec("20")))

	assert.ErrorIs(t, w.Unfreeze(dec("21")), ErrInsufficientBalance)
	require.NoError(t, w.Unfreeze(dec("20")))
	assert.True(t, w.FrozenCashBalance.IsZero())
}

func TestWallet_CompleteWithdrawalNeedsHold(t *testing.T) {
	w := newWallet()
	require.NoError(t, w.DepositCash(dec("50")))

	assert.ErrorIs(t, w.CompleteWithdrawal(dec("10")), ErrInsufficientBalance)
	assert.True(t, w.CashBalance.Equal(dec("50")))
}

func TestWallet_AdjustCashDebit(t *testing.T) {
	w := newWallet()
	require.NoError(t, w.DepositCash(dec("10")))

	require.NoError(t, w.AdjustCash(dec("-4.5")))
	assert.True(t, w.Snapshot(CurrencyCash).Equal(dec("5.5")))
	assert.ErrorIs(t, w.AdjustCash(dec("-6")), ErrInsufficientBalance)
}

func TestWalletStatus_Valid(t *testing.T) {
	assert.True(t, WalletStatusLocked.Valid())
	assert.False(t, WalletStatus("frozen").Valid())
}
