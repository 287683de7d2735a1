package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Balance mutation helpers. Services change balances only through these so that
// 0 <= FrozenCashBalance <= CashBalance and CoinBalance >= 0 always hold.

func (w *Wallet) IsActive() bool {
	return w.Status == WalletStatusActive
}

func (w *Wallet) AvailableCash() decimal.Decimal {
	return w.CashBalance.Sub(w.FrozenCashBalance)
}

func (w *Wallet) DepositCash(amount decimal.Decimal) error {
	if err := w.checkCash(amount); err != nil {
		return err
	}
	w.CashBalance = w.CashBalance.Add(amount)
	w.TotalDeposited = w.TotalDeposited.Add(amount)
	return nil
}

func (w *Wallet) DeductCash(amount decimal.Decimal) error {
	if err := w.checkCash(amount); err != nil {
		return err
	}
	if w.AvailableCash().LessThan(amount) {
		return ErrInsufficientBalance
	}
	w.CashBalance = w.CashBalance.Sub(amount)
	return nil
}

func (w *Wallet) AddCoins(coins int64) error {
	if err := w.checkCoins(coins); err != nil {
		return err
	}
	w.CoinBalance += coins
	return nil
}

func (w *Wallet) DeductCoins(coins int64) error {
	if err := w.checkCoins(coins); err != nil {
		return err
	}
	if w.CoinBalance < coins {
		return ErrInsufficientBalance
	}
	w.CoinBalance -= coins
	return nil
}

func (w *Wallet) EarnCoins(coins int64) error {
	if err := w.AddCoins(coins); err != nil {
		return err
	}
	w.TotalCoinsEarned += coins
	return nil
}

func (w *Wallet) SpendCoins(coins int64) error {
	if err := w.DeductCoins(coins); err != nil {
		return err
	}
	w.TotalCoinsSpent += coins
	return nil
}

// Freeze places a hold on available cash. Holds are not ledger movements.
func (w *Wallet) Freeze(amount decimal.Decimal) error {
	if err := w.checkCash(amount); err != nil {
		return err
	}
	if w.AvailableCash().LessThan(amount) {
		return ErrInsufficientBalance
	}
	w.FrozenCashBalance = w.FrozenCashBalance.Add(amount)
	return nil
}

func (w *Wallet) Unfreeze(amount decimal.Decimal) error {
	if err := w.checkCash(amount); err != nil {
		return err
	}
	if w.FrozenCashBalance.LessThan(amount) {
		return fmt.Errorf("%w: frozen %s, release %s", ErrInsufficientBalance, w.FrozenCashBalance, amount)
	}
	w.FrozenCashBalance = w.FrozenCashBalance.Sub(amount)
	return nil
}

// CompleteWithdrawal turns a hold of amount into a permanent debit.
func (w *Wallet) CompleteWithdrawal(amount decimal.Decimal) error {
	if err := w.checkCash(amount); err != nil {
		return err
	}
	if w.FrozenCashBalance.LessThan(amount) || w.CashBalance.LessThan(amount) {
		return ErrInsufficientBalance
	}
	w.CashBalance = w.CashBalance.Sub(amount)
	w.FrozenCashBalance = w.FrozenCashBalance.Sub(amount)
	w.TotalWithdrawn = w.TotalWithdrawn.Add(amount)
	return nil
}

// AdjustCash applies a signed operator correction.
func (w *Wallet) AdjustCash(delta decimal.Decimal) error {
	if delta.IsZero() {
		return ErrInvalidAmount
	}
	if delta.IsPositive() {
		return w.DepositCash(delta)
	}
	return w.DeductCash(delta.Neg())
}

func (w *Wallet) AdjustCoins(delta int64) error {
	switch {
	case delta > 0:
		return w.AddCoins(delta)
	case delta < 0:
		return w.DeductCoins(-delta)
	}
	return ErrInvalidAmount
}

// Snapshot returns the post-mutation balance recorded on ledger entries.
func (w *Wallet) Snapshot(currency CurrencyType) decimal.Decimal {
	if currency == CurrencyCoin {
		return decimal.NewFromInt(w.CoinBalance)
	}
	return w.CashBalance
}

func (w *Wallet) checkCash(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !w.IsActive() {
		return ErrWalletNotActive
	}
	return nil
}

func (w *Wallet) checkCoins(coins int64) error {
	if coins <= 0 {
		return ErrInvalidAmount
	}
	if !w.IsActive() {
		return ErrWalletNotActive
	}
	return nil
}
