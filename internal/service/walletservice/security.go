package walletservice

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/GlebRadaev/eduwallet/internal/domain"
)

// VerifyCredentials checks the transaction PIN and, when the wallet requires
// it, the TOTP code. It reports whether a second factor was verified.
func (s *Service) VerifyCredentials(w *domain.Wallet, pin, otpCode string) (bool, error) {
	if w.TransactionPINHash == "" {
		return false, fmt.Errorf("%w: transaction PIN is not set", domain.ErrCredential)
	}
	if !s.hasher.Compare(w.TransactionPINHash, pin) {
		return false, fmt.Errorf("%w: wrong PIN", domain.ErrCredential)
	}
	if !w.Require2FA {
		return false, nil
	}
	if !s.totp.Validate(otpCode, w.TwoFASecret) {
		return false, fmt.Errorf("%w: wrong 2FA code", domain.ErrCredential)
	}
	return true, nil
}

// updateSettings runs fn against the user's wallet row locked FOR UPDATE and
// saves the settings columns in the same transaction, so concurrent settings
// changes apply one after the other instead of overwriting each other.
func (s *Service) updateSettings(ctx context.Context, userID int64, fn func(w *domain.Wallet) error) (*domain.Wallet, error) {
	var wallet *domain.Wallet
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.walletRepo.CreateIfNotExists(ctx, userID); err != nil {
			zap.L().Error("failed to ensure wallet", zap.Int64("user_id", userID), zap.Error(err))
			return err
		}
		w, err := s.walletRepo.LockByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if err := fn(w); err != nil {
			return err
		}
		if err := s.walletRepo.UpdateSettings(ctx, w); err != nil {
			return err
		}
		wallet = w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return wallet, nil
}

// SetTransactionPIN sets the first PIN or replaces it when currentPIN matches.
func (s *Service) SetTransactionPIN(ctx context.Context, userID int64, pin, currentPIN string) error {
	_, err := s.updateSettings(ctx, userID, func(w *domain.Wallet) error {
		if w.TransactionPINHash != "" && !s.hasher.Compare(w.TransactionPINHash, currentPIN) {
			return fmt.Errorf("%w: wrong current PIN", domain.ErrCredential)
		}
		hash, err := s.hasher.Hash(pin)
		if err != nil {
			zap.L().Error("failed to hash PIN", zap.Error(err))
			return err
		}
		w.TransactionPINHash = hash
		return nil
	})
	return err
}

func (s *Service) UpdateBankAccount(ctx context.Context, userID int64, details domain.BankDetails) (*domain.Wallet, error) {
	if details.BankName == "" || details.AccountNumber == "" || details.AccountName == "" {
		return nil, fmt.Errorf("%w: bank name, account number and account name are required", domain.ErrInvalidInput)
	}
	return s.updateSettings(ctx, userID, func(w *domain.Wallet) error {
		w.BankName = details.BankName
		w.BankAccountNumber = details.AccountNumber
		w.BankAccountName = details.AccountName
		return nil
	})
}

// SetupTwoFA stores a fresh secret. 2FA stays off until EnableTwoFA confirms
// a code generated from it.
func (s *Service) SetupTwoFA(ctx context.Context, userID int64) (secret, url string, err error) {
	_, err = s.updateSettings(ctx, userID, func(w *domain.Wallet) error {
		if w.Require2FA {
			return fmt.Errorf("%w: 2FA is already enabled", domain.ErrInvalidInput)
		}
		var err error
		secret, url, err = s.totp.Generate("user-" + strconv.FormatInt(userID, 10))
		if err != nil {
			zap.L().Error("failed to generate TOTP secret", zap.Error(err))
			return err
		}
		w.TwoFASecret = secret
		return nil
	})
	if err != nil {
		return "", "", err
	}
	return secret, url, nil
}

func (s *Service) EnableTwoFA(ctx context.Context, userID int64, code string) error {
	_, err := s.updateSettings(ctx, userID, func(w *domain.Wallet) error {
		if w.TwoFASecret == "" {
			return fmt.Errorf("%w: run 2FA setup first", domain.ErrInvalidInput)
		}
		if !s.totp.Validate(code, w.TwoFASecret) {
			return fmt.Errorf("%w: wrong 2FA code", domain.ErrCredential)
		}
		w.Require2FA = true
		return nil
	})
	return err
}

func (s *Service) DisableTwoFA(ctx context.Context, userID int64, code string) error {
	_, err := s.updateSettings(ctx, userID, func(w *domain.Wallet) error {
		if !w.Require2FA {
			return nil
		}
		if !s.totp.Validate(code, w.TwoFASecret) {
			return fmt.Errorf("%w: wrong 2FA code", domain.ErrCredential)
		}
		w.Require2FA = false
		w.TwoFASecret = ""
		return nil
	})
	return err
}
