package domain

import "errors"

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrWalletNotActive     = errors.New("wallet is not active")
	ErrWithdrawalState     = errors.New("illegal withdrawal state transition")
	ErrCredential          = errors.New("invalid transaction credentials")
	ErrSignatureInvalid    = errors.New("invalid signature")
	ErrNotFound            = errors.New("not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrWalletNotEmpty      = errors.New("wallet still holds funds")
)
