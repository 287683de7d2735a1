package service

import (
	"github.com/GlebRadaev/eduwallet/internal/config"
	"github.com/GlebRadaev/eduwallet/internal/events"
	"github.com/GlebRadaev/eduwallet/internal/handlers/payment"
	"github.com/GlebRadaev/eduwallet/internal/handlers/wallet"
	"github.com/GlebRadaev/eduwallet/internal/handlers/withdrawal"
	"github.com/GlebRadaev/eduwallet/internal/jobs"
	"github.com/GlebRadaev/eduwallet/internal/pg"
	"github.com/GlebRadaev/eduwallet/internal/repo"
	"github.com/GlebRadaev/eduwallet/internal/service/paymentservice"
	"github.com/GlebRadaev/eduwallet/internal/service/walletservice"
	"github.com/GlebRadaev/eduwallet/internal/service/withdrawalservice"
	pkgauth "github.com/GlebRadaev/eduwallet/pkg/auth"
)

type Services struct {
	WalletService     wallet.Service
	CheckoutService   wallet.Checkout
	WithdrawalService withdrawal.Service
	PaymentService    payment.Service

	Expirer         jobs.Expirer
	PaymentVerifier jobs.PaymentVerifier
}

func New(
	repo *repo.Repositories,
	txManager pg.TXManager,
	publisher events.Publisher,
	gateway paymentservice.Gateway,
	cfg *config.Config,
) *Services {
	walletService := walletservice.New(
		repo.WalletRepo,
		repo.LedgerRepo,
		txManager,
		&pkgauth.HashService{},
		&pkgauth.TOTPService{},
		publisher,
		cfg.Wallet.CoinExchangeRate,
	)
	withdrawalService := withdrawalservice.New(repo.WithdrawalRepo, walletService, txManager, publisher, withdrawalservice.Config{
		MinAmount:          cfg.Withdrawal.MinAmount,
		FeePercent:         cfg.Withdrawal.FeePercent,
		HighPriorityAmount: cfg.Withdrawal.HighPriorityAmount,
		TTL:                cfg.Withdrawal.TTL,
		MaxRetries:         cfg.Withdrawal.MaxRetries,
	})
	paymentService := paymentservice.New(repo.PaymentRepo, repo.SubscriptionRepo, gateway, walletService, txManager, publisher, paymentservice.Config{
		CoinRate:            cfg.Wallet.CoinExchangeRate,
		PremiumMonthlyPrice: cfg.Wallet.PremiumMonthlyPrice,
		PremiumYearlyPrice:  cfg.Wallet.PremiumYearlyPrice,
		VerifyTimeout:       cfg.PayOS.Timeout,
		VerifyAttempts:      cfg.PayOS.VerifyAttempts,
		VerifyBackoff:       cfg.PayOS.VerifyBackoff,
	})

	return &Services{
		WalletService:     walletService,
		CheckoutService:   paymentService,
		WithdrawalService: withdrawalService,
		PaymentService:    paymentService,
		Expirer:           withdrawalService,
		PaymentVerifier:   paymentService,
	}
}
