package repo

import (
	"github.com/GlebRadaev/eduwallet/internal/pg"
	ledgerrepo "github.com/GlebRadaev/eduwallet/internal/repo/ledger-repo"
	paymentrepo "github.com/GlebRadaev/eduwallet/internal/repo/payment-repo"
	subscriptionrepo "github.com/GlebRadaev/eduwallet/internal/repo/subscription-repo"
	walletrepo "github.com/GlebRadaev/eduwallet/internal/repo/wallet-repo"
	withdrawalrepo "github.com/GlebRadaev/eduwallet/internal/repo/withdrawal-repo"
	"github.com/GlebRadaev/eduwallet/internal/service/paymentservice"
	"github.com/GlebRadaev/eduwallet/internal/service/walletservice"
	"github.com/GlebRadaev/eduwallet/internal/service/withdrawalservice"
)

type Repositories struct {
	WalletRepo       walletservice.WalletRepo
	LedgerRepo       walletservice.LedgerRepo
	WithdrawalRepo   withdrawalservice.WithdrawalRepo
	PaymentRepo      paymentservice.PaymentRepo
	SubscriptionRepo paymentservice.SubscriptionRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		WalletRepo:       walletrepo.New(conn),
		LedgerRepo:       ledgerrepo.New(conn),
		WithdrawalRepo:   withdrawalrepo.New(conn),
		PaymentRepo:      paymentrepo.New(conn),
		SubscriptionRepo: subscriptionrepo.New(conn),
	}
}
