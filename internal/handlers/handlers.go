package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/eduwallet/docs"
	paymenthandlers "github.com/GlebRadaev/eduwallet/internal/handlers/payment"
	wallethandlers "github.com/GlebRadaev/eduwallet/internal/handlers/wallet"
	withdrawalhandlers "github.com/GlebRadaev/eduwallet/internal/handlers/withdrawal"
	"github.com/GlebRadaev/eduwallet/internal/service"
	"github.com/GlebRadaev/eduwallet/pkg/auth"
	"github.com/GlebRadaev/eduwallet/pkg/utils"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

const requestTimeout = 30 * time.Second

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	PurchaseCoins(w http.ResponseWriter, r *http.Request)
	PurchaseCoinsGateway(w http.ResponseWriter, r *http.Request)
	Tip(w http.ResponseWriter, r *http.Request)
	SetPIN(w http.ResponseWriter, r *http.Request)
	UpdateBankAccount(w http.ResponseWriter, r *http.Request)
	SetupTwoFA(w http.ResponseWriter, r *http.Request)
	EnableTwoFA(w http.ResponseWriter, r *http.Request)
	DisableTwoFA(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
	Adjust(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	MarkProcessing(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Fail(w http.ResponseWriter, r *http.Request)
	ProcessExpired(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Callback(w http.ResponseWriter, r *http.Request)
	CreatePremium(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Subscription(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	WalletHandler     WalletHandler
	WithdrawalHandler WithdrawalHandler
	PaymentHandler    PaymentHandler

	jwt auth.JWTServiceInterface
}

func New(s *service.Services, jwt auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		WalletHandler:     wallethandlers.New(s.WalletService, s.CheckoutService),
		WithdrawalHandler: withdrawalhandlers.New(s.WithdrawalService),
		PaymentHandler:    paymenthandlers.New(s.PaymentService),
		jwt:               jwt,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(requestTimeout),
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
			MaxAge:         300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondWithMessage(w, http.StatusOK, "ok")
	})

	r.Post("/payments/callback/{gateway}", h.PaymentHandler.Callback)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.jwt))

		r.Route("/wallet", func(r chi.Router) {
			r.Get("/my-wallet", h.WalletHandler.GetWallet)
			r.Get("/transactions", h.WalletHandler.GetTransactions)
			r.Post("/deposit", h.WalletHandler.Deposit)
			r.Post("/coins/purchase", h.WalletHandler.PurchaseCoins)
			r.Post("/coins/purchase-gateway", h.WalletHandler.PurchaseCoinsGateway)
			r.Post("/tip", h.WalletHandler.Tip)
			r.Put("/pin", h.WalletHandler.SetPIN)
			r.Put("/bank-account", h.WalletHandler.UpdateBankAccount)
			r.Route("/2fa", func(r chi.Router) {
				r.Post("/setup", h.WalletHandler.SetupTwoFA)
				r.Post("/enable", h.WalletHandler.EnableTwoFA)
				r.Post("/disable", h.WalletHandler.DisableTwoFA)
			})
			r.Route("/withdraw", func(r chi.Router) {
				r.Post("/request", h.WithdrawalHandler.Create)
				r.Get("/requests", h.WithdrawalHandler.List)
				r.Get("/{id}", h.WithdrawalHandler.Get)
				r.Put("/{id}/cancel", h.WithdrawalHandler.Cancel)
			})
		})

		r.Route("/payments", func(r chi.Router) {
			r.Post("/premium", h.PaymentHandler.CreatePremium)
			r.Get("/subscription", h.PaymentHandler.Subscription)
			r.Get("/{reference}", h.PaymentHandler.Get)
			r.Post("/{reference}/verify", h.PaymentHandler.Verify)
		})

		r.Route("/admin/wallet", func(r chi.Router) {
			r.Use(auth.AdminOnly)
			r.Route("/withdrawals", func(r chi.Router) {
				r.Get("/pending", h.WithdrawalHandler.ListPending)
				r.Post("/process-expired", h.WithdrawalHandler.ProcessExpired)
				r.Put("/{id}/approve", h.WithdrawalHandler.Approve)
				r.Put("/{id}/reject", h.WithdrawalHandler.Reject)
				r.Put("/{id}/processing", h.WithdrawalHandler.MarkProcessing)
				r.Put("/{id}/complete", h.WithdrawalHandler.Complete)
				r.Put("/{id}/fail", h.WithdrawalHandler.Fail)
				r.Put("/{id}/cancel", h.WithdrawalHandler.Cancel)
			})
			r.Get("/{walletId}/reconcile", h.WalletHandler.Reconcile)
			r.Post("/{walletId}/adjust", h.WalletHandler.Adjust)
			r.Put("/{walletId}/status", h.WalletHandler.SetStatus)
		})
	})

	return r
}
