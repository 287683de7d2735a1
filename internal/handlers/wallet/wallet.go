package wallet

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/eduwallet/internal/domain"
	"github.com/GlebRadaev/eduwallet/internal/dto"
	"github.com/GlebRadaev/eduwallet/internal/handlers/httperr"
	"github.com/GlebRadaev/eduwallet/internal/service/paymentservice"
	"github.com/GlebRadaev/eduwallet/pkg/auth"
	"github.com/GlebRadaev/eduwallet/pkg/utils"
)

//go:generate mockgen -source=wallet.go -destination=mock_wallet.go -package=wallet

type Service interface {
	GetOrCreateWallet(ctx context.Context, userID int64) (*domain.Wallet, error)
	History(ctx context.Context, userID int64, limit, offset int) ([]domain.LedgerEntry, error)
	PurchaseCoinsWithCash(ctx context.Context, userID int64, n int64) (*domain.Wallet, error)
	TipCoins(ctx context.Context, fromUserID, toUserID int64, n int64, note string) (*domain.Wallet, error)
	SetTransactionPIN(ctx context.Context, userID int64, pin, currentPIN string) error
	UpdateBankAccount(ctx context.Context, userID int64, details domain.BankDetails) (*domain.Wallet, error)
	SetupTwoFA(ctx context.Context, userID int64) (secret, url string, err error)
	EnableTwoFA(ctx context.Context, userID int64, code string) error
	DisableTwoFA(ctx context.Context, userID int64, code string) error
	Reconcile(ctx context.Context, walletID int64) (*domain.ReconciliationReport, error)
	AdminAdjust(ctx context.Context, walletID int64, currency domain.CurrencyType, delta decimal.Decimal, adminID int64, reason string) (*domain.Wallet, error)
	SetStatus(ctx context.Context, walletID int64, status domain.WalletStatus) (*domain.Wallet, error)
}

type Checkout interface {
	CreateTopUp(ctx context.Context, userID int64, amount decimal.Decimal) (*paymentservice.CheckoutResult, error)
	PurchaseCoinsWithGateway(ctx context.Context, userID int64, coins int64) (*paymentservice.CheckoutResult, error)
}

type WalletHandler struct {
	walletService Service
	checkout      Checkout
}

func New(walletService Service, checkout Checkout) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		checkout:      checkout,
	}
}

func checkoutResponse(c *paymentservice.CheckoutResult) dto.CheckoutResponseDTO {
	return dto.CheckoutResponseDTO{
		Reference:   c.Reference,
		OrderCode:   c.OrderCode,
		Amount:      c.Amount,
		CheckoutURL: c.CheckoutURL,
		QRCode:      c.QRCode,
	}
}

// GetWallet godoc
//
//	@Summary		Get my wallet
//	@Description	Returns the wallet of the authenticated user, creating an empty one on first access.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Wallet balances"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/wallet/my-wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.walletService.GetOrCreateWallet(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWalletResponse(wallet))
}

// GetTransactions godoc
//
//	@Summary		List wallet transactions
//	@Description	Ledger entries of the authenticated user's wallet, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int						false	"Page size (max 100)"	default(20)
//	@Param			offset	query		int						false	"Offset"				default(0)
//	@Success		200		{array}		dto.TransactionDTO		"Ledger entries"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	limit, offset := utils.Pagination(r)
	entries, err := h.walletService.History(r.Context(), auth.UserID(r.Context()), limit, offset)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionList(entries))
}

// Deposit godoc
//
//	@Summary		Top up the wallet
//	@Description	Creates a gateway checkout. The wallet is credited once the gateway confirms the payment.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Top-up amount"
//	@Success		201		{object}	dto.CheckoutResponseDTO	"Checkout link"
//	@Failure		400		{object}	utils.Response			"Invalid amount"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/wallet/deposit [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req dto.DepositRequestDTO
	if !utils.Bind(w, r, &req) {
		return
	}
	checkout, err := h.checkout.CreateTopUp(r.Context(), auth.UserID(r.Context()), req.Amount)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, checkoutResponse(checkout))
}

// PurchaseCoins godoc
//
//	@Summary		Buy coins with wallet cash
//	@Description	Converts cash into coins at the configured exchange rate.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseCoinsRequestDTO	true	"Number of coins"
//	@Success		200		{object}	dto.WalletResponseDTO		"Updated wallet"
//	@Failure		400		{object}	utils.Response				"Invalid amount"
//	@Failure		402		{object}	utils.Response				"Insufficient balance"
//	@Failure		409		{object}	utils.Response				"Wallet is not active"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/wallet/coins/purchase [post]
func (h *WalletHandler) PurchaseCoins(w http.ResponseWriter, r *http.Request) {
	var req dto.PurchaseCoinsRequestDTO
	if !utils.Bind(w, r, &req) {
		return
	}
	wallet, err := h.walletService.PurchaseCoinsWithCash(r.Context(), auth.UserID(r.Context()), req.Coins)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWalletResponse(wallet))
}

// PurchaseCoinsGateway godoc
//
//	@Summary		Buy coins through the payment gateway
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseCoinsRequestDTO	true	"Number of coins"
//	@Success		201		{object}	dto.CheckoutResponseDTO		"Checkout link"
//	@Failure		400		{object}	utils.Response				"Invalid amount"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/wallet/coins/purchase-gateway [post]
func (h *WalletHandler) PurchaseCoinsGateway(w http.ResponseWriter, r *http.Request) {
	var req dto.PurchaseCoinsRequestDTO
	if !utils.Bind(w, r, &req) {
		return
	}
	checkout, err := h.checkout.PurchaseCoinsWithGateway(r.Context(), auth.UserID(r.Context()), req.Coins)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, checkoutResponse(checkout))
}

// Tip godoc
//
//	@Summary		Tip coins to another user
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TipRequestDTO		true	"Recipient and amount"
//	@Success		200		{object}	dto.WalletResponseDTO	"Sender wallet after the tip"
//	@Failure		400		{object}	utils.Response			"Invalid amount"
//	@Failure		402		{object}	utils.Response			"Insufficient balance"
//	@Failure		409		{object}	utils.Response			"Wallet is not active"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/wallet/tip [post]
func (h *WalletHandler) Tip(w http.ResponseWriter, r *http.Request) {
	var req dto.TipRequestDTO
	if !utils.Bind(w, r, &req) {
		return
	}
	wallet, err := h.walletService.TipCoins(r.Context(), auth.UserID(r.Context()), req.ToUserID, req.Coins, req.Note)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWalletResponse(wallet))
}

// SetPIN godoc
//
//	@Summary		Set or change the transaction PIN
//	@Description	The current PIN is required when one is already set.
//	@Tags			Wallet security
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SetPINRequestDTO	true	"New PIN"
//	@Success		200		{object}	utils.Response			"PIN updated"
//	@Failure		400		{object}	utils.Response			"Invalid PIN"
//	@Failure		403		{object}	utils.Response			"Wrong current PIN"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/wallet/pin [put]
func (h *WalletHandler) SetPIN(w http.ResponseWriter, r *http.Request) {
	var req dto.SetPINRequestDTO
	if !utils.Bind(w, r, &req) {
		return
	}
	if err := h.walletService.SetTransactionPIN(r.Context(), auth.UserID(r.Context()), req.PIN, req.CurrentPIN); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "PIN updated")
}

// UpdateBankAccount godoc
//
//	@Summary		Save the payout bank account
//	@Tags			Wallet security
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BankAccountRequestDTO	true	"Bank account"
//	@Success		200		{object}	dto.WalletResponseDTO		"Updated wallet"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/wallet/bank-account [put]
func (h *WalletHandler) UpdateBankAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.BankAccountRequestDTO
	if !utils.Bind(w, r, &req) {
		return
	}
	wallet, err := h.walletService.UpdateBankAccount(r.Context(), auth.UserID(r.Context()), domain.BankDetails{
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
	})
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWalletResponse(wallet))
}

// SetupTwoFA godoc
//
//	@Summary		Start 2FA enrolment
//	@Description	Generates a TOTP secret. 2FA is enforced only after it is confirmed via /wallet/2fa/enable.
//	@Tags			Wallet security
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.TwoFASetupResponseDTO	"TOTP secret and provisioning URL"
//	@Failure		400	{object}	utils.Response				"2FA already enabled"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/wallet/2fa/setup [post]
func (h *WalletHandler) SetupTwoFA(w http.ResponseWriter, r *http.Request) {
	secret, url, err := h.walletService.SetupTwoFA(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TwoFASetupResponseDTO{Secret: secret, URL: url})
}

// EnableTwoFA godoc
//
//	@Summary		Confirm and enable 2FA
//	@Tags			Wallet security
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TwoFACodeRequestDTO	true	"Current TOTP code"
//	@Success		200		{object}	utils.Response			"2FA enabled"
//	@Failure		400		{object}	utils.Response			"Setup not started"
//	@Failure		403		{object}	utils.Response			"Wrong code"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/wallet/2fa/enable [post]
func (h *WalletHandler) EnableTwoFA(w http.ResponseWriter, r *http.Request) {
	var req dto.TwoFACodeRequestDTO
	if !utils.Bind(w, r, &req) {
		return
	}
	if err := h.walletService.EnableTwoFA(r.Context(), auth.UserID(r.Context()), req.Code); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "2FA enabled")
}

// DisableTwoFA godoc
//
//	@Summary		Disable 2FA
//	@Tags			Wallet security
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TwoFACodeRequestDTO	true	"Current TOTP code"
//	@Success		200		{object}	utils.Response			"2FA disabled"
//	@Failure		403		{object}	utils.Response			"Wrong code"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/wallet/2fa/disable [post]
func (h *WalletHandler) DisableTwoFA(w http.ResponseWriter, r *http.Request) {
	var req dto.TwoFACodeRequestDTO
	if !utils.Bind(w, r, &req) {
		return
	}
	if err := h.walletService.DisableTwoFA(r.Context(), auth.UserID(r.Context()), req.Code); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "2FA disabled")
}

// Reconcile godoc
//
//	@Summary		Reconcile a wallet against its ledger
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			walletId	path		int						true	"Wallet ID"
//	@Success		200			{object}	dto.ReconcileResponseDTO	"Reconciliation report"
//	@Failure		403			{object}	utils.Response				"Forbidden"
//	@Failure		404			{object}	utils.Response				"Wallet not found"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/admin/wallet/{walletId}/reconcile [get]
func (h *WalletHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	walletID, ok := utils.PathID(r, "walletId")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid wallet id")
		return
	}
	report, err := h.walletService.Reconcile(r.Context(), walletID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewReconcileResponse(report))
}

// Adjust godoc
//
//	@Summary		Apply a manual balance correction
//	@Description	Signed amount; a debit still cannot take the balance below zero.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			walletId	path		int						true	"Wallet ID"
//	@Param			request		body		dto.AdjustRequestDTO	true	"Adjustment"
//	@Success		200			{object}	dto.WalletResponseDTO	"Updated wallet"
//	@Failure		400			{object}	utils.Response			"Invalid amount"
//	@Failure		402			{object}	utils.Response			"Insufficient balance"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/admin/wallet/{walletId}/adjust [post]
func (h *WalletHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	walletID, ok := utils.PathID(r, "walletId")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid wallet id")
		return
	}
	var req dto.AdjustRequestDTO
	if !utils.Bind(w, r, &req) {
		return
	}
	wallet, err := h.walletService.AdminAdjust(r.Context(), walletID, domain.CurrencyType(req.Currency), req.Amount, auth.UserID(r.Context()), req.Reason)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWalletResponse(wallet))
}

// SetStatus godoc
//
//	@Summary		Change wallet status
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			walletId	path		int							true	"Wallet ID"
//	@Param			request		body		dto.WalletStatusRequestDTO	true	"New status"
//	@Success		200			{object}	dto.WalletResponseDTO		"Updated wallet"
//	@Failure		400			{object}	utils.Response				"Invalid status"
//	@Failure		409			{object}	utils.Response				"Wallet still holds funds"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/admin/wallet/{walletId}/status [put]
func (h *WalletHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	walletID, ok := utils.PathID(r, "walletId")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid wallet id")
		return
	}
	var req dto.WalletStatusRequestDTO
	if !utils.Bind(w, r, &req) {
		return
	}
	wallet, err := h.walletService.SetStatus(r.Context(), walletID, domain.WalletStatus(req.Status))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWalletResponse(wallet))
}
