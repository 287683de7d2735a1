package payment

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/eduwallet/internal/domain"
	"github.com/GlebRadaev/eduwallet/internal/dto"
	"github.com/GlebRadaev/eduwallet/internal/handlers/httperr"
	"github.com/GlebRadaev/eduwallet/internal/service/paymentservice"
	"github.com/GlebRadaev/eduwallet/pkg/auth"
	"github.com/GlebRadaev/eduwallet/pkg/gateway/payos"
	"github.com/GlebRadaev/eduwallet/pkg/utils"
)

//go:generate mockgen -source=payment.go -destination=mock_payment.go -package=payment

// maxCallbackBody bounds webhook payloads; PayOS sends well under 4 KiB.
const maxCallbackBody = 64 << 10

type Service interface {
	HandleCallback(ctx context.Context, gateway, signature string, body []byte) (*paymentservice.CallbackResult, error)
	VerifyWithGateway(ctx context.Context, reference string, userID int64) (*paymentservice.VerifyResult, error)
	CreatePremiumCheckout(ctx context.Context, userID int64, planCode string) (*paymentservice.CheckoutResult, error)
	Get(ctx context.Context, reference string, userID int64) (*domain.PaymentTransaction, error)
	Subscription(ctx context.Context, userID int64) (*domain.PremiumSubscription, error)
}

type PaymentHandler struct {
	paymentService Service
	now            func() time.Time
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		now:            time.Now,
	}
}

// Callback godoc
//
//	@Summary		Payment gateway webhook
//	@Description	Verifies the signature and reconciles the payment. Replayed callbacks are acknowledged without crediting twice.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			gateway	path		string			true	"Gateway name"	Enums(payos)
//	@Success		200		{object}	utils.Response	"Callback processed"
//	@Failure		400		{object}	utils.Response	"Invalid signature or payload"
//	@Failure		404		{object}	utils.Response	"Unknown order"
//	@Failure		500		{object}	utils.Response	"Internal server error, retry later"
//	@Router			/payments/callback/{gateway} [post]
func (h *PaymentHandler) Callback(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxCallbackBody))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	res, err := h.paymentService.HandleCallback(r.Context(), chi.URLParam(r, "gateway"), r.Header.Get(payos.SignatureHeader), body)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if res.Duplicate {
		utils.RespondWithMessage(w, http.StatusOK, "Callback already processed")
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Callback processed")
}

// CreatePremium godoc
//
//	@Summary		Buy a premium subscription
//	@Description	Creates a gateway checkout for the chosen plan. The subscription is activated when the payment completes.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PremiumRequestDTO	true	"Plan"
//	@Success		201		{object}	dto.CheckoutResponseDTO	"Checkout link"
//	@Failure		400		{object}	utils.Response			"Unknown plan"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/payments/premium [post]
func (h *PaymentHandler) CreatePremium(w http.ResponseWriter, r *http.Request) {
	var req dto.PremiumRequestDTO
	if !utils.Bind(w, r, &req) {
		return
	}
	c, err := h.paymentService.CreatePremiumCheckout(r.Context(), auth.UserID(r.Context()), req.Plan)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CheckoutResponseDTO{
		Reference:   c.Reference,
		OrderCode:   c.OrderCode,
		Amount:      c.Amount,
		CheckoutURL: c.CheckoutURL,
		QRCode:      c.QRCode,
	})
}

// Verify godoc
//
//	@Summary		Reconcile a payment with the gateway
//	@Description	Asks the gateway for the current status. verified=false means the gateway was unreachable or the payment is still pending.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			reference	path		string					true	"Payment reference"
//	@Success		200			{object}	dto.VerifyResponseDTO	"Verification result"
//	@Failure		404			{object}	utils.Response			"Payment not found"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/payments/{reference}/verify [post]
func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	res, err := h.paymentService.VerifyWithGateway(r.Context(), chi.URLParam(r, "reference"), auth.UserID(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyResponseDTO{
		Reference: res.Reference,
		Status:    string(res.Status),
		Verified:  res.Verified,
		Duplicate: res.Duplicate,
	})
}

// Get godoc
//
//	@Summary		Get a payment
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			reference	path		string					true	"Payment reference"
//	@Success		200			{object}	dto.PaymentResponseDTO	"Payment"
//	@Failure		404			{object}	utils.Response			"Payment not found"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/payments/{reference} [get]
func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.paymentService.Get(r.Context(), chi.URLParam(r, "reference"), auth.UserID(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPaymentResponse(p))
}

// Subscription godoc
//
//	@Summary		My premium subscription
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SubscriptionResponseDTO	"Subscription"
//	@Failure		404	{object}	utils.Response				"No subscription"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/payments/subscription [get]
func (h *PaymentHandler) Subscription(w http.ResponseWriter, r *http.Request) {
	sub, err := h.paymentService.Subscription(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSubscriptionResponse(sub, h.now()))
}
