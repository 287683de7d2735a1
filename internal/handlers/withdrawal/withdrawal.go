package withdrawal

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/eduwallet/internal/domain"
	"github.com/GlebRadaev/eduwallet/internal/dto"
	"github.com/GlebRadaev/eduwallet/internal/handlers/httperr"
	"github.com/GlebRadaev/eduwallet/internal/service/withdrawalservice"
	"github.com/GlebRadaev/eduwallet/pkg/auth"
	"github.com/GlebRadaev/eduwallet/pkg/utils"
)

//go:generate mockgen -source=withdrawal.go -destination=mock_withdrawal.go -package=withdrawal

const defaultSweepBatch = 100

type Service interface {
	Create(ctx context.Context, userID int64, in withdrawalservice.CreateInput) (*domain.WithdrawalRequest, error)
	Get(ctx context.Context, id int64, actor withdrawalservice.Actor) (*domain.WithdrawalRequest, error)
	List(ctx context.Context, userID int64, limit, offset int) ([]domain.WithdrawalRequest, error)
	ListPending(ctx context.Context, limit, offset int) ([]domain.WithdrawalRequest, error)
	Approve(ctx context.Context, id, adminID int64, note string) (*domain.WithdrawalRequest, error)
	Reject(ctx context.Context, id, adminID int64, reason string) (*domain.WithdrawalRequest, error)
	Cancel(ctx context.Context, id int64, actor withdrawalservice.Actor) (*domain.WithdrawalRequest, error)
	MarkProcessing(ctx context.Context, id int64) (*domain.WithdrawalRequest, error)
	Complete(ctx context.Context, id, adminID int64, bankTxID string) (*domain.WithdrawalRequest, error)
	Fail(ctx context.Context, id int64, errMsg string) (*domain.WithdrawalRequest, error)
	ExpireDue(ctx context.Context, batch int, exclude []int64) (*withdrawalservice.SweepResult, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

func actor(r *http.Request) withdrawalservice.Actor {
	role, _ := r.Context().Value(auth.RoleKey).(string)
	return withdrawalservice.Actor{
		UserID:  auth.UserID(r.Context()),
		IsAdmin: role == auth.RoleAdmin,
	}
}

func (h *WithdrawalHandler) respond(w http.ResponseWriter, wr *domain.WithdrawalRequest, err error) {
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalResponse(wr))
}

func requestID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := utils.PathID(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid withdrawal id")
	}
	return id, ok
}

// Create godoc
//
//	@Summary		Request a withdrawal
//	@Description	Freezes the amount on the wallet and queues the request for admin review.
//	@Description	Requires the transaction PIN, and a TOTP code when 2FA is enabled.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalRequestDTO	true	"Withdrawal request"
//	@Success		201		{object}	dto.WithdrawalResponseDTO	"Request created"
//	@Failure		400		{object}	utils.Response				"Invalid amount or destination"
//	@Failure		402		{object}	utils.Response				"Insufficient balance"
//	@Failure		403		{object}	utils.Response				"Wrong PIN or 2FA code"
//	@Failure		409		{object}	utils.Response				"Wallet is not active"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/wallet/withdraw/request [post]
func (h *WithdrawalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawalRequestDTO
	if !utils.Bind(w, r, &req) {
		return
	}
	wr, err := h.withdrawalService.Create(r.Context(), auth.UserID(r.Context()), withdrawalservice.CreateInput{
		Amount:      req.Amount,
		Destination: req.Destination(),
		Card:        req.Card,
		PIN:         req.PIN,
		OTPCode:     req.OTPCode,
		Note:        req.Note,
	})
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewWithdrawalResponse(wr))
}

// List godoc
//
//	@Summary		List my withdrawal requests
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int							false	"Page size (max 100)"	default(20)
//	@Param			offset	query		int							false	"Offset"				default(0)
//	@Success		200		{array}		dto.WithdrawalResponseDTO	"Withdrawal requests"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/wallet/withdraw/requests [get]
func (h *WithdrawalHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := utils.Pagination(r)
	requests, err := h.withdrawalService.List(r.Context(), auth.UserID(r.Context()), limit, offset)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalList(requests))
}

// Get godoc
//
//	@Summary		Get a withdrawal request
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int							true	"Withdrawal ID"
//	@Success		200	{object}	dto.WithdrawalResponseDTO	"Withdrawal request"
//	@Failure		404	{object}	utils.Response				"Not found"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/wallet/withdraw/{id} [get]
func (h *WithdrawalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := requestID(w, r)
	if !ok {
		return
	}
	wr, err := h.withdrawalService.Get(r.Context(), id, actor(r))
	h.respond(w, wr, err)
}

// Cancel godoc
//
//	@Summary		Cancel a withdrawal request
//	@Description	Owners may cancel PENDING or APPROVED requests; admins may also cancel FAILED ones. The frozen amount is released.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int							true	"Withdrawal ID"
//	@Success		200	{object}	dto.WithdrawalResponseDTO	"Cancelled request"
//	@Failure		404	{object}	utils.Response				"Not found"
//	@Failure		409	{object}	utils.Response				"Request can no longer be cancelled"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/wallet/withdraw/{id}/cancel [put]
//	@Router			/admin/wallet/withdrawals/{id}/cancel [put]
func (h *WithdrawalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := requestID(w, r)
	if !ok {
		return
	}
	wr, err := h.withdrawalService.Cancel(r.Context(), id, actor(r))
	h.respond(w, wr, err)
}

// ListPending godoc
//
//	@Summary		Pending withdrawal queue
//	@Description	High priority first, then oldest first.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int							false	"Page size (max 100)"	default(20)
//	@Param			offset	query		int							false	"Offset"				default(0)
//	@Success		200		{array}		dto.WithdrawalResponseDTO	"Pending requests"
//	@Failure		403		{object}	utils.Response				"Forbidden"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/admin/wallet/withdrawals/pending [get]
func (h *WithdrawalHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	limit, offset := utils.Pagination(r)
	requests, err := h.withdrawalService.ListPending(r.Context(), limit, offset)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalList(requests))
}

// Approve godoc
//
//	@Summary		Approve a withdrawal
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Withdrawal ID"
//	@Param			request	body		dto.ApproveRequestDTO		false	"Admin note"
//	@Success		200		{object}	dto.WithdrawalResponseDTO	"Approved request"
//	@Failure		404		{object}	utils.Response				"Not found"
//	@Failure		409		{object}	utils.Response				"Illegal transition"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/admin/wallet/withdrawals/{id}/approve [put]
func (h *WithdrawalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := requestID(w, r)
	if !ok {
		return
	}
	var req dto.ApproveRequestDTO
	if r.ContentLength != 0 && !utils.Bind(w, r, &req) {
		return
	}
	wr, err := h.withdrawalService.Approve(r.Context(), id, auth.UserID(r.Context()), req.Note)
	h.respond(w, wr, err)
}

// Reject godoc
//
//	@Summary		Reject a withdrawal
//	@Description	Releases the frozen amount back to the wallet.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Withdrawal ID"
//	@Param			request	body		dto.RejectRequestDTO		true	"Rejection reason"
//	@Success		200		{object}	dto.WithdrawalResponseDTO	"Rejected request"
//	@Failure		400		{object}	utils.Response				"Reason missing"
//	@Failure		409		{object}	utils.Response				"Illegal transition"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/admin/wallet/withdrawals/{id}/reject [put]
func (h *WithdrawalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := requestID(w, r)
	if !ok {
		return
	}
	var req dto.RejectRequestDTO
	if !utils.Bind(w, r, &req) {
		return
	}
	wr, err := h.withdrawalService.Reject(r.Context(), id, auth.UserID(r.Context()), req.Reason)
	h.respond(w, wr, err)
}

// MarkProcessing godoc
//
//	@Summary		Start the bank transfer
//	@Description	Moves an APPROVED request, or a FAILED one with retries left, to PROCESSING.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int							true	"Withdrawal ID"
//	@Success		200	{object}	dto.WithdrawalResponseDTO	"Processing request"
//	@Failure		409	{object}	utils.Response				"Illegal transition"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/admin/wallet/withdrawals/{id}/processing [put]
func (h *WithdrawalHandler) MarkProcessing(w http.ResponseWriter, r *http.Request) {
	id, ok := requestID(w, r)
	if !ok {
		return
	}
	wr, err := h.withdrawalService.MarkProcessing(r.Context(), id)
	h.respond(w, wr, err)
}

// Complete godoc
//
//	@Summary		Complete a withdrawal
//	@Description	Debits the frozen amount from the wallet and records the bank transaction id.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Withdrawal ID"
//	@Param			request	body		dto.CompleteRequestDTO		true	"Bank transaction"
//	@Success		200		{object}	dto.WithdrawalResponseDTO	"Completed request"
//	@Failure		400		{object}	utils.Response				"Bank transaction id missing"
//	@Failure		409		{object}	utils.Response				"Illegal transition"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/admin/wallet/withdrawals/{id}/complete [put]
func (h *WithdrawalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := requestID(w, r)
	if !ok {
		return
	}
	var req dto.CompleteRequestDTO
	if !utils.Bind(w, r, &req) {
		return
	}
	wr, err := h.withdrawalService.Complete(r.Context(), id, auth.UserID(r.Context()), req.BankTransactionID)
	h.respond(w, wr, err)
}

// Fail godoc
//
//	@Summary		Mark a transfer as failed
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Withdrawal ID"
//	@Param			request	body		dto.FailRequestDTO			true	"Failure reason"
//	@Success		200		{object}	dto.WithdrawalResponseDTO	"Failed request"
//	@Failure		409		{object}	utils.Response				"Illegal transition"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/admin/wallet/withdrawals/{id}/fail [put]
func (h *WithdrawalHandler) Fail(w http.ResponseWriter, r *http.Request) {
	id, ok := requestID(w, r)
	if !ok {
		return
	}
	var req dto.FailRequestDTO
	if !utils.Bind(w, r, &req) {
		return
	}
	wr, err := h.withdrawalService.Fail(r.Context(), id, req.Error)
	h.respond(w, wr, err)
}

// ProcessExpired godoc
//
//	@Summary		Expire overdue withdrawals now
//	@Description	Runs one sweep batch synchronously. Requests locked by a concurrent operation are left for the next sweep.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			batch	query		int						false	"Batch size"	default(100)
//	@Success		200		{object}	dto.SweepResponseDTO	"Sweep counters"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/admin/wallet/withdrawals/process-expired [post]
func (h *WithdrawalHandler) ProcessExpired(w http.ResponseWriter, r *http.Request) {
	batch := utils.QueryInt(r, "batch", defaultSweepBatch)
	if batch <= 0 {
		batch = defaultSweepBatch
	}
	res, err := h.withdrawalService.ExpireDue(r.Context(), batch, nil)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SweepResponseDTO{
		Claimed: res.Claimed,
		Expired: res.Expired,
		Skipped: res.Skipped,
	})
}
