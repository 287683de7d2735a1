package httperr

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/eduwallet/internal/domain"
	"github.com/GlebRadaev/eduwallet/pkg/utils"
)

// Status maps a service error to its HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrSignatureInvalid):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrCredential):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrWalletNotActive),
		errors.Is(err, domain.ErrWithdrawalState),
		errors.Is(err, domain.ErrWalletNotEmpty):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func Respond(w http.ResponseWriter, err error) {
	code := Status(err)
	switch {
	case code == http.StatusInternalServerError:
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, code, "Internal server error")
	case errors.Is(err, domain.ErrSignatureInvalid):
		utils.RespondWithError(w, code, "Invalid signature")
	default:
		utils.RespondWithError(w, code, err.Error())
	}
}
