package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/eduwallet/internal/domain"
	"github.com/GlebRadaev/eduwallet/pkg/utils"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidAmount, http.StatusBadRequest},
		{fmt.Errorf("%w: bad plan", domain.ErrInvalidInput), http.StatusBadRequest},
		{domain.ErrSignatureInvalid, http.StatusBadRequest},
		{domain.ErrInsufficientBalance, http.StatusPaymentRequired},
		{fmt.Errorf("%w: wrong PIN", domain.ErrCredential), http.StatusForbidden},
		{fmt.Errorf("payment x: %w", domain.ErrNotFound), http.StatusNotFound},
		{domain.ErrWalletNotActive, http.StatusConflict},
		{fmt.Errorf("%w: COMPLETED -> COMPLETED", domain.ErrWithdrawalState), http.StatusConflict},
		{domain.ErrWalletNotEmpty, http.StatusConflict},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.code, Status(tt.err))
		})
	}
}

func TestRespond(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"client error keeps message", fmt.Errorf("%w: wrong PIN", domain.ErrCredential), http.StatusForbidden, "invalid transaction credentials: wrong PIN"},
		{"signature", fmt.Errorf("%w: payos", domain.ErrSignatureInvalid), http.StatusBadRequest, "Invalid signature"},
		{"internal hides details", errors.New("pq: password authentication failed"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Respond(w, tt.err)

			assert.Equal(t, tt.code, w.Code)
			var body utils.Response
			assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.message, body.Error)
		})
	}
}
