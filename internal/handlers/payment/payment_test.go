package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/eduwallet/internal/domain"
	"github.com/GlebRadaev/eduwallet/internal/dto"
	"github.com/GlebRadaev/eduwallet/internal/service/paymentservice"
	"github.com/GlebRadaev/eduwallet/pkg/auth"
	"github.com/GlebRadaev/eduwallet/pkg/gateway/payos"
	"github.com/GlebRadaev/eduwallet/pkg/utils"
)

const userID int64 = 70

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withUser(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, userID))
}

func TestCallback(t *testing.T) {
	handler, service := NewMock(t)
	payload := []byte(`{"code":"00","data":{"orderCode":123,"amount":100000},"signature":"abc"}`)

	tests := []struct {
		name            string
		gateway         string
		signature       string
		prepareMock     func()
		expectedCode    int
		expectedMessage string
		expectedError   string
	}{
		{
			name:      "Payment credited",
			gateway:   "payos",
			signature: "abc",
			prepareMock: func() {
				service.EXPECT().HandleCallback(gomock.Any(), "payos", "abc", payload).
					Return(&paymentservice.CallbackResult{OrderCode: 123, Status: domain.PaymentCompleted}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Callback processed",
		},
		{
			name:      "Replayed callback",
			gateway:   "payos",
			signature: "abc",
			prepareMock: func() {
				service.EXPECT().HandleCallback(gomock.Any(), "payos", "abc", payload).
					Return(&paymentservice.CallbackResult{OrderCode: 123, Status: domain.PaymentCompleted, Duplicate: true}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Callback already processed",
		},
		{
			name:      "Bad signature",
			gateway:   "payos",
			signature: "forged",
			prepareMock: func() {
				service.EXPECT().HandleCallback(gomock.Any(), "payos", "forged", payload).
					Return(nil, fmt.Errorf("%w: %w", domain.ErrSignatureInvalid, payos.ErrInvalidSignature))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid signature",
		},
		{
			name:    "Unknown gateway",
			gateway: "stripe",
			prepareMock: func() {
				service.EXPECT().HandleCallback(gomock.Any(), "stripe", "", payload).
					Return(nil, fmt.Errorf("%w: unknown gateway", domain.ErrInvalidInput))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "Unknown order",
			gateway:   "payos",
			signature: "abc",
			prepareMock: func() {
				service.EXPECT().HandleCallback(gomock.Any(), "payos", "abc", payload).
					Return(nil, fmt.Errorf("payment order 123: %w", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:      "Database down asks the gateway to retry",
			gateway:   "payos",
			signature: "abc",
			prepareMock: func() {
				service.EXPECT().HandleCallback(gomock.Any(), "payos", "abc", payload).
					Return(nil, errors.New("connection refused"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/payments/callback/"+tt.gateway, bytes.NewReader(payload))
			if tt.signature != "" {
				r.Header.Set(payos.SignatureHeader, tt.signature)
			}
			w := httptest.NewRecorder()
			handler.Callback(w, withParam(r, "gateway", tt.gateway))

			assert.Equal(t, tt.expectedCode, w.Code)
			var resp utils.Response
			assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func TestCreatePremium(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Monthly plan",
			body: `{"plan":"MONTHLY"}`,
			prepareMock: func() {
				service.EXPECT().CreatePremiumCheckout(gomock.Any(), userID, "MONTHLY").
					Return(&paymentservice.CheckoutResult{Reference: "ref-p", Amount: decimal.NewFromInt(99000), CheckoutURL: "https://pay.example/p"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Unknown plan",
			body:         `{"plan":"WEEKLY"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withUser(httptest.NewRequest(http.MethodPost, "/payments/premium", bytes.NewBufferString(tt.body)))
			w := httptest.NewRecorder()
			handler.CreatePremium(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.CheckoutResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "99000", body.Amount.String())
			}
		})
	}
}

func TestVerify(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expected     dto.VerifyResponseDTO
	}{
		{
			name: "Completed on the gateway",
			prepareMock: func() {
				service.EXPECT().VerifyWithGateway(gomock.Any(), "ref-1", userID).
					Return(&paymentservice.VerifyResult{Reference: "ref-1", Status: domain.PaymentCompleted, Verified: true}, nil)
			},
			expectedCode: http.StatusOK,
			expected:     dto.VerifyResponseDTO{Reference: "ref-1", Status: "COMPLETED", Verified: true},
		},
		{
			name: "Gateway unreachable",
			prepareMock: func() {
				service.EXPECT().VerifyWithGateway(gomock.Any(), "ref-1", userID).
					Return(&paymentservice.VerifyResult{Reference: "ref-1", Status: domain.PaymentPending}, nil)
			},
			expectedCode: http.StatusOK,
			expected:     dto.VerifyResponseDTO{Reference: "ref-1", Status: "PENDING"},
		},
		{
			name: "Not my payment",
			prepareMock: func() {
				service.EXPECT().VerifyWithGateway(gomock.Any(), "ref-1", userID).
					Return(nil, fmt.Errorf("payment ref-1: %w", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withUser(httptest.NewRequest(http.MethodPost, "/payments/ref-1/verify", nil))
			w := httptest.NewRecorder()
			handler.Verify(w, withParam(r, "reference", "ref-1"))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.VerifyResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expected, body)
			}
		})
	}
}

func TestGet(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Get(gomock.Any(), "ref-1", userID).Return(&domain.PaymentTransaction{
		Reference: "ref-1",
		OrderCode: 123,
		UserID:    userID,
		Purpose:   domain.PurposePremium,
		Amount:    decimal.NewFromInt(99000),
		Status:    domain.PaymentPending,
	}, nil)

	r := withUser(httptest.NewRequest(http.MethodGet, "/payments/ref-1", nil))
	w := httptest.NewRecorder()
	handler.Get(w, withParam(r, "reference", "ref-1"))

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.PaymentResponseDTO
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "PREMIUM_SUBSCRIPTION", body.Purpose)
	assert.Equal(t, int64(123), body.OrderCode)
}

func TestSubscription(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	handler.now = func() time.Time { return now }

	t.Run("Active subscription", func(t *testing.T) {
		service.EXPECT().Subscription(gomock.Any(), userID).Return(&domain.PremiumSubscription{
			UserID:      userID,
			PlanCode:    "MONTHLY",
			ActivatedAt: now.AddDate(0, 0, -1),
			ExpiresAt:   now.AddDate(0, 0, 29),
		}, nil)
		w := httptest.NewRecorder()
		handler.Subscription(w, withUser(httptest.NewRequest(http.MethodGet, "/payments/subscription", nil)))
		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.SubscriptionResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.True(t, body.Active)
	})

	t.Run("Lapsed subscription", func(t *testing.T) {
		service.EXPECT().Subscription(gomock.Any(), userID).Return(&domain.PremiumSubscription{
			PlanCode:  "MONTHLY",
			ExpiresAt: now.AddDate(0, 0, -1),
		}, nil)
		w := httptest.NewRecorder()
		handler.Subscription(w, withUser(httptest.NewRequest(http.MethodGet, "/payments/subscription", nil)))
		var body dto.SubscriptionResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.False(t, body.Active)
	})

	t.Run("No subscription", func(t *testing.T) {
		service.EXPECT().Subscription(gomock.Any(), userID).Return(nil, fmt.Errorf("subscription: %w", domain.ErrNotFound))
		w := httptest.NewRecorder()
		handler.Subscription(w, withUser(httptest.NewRequest(http.MethodGet, "/payments/subscription", nil)))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
