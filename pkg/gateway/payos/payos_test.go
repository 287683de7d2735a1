package payos

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/GlebRadaev/eduwallet/pkg/clients"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Client, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	httpClient := clients.NewMockHTTPClientI(ctrl)
	client := New(Config{
		BaseURL:     "https://api-merchant.payos.vn",
		ClientID:    "client",
		APIKey:      "api-key",
		ChecksumKey: testKey,
		ReturnURL:   "https://app/return",
		CancelURL:   "https://app/cancel",
	}, httpClient)
	return client, httpClient
}

func TestClient_CreatePaymentLink(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(h *clients.MockHTTPClientI)
		want        *Checkout
		wantErr     error
	}{
		{
			name: "created",
			prepareMock: func(h *clients.MockHTTPClientI) {
				h.EXPECT().Post(gomock.Any(), "https://api-merchant.payos.vn/v2/payment-requests", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, headers http.Header, body []byte) (int, []byte, error) {
						assert.Equal(t, "client", headers.Get("x-client-id"))
						assert.Equal(t, "api-key", headers.Get("x-api-key"))

						var req map[string]any
						require.NoError(t, json.Unmarshal(body, &req))
						assert.EqualValues(t, 77, req["orderCode"])
						assert.EqualValues(t, 50000, req["amount"])
						assert.Len(t, req["description"], maxDescriptionLen)
						assert.NotEmpty(t, req["signature"])

						return http.StatusOK, []byte(`{"code":"00","desc":"success","data":{"checkoutUrl":"https://pay/77","paymentLinkId":"pl-1","status":"PENDING"}}`), nil
					})
			},
			want: &Checkout{CheckoutURL: "https://pay/77", PaymentLinkID: "pl-1", Status: "PENDING"},
		},
		{
			name: "gateway rejects",
			prepareMock: func(h *clients.MockHTTPClientI) {
				h.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`{"code":"231","desc":"order exists","data":null}`), nil)
			},
			wantErr: ErrGateway,
		},
		{
			name: "transport error",
			prepareMock: func(h *clients.MockHTTPClientI) {
				h.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, nil, context.DeadlineExceeded)
			},
			wantErr: context.DeadlineExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, httpClient := NewMock(t)
			tt.prepareMock(httpClient)

			got, err := client.CreatePaymentLink(context.Background(), CheckoutRequest{
				OrderCode:   77,
				Amount:      decimal.NewFromInt(50000),
				Description: "Wallet top-up for user 42 and more",
			})
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_GetPaymentInfo(t *testing.T) {
	tests := []struct {
		name        string
		respStatus  int
		respBody    string
		wantOutcome Outcome
		wantErr     error
	}{
		{
			name:        "paid",
			respStatus:  http.StatusOK,
			respBody:    `{"code":"00","desc":"success","data":{"id":"pl-1","orderCode":77,"amount":50000,"amountPaid":50000,"status":"PAID"}}`,
			wantOutcome: OutcomePaid,
		},
		{
			name:        "expired",
			respStatus:  http.StatusOK,
			respBody:    `{"code":"00","desc":"success","data":{"id":"pl-1","orderCode":77,"amount":50000,"amountPaid":0,"status":"EXPIRED"}}`,
			wantOutcome: OutcomeCancelled,
		},
		{
			name:        "still pending",
			respStatus:  http.StatusOK,
			respBody:    `{"code":"00","desc":"success","data":{"id":"pl-1","orderCode":77,"amount":50000,"amountPaid":0,"status":"PENDING"}}`,
			wantOutcome: OutcomePending,
		},
		{
			name:       "server error",
			respStatus: http.StatusBadGateway,
			respBody:   `{"code":"20","desc":"internal"}`,
			wantErr:    ErrGateway,
		},
		{
			name:       "not json",
			respStatus: http.StatusOK,
			respBody:   `<html>`,
			wantErr:    ErrMalformedPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, httpClient := NewMock(t)
			httpClient.EXPECT().Get(gomock.Any(), "https://api-merchant.payos.vn/v2/payment-requests/77", gomock.Any()).
				Return(tt.respStatus, []byte(tt.respBody), nil)

			info, err := client.GetPaymentInfo(context.Background(), 77)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(77), info.OrderCode)
			assert.True(t, info.Amount.Equal(decimal.NewFromInt(50000)))
			assert.Equal(t, tt.wantOutcome, info.Outcome())
		})
	}
}
