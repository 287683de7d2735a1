package withdrawalservice

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/eduwallet/internal/domain"
	"github.com/GlebRadaev/eduwallet/internal/events"
	"github.com/GlebRadaev/eduwallet/internal/pg"
)

type mocks struct {
	repo      *MockWithdrawalRepo
	wallets   *MockWallets
	tx        *pg.MockTXManager
	publisher *events.MockPublisher
}

var fixedNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:      NewMockWithdrawalRepo(ctrl),
		wallets:   NewMockWallets(ctrl),
		tx:        pg.NewMockTXManager(ctrl),
		publisher: events.NewMockPublisher(ctrl),
	}
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()

	service := New(m.repo, m.wallets, m.tx, m.publisher, Config{
		MinAmount:          decimal.NewFromInt(50000),
		FeePercent:         decimal.NewFromInt(1),
		HighPriorityAmount: decimal.NewFromInt(10000000),
		TTL:                72 * time.Hour,
		MaxRetries:         2,
	})
	service.now = func() time.Time { return fixedNow }
	return service, m
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func savedWallet() *domain.Wallet {
	return &domain.Wallet{
		ID:                 7,
		UserID:             70,
		CashBalance:        d("1000000"),
		Status:             domain.WalletStatusActive,
		BankName:           "VCB",
		BankAccountNumber:  "0123456789",
		BankAccountName:    "NGUYEN VAN A",
		TransactionPINHash: "hash",
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	codePattern := regexp.MustCompile(`^WD-\d+-\d{4}$`)

	tests := []struct {
		name        string
		input       CreateInput
		prepareMock func(m *mocks)
		wantErr     error
		check       func(t *testing.T, req *domain.WithdrawalRequest)
	}{
		{
			name:  "freezes funds and persists pending request",
			input: CreateInput{Amount: d("200000"), PIN: "1234"},
			prepareMock: func(m *mocks) {
				m.wallets.EXPECT().GetOrCreateWallet(gomock.Any(), int64(70)).Return(savedWallet(), nil)
				m.wallets.EXPECT().VerifyCredentials(gomock.Any(), "1234", "").Return(false, nil)
				m.wallets.EXPECT().Freeze(gomock.Any(), int64(7), d("200000")).Return(savedWallet(), nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, wr *domain.WithdrawalRequest) error {
					wr.ID = 11
					return nil
				})
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e events.Event) {
					assert.Equal(t, "withdrawal.PENDING", e.Type)
				})
			},
			check: func(t *testing.T, req *domain.WithdrawalRequest) {
				assert.Equal(t, int64(11), req.ID)
				assert.Equal(t, domain.WithdrawalPending, req.Status)
				assert.True(t, req.Fee.Equal(d("2000")))
				assert.True(t, req.NetAmount.Equal(d("198000")))
				assert.Equal(t, "0123456789", req.BankAccountNumber)
				assert.True(t, req.PINVerified)
				assert.False(t, req.TwoFAVerified)
				assert.Equal(t, domain.PriorityNormal, req.Priority)
				assert.Equal(t, fixedNow.Add(72*time.Hour), req.ExpiresAt)
				assert.Regexp(t, codePattern, req.RequestCode)
			},
		},
		{
			name:  "large amount gets high priority",
			input: CreateInput{Amount: d("10000000"), PIN: "1234", OTPCode: "123456"},
			prepareMock: func(m *mocks) {
				m.wallets.EXPECT().GetOrCreateWallet(gomock.Any(), int64(70)).Return(savedWallet(), nil)
				m.wallets.EXPECT().VerifyCredentials(gomock.Any(), "1234", "123456").Return(true, nil)
				m.wallets.EXPECT().Freeze(gomock.Any(), int64(7), gomock.Any()).Return(savedWallet(), nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())
			},
			check: func(t *testing.T, req *domain.WithdrawalRequest) {
				assert.Equal(t, domain.PriorityHigh, req.Priority)
				assert.True(t, req.TwoFAVerified)
			},
		},
		{
			name:  "insufficient available balance persists nothing",
			input: CreateInput{Amount: d("2000000"), PIN: "1234"},
			prepareMock: func(m *mocks) {
				m.wallets.EXPECT().GetOrCreateWallet(gomock.Any(), int64(70)).Return(savedWallet(), nil)
				m.wallets.EXPECT().VerifyCredentials(gomock.Any(), "1234", "").Return(false, nil)
				m.wallets.EXPECT().Freeze(gomock.Any(), int64(7), d("2000000")).Return(nil, domain.ErrInsufficientBalance)
			},
			wantErr: domain.ErrInsufficientBalance,
		},
		{
			name:  "bad credentials move no funds",
			input: CreateInput{Amount: d("200000"), PIN: "0000"},
			prepareMock: func(m *mocks) {
				m.wallets.EXPECT().GetOrCreateWallet(gomock.Any(), int64(70)).Return(savedWallet(), nil)
				m.wallets.EXPECT().VerifyCredentials(gomock.Any(), "0000", "").Return(false, domain.ErrCredential)
			},
			wantErr: domain.ErrCredential,
		},
		{
			name:        "below minimum",
			input:       CreateInput{Amount: d("49999"), PIN: "1234"},
			prepareMock: func(m *mocks) {},
			wantErr:     domain.ErrInvalidAmount,
		},
		{
			name:        "non positive",
			input:       CreateInput{Amount: d("-1"), PIN: "1234"},
			prepareMock: func(m *mocks) {},
			wantErr:     domain.ErrInvalidAmount,
		},
		{
			name: "card destination fails luhn",
			input: CreateInput{
				Amount:      d("200000"),
				PIN:         "1234",
				Card:        true,
				Destination: &domain.BankDetails{BankName: "VISA", AccountNumber: "4111111111111112", AccountName: "A"},
			},
			prepareMock: func(m *mocks) {
				m.wallets.EXPECT().GetOrCreateWallet(gomock.Any(), int64(70)).Return(savedWallet(), nil)
				m.wallets.EXPECT().VerifyCredentials(gomock.Any(), "1234", "").Return(false, nil)
			},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:  "no destination on file",
			input: CreateInput{Amount: d("200000"), PIN: "1234"},
			prepareMock: func(m *mocks) {
				w := savedWallet()
				w.BankAccountNumber = ""
				m.wallets.EXPECT().GetOrCreateWallet(gomock.Any(), int64(70)).Return(w, nil)
				m.wallets.EXPECT().VerifyCredentials(gomock.Any(), "1234", "").Return(false, nil)
			},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			req, err := service.Create(ctx, 70, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, req)
				return
			}
			require.NoError(t, err)
			tt.check(t, req)
		})
	}
}

func TestService_Create_RetriesCodeCollision(t *testing.T) {
	service, m := NewMock(t)
	collision := &pgconn.PgError{Code: pg.UniqueViolation}

	m.wallets.EXPECT().GetOrCreateWallet(gomock.Any(), int64(70)).Return(savedWallet(), nil)
	m.wallets.EXPECT().VerifyCredentials(gomock.Any(), "1234", "").Return(false, nil)
	m.wallets.EXPECT().Freeze(gomock.Any(), int64(7), gomock.Any()).Return(savedWallet(), nil).Times(2)
	gomock.InOrder(
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(collision),
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
	)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

	req, err := service.Create(context.Background(), 70, CreateInput{Amount: d("100000"), PIN: "1234"})
	require.NoError(t, err)
	assert.NotEmpty(t, req.RequestCode)
}

func TestService_Create_GivesUpAfterRepeatedCollisions(t *testing.T) {
	service, m := NewMock(t)
	collision := &pgconn.PgError{Code: pg.UniqueViolation}

	m.wallets.EXPECT().GetOrCreateWallet(gomock.Any(), int64(70)).Return(savedWallet(), nil)
	m.wallets.EXPECT().VerifyCredentials(gomock.Any(), "1234", "").Return(false, nil)
	m.wallets.EXPECT().Freeze(gomock.Any(), int64(7), gomock.Any()).Return(savedWallet(), nil).Times(codeAttempts)
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(collision).Times(codeAttempts)

	_, err := service.Create(context.Background(), 70, CreateInput{Amount: d("100000"), PIN: "1234"})
	assert.True(t, pg.IsUniqueViolation(err))
}

func pending() *domain.WithdrawalRequest {
	return &domain.WithdrawalRequest{
		ID:                11,
		RequestCode:       "WD-1709287200-0042",
		UserID:            70,
		WalletID:          7,
		Amount:            d("200000"),
		Fee:               d("2000"),
		NetAmount:         d("198000"),
		BankName:          "VCB",
		BankAccountNumber: "0123456789",
		Status:            domain.WithdrawalPending,
		ExpiresAt:         fixedNow.Add(72 * time.Hour),
	}
}

func withStatus(status domain.WithdrawalStatus) *domain.WithdrawalRequest {
	r := pending()
	r.Status = status
	return r
}

func TestService_ApproveThenComplete(t *testing.T) {
	ctx := context.Background()
	service, m := NewMock(t)

	m.repo.EXPECT().GetByIDForUpdate(gomock.Any(), int64(11)).Return(pending(), nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(2)

	approved, err := service.Approve(ctx, 11, 900, "ok")
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, int64(900), *approved.ApprovedBy)
	assert.Equal(t, fixedNow, *approved.ApprovedAt)

	m.repo.EXPECT().GetByIDForUpdate(gomock.Any(), int64(11)).Return(approved, nil)
	m.wallets.EXPECT().CompleteWithdrawal(gomock.Any(), int64(7), d("200000"), d("2000"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _, _ decimal.Decimal, ref domain.LedgerRef) (*domain.Wallet, error) {
			assert.Equal(t, domain.RefWithdrawal, ref.ReferenceType)
			assert.Equal(t, "WD-1709287200-0042", ref.ReferenceID)
			return &domain.Wallet{ID: 7}, nil
		})
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	completed, err := service.Complete(ctx, 11, 900, "FT123")
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalCompleted, completed.Status)
	assert.Equal(t, "FT123", completed.BankTransactionID)
	assert.NotNil(t, completed.CompletedAt)
}

func TestService_Complete_Twice(t *testing.T) {
	service, m := NewMock(t)
	m.repo.EXPECT().GetByIDForUpdate(gomock.Any(), int64(11)).Return(withStatus(domain.WithdrawalCompleted), nil)

	_, err := service.Complete(context.Background(), 11, 900, "FT124")
	assert.ErrorIs(t, err, domain.ErrWithdrawalState)
}

func TestService_IllegalTransitions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		status domain.WithdrawalStatus
		call   func(s *Service) error
	}{
		{"approve approved", domain.WithdrawalApproved, func(s *Service) error { _, err := s.Approve(ctx, 11, 1, ""); return err }},
		{"reject approved", domain.WithdrawalApproved, func(s *Service) error { _, err := s.Reject(ctx, 11, 1, ""); return err }},
		{"processing from pending", domain.WithdrawalPending, func(s *Service) error { _, err := s.MarkProcessing(ctx, 11); return err }},
		{"complete pending", domain.WithdrawalPending, func(s *Service) error { _, err := s.Complete(ctx, 11, 1, "x"); return err }},
		{"fail approved", domain.WithdrawalApproved, func(s *Service) error { _, err := s.Fail(ctx, 11, "x"); return err }},
		{"cancel processing", domain.WithdrawalProcessing, func(s *Service) error {
			_, err := s.Cancel(ctx, 11, Actor{UserID: 1, IsAdmin: true})
			return err
		}},
		{"approve expired", domain.WithdrawalExpired, func(s *Service) error { _, err := s.Approve(ctx, 11, 1, ""); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			m.repo.EXPECT().GetByIDForUpdate(gomock.Any(), int64(11)).Return(withStatus(tt.status), nil)

			assert.ErrorIs(t, tt.call(service), domain.ErrWithdrawalState)
		})
	}
}

func TestService_Reject(t *testing.T) {
	service, m := NewMock(t)
	m.repo.EXPECT().GetByIDForUpdate(gomock.Any(), int64(11)).Return(pending(), nil)
	m.wallets.EXPECT().Unfreeze(gomock.Any(), int64(7), d("200000")).Return(&domain.Wallet{ID: 7}, nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e events.Event) {
		assert.Equal(t, "withdrawal.REJECTED", e.Type)
	})

	req, err := service.Reject(context.Background(), 11, 900, "bad account")
	require.NoError(t, err)
	assert.Equal(t, "bad account", req.RejectionReason)
}

func TestService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("owner cancels approved", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().GetByIDForUpdate(gomock.Any(), int64(11)).Return(withStatus(domain.WithdrawalApproved), nil)
		m.wallets.EXPECT().Unfreeze(gomock.Any(), int64(7), d("200000")).Return(&domain.Wallet{ID: 7}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		req, err := service.Cancel(ctx, 11, Actor{UserID: 70})
		require.NoError(t, err)
		assert.Equal(t, domain.WithdrawalCancelled, req.Status)
		assert.Equal(t, int64(70), *req.CancelledBy)
	})

	t.Run("other user sees not found", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().GetByIDForUpdate(gomock.Any(), int64(11)).Return(pending(), nil)

		_, err := service.Cancel(ctx, 11, Actor{UserID: 71})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("user cannot cancel failed", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().GetByIDForUpdate(gomock.Any(), int64(11)).Return(withStatus(domain.WithdrawalFailed), nil)

		_, err := service.Cancel(ctx, 11, Actor{UserID: 70})
		assert.ErrorIs(t, err, domain.ErrWithdrawalState)
	})

	t.Run("admin cancels failed", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().GetByIDForUpdate(gomock.Any(), int64(11)).Return(withStatus(domain.WithdrawalFailed), nil)
		m.wallets.EXPECT().Unfreeze(gomock.Any(), int64(7), d("200000")).Return(&domain.Wallet{ID: 7}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		_, err := service.Cancel(ctx, 11, Actor{UserID: 900, IsAdmin: true})
		require.NoError(t, err)
	})

	t.Run("unfreeze failure keeps request", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().GetByIDForUpdate(gomock.Any(), int64(11)).Return(pending(), nil)
		m.wallets.EXPECT().Unfreeze(gomock.Any(), int64(7), d("200000")).Return(nil, errors.New("db down"))

		_, err := service.Cancel(ctx, 11, Actor{UserID: 70})
		assert.EqualError(t, err, "db down")
	})
}

func TestService_FailAndRetry(t *testing.T) {
	ctx := context.Background()
	service, m := NewMock(t)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes()
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	req := withStatus(domain.WithdrawalProcessing)
	for i := 1; i <= 2; i++ {
		m.repo.EXPECT().GetByIDForUpdate(gomock.Any(), int64(11)).Return(req, nil)
		failed, err := service.Fail(ctx, 11, "bank timeout")
		require.NoError(t, err)
		assert.Equal(t, i, failed.RetryCount)
		assert.Equal(t, "bank timeout", failed.ErrorMessage)

		m.repo.EXPECT().GetByIDForUpdate(gomock.Any(), int64(11)).Return(failed, nil)
		if i < 2 {
			req, err = service.MarkProcessing(ctx, 11)
			require.NoError(t, err)
			assert.Equal(t, domain.WithdrawalProcessing, req.Status)
			continue
		}
		_, err = service.MarkProcessing(ctx, 11)
		assert.ErrorIs(t, err, domain.ErrWithdrawalState)
	}
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()

	service, m := NewMock(t)
	m.repo.EXPECT().GetByID(gomock.Any(), int64(11)).Return(pending(), nil).Times(3)

	req, err := service.Get(ctx, 11, Actor{UserID: 70})
	require.NoError(t, err)
	assert.Equal(t, int64(11), req.ID)

	_, err = service.Get(ctx, 11, Actor{UserID: 71})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = service.Get(ctx, 11, Actor{UserID: 1, IsAdmin: true})
	require.NoError(t, err)
}

func TestService_Lists(t *testing.T) {
	service, m := NewMock(t)
	m.repo.EXPECT().ListByUser(gomock.Any(), int64(70), 20, 0).Return([]domain.WithdrawalRequest{*pending()}, nil)
	m.repo.EXPECT().ListPending(gomock.Any(), 50, 10).Return(nil, errors.New("db error"))

	list, err := service.List(context.Background(), 70, 20, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = service.ListPending(context.Background(), 50, 10)
	assert.Error(t, err)
}

func TestService_ExpireDue(t *testing.T) {
	ctx := context.Background()
	service, m := NewMock(t)

	a := withStatus(domain.WithdrawalApproved)
	b := pending()
	b.ID, b.WalletID = 12, 8
	c := pending()
	c.ID, c.WalletID = 13, 9

	m.repo.EXPECT().ClaimExpired(gomock.Any(), fixedNow, 100, []int64{5}).Return([]domain.WithdrawalRequest{*a, *b, *c}, nil)
	m.wallets.EXPECT().Unfreeze(gomock.Any(), int64(7), d("200000")).Return(&domain.Wallet{}, nil)
	m.wallets.EXPECT().Unfreeze(gomock.Any(), int64(8), d("200000")).Return(nil, domain.ErrWalletNotActive)
	m.wallets.EXPECT().Unfreeze(gomock.Any(), int64(9), d("200000")).Return(&domain.Wallet{}, nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, wr *domain.WithdrawalRequest) error {
		assert.Equal(t, domain.WithdrawalExpired, wr.Status)
		return nil
	}).Times(2)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e events.Event) {
		assert.Equal(t, "withdrawal.EXPIRED", e.Type)
	}).Times(2)

	result, err := service.ExpireDue(ctx, 100, []int64{5})
	require.NoError(t, err)
	assert.Equal(t, &SweepResult{Claimed: 3, Expired: 2, Skipped: 1, SkippedIDs: []int64{12}}, result)
}

func TestService_ExpireDue_InfraErrorAborts(t *testing.T) {
	service, m := NewMock(t)
	m.repo.EXPECT().ClaimExpired(gomock.Any(), fixedNow, 10, nil).Return([]domain.WithdrawalRequest{*pending()}, nil)
	m.wallets.EXPECT().Unfreeze(gomock.Any(), int64(7), gomock.Any()).Return(nil, errors.New("conn reset"))

	result, err := service.ExpireDue(context.Background(), 10, nil)
	assert.Error(t, err)
	assert.Nil(t, result)
}
