package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/eduwallet/internal/service/withdrawalservice"
	"github.com/GlebRadaev/eduwallet/pkg/lock"
)

func freeLease(t *testing.T) *lock.Lease {
	t.Helper()
	lease, err := lock.New(nil, time.Minute).TryAcquire(context.Background(), ExpiryLeaseKey)
	require.NoError(t, err)
	return lease
}

func TestExpirySweeper_RunOnce(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		prepareMock func(e *MockExpirer, l *MockLeaser)
		expected    *withdrawalservice.SweepResult
		expectErr   bool
	}{
		{
			name: "Lease held elsewhere",
			prepareMock: func(e *MockExpirer, l *MockLeaser) {
				l.EXPECT().TryAcquire(gomock.Any(), ExpiryLeaseKey).Return(nil, nil)
			},
			expected: nil,
		},
		{
			name: "Lease error",
			prepareMock: func(e *MockExpirer, l *MockLeaser) {
				l.EXPECT().TryAcquire(gomock.Any(), ExpiryLeaseKey).Return(nil, errors.New("redis down"))
			},
			expectErr: true,
		},
		{
			name: "Drains full batches until a short one",
			prepareMock: func(e *MockExpirer, l *MockLeaser) {
				l.EXPECT().TryAcquire(gomock.Any(), ExpiryLeaseKey).Return(freeLease(t), nil)
				gomock.InOrder(
					e.EXPECT().ExpireDue(gomock.Any(), 2, nil).Return(&withdrawalservice.SweepResult{Claimed: 2, Expired: 2}, nil),
					e.EXPECT().ExpireDue(gomock.Any(), 2, nil).Return(&withdrawalservice.SweepResult{Claimed: 2, Expired: 1, Skipped: 1, SkippedIDs: []int64{7}}, nil),
					e.EXPECT().ExpireDue(gomock.Any(), 2, []int64{7}).Return(&withdrawalservice.SweepResult{Claimed: 1, Expired: 1}, nil),
				)
			},
			expected: &withdrawalservice.SweepResult{Claimed: 5, Expired: 4, Skipped: 1, SkippedIDs: []int64{7}},
		},
		{
			name: "Skipped rows do not block the requests behind them",
			prepareMock: func(e *MockExpirer, l *MockLeaser) {
				l.EXPECT().TryAcquire(gomock.Any(), ExpiryLeaseKey).Return(freeLease(t), nil)
				gomock.InOrder(
					e.EXPECT().ExpireDue(gomock.Any(), 2, nil).Return(&withdrawalservice.SweepResult{Claimed: 2, Skipped: 2, SkippedIDs: []int64{1, 2}}, nil),
					e.EXPECT().ExpireDue(gomock.Any(), 2, []int64{1, 2}).Return(&withdrawalservice.SweepResult{Claimed: 2, Skipped: 2, SkippedIDs: []int64{3, 4}}, nil),
					e.EXPECT().ExpireDue(gomock.Any(), 2, []int64{1, 2, 3, 4}).Return(&withdrawalservice.SweepResult{Claimed: 1, Expired: 1}, nil),
				)
			},
			expected: &withdrawalservice.SweepResult{Claimed: 5, Expired: 1, Skipped: 4, SkippedIDs: []int64{1, 2, 3, 4}},
		},
		{
			name: "Stops when a full batch reports no progress at all",
			prepareMock: func(e *MockExpirer, l *MockLeaser) {
				l.EXPECT().TryAcquire(gomock.Any(), ExpiryLeaseKey).Return(freeLease(t), nil)
				e.EXPECT().ExpireDue(gomock.Any(), 2, nil).Return(&withdrawalservice.SweepResult{Claimed: 2}, nil)
			},
			expected: &withdrawalservice.SweepResult{Claimed: 2},
		},
		{
			name: "Storage error aborts the run",
			prepareMock: func(e *MockExpirer, l *MockLeaser) {
				l.EXPECT().TryAcquire(gomock.Any(), ExpiryLeaseKey).Return(freeLease(t), nil)
				e.EXPECT().ExpireDue(gomock.Any(), 2, nil).Return(nil, errors.New("deadlock detected"))
			},
			expected:  &withdrawalservice.SweepResult{},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			expirer := NewMockExpirer(ctrl)
			leaser := NewMockLeaser(ctrl)
			tt.prepareMock(expirer, leaser)

			sweeper := NewExpirySweeper(expirer, leaser, time.Minute, 2)
			res, err := sweeper.RunOnce(ctx)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestExpirySweeper_StartStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	expirer := NewMockExpirer(ctrl)
	expirer.EXPECT().ExpireDue(gomock.Any(), 10, gomock.Any()).Return(&withdrawalservice.SweepResult{}, nil).AnyTimes()

	sweeper := NewExpirySweeper(expirer, lock.New(nil, time.Minute), 5*time.Millisecond, 10)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		sweeper.Start(ctx)
		close(stopped)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
