package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithdrawalStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from WithdrawalStatus
		to   WithdrawalStatus
		want bool
	}{
		{WithdrawalPending, WithdrawalApproved, true},
		{WithdrawalPending, WithdrawalProcessing, false},
		{WithdrawalPending, WithdrawalCompleted, false},
		{WithdrawalApproved, WithdrawalProcessing, true},
		{WithdrawalApproved, WithdrawalCompleted, true},
		{WithdrawalApproved, WithdrawalRejected, false},
		{WithdrawalProcessing, WithdrawalCompleted, true},
		{WithdrawalProcessing, WithdrawalCancelled, false},
		{WithdrawalProcessing, WithdrawalExpired, false},
		{WithdrawalFailed, WithdrawalProcessing, true},
		{WithdrawalFailed, WithdrawalCompleted, false},
		{WithdrawalCompleted, WithdrawalFailed, false},
		{WithdrawalRejected, WithdrawalApproved, false},
		{WithdrawalExpired, WithdrawalPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestWithdrawalStatus_IsTerminal(t *testing.T) {
	for _, s := range []WithdrawalStatus{WithdrawalCompleted, WithdrawalRejected, WithdrawalCancelled, WithdrawalExpired} {
		assert.True(t, s.IsTerminal(), s)
	}
	for _, s := range []WithdrawalStatus{WithdrawalPending, WithdrawalApproved, WithdrawalProcessing, WithdrawalFailed} {
		assert.False(t, s.IsTerminal(), s)
	}
}

func TestExpirableWithdrawalStatuses(t *testing.T) {
	for _, s := range ExpirableWithdrawalStatuses {
		assert.True(t, s.CanTransitionTo(WithdrawalExpired), s)
	}
	assert.NotContains(t, ExpirableWithdrawalStatuses, WithdrawalProcessing)
	assert.False(t, WithdrawalProcessing.CanTransitionTo(WithdrawalExpired))
}

func TestWithdrawalRequest_TransitionTo(t *testing.T) {
	r := &WithdrawalRequest{Status: WithdrawalCompleted}

	err := r.TransitionTo(WithdrawalCompleted)
	assert.ErrorIs(t, err, ErrWithdrawalState)
	assert.Equal(t, WithdrawalCompleted, r.Status)

	r.Status = WithdrawalPending
	assert.NoError(t, r.TransitionTo(WithdrawalApproved))
	assert.Equal(t, WithdrawalApproved, r.Status)
}

func TestWithdrawalRequest_IsExpired(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r := &WithdrawalRequest{ExpiresAt: now}

	assert.False(t, r.IsExpired(now))
	assert.True(t, r.IsExpired(now.Add(time.Second)))
}

func TestPaymentStatus_IsTerminal(t *testing.T) {
	assert.False(t, PaymentPending.IsTerminal())
	assert.True(t, PaymentCompleted.IsTerminal())
	assert.True(t, PaymentCancelled.IsTerminal())
}
