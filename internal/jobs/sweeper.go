package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/eduwallet/internal/service/withdrawalservice"
	"github.com/GlebRadaev/eduwallet/pkg/lock"
)

//go:generate mockgen -source=sweeper.go -destination=mock_sweeper.go -package=jobs

const ExpiryLeaseKey = "eduwallet:jobs:withdrawal-expiry"

type Expirer interface {
	ExpireDue(ctx context.Context, batch int, exclude []int64) (*withdrawalservice.SweepResult, error)
}

type Leaser interface {
	TryAcquire(ctx context.Context, key string) (*lock.Lease, error)
}

// ExpirySweeper periodically expires overdue withdrawal requests. The lease
// only keeps instances from doing duplicate work; each batch is claimed with
// SKIP LOCKED so overlapping sweeps stay correct.
type ExpirySweeper struct {
	expirer  Expirer
	leaser   Leaser
	interval time.Duration
	batch    int
}

func NewExpirySweeper(expirer Expirer, leaser Leaser, interval time.Duration, batch int) *ExpirySweeper {
	if batch < 1 {
		batch = 1
	}
	return &ExpirySweeper{
		expirer:  expirer,
		leaser:   leaser,
		interval: interval,
		batch:    batch,
	}
}

func (s *ExpirySweeper) Start(ctx context.Context) {
	zap.L().Info("withdrawal expiry sweeper started", zap.Duration("interval", s.interval))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("withdrawal expiry sweeper stopped")
			return
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil {
				zap.L().Error("withdrawal expiry sweep failed", zap.Error(err))
			}
		}
	}
}

// RunOnce sweeps until a batch comes back short. Requests skipped earlier in
// the run are excluded from later claims so they cannot starve the queue
// behind them. It returns nil, nil when another instance holds the lease.
func (s *ExpirySweeper) RunOnce(ctx context.Context) (*withdrawalservice.SweepResult, error) {
	lease, err := s.leaser.TryAcquire(ctx, ExpiryLeaseKey)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		zap.L().Debug("expiry sweep skipped, lease held elsewhere")
		return nil, nil
	}
	defer func() {
		if err := lease.Release(context.WithoutCancel(ctx)); err != nil {
			zap.L().Warn("failed to release expiry lease", zap.Error(err))
		}
	}()

	var total withdrawalservice.SweepResult
	for ctx.Err() == nil {
		res, err := s.expirer.ExpireDue(ctx, s.batch, total.SkippedIDs)
		if err != nil {
			return &total, err
		}
		total.Claimed += res.Claimed
		total.Expired += res.Expired
		total.Skipped += res.Skipped
		total.SkippedIDs = append(total.SkippedIDs, res.SkippedIDs...)
		if res.Claimed < s.batch || (res.Expired == 0 && len(res.SkippedIDs) == 0) {
			break
		}
	}

	if total.Claimed > 0 {
		zap.L().Info("withdrawal expiry sweep finished",
			zap.Int("claimed", total.Claimed),
			zap.Int("expired", total.Expired),
			zap.Int("skipped", total.Skipped),
		)
	}
	return &total, nil
}
