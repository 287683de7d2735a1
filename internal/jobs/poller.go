package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/eduwallet/internal/domain"
	"github.com/GlebRadaev/eduwallet/internal/service/paymentservice"
)

//go:generate mockgen -source=poller.go -destination=mock_poller.go -package=jobs

type PaymentVerifier interface {
	FindPending(ctx context.Context, grace time.Duration, limit uint32) ([]domain.PaymentTransaction, error)
	VerifyWithGateway(ctx context.Context, reference string, userID int64) (*paymentservice.VerifyResult, error)
}

// PaymentPoller reconciles payments whose webhook never arrived.
type PaymentPoller struct {
	verifier   PaymentVerifier
	workerPool WorkerPoolI
	interval   time.Duration
	grace      time.Duration
	limit      uint32

	inFlight sync.Map
}

func NewPaymentPoller(verifier PaymentVerifier, workerPool WorkerPoolI, interval, grace time.Duration, limit uint32) *PaymentPoller {
	return &PaymentPoller{
		verifier:   verifier,
		workerPool: workerPool,
		interval:   interval,
		grace:      grace,
		limit:      limit,
	}
}

func (p *PaymentPoller) Start(ctx context.Context) {
	zap.L().Info("payment poller started", zap.Duration("interval", p.interval))
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("payment poller stopped")
			return
		case <-ticker.C:
			p.RunOnce(ctx)
		}
	}
}

// RunOnce verifies one page of stale PENDING payments and waits for the
// results. A reference already being verified is skipped.
func (p *PaymentPoller) RunOnce(ctx context.Context) int {
	payments, err := p.verifier.FindPending(ctx, p.grace, p.limit)
	if err != nil {
		zap.L().Error("failed to fetch pending payments", zap.Error(err))
		return 0
	}

	var (
		g       errgroup.Group
		done    sync.WaitGroup
		mu      sync.Mutex
		settled int
	)
	for _, payment := range payments {
		ref := payment.Reference
		if _, loaded := p.inFlight.LoadOrStore(ref, struct{}{}); loaded {
			continue
		}

		done.Add(1)
		g.Go(func() error {
			err := p.workerPool.AddTask(ctx, func() error {
				defer done.Done()
				defer p.inFlight.Delete(ref)

				res, err := p.verifier.VerifyWithGateway(ctx, ref, 0)
				if err != nil {
					return fmt.Errorf("verify payment %s: %w", ref, err)
				}
				if res.Verified && !res.Duplicate {
					mu.Lock()
					settled++
					mu.Unlock()
				}
				return nil
			})
			if err != nil {
				done.Done()
				p.inFlight.Delete(ref)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error dispatching payment verification", zap.Error(err))
	}
	done.Wait()

	if settled > 0 {
		zap.L().Info("payments reconciled by polling", zap.Int("count", settled))
	}
	return settled
}
