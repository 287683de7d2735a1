package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/eduwallet/internal/config"
	"github.com/GlebRadaev/eduwallet/internal/events"
	"github.com/GlebRadaev/eduwallet/internal/jobs"
	"github.com/GlebRadaev/eduwallet/internal/service/withdrawalservice"
	"github.com/GlebRadaev/eduwallet/pkg/lock"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWait_CleanShutdown() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestInitRedis_Disabled() {
	cfg := &config.Config{}
	cfg.Jobs.ExpirySweepInterval = time.Minute

	publisher, locker, err := s.app.initRedis(context.Background(), cfg)

	s.Require().NoError(err)
	s.IsType(events.NoopPublisher{}, publisher)
	s.Nil(s.app.rdb)

	lease, err := locker.TryAcquire(context.Background(), jobs.ExpiryLeaseKey)
	s.NoError(err)
	s.NotNil(lease)
}

func (s *ApplicationSuite) TestStartJobs_StopOnCancel() {
	ctrl := gomock.NewController(s.T())
	expirer := jobs.NewMockExpirer(ctrl)
	verifier := jobs.NewMockPaymentVerifier(ctrl)
	expirer.EXPECT().ExpireDue(gomock.Any(), 10, gomock.Any()).Return(&withdrawalservice.SweepResult{}, nil).AnyTimes()
	verifier.EXPECT().FindPending(gomock.Any(), time.Minute, uint32(10)).Return(nil, nil).AnyTimes()

	s.app.workers = jobs.NewWorkerPool(2)
	s.app.sweeper = jobs.NewExpirySweeper(expirer, lock.New(nil, time.Minute), 5*time.Millisecond, 10)
	s.app.poller = jobs.NewPaymentPoller(verifier, s.app.workers, 5*time.Millisecond, time.Minute, 10)

	ctx, cancel := context.WithCancel(context.Background())
	s.app.startJobs(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()

	done := make(chan error)
	go func() { done <- s.app.Wait(ctx, cancel) }()

	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(time.Second):
		s.Fail("jobs did not stop")
	}
}
