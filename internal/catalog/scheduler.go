package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/GuillaumeBer/cryptoTrack/internal/domain"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"
)

// Scheduler triggers a catalog refresh periodically. The coordinator's
// single-flight gate handles overlap: a tick that lands while a refresh is
// running is skipped, not queued.
type Scheduler struct {
	coordinator *RefreshCoordinator
	interval    time.Duration
	// -----
	sched gocron.Scheduler
}

func NewScheduler(coordinator *RefreshCoordinator, interval time.Duration) *Scheduler {
	return &Scheduler{coordinator: coordinator, interval: interval}
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func(context.Context) {
		if startErr := s.coordinator.TryStart(); startErr != nil {
			if errors.Is(startErr, domain.ErrRefreshInProgress) {
				logrus.Info("Scheduled refresh skipped, a refresh is already running")
				return
			}
			logrus.Errorf("Scheduled refresh failed to start: %v", startErr)
		}
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}
