package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type announcementRefresher interface {
	RefreshConferences(ctx context.Context) (string, error)
	RefreshSpeakers(ctx context.Context) (string, error)
}

// Scheduler periodically recomputes both cached announcements. The jobs are
// idempotent, so overlapping a tick with on-demand refreshes is harmless.
type Scheduler struct {
	announcements announcementRefresher
	interval      time.Duration
	logger        logger.Logger
}

func New(announcements announcementRefresher, interval time.Duration, log logger.Logger) *Scheduler {
	return &Scheduler{
		announcements: announcements,
		interval:      interval,
		logger:        log,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("announcement scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("announcement scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if _, err := s.announcements.RefreshConferences(ctx); err != nil {
		s.logger.Error("failed to refresh conference announcement",
			logger.String("error", err.Error()),
		)
	}
	if _, err := s.announcements.RefreshSpeakers(ctx); err != nil {
		s.logger.Error("failed to refresh speaker announcement",
			logger.String("error", err.Error()),
		)
	}
}
