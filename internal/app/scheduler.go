package app

import (
	"context"
	"time"

	"github.com/Freeeeeet/route_order_bot/internal/session"
	"go.uber.org/zap"
)

// Scheduler периодически удаляет брошенные диалоги из хранилищ без собственного TTL
type Scheduler struct {
	sweeper  session.Sweeper
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time
	logger   *zap.Logger
	stopChan chan struct{}
}

// NewScheduler ttl - сколько живёт диалог без активности
func NewScheduler(sweeper session.Sweeper, ttl time.Duration, logger *zap.Logger) *Scheduler {
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	return &Scheduler{
		sweeper:  sweeper,
		ttl:      ttl,
		interval: interval,
		now:      time.Now,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting session janitor", zap.Duration("ttl", s.ttl), zap.Duration("interval", s.interval))
	go s.runSweepTask(ctx)
}

// Stop останавливает фоновые задачи
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping session janitor")
	close(s.stopChan)
}

func (s *Scheduler) runSweepTask(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stopChan:
			s.logger.Info("Session janitor stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Session janitor cancelled")
			return
		}
	}
}

// sweep удаляет диалоги, которые не менялись дольше ttl
func (s *Scheduler) sweep(ctx context.Context) int {
	removed, err := s.sweeper.Sweep(ctx, s.now().Add(-s.ttl))
	if err != nil {
		s.logger.Error("Failed to sweep sessions", zap.Error(err))
		return 0
	}
	if removed > 0 {
		s.logger.Info("Expired sessions removed", zap.Int("count", removed))
	}
	return removed
}
