package sync

import (
	"log/slog"
	"sync"
	"time"
)

// Scheduler периодически запускает полную синхронизацию. Тик, пришедший
// во время идущей сессии, отбрасывается (single-flight), а не ставится
// в очередь. Перевооружение с новым интервалом снимает старый таймер и
// взводит новый без немедленного срабатывания.
type Scheduler struct {
	run      func()
	logger   *slog.Logger
	stop     chan struct{}
	mu       sync.Mutex
	interval time.Duration
	armed    bool
}

// NewScheduler creates a scheduler that invokes run on every tick
func NewScheduler(run func(), logger *slog.Logger) *Scheduler {
	return &Scheduler{run: run, logger: logger}
}

// Start arms the recurring timer. An already armed scheduler is re-armed
// with the new interval: exactly one timer is active at any time and the
// first fire happens a full interval after the call.
func (s *Scheduler) Start(interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.armed {
		close(s.stop)
	}

	stop := make(chan struct{})
	s.stop = stop
	s.interval = interval
	s.armed = true

	go s.loop(interval, stop)

	s.logger.Info("auto-sync armed", "interval", interval)
}

// Stop disarms the scheduler and cancels the pending timer
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.armed {
		return
	}
	close(s.stop)
	s.armed = false

	s.logger.Info("auto-sync disarmed")
}

// Armed returns whether the scheduler is armed and with what interval
func (s *Scheduler) Armed() (bool, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.armed, s.interval
}

func (s *Scheduler) loop(interval time.Duration, stop chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.run()
		}
	}
}
