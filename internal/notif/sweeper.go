package notif

import (
	"context"
	"log"
	"sync"
	"time"

	"notifeed/internal/common"
)

// Sweeper periodically auto-dismisses stale read records. It owns its
// ticker goroutine: Apply tears the timer down and recreates it when
// the auto-dismiss settings change, so duplicate timers never
// accumulate.
type Sweeper struct {
	store    common.NotificationStore
	prefs    *PreferenceStore
	interval time.Duration
	now      func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSweeper(store common.NotificationStore, prefs *PreferenceStore, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = 5 * time.Second
	}

	return &Sweeper{
		store:    store,
		prefs:    prefs,
		interval: interval,
		now:      time.Now,
	}
}

// Apply reconciles the running timer with the given settings.
func (s *Sweeper) Apply(cfg common.AutoDismiss) {
	s.Stop()
	if cfg.Enabled {
		s.Start()
	}
}

func (s *Sweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx, s.done)
	log.Printf("Auto-dismiss sweeper started, interval=%s", s.interval)
}

func (s *Sweeper) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	done := s.done
	s.cancel = nil
	s.done = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
	log.Println("Auto-dismiss sweeper stopped")
}

func (s *Sweeper) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

func (s *Sweeper) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.tick()
		case <-ctx.Done():
			return
		}
	}
}

// tick swallows per-pass panics so one bad record never halts the
// timer permanently.
func (s *Sweeper) tick() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Sweeper tick recovered: %v", r)
		}
	}()

	prefs := s.prefs.Get()
	if !prefs.AutoDismiss.Enabled {
		return
	}

	if n := s.SweepOnce(s.now(), prefs.AutoDismiss.DelaySeconds); n > 0 {
		log.Printf("Sweeper auto-dismissed %d notifications", n)
	}
}

// SweepOnce dismisses every read-but-undismissed record whose age at
// now meets the delay. Unread records are never touched regardless of
// age. A negative delay clamps to zero.
func (s *Sweeper) SweepOnce(now time.Time, delaySeconds int) int {
	if delaySeconds < 0 {
		delaySeconds = 0
	}
	delay := time.Duration(delaySeconds) * time.Second

	dismissed := 0
	for _, record := range s.store.All() {
		if !record.Read || record.Dismissed {
			continue
		}
		if now.Sub(record.Timestamp) < delay {
			continue
		}

		ok := s.store.Replace(record.ID, func(record *common.NotificationRecord) {
			record.Dismissed = true
			record.Read = true
		})
		if ok {
			dismissed++
		}
	}

	return dismissed
}
