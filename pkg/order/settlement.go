package order

import (
	"sync"
	"time"
)

// SettlementScheduler runs delayed settlement tasks keyed by order id.
// Tasks can be cancelled individually or all at once on shutdown, so a
// settlement never fires for a workflow whose lifetime already ended.
type SettlementScheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

func NewSettlementScheduler() *SettlementScheduler {
	return &SettlementScheduler{
		timers: make(map[string]*time.Timer),
	}
}

func (s *SettlementScheduler) Schedule(orderID string, delay time.Duration, settle func(orderID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if timer, ok := s.timers[orderID]; ok {
		timer.Stop()
	}

	s.timers[orderID] = time.AfterFunc(delay, func() {
		if !s.remove(orderID) {
			return
		}
		settle(orderID)
	})
}

// Cancel stops the pending settlement for the order. It reports whether a
// task was actually pending.
func (s *SettlementScheduler) Cancel(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.timers[orderID]
	if !ok {
		return false
	}
	timer.Stop()
	delete(s.timers, orderID)
	return true
}

func (s *SettlementScheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

// remove unregisters a fired timer; false means the task was cancelled or
// the scheduler closed between firing and running.
func (s *SettlementScheduler) remove(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	if _, ok := s.timers[orderID]; !ok {
		return false
	}
	delete(s.timers, orderID)
	return true
}
