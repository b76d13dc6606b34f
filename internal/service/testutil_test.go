package service

import (
	"io"
	"sync"
	"testing"
	"time"

	"greenfund-demo/config"
	"greenfund-demo/internal/core/domain"
	"greenfund-demo/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testWalletAddress = "0x742d35cc6634c0532925a3b844bc9e7595f08f1a"

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// manualScheduler records scheduled continuations and runs them on demand.
type manualScheduler struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	mu      sync.Mutex
	delay   time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) ports.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{delay: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// FireAll runs every continuation that is neither stopped nor fired and
// returns how many ran.
func (s *manualScheduler) FireAll() int {
	s.mu.Lock()
	timers := append([]*manualTimer(nil), s.timers...)
	s.mu.Unlock()

	n := 0
	for _, t := range timers {
		t.mu.Lock()
		if t.stopped || t.fired {
			t.mu.Unlock()
			continue
		}
		t.fired = true
		t.mu.Unlock()
		t.f()
		n++
	}
	return n
}

func (s *manualScheduler) Scheduled() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func testStatsConfig() config.StatsConfig {
	return config.StatsConfig{
		TotalLoans:         156,
		TotalFunded:        "847.6",
		CO2SavedTons:       "1234",
		SuccessRatePercent: "94.2",
		SolarProjects:      89,
		EVsPurchased:       245,
	}
}

func testEngineConfig() EngineConfig {
	return EngineConfig{
		ConnectDelay:       time.Second,
		WalletAddress:      testWalletAddress,
		WalletBalance:      decimal.RequireFromString("5.24"),
		Currency:           "ETH",
		NotificationBuffer: 8,
	}
}

type engineOption func(*EngineConfig, *EngineDeps)

func withAppendOnSubmit() engineOption {
	return func(c *EngineConfig, _ *EngineDeps) { c.AppendOnSubmit = true }
}

func withStrictAmount() engineOption {
	return func(_ *EngineConfig, d *EngineDeps) { d.AmountPolicy = StrictAmountPolicy{} }
}

func withDerivedStats() engineOption {
	return func(c *EngineConfig, d *EngineDeps) { d.Stats = NewRegistryStatsProvider(c.Currency) }
}

func newTestEngine(t *testing.T, opts ...engineOption) (ports.LoanDemoEngine, *manualScheduler) {
	t.Helper()

	sched := &manualScheduler{}
	stats, err := NewFixedStatsProvider(testStatsConfig(), "ETH")
	require.NoError(t, err)

	cfg := testEngineConfig()
	deps := EngineDeps{
		Scheduler: sched,
		Stats:     stats,
		Logger:    newTestLogger(),
	}
	for _, opt := range opts {
		opt(&cfg, &deps)
	}

	e := NewLoanDemoEngine(uuid.New(), cfg, deps)
	t.Cleanup(e.Close)
	return e, sched
}

// drain returns every notification currently buffered on ch.
func drain(ch <-chan domain.Notification) []domain.Notification {
	var out []domain.Notification
	for {
		select {
		case n, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, n)
		default:
			return out
		}
	}
}
