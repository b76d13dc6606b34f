package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"greenfund-demo/internal/core/domain"
	"greenfund-demo/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_InitialState(t *testing.T) {
	e, _ := newTestEngine(t)

	assert.Equal(t, domain.WalletStatusDisconnected, e.WalletState().Status())
	assert.Equal(t, domain.ViewDashboard, e.CurrentView())
	assert.True(t, e.Draft().IsEmpty())
	assert.Equal(t, domain.SeedLoans(), e.ListLoans())
}

func TestEngine_RequestConnect_PassesThroughConnecting(t *testing.T) {
	e, sched := newTestEngine(t)
	_, ch := e.Subscribe()

	require.True(t, e.RequestConnect())

	w := e.WalletState()
	assert.Equal(t, domain.WalletStatusConnecting, w.Status())
	_, hasAddr := w.Address()
	assert.False(t, hasAddr, "no address while connecting")
	assert.Empty(t, drain(ch), "no notification before the delay elapses")
	assert.Equal(t, 1, sched.Scheduled())
	assert.Equal(t, time.Second, sched.timers[0].delay)

	require.Equal(t, 1, sched.FireAll())

	w = e.WalletState()
	assert.Equal(t, domain.WalletStatusConnected, w.Status())
	addr, ok := w.Address()
	require.True(t, ok)
	assert.Equal(t, testWalletAddress, addr)
	balance, currency, ok := w.Balance()
	require.True(t, ok)
	assert.True(t, balance.IsPositive())
	assert.True(t, decimal.RequireFromString("5.24").Equal(balance))
	assert.Equal(t, "ETH", currency)

	notes := drain(ch)
	require.Len(t, notes, 1)
	assert.Equal(t, domain.NotificationInfo, notes[0].Kind)
	assert.Equal(t, TitleWalletConnected, notes[0].Title)
	assert.Equal(t, MessageWalletConnected, notes[0].Message)
	assert.Equal(t, e.SessionID(), notes[0].SessionID)
}

func TestEngine_RequestConnect_IdempotentWhileConnecting(t *testing.T) {
	e, sched := newTestEngine(t)
	_, ch := e.Subscribe()

	require.True(t, e.RequestConnect())
	assert.False(t, e.RequestConnect())
	assert.False(t, e.RequestConnect())

	assert.Equal(t, 1, sched.Scheduled(), "only one connection may be in flight")
	assert.Equal(t, domain.WalletStatusConnecting, e.WalletState().Status())

	sched.FireAll()
	assert.Len(t, drain(ch), 1, "exactly one Info notification")
}

func TestEngine_RequestConnect_IdempotentWhenConnected(t *testing.T) {
	e, sched := newTestEngine(t)
	_, ch := e.Subscribe()

	e.RequestConnect()
	sched.FireAll()
	before := e.WalletState()
	drain(ch)

	assert.False(t, e.RequestConnect())
	assert.Equal(t, 0, sched.FireAll())
	assert.Equal(t, before, e.WalletState())
	assert.Empty(t, drain(ch))
}

func TestEngine_Close_CancelsPendingConnect(t *testing.T) {
	e, sched := newTestEngine(t)
	_, ch := e.Subscribe()

	e.RequestConnect()
	e.Close()

	assert.True(t, sched.timers[0].stopped)
	assert.Equal(t, 0, sched.FireAll())
	assert.Equal(t, domain.WalletStatusConnecting, e.WalletState().Status())

	_, open := <-ch
	assert.False(t, open, "subscriber channel closed on Close")
}

func TestEngine_LateContinuationAfterClose_IsDiscarded(t *testing.T) {
	e, sched := newTestEngine(t)

	e.RequestConnect()
	f := sched.timers[0].f
	e.Close()

	// A timer that already started running when Close was called.
	f()
	assert.Equal(t, domain.WalletStatusConnecting, e.WalletState().Status())
}

func TestEngine_ClosedEngineIgnoresCommands(t *testing.T) {
	e, _ := newTestEngine(t)
	e.Close()
	e.Close()

	assert.False(t, e.RequestConnect())
	e.SelectView(domain.ViewImpact)
	e.UpdateDraftAmount("1")
	assert.Equal(t, domain.ViewDashboard, e.CurrentView())
	assert.True(t, e.Draft().IsEmpty())

	_, err := e.SubmitDraft()
	assert.True(t, errors.Is(err, apperror.ErrSessionClosed()))
}

func TestEngine_SelectView(t *testing.T) {
	e, sched := newTestEngine(t)

	e.SelectView(domain.ViewApply)
	e.SelectView(domain.ViewDashboard)
	e.SelectView(domain.ViewApply)
	assert.Equal(t, domain.ViewApply, e.CurrentView(), "selection works before connecting")

	e.RequestConnect()
	e.SelectView(domain.ViewImpact)
	assert.Equal(t, domain.ViewImpact, e.CurrentView())

	sched.FireAll()
	assert.Equal(t, domain.ViewImpact, e.CurrentView(), "connect does not reset the view")
}

func TestEngine_UpdateDraft_StoresRawText(t *testing.T) {
	e, _ := newTestEngine(t)

	e.UpdateDraftAmount("  5.5abc ")
	e.UpdateDraftDescription("<b>Solar</b> & wind")

	d := e.Draft()
	assert.Equal(t, "  5.5abc ", d.Amount)
	assert.Equal(t, "<b>Solar</b> & wind", d.Description)
}

func TestEngine_SubmitDraft_MissingAmount(t *testing.T) {
	e, _ := newTestEngine(t)
	_, ch := e.Subscribe()

	e.UpdateDraftAmount("")
	e.UpdateDraftDescription("anything")

	rec, err := e.SubmitDraft()
	require.Error(t, err)
	assert.Nil(t, rec)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "LOAN_001", appErr.Code)

	assert.Equal(t, domain.LoanApplicationDraft{Amount: "", Description: "anything"}, e.Draft(), "draft unchanged")

	notes := drain(ch)
	require.Len(t, notes, 1)
	assert.Equal(t, domain.NotificationError, notes[0].Kind)
	assert.Equal(t, TitleMissingInformation, notes[0].Title)
}

func TestEngine_SubmitDraft_BlankFields(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		description string
	}{
		{"both empty", "", ""},
		{"blank amount", "   ", "Solar panels"},
		{"blank description", "5.5", " \t"},
		{"missing description", "5.5", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t)
			e.UpdateDraftAmount(tt.amount)
			e.UpdateDraftDescription(tt.description)

			_, err := e.SubmitDraft()
			assert.True(t, errors.Is(err, apperror.ErrMissingFields()))
			assert.Equal(t, tt.amount, e.Draft().Amount)
			assert.Equal(t, tt.description, e.Draft().Description)
		})
	}
}

func TestEngine_SubmitDraft_Success(t *testing.T) {
	e, _ := newTestEngine(t)
	_, ch := e.Subscribe()
	before := len(e.ListLoans())

	e.UpdateDraftAmount("5.5")
	e.UpdateDraftDescription("Solar panels")

	rec, err := e.SubmitDraft()
	require.NoError(t, err)
	assert.Nil(t, rec, "registry is not touched by default")

	assert.Equal(t, domain.LoanApplicationDraft{}, e.Draft())
	assert.Len(t, e.ListLoans(), before)

	notes := drain(ch)
	require.Len(t, notes, 1)
	assert.Equal(t, domain.NotificationInfo, notes[0].Kind)
	assert.Equal(t, TitleApplicationSubmitted, notes[0].Title)
	assert.Equal(t, MessageApplicationSubmit, notes[0].Message)
}

func TestEngine_SubmitDraft_AcceptsNonNumericAmountByDefault(t *testing.T) {
	e, _ := newTestEngine(t)

	e.UpdateDraftAmount("a lot")
	e.UpdateDraftDescription("Wind farm")

	_, err := e.SubmitDraft()
	assert.NoError(t, err)
}

func TestEngine_SubmitDraft_StrictAmount(t *testing.T) {
	tests := []struct {
		amount  string
		wantErr bool
	}{
		{"5.5", false},
		{" 12 ", false},
		{"a lot", true},
		{"0", true},
		{"-3", true},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			e, _ := newTestEngine(t, withStrictAmount())
			_, ch := e.Subscribe()

			e.UpdateDraftAmount(tt.amount)
			e.UpdateDraftDescription("Solar panels")

			_, err := e.SubmitDraft()
			notes := drain(ch)
			require.Len(t, notes, 1)

			if !tt.wantErr {
				assert.NoError(t, err)
				assert.True(t, e.Draft().IsEmpty())
				return
			}
			assert.True(t, errors.Is(err, apperror.ErrInvalidLoanAmount(nil)))
			assert.Equal(t, tt.amount, e.Draft().Amount)
			assert.Equal(t, domain.NotificationError, notes[0].Kind)
			assert.Equal(t, TitleInvalidAmount, notes[0].Title)
		})
	}
}

func TestEngine_SubmitDraft_AppendOnSubmit(t *testing.T) {
	e, sched := newTestEngine(t, withAppendOnSubmit())

	e.UpdateDraftAmount("7")
	e.UpdateDraftDescription("Community solar garden")

	_, err := e.SubmitDraft()
	assert.True(t, errors.Is(err, apperror.ErrWalletNotConnected()), "append needs a connected wallet")
	assert.Equal(t, "7", e.Draft().Amount)

	e.RequestConnect()
	sched.FireAll()

	rec, err := e.SubmitDraft()
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, domain.LoanStatusPending, rec.Status)
	assert.Equal(t, 0, rec.RepaymentProgressPercent)
	assert.Equal(t, "0x742d...8f1a", rec.Borrower)
	assert.Equal(t, "7.0 ETH", rec.Amount)
	assert.Equal(t, "Community solar garden", rec.Purpose)
	assert.Regexp(t, `^0x[0-9a-f]{6}$`, rec.ID)

	loans := e.ListLoans()
	require.Len(t, loans, 4)
	assert.Equal(t, *rec, loans[3], "appended at the end")
	assert.True(t, e.Draft().IsEmpty())
}

func TestEngine_ListLoans_IsRestartableCopy(t *testing.T) {
	e, _ := newTestEngine(t)

	first := e.ListLoans()
	first[0].Purpose = "mutated"

	second := e.ListLoans()
	assert.Equal(t, domain.SeedLoans(), second)
	assert.Equal(t, second, e.ListLoans())
}

func TestEngine_AggregateStats_FixedIgnoresRegistry(t *testing.T) {
	e, sched := newTestEngine(t, withAppendOnSubmit())

	before := e.AggregateStats()
	assert.Equal(t, int64(156), before.TotalLoans)
	assert.True(t, decimal.RequireFromString("847.6").Equal(before.TotalFunded))

	e.RequestConnect()
	sched.FireAll()
	e.UpdateDraftAmount("1")
	e.UpdateDraftDescription("EV charger")
	_, err := e.SubmitDraft()
	require.NoError(t, err)

	assert.Equal(t, before, e.AggregateStats())
}

func TestEngine_AggregateStats_Derived(t *testing.T) {
	e, _ := newTestEngine(t, withDerivedStats())

	s := e.AggregateStats()
	assert.Equal(t, int64(3), s.TotalLoans)
	assert.True(t, decimal.RequireFromString("8.7").Equal(s.TotalFunded))
	assert.True(t, decimal.RequireFromString("4.3").Equal(s.CO2SavedTons))
	assert.True(t, decimal.RequireFromString("50").Equal(s.SuccessRatePercent))

	impact := e.ImpactStats()
	assert.Equal(t, int64(1), impact.SolarProjects)
	assert.Equal(t, int64(1), impact.EVsPurchased)
}

func TestEngine_ImpactStats_Fixed(t *testing.T) {
	e, _ := newTestEngine(t)

	impact := e.ImpactStats()
	assert.True(t, decimal.RequireFromString("1234").Equal(impact.CO2ReducedTons))
	assert.Equal(t, int64(89), impact.SolarProjects)
	assert.Equal(t, int64(245), impact.EVsPurchased)
}

func TestEngine_StatusPresentation(t *testing.T) {
	e, _ := newTestEngine(t)

	assert.Equal(t, domain.IconTrendingUp, e.StatusPresentation("Active").IconKind)
	assert.Equal(t, domain.IconClock, e.StatusPresentation("Pending").IconKind)
	assert.Equal(t, domain.IconCheckCircle, e.StatusPresentation("Completed").IconKind)
	assert.Equal(t, domain.FallbackPresentation, e.StatusPresentation("Cancelled"))
}

func TestEngine_Snapshot(t *testing.T) {
	e, _ := newTestEngine(t)

	e.SelectView(domain.ViewApply)
	e.UpdateDraftAmount("3")

	s := e.Snapshot()
	assert.Equal(t, e.SessionID(), s.SessionID)
	assert.Equal(t, domain.ViewApply, s.View)
	assert.Equal(t, "3", s.Draft.Amount)
	assert.Equal(t, domain.WalletStatusDisconnected, s.Wallet.Status())
	assert.Equal(t, 3, s.LoanCount)
}

func TestEngine_ConcurrentCommands(t *testing.T) {
	e, sched := newTestEngine(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e.RequestConnect()
			e.SelectView(domain.Views()[i%3])
			e.UpdateDraftDescription("desc")
			_ = e.ListLoans()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, sched.Scheduled())
}

func TestEngine_WithClockScheduler(t *testing.T) {
	stats, err := NewFixedStatsProvider(testStatsConfig(), "ETH")
	require.NoError(t, err)

	cfg := testEngineConfig()
	cfg.ConnectDelay = 10 * time.Millisecond
	e := NewLoanDemoEngine(uuid.New(), cfg, EngineDeps{
		Scheduler: NewClockScheduler(),
		Stats:     stats,
		Logger:    newTestLogger(),
	})
	defer e.Close()

	_, ch := e.Subscribe()
	require.True(t, e.RequestConnect())

	select {
	case n := <-ch:
		assert.Equal(t, TitleWalletConnected, n.Title)
	case <-time.After(2 * time.Second):
		t.Fatal("wallet did not connect in time")
	}
	assert.True(t, e.WalletState().IsConnected())
}
