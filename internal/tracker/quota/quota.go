package quota

import (
	"sync"
	"time"
)

const historyCap = 50

type CallRecord struct {
	Timestamp time.Time
	Remaining int
}

type Snapshot struct {
	CallsToday     int
	RemainingToday int
	DailyLimit     int
	TotalCalls     int
	LastReset      time.Time
	History        []CallRecord
}

// Tracker counts successful metered provider calls against a daily ceiling.
// The counter resets lazily on the first access of a new calendar day.
type Tracker struct {
	mu         sync.Mutex
	dailyLimit int
	callsToday int
	dayStamp   string
	totalCalls int
	lastReset  time.Time
	history    []CallRecord
	now        func() time.Time
}

func New(dailyLimit int) *Tracker {
	now := time.Now
	return &Tracker{
		dailyLimit: dailyLimit,
		dayStamp:   now().Format("2006-01-02"),
		lastReset:  now(),
		now:        now,
	}
}

// CanCall reports whether another metered call is allowed today.
func (t *Tracker) CanCall() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollover()
	return t.callsToday < t.dailyLimit
}

// RegisterCall records one successful metered call. Callers must invoke it
// only after a metered provider actually returned data; failed attempts and
// unmetered sources do not count.
func (t *Tracker) RegisterCall() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollover()
	t.callsToday++
	t.totalCalls++
	t.history = append(t.history, CallRecord{
		Timestamp: t.now(),
		Remaining: t.dailyLimit - t.callsToday,
	})
	if len(t.history) > historyCap {
		t.history = t.history[len(t.history)-historyCap:]
	}
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollover()
	history := make([]CallRecord, len(t.history))
	copy(history, t.history)
	return Snapshot{
		CallsToday:     t.callsToday,
		RemainingToday: t.dailyLimit - t.callsToday,
		DailyLimit:     t.dailyLimit,
		TotalCalls:     t.totalCalls,
		LastReset:      t.lastReset,
		History:        history,
	}
}

// rollover resets the daily counter when the calendar day changed.
// Comparing day strings instead of elapsed time makes the reset happen
// exactly once per local day regardless of process uptime.
func (t *Tracker) rollover() {
	today := t.now().Format("2006-01-02")
	if t.dayStamp != today {
		t.callsToday = 0
		t.dayStamp = today
		t.lastReset = t.now()
	}
}
