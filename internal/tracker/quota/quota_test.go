package quota

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracker(limit int, at time.Time) *Tracker {
	tr := New(limit)
	tr.now = func() time.Time { return at }
	tr.dayStamp = at.Format("2006-01-02")
	return tr
}

func TestCanCallUntilLimit(t *testing.T) {
	day := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	tr := newTestTracker(4, day)

	for i := 0; i < 4; i++ {
		require.True(t, tr.CanCall(), "call %d should be allowed", i)
		tr.RegisterCall()
	}
	assert.False(t, tr.CanCall())
}

func TestDayRolloverResetsCounter(t *testing.T) {
	day := time.Date(2026, 2, 1, 23, 50, 0, 0, time.UTC)
	tr := newTestTracker(2, day)

	tr.RegisterCall()
	tr.RegisterCall()
	require.False(t, tr.CanCall())

	nextDay := day.Add(time.Hour)
	tr.now = func() time.Time { return nextDay }

	assert.True(t, tr.CanCall())
	snap := tr.Snapshot()
	assert.Equal(t, 0, snap.CallsToday)
	assert.Equal(t, 2, snap.RemainingToday)
}

func TestTotalCallsSurviveRollover(t *testing.T) {
	day := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	tr := newTestTracker(4, day)

	tr.RegisterCall()
	tr.now = func() time.Time { return day.Add(24 * time.Hour) }
	tr.RegisterCall()

	snap := tr.Snapshot()
	assert.Equal(t, 1, snap.CallsToday)
	assert.Equal(t, 2, snap.TotalCalls)
}

func TestHistoryCappedAtFifty(t *testing.T) {
	day := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	tr := newTestTracker(100, day)

	for i := 0; i < 60; i++ {
		tr.RegisterCall()
	}

	snap := tr.Snapshot()
	require.Len(t, snap.History, 50)
	// Oldest evicted first: the surviving head is call #11.
	assert.Equal(t, 100-11, snap.History[0].Remaining)
	assert.Equal(t, 100-60, snap.History[49].Remaining)
}

func TestSnapshotCopiesHistory(t *testing.T) {
	day := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	tr := newTestTracker(4, day)
	tr.RegisterCall()

	snap := tr.Snapshot()
	snap.History[0].Remaining = -1

	assert.Equal(t, 3, tr.Snapshot().History[0].Remaining)
}
