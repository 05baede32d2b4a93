package booking

import (
	"context"
	"testing"
	"time"

	"easyislanders/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEngine(env *testEnv, draw float64) *LifecycleEngine {
	e := NewLifecycleEngine(env.svc, zap.NewNop())
	e.Rand = func() float64 { return draw }
	return e
}

func notificationTitles(t *testing.T, env *testEnv, userID string) []string {
	t.Helper()
	notifications, err := env.notifSvc.List(context.Background(), userID)
	require.NoError(t, err)
	titles := make([]string, len(notifications))
	for i, n := range notifications {
		titles[i] = n.Title
	}
	return titles
}

func TestTickAdvancesViewingRequest(t *testing.T) {
	env := newTestEnv(t)
	b := mustCreateViewing(t, env, "user-1", nil)

	// Draw forced above the 0.5 viewing threshold.
	engine := newTestEngine(env, 0.9)
	engine.Tick(context.Background())

	stored, err := env.repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusViewingConfirmed, stored.Status)

	titles := notificationTitles(t, env, "user-1")
	require.Len(t, titles, 1)
	assert.Equal(t, "Viewing Approved", titles[0])
}

func TestTickBelowThresholdLeavesBookingAlone(t *testing.T) {
	env := newTestEnv(t)
	b := mustCreateViewing(t, env, "user-1", nil)

	engine := newTestEngine(env, 0.1)
	engine.Tick(context.Background())

	stored, err := env.repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusViewingRequested, stored.Status)
	assert.Empty(t, notificationTitles(t, env, "user-1"))
}

func TestTickAdvancesPaymentPending(t *testing.T) {
	env := newTestEnv(t)
	b := createPendingRental(t, env)

	engine := newTestEngine(env, 0.9)
	engine.Tick(context.Background())

	stored, err := env.repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, stored.Status)
	assert.False(t, stored.PendingPayment)

	titles := notificationTitles(t, env, "user-1")
	require.Len(t, titles, 1)
	assert.Equal(t, "Payment Confirmed", titles[0])
}

func TestTerminalStatesNeverAdvance(t *testing.T) {
	env := newTestEnv(t)
	b := mustCreateViewing(t, env, "user-1", nil)

	engine := newTestEngine(env, 0.99)
	engine.Tick(context.Background())

	stored, err := env.repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusViewingConfirmed, stored.Status)
	firstUpdate := stored.UpdatedAt

	// Further ticks leave the terminal booking untouched and emit nothing.
	for i := 0; i < 5; i++ {
		engine.Tick(context.Background())
	}

	stored, err = env.repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusViewingConfirmed, stored.Status)
	assert.Equal(t, firstUpdate, stored.UpdatedAt)
	assert.Len(t, notificationTitles(t, env, "user-1"), 1)
}

func TestTaxiArrivalNotificationRepeats(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.svc.DispatchTaxi(context.Background(), "user-1", models.TaxiRequest{
		Destination:   "Kyrenia Harbour",
		CustomerName:  "Jane Doe",
		CustomerPhone: "+44 7700 900123",
	})
	require.NoError(t, err)

	// Taxi arrival does not change status, so the event may fire on every
	// tick whose draw clears the 0.7 threshold.
	engine := newTestEngine(env, 0.95)
	engine.Tick(context.Background())
	engine.Tick(context.Background())

	titles := notificationTitles(t, env, "user-1")
	arriving := 0
	for _, title := range titles {
		if title == "Your Driver Is Arriving" {
			arriving++
		}
	}
	assert.Equal(t, 2, arriving)
}

func TestAwaitingOwnerSharesViewingEdge(t *testing.T) {
	env := newTestEnv(t)
	b := mustCreateViewing(t, env, "user-1", nil)

	b.Status = models.StatusViewingAwaitingOwner
	require.NoError(t, env.repo.Update(context.Background(), b))

	engine := newTestEngine(env, 0.9)
	engine.Tick(context.Background())

	stored, err := env.repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusViewingConfirmed, stored.Status)
}

type recordingScheduler struct {
	scheduled []models.Booking
}

func (r *recordingScheduler) ScheduleViewingReminder(ctx context.Context, b models.Booking) error {
	r.scheduled = append(r.scheduled, b)
	return nil
}

func TestViewingConfirmationSchedulesReminder(t *testing.T) {
	env := newTestEnv(t)
	viewingAt := time.Now().Add(24 * time.Hour)
	b := mustCreateViewing(t, env, "user-1", &viewingAt)

	scheduler := &recordingScheduler{}
	engine := newTestEngine(env, 0.9)
	engine.Reminders = scheduler
	engine.Tick(context.Background())

	require.Len(t, scheduler.scheduled, 1)
	assert.Equal(t, b.ID, scheduler.scheduled[0].ID)
}

func TestReminderSkippedWithoutViewingTime(t *testing.T) {
	env := newTestEnv(t)
	mustCreateViewing(t, env, "user-1", nil)

	scheduler := &recordingScheduler{}
	engine := newTestEngine(env, 0.9)
	engine.Reminders = scheduler
	engine.Tick(context.Background())

	assert.Empty(t, scheduler.scheduled)
}

func TestStartStop(t *testing.T) {
	env := newTestEnv(t)
	engine := newTestEngine(env, 0.0)
	engine.Interval = 10 * time.Millisecond

	engine.Start()
	engine.Start() // second Start is a no-op
	time.Sleep(50 * time.Millisecond)
	engine.Stop()
	engine.Stop() // second Stop is a no-op
}

func TestTransitionTable(t *testing.T) {
	next, ok := NextStatus(models.StatusPaymentPending)
	require.True(t, ok)
	assert.Equal(t, models.StatusConfirmed, next)

	next, ok = NextStatus(models.StatusViewingRequested)
	require.True(t, ok)
	assert.Equal(t, models.StatusViewingConfirmed, next)

	next, ok = NextStatus(models.StatusViewingAwaitingOwner)
	require.True(t, ok)
	assert.Equal(t, models.StatusViewingConfirmed, next)

	_, ok = NextStatus(models.StatusTaxiDispatched)
	assert.False(t, ok)
	_, ok = NextStatus(models.StatusConfirmed)
	assert.False(t, ok)

	assert.True(t, IsTerminal(models.StatusConfirmed))
	assert.True(t, IsTerminal(models.StatusViewingConfirmed))
	assert.False(t, IsTerminal(models.StatusPaymentPending))
	assert.False(t, IsTerminal(models.StatusTaxiDispatched))
}
