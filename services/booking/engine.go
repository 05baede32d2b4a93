package booking

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"easyislanders/models"

	"go.uber.org/zap"
)

// ReminderScheduler queues a future viewing reminder for a confirmed
// viewing. Optional on the engine.
type ReminderScheduler interface {
	ScheduleViewingReminder(ctx context.Context, b models.Booking) error
}

// LifecycleEngine is the background ticker that scans all open bookings on a
// fixed period and advances eligible ones. Each tick is one sequential pass
// run inside the engine's own goroutine, and the pass holds the booking
// service's write mutex, so ticks never overlap and never race a
// user-triggered CompletePayment.
type LifecycleEngine struct {
	Svc        *DefaultBookingService
	Logger     *zap.Logger
	Interval   time.Duration
	Thresholds Thresholds
	// Rand is the uniform draw source for the Bernoulli transition trials.
	// Tests inject a deterministic source.
	Rand      func() float64
	Reminders ReminderScheduler

	mu      sync.Mutex
	stop    chan struct{}
	done    chan struct{}
	running bool
}

// passTimeout bounds one full scan so a stalled persistence call cannot
// wedge the ticker forever.
const passTimeout = 30 * time.Second

// NewLifecycleEngine builds an engine with the default 5s period and
// thresholds.
func NewLifecycleEngine(svc *DefaultBookingService, logger *zap.Logger) *LifecycleEngine {
	return &LifecycleEngine{
		Svc:        svc,
		Logger:     logger,
		Interval:   5 * time.Second,
		Thresholds: DefaultThresholds(),
		Rand:       rand.Float64,
	}
}

// Start schedules the periodic scan. Calling Start on a running engine is a
// no-op.
func (e *LifecycleEngine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return
	}
	e.running = true
	e.stop = make(chan struct{})
	e.done = make(chan struct{})

	go func() {
		defer close(e.done)
		ticker := time.NewTicker(e.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-e.stop:
				return
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), passTimeout)
				e.Tick(ctx)
				cancel()
			}
		}
	}()

	e.logger().Info("lifecycle engine started", zap.Duration("interval", e.Interval))
}

// Stop halts the ticker and waits for an in-flight pass to finish.
func (e *LifecycleEngine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running {
		return
	}
	close(e.stop)
	<-e.done
	e.running = false
	e.logger().Info("lifecycle engine stopped")
}

// Tick runs one full scan pass: every non-terminal booking gets one uniform
// draw, and edges whose draw exceeds their threshold fire. A failure on one
// booking is logged and skipped so the rest of the pass still runs.
func (e *LifecycleEngine) Tick(ctx context.Context) {
	e.Svc.writeMu.Lock()
	defer e.Svc.writeMu.Unlock()

	bookings, err := e.Svc.Repo.GetAll(ctx)
	if err != nil {
		e.logger().Error("lifecycle pass aborted: cannot list bookings", zap.Error(err))
		return
	}

	for i := range bookings {
		b := bookings[i]
		if IsTerminal(b.Status) {
			continue
		}
		if err := e.advance(ctx, &b); err != nil {
			e.logger().Warn("lifecycle transition failed",
				zap.String("booking", b.ID),
				zap.String("status", string(b.Status)),
				zap.Error(err))
		}
	}
}

func (e *LifecycleEngine) advance(ctx context.Context, b *models.Booking) error {
	draw := e.Rand()
	if draw <= e.Thresholds.forStatus(b.Status) {
		return nil
	}

	// Taxi arrival never changes status: the event is notification-only and
	// may fire again on a later tick.
	if b.Status == models.StatusTaxiDispatched {
		e.emit(ctx, b.UserID, "Your Driver Is Arriving",
			fmt.Sprintf("%s is almost at your pickup point.", driverName(b)))
		return nil
	}

	next, ok := NextStatus(b.Status)
	if !ok {
		return nil
	}

	b.Status = next
	if next == models.StatusConfirmed {
		b.PendingPayment = false
	}
	b.UpdatedAt = time.Now()

	if err := e.saveWithRetry(ctx, b); err != nil {
		return err
	}

	switch next {
	case models.StatusConfirmed:
		e.emit(ctx, b.UserID, "Payment Confirmed",
			fmt.Sprintf("Your payment for %s has been received. The booking is confirmed.", b.ItemTitle))
	case models.StatusViewingConfirmed:
		e.emit(ctx, b.UserID, "Viewing Approved",
			fmt.Sprintf("The owner approved your viewing of %s.", b.ItemTitle))
		e.scheduleReminder(ctx, *b)
	}

	e.logger().Info("booking advanced",
		zap.String("booking", b.ID),
		zap.String("status", string(next)))
	return nil
}

// saveWithRetry retries transient persistence failures a few times before
// giving up; the booking is then picked up again on the next tick.
func (e *LifecycleEngine) saveWithRetry(ctx context.Context, b *models.Booking) error {
	const maxAttempts = 3
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = e.Svc.Repo.Update(ctx, b); err == nil {
			return nil
		}
		if attempt < maxAttempts {
			time.Sleep(time.Duration(attempt) * 100 * time.Millisecond)
		}
	}
	return fmt.Errorf("save failed after %d attempts: %w", maxAttempts, err)
}

// emit appends exactly one notification for a fired edge.
func (e *LifecycleEngine) emit(ctx context.Context, userID, title, message string) {
	if e.Svc.NotificationSvc == nil {
		return
	}
	if _, err := e.Svc.NotificationSvc.Append(ctx, userID, models.NotificationBooking, title, message); err != nil {
		e.logger().Warn("transition notification failed",
			zap.String("title", title), zap.Error(err))
	}
}

func (e *LifecycleEngine) scheduleReminder(ctx context.Context, b models.Booking) {
	if e.Reminders == nil || b.ViewingTime == nil || !b.ViewingTime.After(time.Now()) {
		return
	}
	if err := e.Reminders.ScheduleViewingReminder(ctx, b); err != nil {
		e.logger().Warn("viewing reminder scheduling failed",
			zap.String("booking", b.ID), zap.Error(err))
	}
}

func (e *LifecycleEngine) logger() *zap.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return zap.L()
}

func driverName(b *models.Booking) string {
	if b.DriverDetails != nil {
		return b.DriverDetails.Name
	}
	return "Your driver"
}
