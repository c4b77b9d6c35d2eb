package audit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"dayplan/internal/eventbus"
	"dayplan/internal/schedule"
	logx "dayplan/pkg/logx"
)

// Recorder subscribes to schedule mutation events and appends them to the
// store. Writes are rate-limited so an event storm can never stall the bus
// or flood the log file; excess events are counted and dropped.
type Recorder struct {
	log   logx.Logger
	bus   eventbus.Bus
	store Store
	lim   *rate.Limiter

	mu      sync.Mutex
	unsub   func()
	wg      sync.WaitGroup
	dropped uint64
}

// NewRecorder wires a recorder. ratePerSec bounds audit writes per second
// (<= 0 means a default of 50).
func NewRecorder(store Store, bus eventbus.Bus, ratePerSec int, log logx.Logger) *Recorder {
	if log.IsZero() {
		log = logx.Nop()
	}
	if ratePerSec <= 0 {
		ratePerSec = 50
	}
	return &Recorder{
		log:   log,
		bus:   bus,
		store: store,
		lim:   rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec),
	}
}

// Start begins consuming events until ctx is done or Stop is called.
// It is a no-op when the store or bus is absent.
func (r *Recorder) Start(ctx context.Context) {
	if r.store == nil || r.bus == nil {
		return
	}

	r.mu.Lock()
	if r.unsub != nil {
		r.mu.Unlock()
		return
	}
	ch, unsub := r.bus.Subscribe(64)
	r.unsub = unsub
	r.mu.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-ch:
				if !ok {
					return
				}
				r.record(ctx, ev)
			}
		}
	}()
}

// Stop unsubscribes and waits for the worker to drain.
func (r *Recorder) Stop() {
	r.mu.Lock()
	unsub := r.unsub
	r.unsub = nil
	r.mu.Unlock()

	if unsub != nil {
		unsub()
	}
	r.wg.Wait()
}

// Dropped reports how many events were skipped by the rate limiter.
func (r *Recorder) Dropped() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

func (r *Recorder) record(ctx context.Context, ev eventbus.Event) {
	te, ok := ev.Data.(schedule.TaskEvent)
	if !ok {
		return
	}
	if !r.lim.Allow() {
		r.mu.Lock()
		r.dropped++
		r.mu.Unlock()
		return
	}

	t := te.Task
	e := Entry{
		At:          ev.Time,
		Action:      ev.Type,
		TaskID:      t.ID,
		Description: t.Description,
		Start:       t.Start.String(),
		End:         t.End.String(),
		Priority:    t.Priority.String(),
		Status:      t.Status.String(),
	}

	wctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := r.store.Append(wctx, e); err != nil {
		r.log.Warn("audit append failed", logx.Err(err), logx.String("action", e.Action))
	}
}
