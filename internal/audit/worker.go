package audit

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mmynk/profitshare/internal/models"
	"github.com/mmynk/profitshare/internal/storage"
)

// Worker saves events from a buffered channel on a single goroutine.
type Worker struct {
	eventCh chan models.AuditEvent
	store   storage.EventStore
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewWorker(store storage.EventStore, bufferSize int) *Worker {
	ctx, cancel := context.WithCancel(context.Background())
	return &Worker{
		eventCh: make(chan models.AuditEvent, bufferSize),
		store:   store,
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (w *Worker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-w.ctx.Done():
				slog.Info("Draining audit events before shutdown", "remaining_events", len(w.eventCh))
				for len(w.eventCh) > 0 {
					w.save(<-w.eventCh)
				}
				return
			case event := <-w.eventCh:
				w.save(event)
			}
		}
	}()
}

// save writes outside the worker context, which only signals shutdown, so an
// event picked up after Shutdown is still stored.
func (w *Worker) save(event models.AuditEvent) {
	if err := w.store.SaveEvent(context.WithoutCancel(w.ctx), event); err != nil {
		slog.Error("Failed to save audit event", "error", err, "event_type", event.Type)
	}
}

// Log queues an event. It never blocks: when the buffer is full the event
// is dropped with a warning.
func (w *Worker) Log(event models.AuditEvent) {
	select {
	case w.eventCh <- event:
	default:
		slog.Warn("Audit channel full, dropping event", "event_type", event.Type)
	}
}

// Shutdown stops the worker after saving every queued event.
func (w *Worker) Shutdown() {
	w.cancel()
	w.wg.Wait()
}
