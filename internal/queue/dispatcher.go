package queue

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Malmeu/food-force-v2-sub001/internal/models"
)

// WriteTimeout bounds each notification insert during dispatch.
const WriteTimeout = 5 * time.Second

// NotificationWriter is the interface the dispatcher needs to persist notifications.
type NotificationWriter interface {
	Create(ctx context.Context, notification *models.Notification) error
}

// Dispatcher consumes notification events and writes Notification documents.
// Write failures are logged and the event is dropped: fan-out is a best-effort
// side channel, never part of the triggering operation.
type Dispatcher struct {
	queue       *MemoryQueue
	writer      NotificationWriter
	workerCount int
	wg          sync.WaitGroup
	stopOnce    sync.Once
}

// NewDispatcher creates a notification dispatcher.
func NewDispatcher(queue *MemoryQueue, writer NotificationWriter, workerCount int) *Dispatcher {
	return &Dispatcher{
		queue:       queue,
		writer:      writer,
		workerCount: workerCount,
	}
}

// Start begins dispatching with the configured number of workers.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workerCount; i++ {
		d.wg.Add(1)
		go d.worker(ctx, i)
	}
	log.Printf("Notification dispatcher started with %d workers", d.workerCount)
}

// Stop closes the queue and waits for workers to drain it.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		d.queue.Close()
	})
	d.wg.Wait()
	log.Println("Notification dispatcher stopped")
}

func (d *Dispatcher) worker(ctx context.Context, id int) {
	defer d.wg.Done()

	for {
		event, err := d.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, ErrQueueClosed) || errors.Is(err, context.Canceled) {
				log.Printf("Notification worker %d shutting down", id)
				return
			}
			continue
		}
		d.dispatch(event)
	}
}

func (d *Dispatcher) dispatch(event NotificationEvent) {
	notification := &models.Notification{
		RecipientID: event.RecipientID,
		Type:        event.Type,
		Title:       event.Title,
		Message:     event.Message,
		RelatedKind: event.RelatedKind,
	}
	if !event.RelatedID.IsZero() {
		relatedID := event.RelatedID
		notification.RelatedID = &relatedID
	}

	// Dispatch runs outside any request context; bound the write separately.
	writeCtx, cancel := context.WithTimeout(context.Background(), WriteTimeout)
	defer cancel()

	if err := d.writer.Create(writeCtx, notification); err != nil {
		log.Printf("Failed to write notification for %s: %v", event.RecipientID.Hex(), err)
	}
}
