// Package queue provides the in-process outbox for notification fan-out.
package queue

import (
	"context"
	"sync"

	"github.com/Malmeu/food-force-v2-sub001/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationEvent is one pending notification write. Events are emitted by
// services as a side effect of mutations and consumed by the Dispatcher.
type NotificationEvent struct {
	RecipientID primitive.ObjectID
	Type        models.NotificationType
	Title       string
	Message     string
	RelatedID   primitive.ObjectID
	RelatedKind string
}

// Queue defines the interface for the notification outbox.
type Queue interface {
	// Enqueue adds an event to the queue.
	Enqueue(event NotificationEvent) error
	// Dequeue removes and returns the next event, blocking until one is available.
	Dequeue(ctx context.Context) (NotificationEvent, error)
	// Close closes the queue.
	Close()
	// Len returns the current number of events in the queue.
	Len() int
	// Capacity returns the queue capacity.
	Capacity() int
}

// Ensure MemoryQueue implements Queue interface
var _ Queue = (*MemoryQueue)(nil)

// MemoryQueue is an in-memory bounded queue of notification events.
type MemoryQueue struct {
	events   chan NotificationEvent
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewMemoryQueue creates a new in-memory queue with the given capacity.
func NewMemoryQueue(capacity int) *MemoryQueue {
	return &MemoryQueue{
		events:   make(chan NotificationEvent, capacity),
		capacity: capacity,
	}
}

// Enqueue adds an event to the queue. Returns error if queue is full or closed.
// Lock is held during the entire operation to prevent race condition with Close().
func (q *MemoryQueue) Enqueue(event NotificationEvent) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.events <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue returns the next event from the queue, blocking until one is available.
// Returns error if context is cancelled or queue is closed.
func (q *MemoryQueue) Dequeue(ctx context.Context) (NotificationEvent, error) {
	select {
	case <-ctx.Done():
		return NotificationEvent{}, ctx.Err()
	case event, ok := <-q.events:
		if !ok {
			return NotificationEvent{}, ErrQueueClosed
		}
		return event, nil
	}
}

// Close closes the queue. No more events can be enqueued after closing.
func (q *MemoryQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.events)
	}
}

// Len returns the current number of events in the queue.
func (q *MemoryQueue) Len() int {
	return len(q.events)
}

// Capacity returns the queue capacity.
func (q *MemoryQueue) Capacity() int {
	return q.capacity
}
