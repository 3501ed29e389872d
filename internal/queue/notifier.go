package queue

import "log"

// Notifier is the producer side of the notification outbox. Emitting is
// best-effort: a full or closed queue is logged and the event dropped, so the
// triggering operation never fails because of notification fan-out.
type Notifier struct {
	queue Queue
}

// NewNotifier creates a Notifier backed by the given queue.
func NewNotifier(queue Queue) *Notifier {
	return &Notifier{queue: queue}
}

// Notify enqueues a notification event. Never returns an error.
func (n *Notifier) Notify(event NotificationEvent) {
	if err := n.queue.Enqueue(event); err != nil {
		log.Printf("Dropping notification for %s: %v", event.RecipientID.Hex(), err)
	}
}
