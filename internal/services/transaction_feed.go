package services

import (
	"sync"

	"budget-dashboard/internal/models"
)

type transactionFeed struct {
	mu          sync.Mutex
	nextID      int
	subscribers map[int]chan []models.Transaction
}

// NewTransactionFeed creates an in-process hub that pushes full transaction snapshots
func NewTransactionFeed() TransactionFeedInterface {
	return &transactionFeed{
		subscribers: make(map[int]chan []models.Transaction),
	}
}

// Subscribe registers a listener. Each listener buffers one snapshot; a slow
// listener only ever sees the most recent one. Call the returned func to leave.
func (f *transactionFeed) Subscribe() (<-chan []models.Transaction, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	ch := make(chan []models.Transaction, 1)
	f.subscribers[id] = ch

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			delete(f.subscribers, id)
			close(ch)
		})
	}

	return ch, unsubscribe
}

// Publish hands every subscriber its own copy of the snapshot without blocking
func (f *transactionFeed) Publish(snapshot []models.Transaction) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ch := range f.subscribers {
		copied := append(make([]models.Transaction, 0, len(snapshot)), snapshot...)

		select {
		case ch <- copied:
			continue
		default:
		}

		// drop the stale snapshot
		select {
		case <-ch:
		default:
		}

		select {
		case ch <- copied:
		default:
		}
	}
}

func (f *transactionFeed) SubscriberCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subscribers)
}
