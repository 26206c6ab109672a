package planner

import (
	"sync"
	"time"
)

type ChangeKind string

const (
	ChangeCreated  ChangeKind = "created"
	ChangeUpdated  ChangeKind = "updated"
	ChangeDeleted  ChangeKind = "deleted"
	ChangeReset    ChangeKind = "reset"
	ChangeImported ChangeKind = "imported"
)

// Change announces that the collection stored under Key was mutated
type Change struct {
	Key  string     `json:"key"`
	Kind ChangeKind `json:"kind"`
	ID   string     `json:"id,omitempty"`
	At   time.Time  `json:"at"`
}

const subscriberBuffer = 16

// Broker fans changes out to subscribers. A subscriber that falls behind
// misses events rather than blocking the writer.
type Broker struct {
	mu          sync.Mutex
	subscribers map[chan Change]struct{}
}

func NewBroker() *Broker {
	return &Broker{subscribers: map[chan Change]struct{}{}}
}

// Subscribe returns a channel of changes and a function that detaches it.
// The channel is closed once cancel has been called.
func (b *Broker) Subscribe() (<-chan Change, func()) {
	ch := make(chan Change, subscriberBuffer)
	b.mu.Lock()
	b.subscribers[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subscribers, ch)
			close(ch)
		})
	}
	return ch, cancel
}

func (b *Broker) Publish(c Change) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subscribers {
		select {
		case ch <- c:
		default:
		}
	}
}

func (b *Broker) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers)
}
