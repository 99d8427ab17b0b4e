package usecase

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

type EventKind string

const (
	EventCartChanged        EventKind = "cart_changed"
	EventOrdersChanged      EventKind = "orders_changed"
	EventOrderDelivered     EventKind = "order_delivered"
	EventRewardsChanged     EventKind = "rewards_changed"
	EventVouchersChanged    EventKind = "vouchers_changed"
	EventProfileChanged     EventKind = "profile_changed"
	EventPreferencesChanged EventKind = "preferences_changed"
	EventStateLoaded        EventKind = "state_loaded"
	EventStateCleared       EventKind = "state_cleared"
)

// Event is a typed change notification. OrderID is set for order events.
type Event struct {
	Kind    EventKind `json:"kind"`
	OrderID string    `json:"order_id,omitempty"`
	At      time.Time `json:"at"`
}

const subscriberBuffer = 16

// queuedSub holds every matching event until its reader takes it. pending and
// closed are guarded by the hub lock.
type queuedSub struct {
	kinds   map[EventKind]bool
	pending []Event
	closed  bool
	wake    chan struct{}
	stop    chan struct{}
	out     chan Event
}

// Hub fans events out to subscribers. Emit never blocks. A buffered
// subscriber whose buffer is full misses the event; a queued subscriber
// never does.
type Hub struct {
	mu     sync.Mutex
	logger *zap.Logger
	nextID int
	subs   map[int]chan Event
	queued map[int]*queuedSub
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		logger: logger.With(zap.String("component", "hub")),
		subs:   make(map[int]chan Event),
		queued: make(map[int]*queuedSub),
	}
}

// Subscribe returns the event stream and a function that ends the
// subscription and closes the stream.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	ch := make(chan Event, subscriberBuffer)
	h.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if c, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(c)
			}
		})
	}
}

// SubscribeQueued delivers every event of the given kinds, however slowly the
// reader consumes them. After Close the queued events are still delivered
// before the stream closes. The cancel function drops whatever is left.
func (h *Hub) SubscribeQueued(kinds ...EventKind) (<-chan Event, func()) {
	q := &queuedSub{
		kinds: make(map[EventKind]bool, len(kinds)),
		wake:  make(chan struct{}, 1),
		stop:  make(chan struct{}),
		out:   make(chan Event),
	}
	for _, k := range kinds {
		q.kinds[k] = true
	}

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.queued[id] = q
	h.mu.Unlock()

	go h.pump(q)

	var once sync.Once
	return q.out, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.queued, id)
			h.mu.Unlock()
			close(q.stop)
		})
	}
}

func (h *Hub) pump(q *queuedSub) {
	defer close(q.out)
	for {
		h.mu.Lock()
		batch := q.pending
		q.pending = nil
		closed := q.closed
		h.mu.Unlock()

		for _, e := range batch {
			select {
			case q.out <- e:
			case <-q.stop:
				return
			}
		}
		if closed {
			if len(batch) == 0 {
				return
			}
			continue
		}

		select {
		case <-q.wake:
		case <-q.stop:
			return
		}
	}
}

func (h *Hub) Emit(e Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- e:
		default:
			h.logger.Warn("subscriber buffer full, dropping event",
				zap.String("kind", string(e.Kind)),
				zap.String("order_id", e.OrderID),
			)
		}
	}
	for _, q := range h.queued {
		if !q.kinds[e.Kind] {
			continue
		}
		q.pending = append(q.pending, e)
		select {
		case q.wake <- struct{}{}:
		default:
		}
	}
}

// Close ends every subscription.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
	for id, q := range h.queued {
		delete(h.queued, id)
		q.closed = true
		select {
		case q.wake <- struct{}{}:
		default:
		}
	}
}

func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs) + len(h.queued)
}
