package usecase

import (
	"context"
	"sync"
	"time"

	"thecodecup/internal/domain/entities"

	"go.uber.org/zap"
)

const (
	DefaultPickupDelay   = 2 * time.Second
	DefaultDeliveryDelay = 3 * time.Second
)

// AdvanceFunc applies a timer-driven transition. It must be a no-op returning
// false when the order is no longer in from.
type AdvanceFunc func(orderID string, from, to entities.OrderStatus) bool

// FulfillmentScheduler is the registry of simulated fulfillment chains, one
// per order id. A chain waits PickupDelay, moves WAITING_PICKUP -> ONGOING,
// waits DeliveryDelay and moves ONGOING -> DELIVERED.
type FulfillmentScheduler struct {
	pickupDelay   time.Duration
	deliveryDelay time.Duration
	advance       AdvanceFunc
	logger        *zap.Logger

	mu     sync.Mutex
	chains map[string]*fulfillmentChain
	closed bool
	wg     sync.WaitGroup
}

type fulfillmentChain struct {
	cancel context.CancelFunc
}

func NewFulfillmentScheduler(pickupDelay, deliveryDelay time.Duration, advance AdvanceFunc, logger *zap.Logger) *FulfillmentScheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FulfillmentScheduler{
		pickupDelay:   pickupDelay,
		deliveryDelay: deliveryDelay,
		advance:       advance,
		logger:        logger.With(zap.String("component", "fulfillment")),
		chains:        make(map[string]*fulfillmentChain),
	}
}

// Start launches a chain for orderID beginning at from. It returns false when
// a chain is already active for the id, from is not a timer-driven state, or
// the scheduler is closed.
func (s *FulfillmentScheduler) Start(orderID string, from entities.OrderStatus) bool {
	if from != entities.OrderStatusWaitingPickup && from != entities.OrderStatusOngoing {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	if _, ok := s.chains[orderID]; ok {
		s.logger.Debug("simulation already active", zap.String("order_id", orderID))
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &fulfillmentChain{cancel: cancel}
	s.chains[orderID] = c
	s.wg.Add(1)
	go s.run(ctx, c, orderID, from)

	s.logger.Debug("simulation started", zap.String("order_id", orderID), zap.String("from", string(from)))
	return true
}

func (s *FulfillmentScheduler) run(ctx context.Context, c *fulfillmentChain, orderID string, from entities.OrderStatus) {
	defer s.wg.Done()
	defer s.release(orderID, c)

	if from == entities.OrderStatusWaitingPickup {
		if !sleepCtx(ctx, s.pickupDelay) {
			return
		}
		if !s.advance(orderID, entities.OrderStatusWaitingPickup, entities.OrderStatusOngoing) {
			s.logger.Debug("stale pickup timer ignored", zap.String("order_id", orderID))
		}
	}

	if !sleepCtx(ctx, s.deliveryDelay) {
		return
	}
	if !s.advance(orderID, entities.OrderStatusOngoing, entities.OrderStatusDelivered) {
		s.logger.Debug("stale delivery timer ignored", zap.String("order_id", orderID))
	}
}

func (s *FulfillmentScheduler) release(orderID string, c *fulfillmentChain) {
	c.cancel()
	s.mu.Lock()
	if s.chains[orderID] == c {
		delete(s.chains, orderID)
	}
	s.mu.Unlock()
}

// Cancel stops the chain for orderID, if any.
func (s *FulfillmentScheduler) Cancel(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.chains[orderID]
	if !ok {
		return false
	}
	c.cancel()
	delete(s.chains, orderID)
	return true
}

func (s *FulfillmentScheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range s.chains {
		c.cancel()
		delete(s.chains, id)
	}
}

func (s *FulfillmentScheduler) Active(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.chains[orderID]
	return ok
}

func (s *FulfillmentScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.chains)
}

// Close cancels every chain, refuses new ones and waits for running
// goroutines to exit or ctx to end.
func (s *FulfillmentScheduler) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.CancelAll()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return ctx.Err() == nil
	}
}
