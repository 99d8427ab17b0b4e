package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"thecodecup/internal/domain/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type transition struct {
	id       string
	from, to entities.OrderStatus
}

type advanceRecorder struct {
	mu     sync.Mutex
	seen   []transition
	result bool
}

func (r *advanceRecorder) advance(id string, from, to entities.OrderStatus) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, transition{id: id, from: from, to: to})
	return r.result
}

func (r *advanceRecorder) transitions() []transition {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]transition{}, r.seen...)
}

func closeScheduler(t *testing.T, s *FulfillmentScheduler) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.Close(ctx))
}

func TestFulfillmentScheduler_RunsFullChain(t *testing.T) {
	rec := &advanceRecorder{result: true}
	s := NewFulfillmentScheduler(10*time.Millisecond, 10*time.Millisecond, rec.advance, zap.NewNop())
	defer closeScheduler(t, s)

	require.True(t, s.Start("o1", entities.OrderStatusWaitingPickup))

	require.Eventually(t, func() bool { return len(rec.transitions()) == 2 }, 2*time.Second, 5*time.Millisecond)
	got := rec.transitions()
	require.Equal(t, transition{"o1", entities.OrderStatusWaitingPickup, entities.OrderStatusOngoing}, got[0])
	require.Equal(t, transition{"o1", entities.OrderStatusOngoing, entities.OrderStatusDelivered}, got[1])
	require.Eventually(t, func() bool { return !s.Active("o1") }, time.Second, 5*time.Millisecond)
}

func TestFulfillmentScheduler_ResumeFromOngoing(t *testing.T) {
	rec := &advanceRecorder{result: true}
	s := NewFulfillmentScheduler(time.Hour, 10*time.Millisecond, rec.advance, zap.NewNop())
	defer closeScheduler(t, s)

	require.True(t, s.Start("o1", entities.OrderStatusOngoing))
	require.Eventually(t, func() bool { return len(rec.transitions()) == 1 }, 2*time.Second, 5*time.Millisecond)
	require.Equal(t, entities.OrderStatusDelivered, rec.transitions()[0].to)
}

func TestFulfillmentScheduler_Start(t *testing.T) {
	rec := &advanceRecorder{result: true}
	s := NewFulfillmentScheduler(time.Hour, time.Hour, rec.advance, zap.NewNop())
	defer closeScheduler(t, s)

	t.Run("second start is a no-op", func(t *testing.T) {
		require.True(t, s.Start("o1", entities.OrderStatusWaitingPickup))
		require.False(t, s.Start("o1", entities.OrderStatusWaitingPickup))
		require.False(t, s.Start("o1", entities.OrderStatusOngoing))
		require.Equal(t, 1, s.Len())
	})

	t.Run("non timer states are refused", func(t *testing.T) {
		require.False(t, s.Start("o2", entities.OrderStatusDelivered))
		require.False(t, s.Start("o2", entities.OrderStatusCompleted))
		require.False(t, s.Active("o2"))
	})

	t.Run("cancel stops the chain", func(t *testing.T) {
		require.True(t, s.Cancel("o1"))
		require.False(t, s.Active("o1"))
		require.False(t, s.Cancel("o1"))
		require.True(t, s.Start("o1", entities.OrderStatusWaitingPickup))
	})

	t.Run("cancel all", func(t *testing.T) {
		s.Start("o3", entities.OrderStatusOngoing)
		s.CancelAll()
		require.Equal(t, 0, s.Len())
	})

	require.Empty(t, rec.transitions())
}

func TestFulfillmentScheduler_StaleCallbackContinues(t *testing.T) {
	rec := &advanceRecorder{result: false}
	s := NewFulfillmentScheduler(5*time.Millisecond, 5*time.Millisecond, rec.advance, zap.NewNop())
	defer closeScheduler(t, s)

	s.Start("o1", entities.OrderStatusWaitingPickup)
	require.Eventually(t, func() bool { return len(rec.transitions()) == 2 }, 2*time.Second, 5*time.Millisecond)
}

func TestFulfillmentScheduler_Close(t *testing.T) {
	rec := &advanceRecorder{result: true}
	s := NewFulfillmentScheduler(time.Hour, time.Hour, rec.advance, zap.NewNop())
	s.Start("o1", entities.OrderStatusWaitingPickup)
	s.Start("o2", entities.OrderStatusOngoing)

	closeScheduler(t, s)
	require.Equal(t, 0, s.Len())
	require.False(t, s.Start("o3", entities.OrderStatusWaitingPickup))
	require.Empty(t, rec.transitions())
}
