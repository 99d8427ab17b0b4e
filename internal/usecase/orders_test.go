package usecase

import (
	"testing"

	"thecodecup/internal/domain/entities"
)

func TestOrderBook_Advance(t *testing.T) {
	b := NewOrderBook(nil)
	b.Add(entities.Order{ID: "o1", Status: entities.OrderStatusWaitingPickup})

	t.Run("forward step", func(t *testing.T) {
		o, ok := b.Advance("o1", entities.OrderStatusWaitingPickup, entities.OrderStatusOngoing)
		if !ok || o.Status != entities.OrderStatusOngoing {
			t.Fatalf("expected ONGOING, got %+v ok=%v", o, ok)
		}
	})

	t.Run("stale from is ignored", func(t *testing.T) {
		if _, ok := b.Advance("o1", entities.OrderStatusWaitingPickup, entities.OrderStatusOngoing); ok {
			t.Fatalf("expected stale transition to be rejected")
		}
	})

	t.Run("skipping a state is rejected", func(t *testing.T) {
		if _, ok := b.Advance("o1", entities.OrderStatusOngoing, entities.OrderStatusCompleted); ok {
			t.Fatalf("expected skip to be rejected")
		}
		o, _ := b.Get("o1")
		if o.Status != entities.OrderStatusOngoing {
			t.Fatalf("status changed to %s", o.Status)
		}
	})

	t.Run("backwards is rejected", func(t *testing.T) {
		if _, ok := b.Advance("o1", entities.OrderStatusOngoing, entities.OrderStatusWaitingPickup); ok {
			t.Fatalf("expected backwards move to be rejected")
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		if _, ok := b.Advance("nope", entities.OrderStatusOngoing, entities.OrderStatusDelivered); ok {
			t.Fatalf("expected false for unknown order")
		}
	})
}

func TestOrderBook_Filters(t *testing.T) {
	b := NewOrderBook([]entities.Order{
		{ID: "a", Status: entities.OrderStatusWaitingPickup},
		{ID: "b", Status: entities.OrderStatusOngoing},
		{ID: "c", Status: entities.OrderStatusDelivered},
		{ID: "d", Status: entities.OrderStatusCompleted},
	})

	if b.Add(entities.Order{ID: "a"}) {
		t.Fatalf("duplicate id must be rejected")
	}
	if got := len(b.WaitingPickup()); got != 1 {
		t.Fatalf("expected 1 waiting, got %d", got)
	}
	ongoing := b.Ongoing()
	if len(ongoing) != 2 || ongoing[0].ID != "b" || ongoing[1].ID != "c" {
		t.Fatalf("ongoing must include delivered orders in order, got %+v", ongoing)
	}
	if got := len(b.Completed()); got != 1 {
		t.Fatalf("expected 1 completed, got %d", got)
	}
	if b.Len() != 4 || len(b.All()) != 4 {
		t.Fatalf("expected 4 orders")
	}
}
