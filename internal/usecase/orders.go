package usecase

import "thecodecup/internal/domain/entities"

// OrderBook is the permanent order history, oldest first.
type OrderBook struct {
	orders []entities.Order
}

func NewOrderBook(orders []entities.Order) *OrderBook {
	b := &OrderBook{orders: make([]entities.Order, 0, len(orders))}
	for _, o := range orders {
		b.orders = append(b.orders, o.Clone())
	}
	return b
}

// Add appends o unless an order with the same id already exists.
func (b *OrderBook) Add(o entities.Order) bool {
	if b.index(o.ID) != -1 {
		return false
	}
	b.orders = append(b.orders, o.Clone())
	return true
}

func (b *OrderBook) Get(id string) (entities.Order, bool) {
	i := b.index(id)
	if i == -1 {
		return entities.Order{}, false
	}
	return b.orders[i].Clone(), true
}

// Advance moves the order from -> to. It is a no-op returning false when the
// order is missing, its current status is not from, or to is not the next
// state after from.
func (b *OrderBook) Advance(id string, from, to entities.OrderStatus) (entities.Order, bool) {
	i := b.index(id)
	if i == -1 {
		return entities.Order{}, false
	}
	o := b.orders[i]
	if o.Status != from || !from.CanAdvanceTo(to) {
		return entities.Order{}, false
	}
	o.Status = to
	b.orders[i] = o
	return o.Clone(), true
}

func (b *OrderBook) All() []entities.Order {
	return b.filter(func(entities.OrderStatus) bool { return true })
}

func (b *OrderBook) WaitingPickup() []entities.Order {
	return b.filter(func(s entities.OrderStatus) bool { return s == entities.OrderStatusWaitingPickup })
}

// Ongoing includes delivered orders the user has not confirmed yet.
func (b *OrderBook) Ongoing() []entities.Order {
	return b.filter(func(s entities.OrderStatus) bool {
		return s == entities.OrderStatusOngoing || s == entities.OrderStatusDelivered
	})
}

func (b *OrderBook) Completed() []entities.Order {
	return b.filter(func(s entities.OrderStatus) bool { return s == entities.OrderStatusCompleted })
}

func (b *OrderBook) Len() int { return len(b.orders) }

func (b *OrderBook) filter(keep func(entities.OrderStatus) bool) []entities.Order {
	out := make([]entities.Order, 0, len(b.orders))
	for _, o := range b.orders {
		if keep(o.Status) {
			out = append(out, o.Clone())
		}
	}
	return out
}

func (b *OrderBook) index(id string) int {
	for i, o := range b.orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}
