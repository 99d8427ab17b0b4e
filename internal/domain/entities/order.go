package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the simulated fulfillment lifecycle of an order.
//
// Status only moves forward:
//
//	WAITING_PICKUP -> ONGOING -> DELIVERED -> COMPLETED
//
// The first two transitions are timer-driven; DELIVERED -> COMPLETED is the
// user's "confirm receipt".

type OrderStatus string

const (
	OrderStatusWaitingPickup OrderStatus = "WAITING_PICKUP"
	OrderStatusOngoing       OrderStatus = "ONGOING"
	OrderStatusDelivered     OrderStatus = "DELIVERED"
	OrderStatusCompleted     OrderStatus = "COMPLETED"
)

var orderStatusRank = map[OrderStatus]int{
	OrderStatusWaitingPickup: 0,
	OrderStatusOngoing:       1,
	OrderStatusDelivered:     2,
	OrderStatusCompleted:     3,
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusRank[s]
	return ok
}

// CanAdvanceTo reports whether next is the immediate successor of s.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	from, ok := orderStatusRank[s]
	if !ok {
		return false
	}
	to, ok := orderStatusRank[next]
	if !ok {
		return false
	}
	return to == from+1
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted
}

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCard         PaymentMethod = "CARD"
)

// ParsePaymentMethod accepts any casing; blank means cash.
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	v := PaymentMethod(strings.ToUpper(strings.TrimSpace(raw)))
	switch v {
	case "":
		return PaymentMethodCash, true
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodCard:
		return v, true
	}
	return "", false
}

// OrderDateTimeLayout is the display format stored with orders and reward history.
const OrderDateTimeLayout = "02 January | 03:04 PM"

// Order is a checked-out cart. Orders are never deleted.
//
// Lines is a frozen copy of the cart at checkout time. TotalPrice is the
// post-discount amount; Subtotal and Discount keep the breakdown.

type Order struct {
	ID              string          `json:"id"`
	CreatedAt       time.Time       `json:"created_at"`
	DateTime        string          `json:"date_time"`
	Lines           []CartLine      `json:"lines"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Discount        decimal.Decimal `json:"discount"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	VoucherID       string          `json:"voucher_id,omitempty"`
	Status          OrderStatus     `json:"status"`
	ReceiverName    string          `json:"receiver_name"`
	ReceiverPhone   string          `json:"receiver_phone"`
	ShippingAddress string          `json:"shipping_address"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
}

// Quantity is the total number of units across all lines.
func (o Order) Quantity() int {
	n := 0
	for _, l := range o.Lines {
		n += l.Quantity
	}
	return n
}

// Clone returns a copy that shares no slices with o.
func (o Order) Clone() Order {
	out := o
	out.Lines = append([]CartLine(nil), o.Lines...)
	return out
}
