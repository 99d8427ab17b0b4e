package response

import (
	"time"

	"thecodecup/internal/domain/entities"
)

type OrderResponse struct {
	ID              string             `json:"id"`
	CreatedAt       time.Time          `json:"created_at"`
	DateTime        string             `json:"date_time"`
	Lines           []CartLineResponse `json:"lines"`
	Quantity        int                `json:"quantity"`
	Subtotal        string             `json:"subtotal"`
	Discount        string             `json:"discount"`
	TotalPrice      string             `json:"total_price"`
	VoucherID       string             `json:"voucher_id,omitempty"`
	Status          string             `json:"status"`
	ReceiverName    string             `json:"receiver_name"`
	ReceiverPhone   string             `json:"receiver_phone"`
	ShippingAddress string             `json:"shipping_address"`
	PaymentMethod   string             `json:"payment_method"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		CreatedAt:       o.CreatedAt,
		DateTime:        o.DateTime,
		Lines:           FromCartLines(o.Lines),
		Quantity:        o.Quantity(),
		Subtotal:        money(o.Subtotal),
		Discount:        money(o.Discount),
		TotalPrice:      money(o.TotalPrice),
		VoucherID:       o.VoucherID,
		Status:          string(o.Status),
		ReceiverName:    o.ReceiverName,
		ReceiverPhone:   o.ReceiverPhone,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   string(o.PaymentMethod),
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

type QuoteResponse struct {
	Subtotal      string `json:"subtotal"`
	Discount      string `json:"discount"`
	Total         string `json:"total"`
	TotalQuantity int    `json:"total_quantity"`
	VoucherID     string `json:"voucher_id,omitempty"`
	Eligible      bool   `json:"eligible"`
	Reason        string `json:"reason,omitempty"`
}

func FromQuote(q entities.CheckoutQuote) QuoteResponse {
	return QuoteResponse{
		Subtotal:      money(q.Subtotal),
		Discount:      money(q.Discount),
		Total:         money(q.Total),
		TotalQuantity: q.TotalQuantity,
		VoucherID:     q.VoucherID,
		Eligible:      q.Eligible,
		Reason:        q.Reason,
	}
}
