package response

import (
	"thecodecup/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CartLineResponse struct {
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Select    string `json:"select"`
	Shot      string `json:"shot"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

type CartResponse struct {
	Lines    []CartLineResponse `json:"lines"`
	Total    string             `json:"total"`
	Quantity int                `json:"quantity"`
}

func FromCartLine(l entities.CartLine) CartLineResponse {
	unit := decimal.Zero
	if l.Quantity > 0 {
		unit = l.LineTotal.Div(decimal.NewFromInt(int64(l.Quantity)))
	}
	return CartLineResponse{
		ItemID:    l.Item.ID,
		Name:      l.Item.Name,
		Size:      string(l.Size),
		Select:    string(l.Select),
		Shot:      string(l.Shot),
		Quantity:  l.Quantity,
		UnitPrice: money(unit),
		LineTotal: money(l.LineTotal),
	}
}

func FromCartLines(lines []entities.CartLine) []CartLineResponse {
	out := make([]CartLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, FromCartLine(l))
	}
	return out
}

func FromCart(lines []entities.CartLine, total decimal.Decimal, quantity int) CartResponse {
	return CartResponse{
		Lines:    FromCartLines(lines),
		Total:    money(total),
		Quantity: quantity,
	}
}
