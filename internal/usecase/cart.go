package usecase

import (
	"thecodecup/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Cart keeps the configured lines in insertion order. It is not safe for
// concurrent use; the Store serializes access.
type Cart struct {
	lines []entities.CartLine
}

func NewCart(lines []entities.CartLine) *Cart {
	return &Cart{lines: append([]entities.CartLine{}, lines...)}
}

// Add merges into an existing line with the same key, otherwise appends.
func (c *Cart) Add(item entities.CatalogItem, opts entities.LineOptions, quantity int, lineTotal decimal.Decimal) entities.CartLine {
	key := entities.LineKey{ItemID: item.ID, Size: opts.Size, Select: opts.Select, Shot: opts.Shot}
	for i, l := range c.lines {
		if l.Key() == key {
			l.Quantity += quantity
			l.LineTotal = l.LineTotal.Add(lineTotal)
			c.lines[i] = l
			return l
		}
	}

	line := entities.CartLine{
		Item:      item,
		Size:      opts.Size,
		Select:    opts.Select,
		Shot:      opts.Shot,
		Quantity:  quantity,
		LineTotal: lineTotal,
	}
	c.lines = append(c.lines, line)
	return line
}

// Remove deletes the line with key; false when absent.
func (c *Cart) Remove(key entities.LineKey) bool {
	for i, l := range c.lines {
		if l.Key() == key {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.LineTotal)
	}
	return total
}

// Quantity is the number of units across all lines.
func (c *Cart) Quantity() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Lines() []entities.CartLine {
	return append([]entities.CartLine{}, c.lines...)
}

func (c *Cart) Len() int { return len(c.lines) }

func (c *Cart) Clear() {
	c.lines = c.lines[:0]
}
