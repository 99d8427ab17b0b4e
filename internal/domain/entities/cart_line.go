package entities

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidLineOption = errors.New("invalid line option")

type Size string

const (
	SizeSmall  Size = "S"
	SizeMedium Size = "M"
	SizeLarge  Size = "L"
)

// Select is the temperature choice of a drink.
type Select string

const (
	SelectHot  Select = "Hot"
	SelectCold Select = "Cold"
)

type Shot string

const (
	ShotSingle Shot = "Single"
	ShotDouble Shot = "Double"
)

var (
	largeSurcharge  = decimal.RequireFromString("1.0")
	doubleSurcharge = decimal.RequireFromString("0.5")
)

// LineOptions are the configurable choices of a cart line.
type LineOptions struct {
	Size   Size   `json:"size"`
	Select Select `json:"select"`
	Shot   Shot   `json:"shot"`
}

// DefaultLineOptions mirrors the preselected choices of the details screen.
func DefaultLineOptions() LineOptions {
	return LineOptions{Size: SizeMedium, Select: SelectHot, Shot: ShotSingle}
}

// Normalize fills blank options with defaults and validates the rest.
func (o LineOptions) Normalize() (LineOptions, error) {
	def := DefaultLineOptions()
	out := LineOptions{
		Size:   Size(strings.ToUpper(strings.TrimSpace(string(o.Size)))),
		Select: Select(strings.TrimSpace(string(o.Select))),
		Shot:   Shot(strings.TrimSpace(string(o.Shot))),
	}
	if out.Size == "" {
		out.Size = def.Size
	}
	if out.Select == "" {
		out.Select = def.Select
	}
	if out.Shot == "" {
		out.Shot = def.Shot
	}

	switch out.Size {
	case SizeSmall, SizeMedium, SizeLarge:
	default:
		return LineOptions{}, ErrInvalidLineOption
	}
	switch {
	case strings.EqualFold(string(out.Select), string(SelectHot)):
		out.Select = SelectHot
	case strings.EqualFold(string(out.Select), string(SelectCold)):
		out.Select = SelectCold
	default:
		return LineOptions{}, ErrInvalidLineOption
	}
	switch {
	case strings.EqualFold(string(out.Shot), string(ShotSingle)):
		out.Shot = ShotSingle
	case strings.EqualFold(string(out.Shot), string(ShotDouble)):
		out.Shot = ShotDouble
	default:
		return LineOptions{}, ErrInvalidLineOption
	}
	return out, nil
}

// UnitPrice is the base price plus option surcharges.
func UnitPrice(item CatalogItem, opts LineOptions) decimal.Decimal {
	price := item.BasePrice
	if opts.Size == SizeLarge {
		price = price.Add(largeSurcharge)
	}
	if opts.Shot == ShotDouble {
		price = price.Add(doubleSurcharge)
	}
	return price
}

// PriceLine computes the line total for quantity units.
func PriceLine(item CatalogItem, opts LineOptions, quantity int) decimal.Decimal {
	return UnitPrice(item, opts).Mul(decimal.NewFromInt(int64(quantity)))
}

// LineKey is the identity of a cart line. Two additions with the same key merge.
type LineKey struct {
	ItemID string `json:"item_id"`
	Size   Size   `json:"size"`
	Select Select `json:"select"`
	Shot   Shot   `json:"shot"`
}

// CartLine is one configured drink plus quantity and its accumulated price.
//
// Quantity is always >= 1; a line is removed rather than dropped to zero.

type CartLine struct {
	Item      CatalogItem     `json:"item"`
	Size      Size            `json:"size"`
	Select    Select          `json:"select"`
	Shot      Shot            `json:"shot"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

func (l CartLine) Key() LineKey {
	return LineKey{ItemID: l.Item.ID, Size: l.Size, Select: l.Select, Shot: l.Shot}
}

func (l CartLine) Options() LineOptions {
	return LineOptions{Size: l.Size, Select: l.Select, Shot: l.Shot}
}
