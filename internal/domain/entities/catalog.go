package entities

import "github.com/shopspring/decimal"

// CatalogItem is one purchasable drink on the menu.
//
// Catalog items are created once at process start and never mutated.

type CatalogItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Description string          `json:"description"`
}

const defaultItemDescription = "Single | Iced | Medium | Full Ice"

var menu = []CatalogItem{
	newCatalogItem("1", "Americano", "3.0"),
	newCatalogItem("2", "Cappuccino", "3.5"),
	newCatalogItem("3", "Mocha", "4.0"),
	newCatalogItem("4", "Flat White", "3.5"),
	newCatalogItem("5", "Espresso", "2.5"),
	newCatalogItem("6", "Latte", "4.0"),
	newCatalogItem("7", "Macchiato", "3.5"),
	newCatalogItem("8", "Affogato", "4.5"),
}

func newCatalogItem(id, name, price string) CatalogItem {
	return CatalogItem{
		ID:          id,
		Name:        name,
		BasePrice:   decimal.RequireFromString(price),
		Description: defaultItemDescription,
	}
}

// Menu returns a copy of the static catalog in display order.
func Menu() []CatalogItem {
	out := make([]CatalogItem, len(menu))
	copy(out, menu)
	return out
}

// FindCatalogItem looks an item up by id.
func FindCatalogItem(id string) (CatalogItem, bool) {
	for _, it := range menu {
		if it.ID == id {
			return it, true
		}
	}
	return CatalogItem{}, false
}
