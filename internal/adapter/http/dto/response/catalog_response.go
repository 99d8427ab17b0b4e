package response

import "thecodecup/internal/domain/entities"

type MenuItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BasePrice   string `json:"base_price"`
	Description string `json:"description"`
}

func FromCatalogItem(it entities.CatalogItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		BasePrice:   money(it.BasePrice),
		Description: it.Description,
	}
}

func FromMenu(items []entities.CatalogItem) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromCatalogItem(it))
	}
	return out
}
