package request

import (
	"strings"

	"thecodecup/internal/domain/entities"
)

// AddCartLineRequest configures a drink and adds it to the cart. Quantity
// defaults to 1 when omitted.
type AddCartLineRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Size     string `json:"size"`
	Select   string `json:"select"`
	Shot     string `json:"shot"`
	Quantity *int   `json:"quantity"`
}

func (r AddCartLineRequest) ResolveItemID() string {
	return strings.TrimSpace(r.ItemID)
}

func (r AddCartLineRequest) ResolveQuantity() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

func (r AddCartLineRequest) ResolveOptions() (entities.LineOptions, error) {
	return entities.LineOptions{
		Size:   entities.Size(r.Size),
		Select: entities.Select(r.Select),
		Shot:   entities.Shot(r.Shot),
	}.Normalize()
}

// RemoveCartLineRequest identifies a cart line by item and options.
type RemoveCartLineRequest struct {
	ItemID string `json:"item_id" binding:"required"`
	Size   string `json:"size"`
	Select string `json:"select"`
	Shot   string `json:"shot"`
}

func (r RemoveCartLineRequest) ResolveKey() (entities.LineKey, error) {
	opts, err := entities.LineOptions{
		Size:   entities.Size(r.Size),
		Select: entities.Select(r.Select),
		Shot:   entities.Shot(r.Shot),
	}.Normalize()
	if err != nil {
		return entities.LineKey{}, err
	}
	return entities.LineKey{
		ItemID: strings.TrimSpace(r.ItemID),
		Size:   opts.Size,
		Select: opts.Select,
		Shot:   opts.Shot,
	}, nil
}
