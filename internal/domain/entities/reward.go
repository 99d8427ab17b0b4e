package entities

const (
	// MaxLoyaltyStamps is the size of the loyalty card.
	MaxLoyaltyStamps = 8
	// PointsPerUnit is awarded for every unit of a completed order.
	PointsPerUnit = 12
	// DrinkRedemptionPoints is the price of a free drink.
	DrinkRedemptionPoints = 180
)

// RewardHistoryEntry records points earned for one line of a completed order.
type RewardHistoryEntry struct {
	ID         string `json:"id"`
	CoffeeName string `json:"coffee_name"`
	Quantity   int    `json:"quantity"`
	Points     int    `json:"points"`
	DateTime   string `json:"date_time"`
}

// RedeemableItem is a drink that can be bought with points.
type RedeemableItem struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	PointsRequired int    `json:"points_required"`
	ValidUntil     string `json:"valid_until"`
}

var redeemableItems = func() []RedeemableItem {
	out := make([]RedeemableItem, 0, len(menu))
	for _, it := range menu {
		out = append(out, RedeemableItem{
			ID:             it.ID,
			Name:           it.Name,
			PointsRequired: DrinkRedemptionPoints,
			ValidUntil:     "05.10.25",
		})
	}
	return out
}()

func RedeemableItems() []RedeemableItem {
	out := make([]RedeemableItem, len(redeemableItems))
	copy(out, redeemableItems)
	return out
}

func FindRedeemableItem(id string) (RedeemableItem, bool) {
	for _, it := range redeemableItems {
		if it.ID == id {
			return it, true
		}
	}
	return RedeemableItem{}, false
}
