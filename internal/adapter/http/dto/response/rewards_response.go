package response

import "thecodecup/internal/domain/entities"

type RewardHistoryResponse struct {
	ID         string `json:"id"`
	CoffeeName string `json:"coffee_name"`
	Quantity   int    `json:"quantity"`
	Points     int    `json:"points"`
	DateTime   string `json:"date_time"`
}

type RewardsResponse struct {
	LoyaltyStamps  int                     `json:"loyalty_stamps"`
	MaxStamps      int                     `json:"max_stamps"`
	CanResetStamps bool                    `json:"can_reset_stamps"`
	TotalPoints    int                     `json:"total_points"`
	History        []RewardHistoryResponse `json:"history"`
}

func FromRewards(stamps, points int, history []entities.RewardHistoryEntry) RewardsResponse {
	h := make([]RewardHistoryResponse, 0, len(history))
	for _, e := range history {
		h = append(h, RewardHistoryResponse(e))
	}
	return RewardsResponse{
		LoyaltyStamps:  stamps,
		MaxStamps:      entities.MaxLoyaltyStamps,
		CanResetStamps: stamps == entities.MaxLoyaltyStamps,
		TotalPoints:    points,
		History:        h,
	}
}

type RedeemableItemResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	PointsRequired int    `json:"points_required"`
	ValidUntil     string `json:"valid_until"`
}

func FromRedeemableItems(items []entities.RedeemableItem) []RedeemableItemResponse {
	out := make([]RedeemableItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, RedeemableItemResponse(it))
	}
	return out
}

type PointsResponse struct {
	TotalPoints int `json:"total_points"`
}

type StampsResponse struct {
	LoyaltyStamps int `json:"loyalty_stamps"`
}
