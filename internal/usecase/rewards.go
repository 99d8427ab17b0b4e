package usecase

import (
	"thecodecup/internal/domain/entities"

	"github.com/google/uuid"
)

// RewardsLedger tracks the loyalty card, the points balance and the
// append-only history of earned points.
//
// Invariants: 0 <= Stamps <= MaxLoyaltyStamps and Points >= 0.

type RewardsLedger struct {
	stamps  int
	points  int
	history []entities.RewardHistoryEntry
	newID   func() string
}

func NewRewardsLedger(stamps, points int, history []entities.RewardHistoryEntry) *RewardsLedger {
	if stamps < 0 {
		stamps = 0
	}
	if stamps > entities.MaxLoyaltyStamps {
		stamps = entities.MaxLoyaltyStamps
	}
	if points < 0 {
		points = 0
	}
	return &RewardsLedger{
		stamps:  stamps,
		points:  points,
		history: append([]entities.RewardHistoryEntry{}, history...),
		newID:   uuid.NewString,
	}
}

func (r *RewardsLedger) Stamps() int { return r.stamps }
func (r *RewardsLedger) Points() int { return r.points }

func (r *RewardsLedger) History() []entities.RewardHistoryEntry {
	return append([]entities.RewardHistoryEntry{}, r.history...)
}

// IncrementStamps adds one stamp, never past the card size.
func (r *RewardsLedger) IncrementStamps() {
	if r.stamps < entities.MaxLoyaltyStamps {
		r.stamps++
	}
}

// ResetStamps empties the card. Callers must only reset a full card.
func (r *RewardsLedger) ResetStamps() {
	r.stamps = 0
}

// AddOrderPoints awards PointsPerUnit for every unit of the order, one history
// entry per line. It returns the points earned.
func (r *RewardsLedger) AddOrderPoints(order entities.Order) int {
	earned := 0
	for _, l := range order.Lines {
		pts := entities.PointsPerUnit * l.Quantity
		earned += pts
		r.history = append(r.history, entities.RewardHistoryEntry{
			ID:         r.newID(),
			CoffeeName: l.Item.Name,
			Quantity:   l.Quantity,
			Points:     pts,
			DateTime:   order.DateTime,
		})
	}
	r.points += earned
	return earned
}

// Redeem deducts required points iff the balance covers them.
func (r *RewardsLedger) Redeem(required int) bool {
	if required < 0 || r.points < required {
		return false
	}
	r.points -= required
	return true
}
