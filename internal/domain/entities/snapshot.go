package entities

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Snapshot is the single persisted aggregate of all durable state.
//
// It is read once at startup and rewritten after every mutating command.
// There is no schema version: data that does not decode is treated as
// "no snapshot".

type Snapshot struct {
	Cart                 []CartLine           `json:"cart"`
	Orders               []Order              `json:"orders"`
	LoyaltyStamps        int                  `json:"loyalty_stamps"`
	TotalPoints          int                  `json:"total_points"`
	RewardHistory        []RewardHistoryEntry `json:"reward_history"`
	Vouchers             []Voucher            `json:"vouchers"`
	UserProfile          UserProfile          `json:"user_profile"`
	IsDarkMode           bool                 `json:"is_dark_mode"`
	NotificationsEnabled bool                 `json:"notifications_enabled"`
}

func DefaultSnapshot() Snapshot {
	prefs := DefaultPreferences()
	return Snapshot{
		Cart:                 []CartLine{},
		Orders:               []Order{},
		RewardHistory:        []RewardHistoryEntry{},
		Vouchers:             []Voucher{},
		UserProfile:          DefaultUserProfile(),
		IsDarkMode:           prefs.DarkMode,
		NotificationsEnabled: prefs.NotificationsEnabled,
	}
}

func (s Snapshot) Preferences() Preferences {
	return Preferences{DarkMode: s.IsDarkMode, NotificationsEnabled: s.NotificationsEnabled}
}

// Clone deep-copies every slice so callers can't alias Store state.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Cart = append([]CartLine{}, s.Cart...)
	out.Orders = make([]Order, 0, len(s.Orders))
	for _, o := range s.Orders {
		out.Orders = append(out.Orders, o.Clone())
	}
	out.RewardHistory = append([]RewardHistoryEntry{}, s.RewardHistory...)
	out.Vouchers = make([]Voucher, 0, len(s.Vouchers))
	for _, v := range s.Vouchers {
		out.Vouchers = append(out.Vouchers, v.Clone())
	}
	return out
}

// Clone copies the pointer fields too.
func (v Voucher) Clone() Voucher {
	out := v
	if v.UsedDate != nil {
		t := *v.UsedDate
		out.UsedDate = &t
	}
	if v.MinOrderQuantity != nil {
		q := *v.MinOrderQuantity
		out.MinOrderQuantity = &q
	}
	return out
}

func EncodeSnapshot(s Snapshot) ([]byte, error) {
	return json.Marshal(s)
}

// DecodeSnapshot never fails loudly: empty or malformed input yields ok=false.
// Missing fields keep their defaults and out-of-range values are clamped.
func DecodeSnapshot(data []byte) (*Snapshot, bool) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, false
	}
	s := DefaultSnapshot()
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, false
	}
	s.normalize()
	return &s, true
}

func (s *Snapshot) normalize() {
	if s.LoyaltyStamps < 0 {
		s.LoyaltyStamps = 0
	}
	if s.LoyaltyStamps > MaxLoyaltyStamps {
		s.LoyaltyStamps = MaxLoyaltyStamps
	}
	if s.TotalPoints < 0 {
		s.TotalPoints = 0
	}

	cart := make([]CartLine, 0, len(s.Cart))
	for _, l := range s.Cart {
		if l.Quantity >= 1 && l.Item.ID != "" {
			cart = append(cart, l)
		}
	}
	s.Cart = cart

	orders := make([]Order, 0, len(s.Orders))
	for _, o := range s.Orders {
		if o.ID == "" || !o.Status.Valid() {
			continue
		}
		if o.Lines == nil {
			o.Lines = []CartLine{}
		}
		orders = append(orders, o)
	}
	s.Orders = orders

	if s.RewardHistory == nil {
		s.RewardHistory = []RewardHistoryEntry{}
	}
	if s.Vouchers == nil {
		s.Vouchers = []Voucher{}
	}
}

// CheckoutQuote is the priced view of the cart with an optional voucher.
//
// When a voucher is selected but not eligible, Discount is zero, Eligible is
// false and Reason says why.

type CheckoutQuote struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	TotalQuantity int             `json:"total_quantity"`
	VoucherID     string          `json:"voucher_id,omitempty"`
	Eligible      bool            `json:"eligible"`
	Reason        string          `json:"reason,omitempty"`
}
