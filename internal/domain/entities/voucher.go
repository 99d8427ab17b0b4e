package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type VoucherType string

const (
	VoucherTypePercentage VoucherType = "PERCENTAGE"
	// VoucherTypeFixedAmount is reserved; no voucher is issued with it yet.
	VoucherTypeFixedAmount VoucherType = "FIXED_AMOUNT"
)

type VoucherSource string

const (
	VoucherSourceRedeemed  VoucherSource = "REDEEMED"
	VoucherSourceAdminGift VoucherSource = "ADMIN_GIFT"
	VoucherSourcePromoCode VoucherSource = "PROMO_CODE"
)

// VoucherStatus moves ACTIVE -> USED exactly once, or ACTIVE -> EXPIRED.
type VoucherStatus string

const (
	VoucherStatusActive  VoucherStatus = "ACTIVE"
	VoucherStatusUsed    VoucherStatus = "USED"
	VoucherStatusExpired VoucherStatus = "EXPIRED"
)

// Voucher is an issued discount owned by the user. Vouchers are never deleted.
//
// MinOrderQuantity, when set, is the minimum number of units in the cart for
// the voucher to apply.

type Voucher struct {
	ID               string        `json:"id"`
	Code             string        `json:"code"`
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	Type             VoucherType   `json:"type"`
	DiscountPercent  int           `json:"discount_percent"`
	ExpiryDate       time.Time     `json:"expiry_date"`
	Source           VoucherSource `json:"source"`
	Status           VoucherStatus `json:"status"`
	UsedDate         *time.Time    `json:"used_date,omitempty"`
	MinOrderQuantity *int          `json:"min_order_quantity,omitempty"`
}

func (v Voucher) IsExpired(now time.Time) bool {
	return !v.ExpiryDate.IsZero() && now.After(v.ExpiryDate)
}

// Usable reports whether the voucher is ACTIVE and not past its expiry.
func (v Voucher) Usable(now time.Time) bool {
	return v.Status == VoucherStatusActive && !v.IsExpired(now)
}

// MeetsMinimum checks the minimum-order-quantity gate.
func (v Voucher) MeetsMinimum(totalQuantity int) bool {
	return v.MinOrderQuantity == nil || totalQuantity >= *v.MinOrderQuantity
}

// Discount is subtotal * percent / 100, rounded to cents.
func Discount(subtotal decimal.Decimal, percent int) decimal.Decimal {
	if percent <= 0 {
		return decimal.Zero
	}
	if percent > 100 {
		percent = 100
	}
	return subtotal.Mul(decimal.NewFromInt(int64(percent))).Div(decimal.NewFromInt(100)).Round(2)
}

// PromoCodeTemplate is an admin-defined promo code that users can redeem.
type PromoCodeTemplate struct {
	Code             string `json:"code"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	DiscountPercent  int    `json:"discount_percent"`
	ValidDays        int    `json:"valid_days"`
	MinOrderQuantity *int   `json:"min_order_quantity,omitempty"`
	UsageLimit       int    `json:"usage_limit"`
}

// RedeemableVoucher is a voucher that can be bought with reward points.
type RedeemableVoucher struct {
	ID               string `json:"id"`
	Code             string `json:"code"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	DiscountPercent  int    `json:"discount_percent"`
	PointsRequired   int    `json:"points_required"`
	ValidDays        int    `json:"valid_days"`
	MinOrderQuantity *int   `json:"min_order_quantity,omitempty"`
}

// StarterVoucher is granted to every user with an empty voucher collection.
type StarterVoucher struct {
	Code             string
	Name             string
	Description      string
	DiscountPercent  int
	ValidDays        int
	MinOrderQuantity *int
}

// NormalizeVoucherCode trims and upper-cases a user-entered code.
func NormalizeVoucherCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func intPtr(v int) *int { return &v }

func StarterVouchers() []StarterVoucher {
	return []StarterVoucher{
		{Code: "WELCOME20", Name: "Welcome gift", Description: "20% off your next order", DiscountPercent: 20, ValidDays: 30},
		{Code: "FREESHIP10", Name: "Delivery treat", Description: "10% off any order", DiscountPercent: 10, ValidDays: 14},
		{Code: "BUY3SAVE15", Name: "Share a round", Description: "15% off orders of 3 drinks or more", DiscountPercent: 15, ValidDays: 7, MinOrderQuantity: intPtr(3)},
	}
}

func PromoCodeTemplates() []PromoCodeTemplate {
	return []PromoCodeTemplate{
		{Code: "WELCOME2024", Name: "Welcome 2024", Description: "25% off for new members", DiscountPercent: 25, ValidDays: 30, UsageLimit: 1},
		{Code: "COFFEE10", Name: "Coffee lover", Description: "10% off any order", DiscountPercent: 10, ValidDays: 30, UsageLimit: 1},
		{Code: "HAPPYHOUR30", Name: "Happy hour", Description: "30% off orders of 2 drinks or more", DiscountPercent: 30, ValidDays: 7, MinOrderQuantity: intPtr(2), UsageLimit: 1},
		{Code: "CODECUP50", Name: "Code Cup party", Description: "50% off orders of 3 drinks or more", DiscountPercent: 50, ValidDays: 3, MinOrderQuantity: intPtr(3), UsageLimit: 1},
	}
}

func RedeemableVouchers() []RedeemableVoucher {
	return []RedeemableVoucher{
		{ID: "rv-10", Code: "POINTS10", Name: "10% off", Description: "10% off any order", DiscountPercent: 10, PointsRequired: 100, ValidDays: 30},
		{ID: "rv-20", Code: "POINTS20", Name: "20% off", Description: "20% off any order", DiscountPercent: 20, PointsRequired: 200, ValidDays: 30},
		{ID: "rv-50", Code: "POINTS50", Name: "50% off", Description: "50% off orders of 3 drinks or more", DiscountPercent: 50, PointsRequired: 450, ValidDays: 14, MinOrderQuantity: intPtr(3)},
	}
}
