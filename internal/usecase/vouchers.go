package usecase

import (
	"fmt"
	"time"

	"thecodecup/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VoucherEngine owns the user's voucher collection together with the
// registries vouchers are issued from (starter grants, promo codes, points).
type VoucherEngine struct {
	vouchers    []entities.Voucher
	starters    []entities.StarterVoucher
	promos      map[string]entities.PromoCodeTemplate
	redeemables []entities.RedeemableVoucher
	newID       func() string
}

func NewVoucherEngine(vouchers []entities.Voucher) *VoucherEngine {
	promos := make(map[string]entities.PromoCodeTemplate)
	for _, t := range entities.PromoCodeTemplates() {
		promos[entities.NormalizeVoucherCode(t.Code)] = t
	}
	return &VoucherEngine{
		vouchers:    append([]entities.Voucher{}, vouchers...),
		starters:    entities.StarterVouchers(),
		promos:      promos,
		redeemables: entities.RedeemableVouchers(),
		newID:       uuid.NewString,
	}
}

// All returns deep copies, so callers may keep them past the store lock.
func (e *VoucherEngine) All() []entities.Voucher {
	out := make([]entities.Voucher, 0, len(e.vouchers))
	for _, v := range e.vouchers {
		out = append(out, v.Clone())
	}
	return out
}

// Active lists vouchers that can still be applied at now.
func (e *VoucherEngine) Active(now time.Time) []entities.Voucher {
	out := make([]entities.Voucher, 0, len(e.vouchers))
	for _, v := range e.vouchers {
		if v.Usable(now) {
			out = append(out, v)
		}
	}
	return out
}

func (e *VoucherEngine) Find(id string) (entities.Voucher, bool) {
	for _, v := range e.vouchers {
		if v.ID == id {
			return v, true
		}
	}
	return entities.Voucher{}, false
}

func (e *VoucherEngine) Redeemables() []entities.RedeemableVoucher {
	return append([]entities.RedeemableVoucher{}, e.redeemables...)
}

func (e *VoucherEngine) FindRedeemable(id string) (entities.RedeemableVoucher, bool) {
	for _, rv := range e.redeemables {
		if rv.ID == id {
			return rv, true
		}
	}
	return entities.RedeemableVoucher{}, false
}

// EnsureDefaults seeds the starter vouchers when the collection is empty.
func (e *VoucherEngine) EnsureDefaults(now time.Time) bool {
	if len(e.vouchers) > 0 {
		return false
	}
	for _, s := range e.starters {
		e.vouchers = append(e.vouchers, e.issue(s.Code, s.Name, s.Description, s.DiscountPercent, s.ValidDays, s.MinOrderQuantity, entities.VoucherSourceAdminGift, now))
	}
	return true
}

// ApplyPromoCode issues a voucher for a known, not yet redeemed code. Unknown
// and already redeemed codes both return false.
func (e *VoucherEngine) ApplyPromoCode(code string, now time.Time) (entities.Voucher, bool) {
	code = entities.NormalizeVoucherCode(code)
	if code == "" {
		return entities.Voucher{}, false
	}
	tpl, ok := e.promos[code]
	if !ok {
		return entities.Voucher{}, false
	}

	limit := tpl.UsageLimit
	if limit <= 0 {
		limit = 1
	}
	if e.redeemedCount(code) >= limit {
		return entities.Voucher{}, false
	}

	v := e.issue(code, tpl.Name, tpl.Description, tpl.DiscountPercent, tpl.ValidDays, tpl.MinOrderQuantity, entities.VoucherSourcePromoCode, now)
	e.vouchers = append(e.vouchers, v)
	return v, true
}

func (e *VoucherEngine) redeemedCount(code string) int {
	n := 0
	for _, v := range e.vouchers {
		if v.Source == entities.VoucherSourcePromoCode && entities.NormalizeVoucherCode(v.Code) == code {
			n++
		}
	}
	return n
}

// IssueRedeemed creates the voucher bought with points. Point deduction is
// the caller's job.
func (e *VoucherEngine) IssueRedeemed(rv entities.RedeemableVoucher, now time.Time) entities.Voucher {
	v := e.issue(rv.Code, rv.Name, rv.Description, rv.DiscountPercent, rv.ValidDays, rv.MinOrderQuantity, entities.VoucherSourceRedeemed, now)
	e.vouchers = append(e.vouchers, v)
	return v
}

// Use marks an ACTIVE voucher as USED. Any other status is rejected.
func (e *VoucherEngine) Use(id string, now time.Time) (entities.Voucher, error) {
	for i, v := range e.vouchers {
		if v.ID != id {
			continue
		}
		if !v.Usable(now) {
			return entities.Voucher{}, ErrVoucherNotActive
		}
		used := now
		v.Status = entities.VoucherStatusUsed
		v.UsedDate = &used
		e.vouchers[i] = v
		return v, nil
	}
	return entities.Voucher{}, ErrVoucherNotFound
}

// SweepExpired flips ACTIVE vouchers past their expiry to EXPIRED.
func (e *VoucherEngine) SweepExpired(now time.Time) int {
	n := 0
	for i, v := range e.vouchers {
		if v.Status == entities.VoucherStatusActive && v.IsExpired(now) {
			v.Status = entities.VoucherStatusExpired
			e.vouchers[i] = v
			n++
		}
	}
	return n
}

// Quote prices subtotal with the voucher selected by id. An empty id means no
// voucher. A selected voucher that fails the minimum quantity gate yields a
// zero discount and Eligible=false.
func (e *VoucherEngine) Quote(subtotal decimal.Decimal, totalQuantity int, voucherID string, now time.Time) (entities.CheckoutQuote, error) {
	q := entities.CheckoutQuote{
		Subtotal:      subtotal,
		Discount:      decimal.Zero,
		Total:         subtotal,
		TotalQuantity: totalQuantity,
		VoucherID:     voucherID,
		Eligible:      true,
	}
	if voucherID == "" {
		return q, nil
	}

	v, ok := e.Find(voucherID)
	if !ok {
		return entities.CheckoutQuote{}, ErrVoucherNotFound
	}
	if !v.Usable(now) {
		return entities.CheckoutQuote{}, ErrVoucherNotActive
	}
	if !v.MeetsMinimum(q.TotalQuantity) {
		q.Eligible = false
		q.Reason = fmt.Sprintf("requires at least %d items (current: %d)", *v.MinOrderQuantity, q.TotalQuantity)
		return q, nil
	}

	q.Discount = entities.Discount(q.Subtotal, v.DiscountPercent)
	q.Total = q.Subtotal.Sub(q.Discount)
	return q, nil
}

func (e *VoucherEngine) issue(code, name, description string, percent, validDays int, minQty *int, source entities.VoucherSource, now time.Time) entities.Voucher {
	var gate *int
	if minQty != nil {
		q := *minQty
		gate = &q
	}
	return entities.Voucher{
		ID:               e.newID(),
		Code:             code,
		Name:             name,
		Description:      description,
		Type:             entities.VoucherTypePercentage,
		DiscountPercent:  percent,
		ExpiryDate:       now.AddDate(0, 0, validDays),
		Source:           source,
		Status:           entities.VoucherStatusActive,
		MinOrderQuantity: gate,
	}
}
