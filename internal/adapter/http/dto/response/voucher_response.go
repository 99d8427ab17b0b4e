package response

import (
	"time"

	"thecodecup/internal/domain/entities"
)

type VoucherResponse struct {
	ID               string     `json:"id"`
	Code             string     `json:"code"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	Type             string     `json:"type"`
	DiscountPercent  int        `json:"discount_percent"`
	ExpiryDate       time.Time  `json:"expiry_date"`
	Source           string     `json:"source"`
	Status           string     `json:"status"`
	UsedDate         *time.Time `json:"used_date,omitempty"`
	MinOrderQuantity *int       `json:"min_order_quantity,omitempty"`
}

func FromVoucher(v entities.Voucher) VoucherResponse {
	return VoucherResponse{
		ID:               v.ID,
		Code:             v.Code,
		Name:             v.Name,
		Description:      v.Description,
		Type:             string(v.Type),
		DiscountPercent:  v.DiscountPercent,
		ExpiryDate:       v.ExpiryDate,
		Source:           string(v.Source),
		Status:           string(v.Status),
		UsedDate:         v.UsedDate,
		MinOrderQuantity: v.MinOrderQuantity,
	}
}

func FromVouchers(vs []entities.Voucher) []VoucherResponse {
	out := make([]VoucherResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVoucher(v))
	}
	return out
}

type RedeemableVoucherResponse struct {
	ID               string `json:"id"`
	Code             string `json:"code"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	DiscountPercent  int    `json:"discount_percent"`
	PointsRequired   int    `json:"points_required"`
	ValidDays        int    `json:"valid_days"`
	MinOrderQuantity *int   `json:"min_order_quantity,omitempty"`
}

func FromRedeemableVouchers(rvs []entities.RedeemableVoucher) []RedeemableVoucherResponse {
	out := make([]RedeemableVoucherResponse, 0, len(rvs))
	for _, rv := range rvs {
		out = append(out, RedeemableVoucherResponse(rv))
	}
	return out
}
