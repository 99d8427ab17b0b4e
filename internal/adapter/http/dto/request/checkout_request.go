package request

import "thecodecup/internal/usecase"

type CheckoutRequest struct {
	ReceiverName    string `json:"receiver_name" binding:"required"`
	ReceiverPhone   string `json:"receiver_phone" binding:"required"`
	ShippingAddress string `json:"shipping_address" binding:"required"`
	PaymentMethod   string `json:"payment_method"`
	VoucherID       string `json:"voucher_id"`
}

func (r CheckoutRequest) ToCommand() usecase.CheckoutRequest {
	return usecase.CheckoutRequest{
		ReceiverName:    r.ReceiverName,
		ReceiverPhone:   r.ReceiverPhone,
		ShippingAddress: r.ShippingAddress,
		PaymentMethod:   r.PaymentMethod,
		VoucherID:       r.VoucherID,
	}
}
