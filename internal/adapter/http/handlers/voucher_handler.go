package handlers

import (
	"net/http"
	"strings"

	request "thecodecup/internal/adapter/http/dto/request"
	response "thecodecup/internal/adapter/http/dto/response"
	"thecodecup/internal/usecase"

	"github.com/gin-gonic/gin"
)

type VoucherHandler struct {
	usecase usecase.IVoucherUseCase
}

func NewVoucherHandler(uc usecase.IVoucherUseCase) *VoucherHandler {
	return &VoucherHandler{usecase: uc}
}

// ListVouchers godoc
// @Summary  List vouchers
// @Tags     vouchers
// @Produce  json
// @Param    status  query  string  false  "active to list only usable vouchers"
// @Success  200 {array} response.VoucherResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /vouchers [get]
func (h *VoucherHandler) ListVouchers(c *gin.Context) {
	switch strings.ToLower(strings.TrimSpace(c.Query("status"))) {
	case "":
		c.JSON(http.StatusOK, response.FromVouchers(h.usecase.Vouchers()))
	case "active":
		c.JSON(http.StatusOK, response.FromVouchers(h.usecase.ActiveVouchers()))
	default:
		abortWithError(c, errInvalidStatusFilter)
	}
}

// ListRedeemableVouchers godoc
// @Summary  Vouchers that can be bought with points
// @Tags     vouchers
// @Produce  json
// @Success  200 {array} response.RedeemableVoucherResponse
// @Router   /vouchers/redeemables [get]
func (h *VoucherHandler) ListRedeemableVouchers(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromRedeemableVouchers(h.usecase.RedeemableVouchers()))
}

// ApplyPromoCode godoc
// @Summary  Turn a promo code into a voucher
// @Tags     vouchers
// @Accept   json
// @Produce  json
// @Param    request body request.PromoCodeRequest true "Promo code"
// @Success  201 {object} response.VoucherResponse
// @Failure  422 {object} pkg.HTTPError
// @Router   /vouchers/promo [post]
func (h *VoucherHandler) ApplyPromoCode(c *gin.Context) {
	var payload request.PromoCodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}

	v, err := h.usecase.ApplyPromoCode(payload.Code)
	if err != nil {
		abortWithError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromVoucher(v))
}

// RedeemVoucher godoc
// @Summary  Spend points on a voucher
// @Tags     vouchers
// @Produce  json
// @Param    id  path  string  true  "Redeemable voucher id"
// @Success  201 {object} response.VoucherResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Router   /vouchers/redeem/{id} [post]
func (h *VoucherHandler) RedeemVoucher(c *gin.Context) {
	v, err := h.usecase.RedeemVoucher(c.Param("id"))
	if err != nil {
		abortWithError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromVoucher(v))
}
