package handlers

import (
	"errors"
	"net/http"

	"thecodecup/internal/domain/entities"
	"thecodecup/internal/usecase"
	"thecodecup/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidStatusFilter = pkg.NewDomainErrorSimple("INVALID_STATUS_FILTER", "Invalid status filter", http.StatusBadRequest)
	errCartLineNotFound    = pkg.NewDomainErrorSimple("CART_LINE_NOT_FOUND", "Cart line not found", http.StatusNotFound)
	errOrderNotDelivered   = pkg.NewDomainErrorSimple("ORDER_NOT_DELIVERED", "Only delivered orders can be confirmed", http.StatusConflict)
	errStampsNotFull       = pkg.NewDomainErrorSimple("STAMPS_NOT_FULL", "Loyalty card is not full yet", http.StatusConflict)
)

func abortWithError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapStoreError translates store sentinels into API errors. Anything it does
// not recognise is reported as an internal error.
func mapStoreError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuantity), errors.Is(err, entities.ErrInvalidLineOption):
		return pkg.NewDomainErrorSimple("INVALID_CART_LINE", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCheckout), errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_CHECKOUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProfile):
		return pkg.NewDomainErrorSimple("INVALID_PROFILE", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRegionID):
		return pkg.NewDomainErrorSimple("INVALID_REGION_ID", "Invalid region id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "Cart is empty", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Menu item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVoucherNotFound):
		return pkg.NewDomainErrorSimple("VOUCHER_NOT_FOUND", "Voucher not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRedeemableNotFound):
		return pkg.NewDomainErrorSimple("REDEEMABLE_NOT_FOUND", "Redeemable not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVoucherNotActive):
		return pkg.NewDomainErrorSimple("VOUCHER_NOT_ACTIVE", "Voucher is not active", http.StatusConflict)
	case errors.Is(err, usecase.ErrVoucherNotApplicable):
		return pkg.NewDomainErrorSimple("VOUCHER_NOT_APPLICABLE", "Voucher is not applicable to this order", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPromoCodeInvalid):
		return pkg.NewDomainErrorSimple("PROMO_CODE_INVALID", "Promo code is invalid or already used", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInsufficientPoints):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_POINTS", "Not enough points", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAddressLookupFailed):
		return pkg.NewDomainError("ADDRESS_LOOKUP_FAILED", "Address lookup failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
