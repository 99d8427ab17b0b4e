package handlers

import (
	"net/http"

	request "thecodecup/internal/adapter/http/dto/request"
	response "thecodecup/internal/adapter/http/dto/response"
	"thecodecup/internal/domain/entities"
	"thecodecup/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CartHandler prices lines from the catalog before handing them to the cart,
// the way the details screen does.

type CartHandler struct {
	catalog usecase.ICatalogUseCase
	cart    usecase.ICartUseCase
}

func NewCartHandler(catalog usecase.ICatalogUseCase, cart usecase.ICartUseCase) *CartHandler {
	return &CartHandler{catalog: catalog, cart: cart}
}

// GetCart godoc
// @Summary  Show the cart
// @Tags     cart
// @Produce  json
// @Success  200 {object} response.CartResponse
// @Router   /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.currentCart())
}

// AddLine godoc
// @Summary  Add a configured drink to the cart
// @Tags     cart
// @Accept   json
// @Produce  json
// @Param    request body request.AddCartLineRequest true "Line"
// @Success  201 {object} response.CartResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /cart/lines [post]
func (h *CartHandler) AddLine(c *gin.Context) {
	var payload request.AddCartLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}

	item, err := h.catalog.FindItem(payload.ResolveItemID())
	if err != nil {
		abortWithError(c, mapStoreError(err))
		return
	}
	opts, err := payload.ResolveOptions()
	if err != nil {
		abortWithError(c, mapStoreError(err))
		return
	}
	qty := payload.ResolveQuantity()
	if qty < 1 {
		abortWithError(c, mapStoreError(usecase.ErrInvalidQuantity))
		return
	}

	if _, err := h.cart.AddToCart(item, opts, qty, entities.PriceLine(item, opts, qty)); err != nil {
		abortWithError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusCreated, h.currentCart())
}

// RemoveLine godoc
// @Summary  Remove a cart line
// @Tags     cart
// @Accept   json
// @Produce  json
// @Param    request body request.RemoveCartLineRequest true "Line key"
// @Success  200 {object} response.CartResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /cart/lines [delete]
func (h *CartHandler) RemoveLine(c *gin.Context) {
	var payload request.RemoveCartLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}
	key, err := payload.ResolveKey()
	if err != nil {
		abortWithError(c, mapStoreError(err))
		return
	}
	if !h.cart.RemoveFromCart(key) {
		abortWithError(c, errCartLineNotFound)
		return
	}
	c.JSON(http.StatusOK, h.currentCart())
}

// ClearCart godoc
// @Summary  Empty the cart
// @Tags     cart
// @Success  204
// @Router   /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cart.ClearCart()
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) currentCart() response.CartResponse {
	return response.FromCart(h.cart.Cart(), h.cart.CartTotal(), h.cart.CartQuantity())
}
