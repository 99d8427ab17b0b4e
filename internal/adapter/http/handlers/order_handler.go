package handlers

import (
	"net/http"
	"strings"

	request "thecodecup/internal/adapter/http/dto/request"
	response "thecodecup/internal/adapter/http/dto/response"
	"thecodecup/internal/domain/entities"
	"thecodecup/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	statusFilterWaitingPickup = "waiting_pickup"
	statusFilterOngoing       = "ongoing"
	statusFilterCompleted     = "completed"
)

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// QuoteCheckout godoc
// @Summary  Price the cart with an optional voucher
// @Tags     orders
// @Produce  json
// @Param    voucher_id  query  string  false  "Voucher id"
// @Success  200 {object} response.QuoteResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /checkout/quote [get]
func (h *OrderHandler) QuoteCheckout(c *gin.Context) {
	quote, err := h.usecase.QuoteCheckout(c.Query("voucher_id"))
	if err != nil {
		abortWithError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// Checkout godoc
// @Summary  Place an order from the cart
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    request body request.CheckoutRequest true "Checkout"
// @Success  201 {object} response.OrderResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Router   /orders [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}

	order, err := h.usecase.Checkout(payload.ToCommand())
	if err != nil {
		abortWithError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// ListOrders godoc
// @Summary  List orders, oldest first
// @Tags     orders
// @Produce  json
// @Param    status  query  string  false  "waiting_pickup, ongoing or completed"
// @Success  200 {array} response.OrderResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var orders []entities.Order
	switch strings.ToLower(strings.TrimSpace(c.Query("status"))) {
	case "":
		orders = h.usecase.Orders()
	case statusFilterWaitingPickup:
		orders = h.usecase.WaitingPickupOrders()
	case statusFilterOngoing:
		orders = h.usecase.OngoingOrders()
	case statusFilterCompleted:
		orders = h.usecase.CompletedOrders()
	default:
		abortWithError(c, errInvalidStatusFilter)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetOrder godoc
// @Summary  Get an order
// @Tags     orders
// @Produce  json
// @Param    id  path  string  true  "Order id"
// @Success  200 {object} response.OrderResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.Order(c.Param("id"))
	if err != nil {
		abortWithError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ConfirmDelivered godoc
// @Summary  Confirm receipt of a delivered order
// @Tags     orders
// @Produce  json
// @Param    id  path  string  true  "Order id"
// @Success  200 {object} response.OrderResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /orders/{id}/confirm [post]
func (h *OrderHandler) ConfirmDelivered(c *gin.Context) {
	id := c.Param("id")
	if !h.usecase.ConfirmDelivered(id) {
		if _, err := h.usecase.Order(id); err != nil {
			abortWithError(c, mapStoreError(err))
			return
		}
		abortWithError(c, errOrderNotDelivered)
		return
	}

	order, err := h.usecase.Order(id)
	if err != nil {
		abortWithError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}
