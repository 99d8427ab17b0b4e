package handlers

import (
	"net/http"
	"testing"

	"thecodecup/internal/adapter/http/handlers/mocks"
	"thecodecup/internal/domain/entities"
	"thecodecup/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newCartRouter(catalog usecase.ICatalogUseCase, cart usecase.ICartUseCase) *gin.Engine {
	h := NewCartHandler(catalog, cart)
	r := gin.New()
	r.GET("/v1/cart", h.GetCart)
	r.POST("/v1/cart/lines", h.AddLine)
	r.DELETE("/v1/cart/lines", h.RemoveLine)
	r.DELETE("/v1/cart", h.ClearCart)
	return r
}

func expectCartRead(cart *mocks.MockICartUseCase, lines []entities.CartLine, total string, qty int) {
	cart.EXPECT().Cart().Return(lines)
	cart.EXPECT().CartTotal().Return(decimal.RequireFromString(total))
	cart.EXPECT().CartQuantity().Return(qty)
}

func TestCartHandler_AddLine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	americano, _ := entities.FindCatalogItem("1")

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		w := performRequest(newCartRouter(mocks.NewMockICatalogUseCase(ctrl), mocks.NewMockICartUseCase(ctrl)),
			http.MethodPost, "/v1/cart/lines", "{")
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		catalog.EXPECT().FindItem("99").Return(entities.CatalogItem{}, usecase.ErrItemNotFound)

		w := performRequest(newCartRouter(catalog, mocks.NewMockICartUseCase(ctrl)),
			http.MethodPost, "/v1/cart/lines", `{"item_id":"99"}`)
		expectStatus(t, w, http.StatusNotFound)
		expectErrorCode(t, w, "ITEM_NOT_FOUND")
	})

	t.Run("invalid option", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		catalog.EXPECT().FindItem("1").Return(americano, nil)

		w := performRequest(newCartRouter(catalog, mocks.NewMockICartUseCase(ctrl)),
			http.MethodPost, "/v1/cart/lines", `{"item_id":"1","size":"XL"}`)
		expectStatus(t, w, http.StatusBadRequest)
		expectErrorCode(t, w, "INVALID_CART_LINE")
	})

	t.Run("zero quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		catalog.EXPECT().FindItem("1").Return(americano, nil)

		w := performRequest(newCartRouter(catalog, mocks.NewMockICartUseCase(ctrl)),
			http.MethodPost, "/v1/cart/lines", `{"item_id":"1","quantity":0}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("prices the line from the catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		cart := mocks.NewMockICartUseCase(ctrl)
		catalog.EXPECT().FindItem("1").Return(americano, nil)

		want := entities.LineOptions{Size: entities.SizeLarge, Select: entities.SelectCold, Shot: entities.ShotDouble}
		cart.EXPECT().AddToCart(americano, want, 2, gomock.Any()).
			DoAndReturn(func(item entities.CatalogItem, opts entities.LineOptions, qty int, total decimal.Decimal) (entities.CartLine, error) {
				if !total.Equal(decimal.RequireFromString("9")) {
					t.Errorf("expected line total 9, got %s", total)
				}
				return entities.CartLine{Item: item, Size: opts.Size, Select: opts.Select, Shot: opts.Shot, Quantity: qty, LineTotal: total}, nil
			})
		line := entities.CartLine{Item: americano, Size: entities.SizeLarge, Select: entities.SelectCold, Shot: entities.ShotDouble,
			Quantity: 2, LineTotal: decimal.RequireFromString("9")}
		expectCartRead(cart, []entities.CartLine{line}, "9", 2)

		w := performRequest(newCartRouter(catalog, cart), http.MethodPost, "/v1/cart/lines",
			`{"item_id":"1","size":"l","select":"Cold","shot":"Double","quantity":2}`)
		expectStatus(t, w, http.StatusCreated)
		body := decodeObject(t, w)
		lines, _ := body["lines"].([]any)
		if body["total"] != "9.00" || body["quantity"] != float64(2) || len(lines) != 1 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		first, _ := lines[0].(map[string]any)
		if first["unit_price"] != "4.50" || first["size"] != "L" {
			t.Fatalf("unexpected line: %v", first)
		}
	})
}

func TestCartHandler_RemoveAndClear(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("remove missing line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cart := mocks.NewMockICartUseCase(ctrl)
		cart.EXPECT().RemoveFromCart(entities.LineKey{ItemID: "1", Size: entities.SizeMedium, Select: entities.SelectHot, Shot: entities.ShotSingle}).Return(false)

		w := performRequest(newCartRouter(mocks.NewMockICatalogUseCase(ctrl), cart),
			http.MethodDelete, "/v1/cart/lines", `{"item_id":"1"}`)
		expectStatus(t, w, http.StatusNotFound)
		expectErrorCode(t, w, "CART_LINE_NOT_FOUND")
	})

	t.Run("remove existing line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cart := mocks.NewMockICartUseCase(ctrl)
		cart.EXPECT().RemoveFromCart(entities.LineKey{ItemID: "2", Size: entities.SizeSmall, Select: entities.SelectCold, Shot: entities.ShotDouble}).Return(true)
		expectCartRead(cart, nil, "0", 0)

		w := performRequest(newCartRouter(mocks.NewMockICatalogUseCase(ctrl), cart),
			http.MethodDelete, "/v1/cart/lines", `{"item_id":"2","size":"S","select":"Cold","shot":"Double"}`)
		expectStatus(t, w, http.StatusOK)
		body := decodeObject(t, w)
		if body["total"] != "0.00" || body["quantity"] != float64(0) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("clear", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cart := mocks.NewMockICartUseCase(ctrl)
		cart.EXPECT().ClearCart()

		w := performRequest(newCartRouter(mocks.NewMockICatalogUseCase(ctrl), cart), http.MethodDelete, "/v1/cart", "")
		expectStatus(t, w, http.StatusNoContent)
	})
}

func TestCatalogHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)
	r := gin.New()
	r.GET("/v1/menu", h.ListMenu)
	r.GET("/v1/menu/:id", h.GetMenuItem)

	t.Run("list", func(t *testing.T) {
		uc.EXPECT().Menu().Return(entities.Menu())
		w := performRequest(r, http.MethodGet, "/v1/menu", "")
		expectStatus(t, w, http.StatusOK)
		items := decodeArray(t, w)
		if len(items) != 8 {
			t.Fatalf("expected 8 menu items, got %d", len(items))
		}
		first, _ := items[0].(map[string]any)
		if first["name"] != "Americano" || first["base_price"] != "3.00" {
			t.Fatalf("unexpected first item: %v", first)
		}
	})

	t.Run("get", func(t *testing.T) {
		item, _ := entities.FindCatalogItem("8")
		uc.EXPECT().FindItem("8").Return(item, nil)
		w := performRequest(r, http.MethodGet, "/v1/menu/8", "")
		expectStatus(t, w, http.StatusOK)
		if decodeObject(t, w)["name"] != "Affogato" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("missing", func(t *testing.T) {
		uc.EXPECT().FindItem("0").Return(entities.CatalogItem{}, usecase.ErrItemNotFound)
		w := performRequest(r, http.MethodGet, "/v1/menu/0", "")
		expectStatus(t, w, http.StatusNotFound)
	})
}
