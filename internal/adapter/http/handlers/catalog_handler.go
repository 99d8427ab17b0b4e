package handlers

import (
	"net/http"

	response "thecodecup/internal/adapter/http/dto/response"
	"thecodecup/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListMenu godoc
// @Summary  List the menu
// @Tags     menu
// @Produce  json
// @Success  200 {array} response.MenuItemResponse
// @Router   /menu [get]
func (h *CatalogHandler) ListMenu(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromMenu(h.usecase.Menu()))
}

// GetMenuItem godoc
// @Summary  Get a menu item
// @Tags     menu
// @Produce  json
// @Param    id  path  string  true  "Item id"
// @Success  200 {object} response.MenuItemResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /menu/{id} [get]
func (h *CatalogHandler) GetMenuItem(c *gin.Context) {
	item, err := h.usecase.FindItem(c.Param("id"))
	if err != nil {
		abortWithError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogItem(item))
}
