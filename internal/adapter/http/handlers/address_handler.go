package handlers

import (
	"net/http"

	response "thecodecup/internal/adapter/http/dto/response"
	"thecodecup/internal/domain/entities"
	"thecodecup/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AddressHandler struct {
	usecase usecase.IAddressUseCase
}

func NewAddressHandler(uc usecase.IAddressUseCase) *AddressHandler {
	return &AddressHandler{usecase: uc}
}

// ListProvinces godoc
// @Summary  Provinces
// @Tags     address
// @Produce  json
// @Success  200 {array} response.RegionResponse
// @Failure  502 {object} pkg.HTTPError
// @Router   /address/provinces [get]
func (h *AddressHandler) ListProvinces(c *gin.Context) {
	regions, err := h.usecase.Provinces(c.Request.Context())
	h.writeRegions(c, regions, err)
}

// ListDistricts godoc
// @Summary  Districts of a province
// @Tags     address
// @Produce  json
// @Param    province_id  path  string  true  "Province id"
// @Success  200 {array} response.RegionResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Router   /address/provinces/{province_id}/districts [get]
func (h *AddressHandler) ListDistricts(c *gin.Context) {
	regions, err := h.usecase.Districts(c.Request.Context(), c.Param("province_id"))
	h.writeRegions(c, regions, err)
}

// ListWards godoc
// @Summary  Wards of a district
// @Tags     address
// @Produce  json
// @Param    district_id  path  string  true  "District id"
// @Success  200 {array} response.RegionResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Router   /address/districts/{district_id}/wards [get]
func (h *AddressHandler) ListWards(c *gin.Context) {
	regions, err := h.usecase.Wards(c.Request.Context(), c.Param("district_id"))
	h.writeRegions(c, regions, err)
}

func (h *AddressHandler) writeRegions(c *gin.Context, regions []entities.Region, err error) {
	if err != nil {
		abortWithError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRegions(regions))
}
