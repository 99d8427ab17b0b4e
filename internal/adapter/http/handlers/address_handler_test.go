package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"thecodecup/internal/adapter/http/handlers/mocks"
	"thecodecup/internal/domain/entities"
	"thecodecup/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAddressRouter(uc usecase.IAddressUseCase) *gin.Engine {
	h := NewAddressHandler(uc)
	r := gin.New()
	r.GET("/v1/address/provinces", h.ListProvinces)
	r.GET("/v1/address/provinces/:province_id/districts", h.ListDistricts)
	r.GET("/v1/address/districts/:district_id/wards", h.ListWards)
	return r
}

func TestAddressHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("provinces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAddressUseCase(ctrl)
		uc.EXPECT().Provinces(gomock.Any()).Return([]entities.Region{{ID: "79", Name: "Thành phố Hồ Chí Minh"}}, nil)

		w := performRequest(newAddressRouter(uc), http.MethodGet, "/v1/address/provinces", "")
		expectStatus(t, w, http.StatusOK)
		items := decodeArray(t, w)
		first, _ := items[0].(map[string]any)
		if first["id"] != "79" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("districts invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAddressUseCase(ctrl)
		uc.EXPECT().Districts(gomock.Any(), "abc").Return(nil, usecase.ErrInvalidRegionID)

		w := performRequest(newAddressRouter(uc), http.MethodGet, "/v1/address/provinces/abc/districts", "")
		expectStatus(t, w, http.StatusBadRequest)
		expectErrorCode(t, w, "INVALID_REGION_ID")
	})

	t.Run("wards upstream failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAddressUseCase(ctrl)
		uc.EXPECT().Wards(gomock.Any(), "760").
			Return(nil, fmt.Errorf("%w: %v", usecase.ErrAddressLookupFailed, errors.New("status 503")))

		w := performRequest(newAddressRouter(uc), http.MethodGet, "/v1/address/districts/760/wards", "")
		expectStatus(t, w, http.StatusBadGateway)
		expectErrorCode(t, w, "ADDRESS_LOOKUP_FAILED")
	})

	t.Run("wards", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAddressUseCase(ctrl)
		uc.EXPECT().Wards(gomock.Any(), "760").Return([]entities.Region{}, nil)

		w := performRequest(newAddressRouter(uc), http.MethodGet, "/v1/address/districts/760/wards", "")
		expectStatus(t, w, http.StatusOK)
		if w.Body.String() != "[]" {
			t.Fatalf("expected [], got %s", w.Body.String())
		}
	})
}
