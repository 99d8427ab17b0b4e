package handlers

import (
	"net/http"
	"testing"
	"time"

	"thecodecup/internal/adapter/http/handlers/mocks"
	"thecodecup/internal/domain/entities"
	"thecodecup/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newVoucherRouter(uc usecase.IVoucherUseCase) *gin.Engine {
	h := NewVoucherHandler(uc)
	r := gin.New()
	r.GET("/v1/vouchers", h.ListVouchers)
	r.GET("/v1/vouchers/redeemables", h.ListRedeemableVouchers)
	r.POST("/v1/vouchers/promo", h.ApplyPromoCode)
	r.POST("/v1/vouchers/redeem/:id", h.RedeemVoucher)
	return r
}

func sampleVoucher(code string, status entities.VoucherStatus) entities.Voucher {
	return entities.Voucher{
		ID:              "v-" + code,
		Code:            code,
		Name:            code,
		Type:            entities.VoucherTypePercentage,
		DiscountPercent: 10,
		ExpiryDate:      time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		Source:          entities.VoucherSourcePromoCode,
		Status:          status,
	}
}

func TestVoucherHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVoucherUseCase(ctrl)
		uc.EXPECT().Vouchers().Return([]entities.Voucher{
			sampleVoucher("A", entities.VoucherStatusActive),
			sampleVoucher("B", entities.VoucherStatusUsed),
		})

		w := performRequest(newVoucherRouter(uc), http.MethodGet, "/v1/vouchers", "")
		expectStatus(t, w, http.StatusOK)
		if len(decodeArray(t, w)) != 2 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVoucherUseCase(ctrl)
		uc.EXPECT().ActiveVouchers().Return([]entities.Voucher{sampleVoucher("A", entities.VoucherStatusActive)})

		w := performRequest(newVoucherRouter(uc), http.MethodGet, "/v1/vouchers?status=active", "")
		expectStatus(t, w, http.StatusOK)
		items := decodeArray(t, w)
		first, _ := items[0].(map[string]any)
		if len(items) != 1 || first["status"] != "ACTIVE" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("bad filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		w := performRequest(newVoucherRouter(mocks.NewMockIVoucherUseCase(ctrl)), http.MethodGet, "/v1/vouchers?status=used", "")
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("redeemables", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVoucherUseCase(ctrl)
		uc.EXPECT().RedeemableVouchers().Return(entities.RedeemableVouchers())

		w := performRequest(newVoucherRouter(uc), http.MethodGet, "/v1/vouchers/redeemables", "")
		expectStatus(t, w, http.StatusOK)
		if len(decodeArray(t, w)) != len(entities.RedeemableVouchers()) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestVoucherHandler_Promo(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		w := performRequest(newVoucherRouter(mocks.NewMockIVoucherUseCase(ctrl)), http.MethodPost, "/v1/vouchers/promo", `{}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("invalid code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVoucherUseCase(ctrl)
		uc.EXPECT().ApplyPromoCode("NOPE").Return(entities.Voucher{}, usecase.ErrPromoCodeInvalid)

		w := performRequest(newVoucherRouter(uc), http.MethodPost, "/v1/vouchers/promo", `{"code":"NOPE"}`)
		expectStatus(t, w, http.StatusUnprocessableEntity)
		expectErrorCode(t, w, "PROMO_CODE_INVALID")
	})

	t.Run("issued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVoucherUseCase(ctrl)
		uc.EXPECT().ApplyPromoCode("coffee10").Return(sampleVoucher("COFFEE10", entities.VoucherStatusActive), nil)

		w := performRequest(newVoucherRouter(uc), http.MethodPost, "/v1/vouchers/promo", `{"code":"coffee10"}`)
		expectStatus(t, w, http.StatusCreated)
		if decodeObject(t, w)["code"] != "COFFEE10" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestVoucherHandler_Redeem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not enough points", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVoucherUseCase(ctrl)
		uc.EXPECT().RedeemVoucher("rv-50").Return(entities.Voucher{}, usecase.ErrInsufficientPoints)

		w := performRequest(newVoucherRouter(uc), http.MethodPost, "/v1/vouchers/redeem/rv-50", "")
		expectStatus(t, w, http.StatusUnprocessableEntity)
	})

	t.Run("issued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVoucherUseCase(ctrl)
		uc.EXPECT().RedeemVoucher("rv-10").Return(sampleVoucher("POINTS10", entities.VoucherStatusActive), nil)

		w := performRequest(newVoucherRouter(uc), http.MethodPost, "/v1/vouchers/redeem/rv-10", "")
		expectStatus(t, w, http.StatusCreated)
	})
}
