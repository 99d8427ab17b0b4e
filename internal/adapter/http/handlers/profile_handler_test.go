package handlers

import (
	"net/http"
	"testing"

	"thecodecup/internal/adapter/http/handlers/mocks"
	"thecodecup/internal/domain/entities"
	"thecodecup/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newProfileRouter(uc usecase.IProfileUseCase) *gin.Engine {
	h := NewProfileHandler(uc)
	r := gin.New()
	r.GET("/v1/profile", h.GetProfile)
	r.PUT("/v1/profile", h.UpdateProfile)
	r.GET("/v1/settings", h.GetSettings)
	r.POST("/v1/settings/dark-mode/toggle", h.ToggleDarkMode)
	r.PUT("/v1/settings/notifications", h.SetNotifications)
	r.DELETE("/v1/data", h.ClearAllData)
	return r
}

func TestProfileHandler_Profile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		uc.EXPECT().Profile().Return(entities.DefaultUserProfile())

		w := performRequest(newProfileRouter(uc), http.MethodGet, "/v1/profile", "")
		expectStatus(t, w, http.StatusOK)
		if decodeObject(t, w)["full_name"] != entities.DefaultUserProfile().FullName {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("update requires a name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		w := performRequest(newProfileRouter(mocks.NewMockIProfileUseCase(ctrl)), http.MethodPut, "/v1/profile", `{"email":"a@b.c"}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("update rejected by store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		uc.EXPECT().UpdateProfile(gomock.Any()).Return(usecase.ErrInvalidProfile)

		w := performRequest(newProfileRouter(uc), http.MethodPut, "/v1/profile", `{"full_name":"   "}`)
		expectStatus(t, w, http.StatusBadRequest)
		expectErrorCode(t, w, "INVALID_PROFILE")
	})

	t.Run("update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		p := entities.UserProfile{FullName: "Lan", PhoneNumber: "0902", Email: "lan@example.com", Address: "2 Hai Ba Trung"}
		uc.EXPECT().UpdateProfile(p).Return(nil)
		uc.EXPECT().Profile().Return(p)

		w := performRequest(newProfileRouter(uc), http.MethodPut, "/v1/profile",
			`{"full_name":"Lan","phone_number":"0902","email":"lan@example.com","address":"2 Hai Ba Trung"}`)
		expectStatus(t, w, http.StatusOK)
		if decodeObject(t, w)["address"] != "2 Hai Ba Trung" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestProfileHandler_Settings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("toggle dark mode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		uc.EXPECT().ToggleDarkMode().Return(true)
		uc.EXPECT().Preferences().Return(entities.Preferences{DarkMode: true, NotificationsEnabled: true})

		w := performRequest(newProfileRouter(uc), http.MethodPost, "/v1/settings/dark-mode/toggle", "")
		expectStatus(t, w, http.StatusOK)
		if decodeObject(t, w)["dark_mode"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("notifications need an explicit flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		w := performRequest(newProfileRouter(mocks.NewMockIProfileUseCase(ctrl)), http.MethodPut, "/v1/settings/notifications", `{}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("disable notifications", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		uc.EXPECT().SetNotificationsEnabled(false)
		uc.EXPECT().Preferences().Return(entities.Preferences{NotificationsEnabled: false})

		w := performRequest(newProfileRouter(uc), http.MethodPut, "/v1/settings/notifications", `{"enabled":false}`)
		expectStatus(t, w, http.StatusOK)
		if decodeObject(t, w)["notifications_enabled"] != false {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("settings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		uc.EXPECT().Preferences().Return(entities.DefaultPreferences())

		w := performRequest(newProfileRouter(uc), http.MethodGet, "/v1/settings", "")
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("clear all data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		uc.EXPECT().ClearAllData()

		w := performRequest(newProfileRouter(uc), http.MethodDelete, "/v1/data", "")
		expectStatus(t, w, http.StatusNoContent)
	})
}
