package handlers

import (
	"net/http"

	request "thecodecup/internal/adapter/http/dto/request"
	response "thecodecup/internal/adapter/http/dto/response"
	"thecodecup/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the profile, the settings toggles and the
// clear-all-data action.

type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

// GetProfile godoc
// @Summary  Show the profile
// @Tags     profile
// @Produce  json
// @Success  200 {object} response.ProfileResponse
// @Router   /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromProfile(h.usecase.Profile()))
}

// UpdateProfile godoc
// @Summary  Replace the profile
// @Tags     profile
// @Accept   json
// @Produce  json
// @Param    request body request.ProfileRequest true "Profile"
// @Success  200 {object} response.ProfileResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var payload request.ProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}
	if err := h.usecase.UpdateProfile(payload.ToEntity()); err != nil {
		abortWithError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(h.usecase.Profile()))
}

// GetSettings godoc
// @Summary  Show the preferences
// @Tags     settings
// @Produce  json
// @Success  200 {object} response.PreferencesResponse
// @Router   /settings [get]
func (h *ProfileHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPreferences(h.usecase.Preferences()))
}

// ToggleDarkMode godoc
// @Summary  Flip dark mode
// @Tags     settings
// @Produce  json
// @Success  200 {object} response.PreferencesResponse
// @Router   /settings/dark-mode/toggle [post]
func (h *ProfileHandler) ToggleDarkMode(c *gin.Context) {
	h.usecase.ToggleDarkMode()
	c.JSON(http.StatusOK, response.FromPreferences(h.usecase.Preferences()))
}

// SetNotifications godoc
// @Summary  Enable or disable delivery notifications
// @Tags     settings
// @Accept   json
// @Produce  json
// @Param    request body request.NotificationsRequest true "Notifications"
// @Success  200 {object} response.PreferencesResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /settings/notifications [put]
func (h *ProfileHandler) SetNotifications(c *gin.Context) {
	var payload request.NotificationsRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Enabled == nil {
		abortWithError(c, errInvalidRequest)
		return
	}
	h.usecase.SetNotificationsEnabled(*payload.Enabled)
	c.JSON(http.StatusOK, response.FromPreferences(h.usecase.Preferences()))
}

// ClearAllData godoc
// @Summary  Wipe all local state
// @Tags     settings
// @Success  204
// @Router   /data [delete]
func (h *ProfileHandler) ClearAllData(c *gin.Context) {
	h.usecase.ClearAllData()
	c.Status(http.StatusNoContent)
}
