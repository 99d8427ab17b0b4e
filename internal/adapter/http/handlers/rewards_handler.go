package handlers

import (
	"net/http"

	response "thecodecup/internal/adapter/http/dto/response"
	"thecodecup/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RewardsHandler struct {
	usecase usecase.IRewardsUseCase
}

func NewRewardsHandler(uc usecase.IRewardsUseCase) *RewardsHandler {
	return &RewardsHandler{usecase: uc}
}

// GetRewards godoc
// @Summary  Loyalty card, points balance and history
// @Tags     rewards
// @Produce  json
// @Success  200 {object} response.RewardsResponse
// @Router   /rewards [get]
func (h *RewardsHandler) GetRewards(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromRewards(
		h.usecase.LoyaltyStamps(),
		h.usecase.TotalPoints(),
		h.usecase.RewardHistory(),
	))
}

// ResetStamps godoc
// @Summary  Reset a full loyalty card
// @Tags     rewards
// @Produce  json
// @Success  200 {object} response.StampsResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /rewards/stamps/reset [post]
func (h *RewardsHandler) ResetStamps(c *gin.Context) {
	if !h.usecase.ResetLoyaltyStamps() {
		abortWithError(c, errStampsNotFull)
		return
	}
	c.JSON(http.StatusOK, response.StampsResponse{LoyaltyStamps: h.usecase.LoyaltyStamps()})
}

// ListRedeemableItems godoc
// @Summary  Drinks that can be bought with points
// @Tags     rewards
// @Produce  json
// @Success  200 {array} response.RedeemableItemResponse
// @Router   /rewards/redeemables [get]
func (h *RewardsHandler) ListRedeemableItems(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromRedeemableItems(h.usecase.RedeemableItems()))
}

// RedeemItem godoc
// @Summary  Spend points on a drink
// @Tags     rewards
// @Produce  json
// @Param    item_id  path  string  true  "Redeemable item id"
// @Success  200 {object} response.PointsResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Router   /rewards/redeem/{item_id} [post]
func (h *RewardsHandler) RedeemItem(c *gin.Context) {
	if err := h.usecase.RedeemItem(c.Param("item_id")); err != nil {
		abortWithError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.PointsResponse{TotalPoints: h.usecase.TotalPoints()})
}
