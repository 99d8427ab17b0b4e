package routes

import (
	"thecodecup/internal/adapter/http/handlers"
	"thecodecup/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathMenu     = "/menu"
	PathCart     = "/cart"
	PathCheckout = "/checkout"
	PathOrders   = "/orders"
	PathRewards  = "/rewards"
	PathVouchers = "/vouchers"
	PathProfile  = "/profile"
	PathSettings = "/settings"
	PathData     = "/data"
	PathEvents   = "/events"
	PathAddress  = "/address"
)

func addStoreRoutes(rg *gin.RouterGroup, store usecase.IStore) {
	catalogHandler := handlers.NewCatalogHandler(store)
	cartHandler := handlers.NewCartHandler(store, store)
	orderHandler := handlers.NewOrderHandler(store)
	rewardsHandler := handlers.NewRewardsHandler(store)
	voucherHandler := handlers.NewVoucherHandler(store)
	profileHandler := handlers.NewProfileHandler(store)
	eventsHandler := handlers.NewEventsHandler(store)

	menu := rg.Group(PathMenu)
	{
		menu.GET("", catalogHandler.ListMenu)
		menu.GET("/:id", catalogHandler.GetMenuItem)
	}

	cart := rg.Group(PathCart)
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.ClearCart)
		cart.POST("/lines", cartHandler.AddLine)
		cart.DELETE("/lines", cartHandler.RemoveLine)
	}

	rg.GET(PathCheckout+"/quote", orderHandler.QuoteCheckout)

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.Checkout)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.POST("/:id/confirm", orderHandler.ConfirmDelivered)
	}

	rewards := rg.Group(PathRewards)
	{
		rewards.GET("", rewardsHandler.GetRewards)
		rewards.POST("/stamps/reset", rewardsHandler.ResetStamps)
		rewards.GET("/redeemables", rewardsHandler.ListRedeemableItems)
		rewards.POST("/redeem/:item_id", rewardsHandler.RedeemItem)
	}

	vouchers := rg.Group(PathVouchers)
	{
		vouchers.GET("", voucherHandler.ListVouchers)
		vouchers.GET("/redeemables", voucherHandler.ListRedeemableVouchers)
		vouchers.POST("/promo", voucherHandler.ApplyPromoCode)
		vouchers.POST("/redeem/:id", voucherHandler.RedeemVoucher)
	}

	profile := rg.Group(PathProfile)
	{
		profile.GET("", profileHandler.GetProfile)
		profile.PUT("", profileHandler.UpdateProfile)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("", profileHandler.GetSettings)
		settings.POST("/dark-mode/toggle", profileHandler.ToggleDarkMode)
		settings.PUT("/notifications", profileHandler.SetNotifications)
	}

	rg.DELETE(PathData, profileHandler.ClearAllData)
	rg.GET(PathEvents, eventsHandler.Stream)
}

func addAddressRoutes(rg *gin.RouterGroup, addressHandler *handlers.AddressHandler) {
	addr := rg.Group(PathAddress)
	{
		addr.GET("/provinces", addressHandler.ListProvinces)
		addr.GET("/provinces/:province_id/districts", addressHandler.ListDistricts)
		addr.GET("/districts/:district_id/wards", addressHandler.ListWards)
	}
}
