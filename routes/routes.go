package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zsmartex/presale/controllers"
	"github.com/zsmartex/presale/controllers/admin_controllers"
	"github.com/zsmartex/presale/controllers/presale_controllers"
	"github.com/zsmartex/presale/routes/middlewares"
)

func SetupRouter() *fiber.App {
	app := fiber.New()

	app.Get("/api/v2/public/timestamp", controllers.GetTimestamp)
	app.Get("/api/v2/public/presales", controllers.GetPresaleList)
	app.Get("/api/v2/public/presales/:id", controllers.GetPresaleDetail)
	app.Get("/api/v2/public/presales/:id/quote/usdt", controllers.GetUsdtQuote)
	app.Get("/api/v2/public/presales/:id/quote/eth", controllers.GetEthQuote)
	app.Get("/api/v2/public/oracle_rate", controllers.GetOracleRate)

	market := app.Group("/api/v2/market", middlewares.Authenticate)
	market.Post("/presales/orders", presale_controllers.CreatePresaleOrder)
	market.Get("/presales/orders", presale_controllers.GetPresaleOrders)
	market.Get("/presales/vesting_balances", presale_controllers.GetVestingBalances)
	market.Post("/presales/claims", presale_controllers.CreateClaim)

	admin := app.Group("/api/v2/admin", middlewares.Authenticate, middlewares.AdminVaildator)
	admin.Get("/presales", admin_controllers.GetPresaleList)
	admin.Post("/presales", admin_controllers.CreatePresale)
	admin.Put("/presales", admin_controllers.UpdatePresale)
	admin.Post("/presales/:id/start", admin_controllers.StartPresale)
	admin.Post("/presales/:id/pause", admin_controllers.PausePresale)
	admin.Post("/presales/:id/unpause", admin_controllers.UnpausePresale)
	admin.Put("/presales/:id/price", admin_controllers.UpdatePresalePrice)
	admin.Put("/presales/:id/end_time", admin_controllers.UpdatePresaleEndTime)
	admin.Put("/presales/:id/vesting", admin_controllers.UpdatePresaleVesting)
	admin.Post("/presales/:id/withdraw_token", admin_controllers.WithdrawPresaleToken)
	admin.Get("/treasuries", admin_controllers.GetTreasuries)
	admin.Post("/treasuries/eth/withdraw", admin_controllers.WithdrawEth)
	admin.Post("/treasuries/usdt/withdraw", admin_controllers.WithdrawUsdt)

	return app
}
