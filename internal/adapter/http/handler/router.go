package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lnbits/satspay/internal/adapter/http/middleware"
)

// maxRequestBody bounds request payloads. Charge and theme bodies are small;
// anything past 1 MiB is abuse.
const maxRequestBody = 1 << 20

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Keys     middleware.Keys
	Charges  *ChargeHandler
	Themes   *ThemeHandler
	Settings *SettingsHandler
	WS       *WSHandler
	Health   *HealthHandler
	Log      zerolog.Logger
}

// SetupRouter builds the gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.Recovery(deps.Log),
		middleware.RequestLogger(deps.Log),
		middleware.MaxBodySize(maxRequestBody),
	)

	router.GET("/health", deps.Health.Check)
	router.GET("/css/:css_id", deps.Themes.ServeCSS)

	api := router.Group("/api/v1")

	// The live status socket is public: the charge id is the capability.
	api.GET("/ws/:charge_id", deps.WS.Serve)

	invoice := api.Group("", middleware.APIKeyAuth(deps.Keys))
	{
		invoice.POST("/charge", deps.Charges.Create)
		invoice.GET("/charge/:id", deps.Charges.Get)
	}

	admin := api.Group("", middleware.AdminKeyAuth(deps.Keys))
	{
		admin.GET("/charges", deps.Charges.List)
		admin.PUT("/charge/:id/balance", deps.Charges.CheckBalance)
		admin.GET("/charge/:id/webhook", deps.Charges.FireWebhook)
		admin.DELETE("/charge/:id", deps.Charges.Delete)

		admin.POST("/themes", deps.Themes.Create)
		admin.POST("/themes/:css_id", deps.Themes.Update)
		admin.GET("/themes", deps.Themes.List)
		admin.DELETE("/themes/:css_id", deps.Themes.Delete)

		admin.GET("/settings", deps.Settings.Get)
		admin.PUT("/settings", deps.Settings.Update)
		admin.DELETE("/settings", deps.Settings.Delete)
	}

	return router
}
