package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"hostel-backend/controllers"
	"hostel-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	rtc *controllers.RoomTypeController,
	tc *controllers.TenantController,
	pc *controllers.PaymentController,
	dc *controllers.DashboardController,
	sc *controllers.SettingsController,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(logger), middleware.Metrics(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		roomTypes := api.Group("/room-types")
		{
			roomTypes.GET("", rtc.GetRoomTypes)
			roomTypes.POST("", rtc.CreateRoomType)
			roomTypes.GET("/:id", rtc.GetRoomType)
			roomTypes.PUT("/:id", rtc.UpdateRoomType)
			roomTypes.PATCH("/:id", rtc.UpdateRoomType)
			roomTypes.DELETE("/:id", rtc.DeleteRoomType)
			roomTypes.GET("/:id/minimum-rooms", rtc.GetMinimumRooms)
		}

		tenants := api.Group("/tenants")
		{
			tenants.GET("", tc.GetTenants)
			tenants.POST("", tc.CreateTenant)
			tenants.POST("/sync", tc.SyncTenants)
		}

		payments := api.Group("/payments")
		{
			payments.GET("", pc.GetPayments)
			payments.POST("", pc.CreatePayment)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/occupancy", dc.GetOccupancy)
			dashboard.GET("/summary", dc.GetSummary)
			dashboard.GET("/trends", dc.GetTrends)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/hostel", sc.GetHostelSettings)
			settings.PUT("/hostel", sc.UpdateHostelSettings)
		}
	}

	return r
}
