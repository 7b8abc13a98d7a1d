package router

import (
	"fmt"
	"strings"

	"github.com/saralchem/orderdesk/internal/cache"
	"github.com/saralchem/orderdesk/internal/config"
	adminhandlers "github.com/saralchem/orderdesk/internal/http/handlers/admin"
	"github.com/saralchem/orderdesk/internal/logger"
	"github.com/saralchem/orderdesk/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the HTTP engine: health probe plus the dashboard API
// under /api/v1/admin.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "od"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	// Uploaded invoice scans and product images.
	r.Static("/uploads", "./uploads")

	apiV1 := r.Group("/api/v1")
	{
		admin := apiV1.Group("/admin")
		{
			// no auth needed before login
			admin.GET("/captcha/image", adminHandler.GetImageCaptcha)
			admin.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("username")), adminHandler.Login)

			authorized := admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.StaffRepo), StaffRBACMiddleware(c.AuthzService))
			{
				authorized.GET("/me", adminHandler.GetProfile)
				authorized.PUT("/password", adminHandler.UpdatePassword)

				authorized.GET("/dashboard/overview", adminHandler.GetDashboardOverview)

				authorized.GET("/orders", adminHandler.ListOrders)
				authorized.POST("/orders", adminHandler.CreateOrder)
				authorized.GET("/orders/:id", adminHandler.GetOrder)
				authorized.GET("/orders/:id/backorders", adminHandler.ListBackOrders)
				authorized.PUT("/orders/:id/items", adminHandler.UpdateItems)
				authorized.POST("/orders/:id/send-to-warehouse", adminHandler.SendToWarehouse)
				authorized.POST("/orders/:id/warehouse-stock", adminHandler.ReportWarehouseStock)
				authorized.POST("/orders/:id/stock-decision", adminHandler.StockDecision)
				authorized.POST("/orders/:id/invoice", adminHandler.UploadInvoice)
				authorized.POST("/orders/:id/review-invoice", adminHandler.ReviewInvoice)
				authorized.POST("/orders/:id/status", adminHandler.UpdateStatus)

				authorized.GET("/products", adminHandler.ListProducts)
				authorized.GET("/products/:id", adminHandler.GetProduct)
				authorized.POST("/products", adminHandler.CreateProduct)
				authorized.PUT("/products/:id", adminHandler.UpdateProduct)
				authorized.DELETE("/products/:id", adminHandler.DeleteProduct)

				authorized.GET("/categories", adminHandler.ListCategories)
				authorized.POST("/categories", adminHandler.CreateCategory)
				authorized.PUT("/categories/:id", adminHandler.UpdateCategory)
				authorized.DELETE("/categories/:id", adminHandler.DeleteCategory)

				authorized.GET("/customers", adminHandler.ListCustomers)
				authorized.GET("/customers/:id", adminHandler.GetCustomer)
				authorized.POST("/customers", adminHandler.CreateCustomer)
				authorized.PUT("/customers/:id", adminHandler.UpdateCustomer)
				authorized.DELETE("/customers/:id", adminHandler.DeleteCustomer)

				authorized.GET("/staff", adminHandler.ListStaff)
				authorized.POST("/staff", adminHandler.CreateStaff)
				authorized.PUT("/staff/:id/role", adminHandler.UpdateStaffRole)
				authorized.DELETE("/staff/:id", adminHandler.DeleteStaff)

				authorized.POST("/upload", adminHandler.UploadFile)

				authorized.GET("/notifications", adminHandler.ListNotifications)
				authorized.POST("/notifications/:id/read", adminHandler.MarkNotificationRead)
			}
		}
	}

	return r
}
