// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/boriwala/catalog-backend/internal/config"
	"github.com/boriwala/catalog-backend/internal/handlers"
	"github.com/boriwala/catalog-backend/internal/middleware"
	"github.com/boriwala/catalog-backend/internal/services"
	"github.com/boriwala/catalog-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Services
	mailer := services.NewMailer(cfg)
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize storage")
	}

	authService := services.NewAuthService(db, cfg)
	productService := services.NewProductService(db)
	categoryService := services.NewCategoryService(db)
	buyerService := services.NewBuyerService(db)
	enquiryService := services.NewEnquiryService(db, mailer)
	pushService := services.NewPushService(db, cfg)
	settingsService := services.NewSettingsService(db)
	dashboardService := services.NewDashboardService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, cfg)
	productHandler := handlers.NewProductHandler(productService, authService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	buyerHandler := handlers.NewBuyerHandler(buyerService)
	enquiryHandler := handlers.NewEnquiryHandler(enquiryService)
	notificationHandler := handlers.NewNotificationHandler(pushService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	uploadHandler := handlers.NewUploadHandler(storageService)

	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Server.CORSOrigins))
	r.Use(middleware.GeneralRateLimit())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := r.Group("/v1")
	{
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.BuyerLogin)
			auth.POST("/admin/login", authHandler.AdminLogin)
			auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
		}

		products := v1.Group("/products")
		{
			products.GET("", middleware.OptionalAuth(), productHandler.ListProducts)
			products.GET("/:id", middleware.OptionalAuth(), productHandler.GetProduct)
			products.GET("/:id/related", middleware.OptionalAuth(), productHandler.GetRelatedProducts)

			protected := products.Group("")
			protected.Use(middleware.AuthRequired(), middleware.StaffRequired())
			{
				protected.POST("", productHandler.CreateProduct)
				protected.PUT("/:id", productHandler.UpdateProduct)
				protected.DELETE("/:id", productHandler.DeleteProduct)
			}
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.ListCategories)
			categories.GET("/:id", categoryHandler.GetCategory)

			protected := categories.Group("")
			protected.Use(middleware.AuthRequired(), middleware.StaffRequired())
			{
				protected.POST("", categoryHandler.CreateCategory)
				protected.PUT("/:id", categoryHandler.UpdateCategory)
				protected.DELETE("/:id", categoryHandler.DeleteCategory)
			}
		}

		v1.GET("/catalog/filters", productHandler.GetFilters)
		v1.GET("/settings", settingsHandler.GetSettings)
		v1.POST("/enquiries", middleware.IntakeRateLimit(), enquiryHandler.CreateEnquiry)
		v1.POST("/seller-enquiries", middleware.IntakeRateLimit(), enquiryHandler.CreateSellerEnquiry)
		v1.POST("/push-tokens", notificationHandler.RegisterToken)

		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.StaffRequired())
		{
			admin.GET("/dashboard", dashboardHandler.GetStats)

			enquiries := admin.Group("/enquiries")
			{
				enquiries.GET("", enquiryHandler.ListEnquiries)
				enquiries.GET("/export", enquiryHandler.ExportEnquiries)
				enquiries.PATCH("/:id", enquiryHandler.UpdateEnquiry)
				enquiries.DELETE("/:id", enquiryHandler.DeleteEnquiry)
			}

			sellerEnquiries := admin.Group("/seller-enquiries")
			{
				sellerEnquiries.GET("", enquiryHandler.ListSellerEnquiries)
				sellerEnquiries.PATCH("/:id", enquiryHandler.UpdateSellerEnquiry)
				sellerEnquiries.DELETE("/:id", enquiryHandler.DeleteSellerEnquiry)
			}

			// Buyer account management; deletion is admin-only.
			buyers := admin.Group("/buyers")
			{
				buyers.GET("", buyerHandler.ListBuyers)
				buyers.PUT("/:id", buyerHandler.UpdateBuyer)
				buyers.DELETE("/:id", middleware.AdminRequired(), buyerHandler.DeleteBuyer)
			}

			notifications := admin.Group("/notifications")
			{
				notifications.GET("", notificationHandler.ListNotifications)
				notifications.GET("/devices", notificationHandler.DeviceCount)
				notifications.POST("", notificationHandler.SendNotification)
			}

			admin.PUT("/settings", settingsHandler.UpdateSettings)
			admin.POST("/upload", middleware.UploadRateLimit(), uploadHandler.UploadImage)
		}
	}

	// Serve local uploads when S3 is not configured.
	if cfg.AWS.AccessKeyID == "" {
		r.Static("/uploads", cfg.Upload.LocalDir)
	}

	return r
}
