package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tonycharles1/Trackz/internal/handlers"
	"github.com/tonycharles1/Trackz/internal/middleware"
	"github.com/tonycharles1/Trackz/internal/models"
)

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())

	// The browser frontend lives on a different origin; Authorization
	// must be allowed through for the bearer token.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     h.Cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded attachments are served back at the URL UploadFile returns.
	router.Static("/uploads", h.Cfg.UploadDir)

	secret := h.Cfg.JWTSecret

	v1 := router.Group("/v1")
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth Routes (Public) ---
		v1.POST("/auth/register", h.Register)
		v1.POST("/auth/login", h.Login)

		// --- Protected Routes (Login Required) ---
		auth := v1.Group("/")
		auth.Use(middleware.Auth(secret))
		{
			// --- Asset Routes ---
			auth.GET("/assets", h.GetAllAssets)
			auth.POST("/assets", h.CreateAsset)
			auth.GET("/assets/:code", h.GetAsset)
			auth.PUT("/assets/:code", h.UpdateAsset)
			auth.GET("/assets/:code/label", h.GetAssetLabel)

			// --- Reference Data Routes ---
			auth.GET("/locations", h.GetAllLocations)
			auth.POST("/locations", h.CreateLocation)
			auth.GET("/categories", h.GetAllCategories)
			auth.POST("/categories", h.CreateCategory)
			auth.GET("/subcategories", h.GetAllSubcategories)
			auth.POST("/subcategories", h.CreateSubcategory)
			auth.GET("/brands", h.GetAllBrands)
			auth.POST("/brands", h.CreateBrand)
			auth.GET("/asset-types", h.GetAllAssetTypes)
			auth.POST("/asset-types", h.CreateAssetType)

			// --- Movement Routes ---
			auth.GET("/movements", h.GetAllMovements)
			auth.POST("/movements", h.CreateMovement)

			// --- Report Routes ---
			auth.GET("/dashboard", h.GetDashboard)
			auth.GET("/reports/assets", h.GetAssetReport)
			auth.GET("/reports/assets/export", h.ExportAssetReport)
			auth.GET("/reports/movements", h.GetMovementReport)
			auth.GET("/reports/movements/export", h.ExportMovementReport)
			auth.GET("/reports/depreciation", h.GetDepreciationReport)
			auth.GET("/reports/depreciation/export", h.ExportDepreciationReport)

			// --- Activity Log Routes ---
			auth.GET("/logs", h.GetLogs)

			// --- Upload Routes ---
			auth.POST("/uploads", h.UploadFile)
		}

		// --- Admin-Only Routes ---
		admin := v1.Group("/")
		admin.Use(middleware.Auth(secret, models.RoleAdmin))
		{
			admin.DELETE("/assets/:code", h.DeleteAsset)
			admin.DELETE("/locations/:id", h.DeleteLocation)
			admin.DELETE("/categories/:id", h.DeleteCategory)
			admin.DELETE("/subcategories/:id", h.DeleteSubcategory)
			admin.DELETE("/brands/:id", h.DeleteBrand)
			admin.DELETE("/asset-types/:code", h.DeleteAssetType)
		}
	}

	return router
}
