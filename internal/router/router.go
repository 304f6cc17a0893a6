package router

import (
	"net/http"

	"github.com/Dadssi/Calendrier-Editoriel/internal/config"
	"github.com/Dadssi/Calendrier-Editoriel/internal/handler"
	"github.com/Dadssi/Calendrier-Editoriel/internal/middleware"
	"github.com/Dadssi/Calendrier-Editoriel/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and the full route table.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(
		gin.Logger(),
		gin.Recovery(),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS.AllowedOrigin),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	r.GET("/taxonomies", handler.GetTaxonomies)

	authHandler := handler.NewAuthHandler(db, cfg.JWT.Secret, cfg.JWT.TTLSeconds)
	r.POST("/auth/login", authHandler.Login)

	// everything under /contents requires a valid session token
	contents := r.Group("/contents")
	contents.Use(middleware.RequireAuth(cfg.JWT.Secret))

	contentHandler := handler.NewContentHandler(db)
	contents.GET("", contentHandler.List)
	contents.POST("", contentHandler.Create)
	contents.PUT("/:id", contentHandler.Update)
	contents.DELETE("/:id", contentHandler.Delete)

	exportHandler := handler.NewExportHandler(db)
	contents.GET("/export/csv", exportHandler.ExportCSV)
	contents.GET("/export/xlsx", exportHandler.ExportXLSX)

	// catch-all: anything unmatched is a terminal 404
	r.NoRoute(func(c *gin.Context) {
		util.Error(c, http.StatusNotFound, "Not found")
	})

	return r
}
