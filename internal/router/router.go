package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/config"
	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/handler"
	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/middleware"
	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/models"
	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/service"
	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/storage"
)

// SetupRouter configures Gin engine, templates, static resources and all
// page and API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB, store storage.Store, logger *logrus.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	// static files and templates
	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*")

	// ====== services ======
	retirementSvc := service.NewIncomeService(db, models.KindUSAFRetirement, logger)
	disabilitySvc := service.NewIncomeService(db, models.KindVADisability, logger)
	propertySvc := service.NewPropertyService(db, logger)
	documentSvc := service.NewDocumentService(db, store, logger)

	// ====== pages ======
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "dashboard.html", gin.H{
			"title": "Financial Tracker - Dashboard",
		})
	})
	r.GET("/income/retirement", func(c *gin.Context) {
		c.HTML(http.StatusOK, "retirement.html", gin.H{
			"title": "USAF Retirement Pay",
		})
	})
	r.GET("/income/disability", func(c *gin.Context) {
		c.HTML(http.StatusOK, "disability.html", gin.H{
			"title": "VA Disability Pay",
		})
	})
	r.GET("/rental_properties", func(c *gin.Context) {
		c.HTML(http.StatusOK, "rental_properties.html", gin.H{
			"title": "Rental Properties",
		})
	})

	// ====== API ======
	api := r.Group("/api")

	registerIncomeRoutes(api, handler.NewIncomeHandler(retirementSvc, logger))
	registerIncomeRoutes(api, handler.NewIncomeHandler(disabilitySvc, logger))

	propertyHandler := handler.NewPropertyHandler(propertySvc, documentSvc, logger)
	api.GET("/rental_properties/data", propertyHandler.Data)
	api.POST("/rental_properties/add", propertyHandler.Add)
	api.PUT("/rental_properties/update/:id", propertyHandler.Update)
	api.POST("/rental_properties/delete", propertyHandler.Delete)

	// ====== uploads ======
	documentHandler := handler.NewDocumentHandler(documentSvc, propertySvc, logger)
	uploads := r.Group("/uploads")
	uploads.POST("/upload_file", documentHandler.Upload)
	uploads.GET("/list/:property_id", documentHandler.ListForProperty)
	uploads.GET("/api/files/:related_page", documentHandler.FilesByPage)
	uploads.POST("/delete/:file_id", documentHandler.Delete)
	uploads.GET("/:filename", documentHandler.Serve)

	return r
}

func registerIncomeRoutes(api *gin.RouterGroup, h *handler.IncomeHandler) {
	group := api.Group("/" + string(h.Svc.Kind()))
	group.GET("/data", h.Data)
	group.POST("/update", h.Update)
	group.GET("/export.csv", h.ExportCSV)
	group.GET("/export.xlsx", h.ExportXLSX)
}
