package router

import (
	"net/http"

	"healthtrack-api/controllers/bodyComposition"
	"healthtrack-api/controllers/bodyMeasurement"
	"healthtrack-api/controllers/check"
	"healthtrack-api/controllers/healthMarker"
	"healthtrack-api/controllers/peptide"
	"healthtrack-api/controllers/readProbe"
	"healthtrack-api/controllers/root"
	"healthtrack-api/controllers/supplement"
	"healthtrack-api/database"
	"healthtrack-api/models"
	"healthtrack-api/services/store"

	"github.com/gin-gonic/gin"
)

func Router(db *database.DB) *gin.Engine {
	route := gin.Default()
	route.Use(cors())

	route.GET("/read-probe", readProbe.Probe)
	route.GET("/check-live", check.NewController(db).CheckAlive)

	api := route.Group("/api")
	api.GET("/", root.Index)

	// time-series resources list date descending, catalog resources
	// list name ascending
	bc := bodyComposition.NewController(store.New(db.Collection((&models.BodyComposition{}).CollectionName()), "date", store.SortDesc))
	api.POST("/body-composition", bc.Create)
	api.GET("/body-composition", bc.List)
	api.GET("/body-composition/:id", bc.Get)
	api.PUT("/body-composition/:id", bc.Update)
	api.DELETE("/body-composition/:id", bc.Delete)

	hm := healthMarker.NewController(store.New(db.Collection((&models.HealthMarker{}).CollectionName()), "date", store.SortDesc))
	api.POST("/health-markers", hm.Create)
	api.GET("/health-markers", hm.List)
	api.GET("/health-markers/:id", hm.Get)
	api.PUT("/health-markers/:id", hm.Update)
	api.DELETE("/health-markers/:id", hm.Delete)

	bm := bodyMeasurement.NewController(store.New(db.Collection((&models.BodyMeasurement{}).CollectionName()), "date", store.SortDesc))
	api.POST("/body-measurements", bm.Create)
	api.GET("/body-measurements", bm.List)
	api.GET("/body-measurements/:id", bm.Get)
	api.PUT("/body-measurements/:id", bm.Update)
	api.DELETE("/body-measurements/:id", bm.Delete)

	sp := supplement.NewController(store.New(db.Collection((&models.Supplement{}).CollectionName()), "name", store.SortAsc))
	api.POST("/supplements", sp.Create)
	api.GET("/supplements", sp.List)
	api.GET("/supplements/:id", sp.Get)
	api.PUT("/supplements/:id", sp.Update)
	api.DELETE("/supplements/:id", sp.Delete)

	pt := peptide.NewController(store.New(db.Collection((&models.Peptide{}).CollectionName()), "name", store.SortAsc))
	api.POST("/peptides/calculate-iu", pt.CalculateIU)
	api.POST("/peptides", pt.Create)
	api.GET("/peptides", pt.List)
	api.GET("/peptides/:id", pt.Get)
	api.PUT("/peptides/:id", pt.Update)
	api.DELETE("/peptides/:id", pt.Delete)

	return route
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
