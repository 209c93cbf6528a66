package healthMarker

import (
	"errors"
	"net/http"

	"healthtrack-api/models"
	"healthtrack-api/services/events"
	"healthtrack-api/services/store"
	"healthtrack-api/structs"

	"github.com/gin-gonic/gin"
)

const resource = "health-markers"

type Controller struct {
	store *store.Store
}

func NewController(st *store.Store) *Controller {
	return &Controller{store: st}
}

func (ctl *Controller) Create(c *gin.Context) {
	var payload structs.HealthMarkerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if err := payload.ValidateCreate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	entity := models.HealthMarker{Base: models.NewBase()}
	payload.ApplyTo(&entity)

	if err := ctl.store.Create(c.Request.Context(), entity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	events.Emit(events.ActionCreated, resource, entity.ID)
	c.JSON(http.StatusOK, entity)
}

func (ctl *Controller) List(c *gin.Context) {
	page, err := structs.ParsePagination(c.DefaultQuery("limit", "100"), c.DefaultQuery("skip", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	results := []models.HealthMarker{}
	if err := ctl.store.List(c.Request.Context(), page.Skip, page.Limit, &results); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}

func (ctl *Controller) Get(c *gin.Context) {
	var entity models.HealthMarker
	if err := ctl.store.Get(c.Request.Context(), c.Param("id"), &entity); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Health marker not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, entity)
}

func (ctl *Controller) Update(c *gin.Context) {
	var payload structs.HealthMarkerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if err := payload.ValidateUpdate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	id := c.Param("id")
	var entity models.HealthMarker
	if err := ctl.store.Get(c.Request.Context(), id, &entity); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Health marker not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}

	payload.ApplyTo(&entity)
	entity.Touch()

	if err := ctl.store.Replace(c.Request.Context(), id, entity); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Health marker not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}
	events.Emit(events.ActionUpdated, resource, entity.ID)
	c.JSON(http.StatusOK, entity)
}

func (ctl *Controller) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := ctl.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Health marker not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}
	events.Emit(events.ActionDeleted, resource, id)
	c.JSON(http.StatusOK, gin.H{"detail": "Health marker deleted successfully"})
}
