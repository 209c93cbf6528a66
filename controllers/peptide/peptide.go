package peptide

import (
	"errors"
	"net/http"

	"healthtrack-api/models"
	"healthtrack-api/services/calculator"
	"healthtrack-api/services/events"
	"healthtrack-api/services/store"
	"healthtrack-api/structs"

	"github.com/gin-gonic/gin"
)

const resource = "peptides"

type Controller struct {
	store *store.Store
}

func NewController(st *store.Store) *Controller {
	return &Controller{store: st}
}

// CalculateIU is the stateless calculator endpoint; nothing is
// persisted.
func (ctl *Controller) CalculateIU(c *gin.Context) {
	var input calculator.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	result, err := calculator.Calculate(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// mergeAndRecalculate overlays the payload on the entity and derives
// calculated_iu from the resulting triple, whether or not the payload
// touched any of the three inputs.
func mergeAndRecalculate(payload *structs.PeptidePayload, entity *models.Peptide) error {
	payload.ApplyTo(entity)
	result, err := calculator.Calculate(calculator.Input{
		VialAmountMg: entity.VialAmountMg,
		BacWaterMl:   entity.BacWaterMl,
		DoseMcg:      entity.DoseMcg,
	})
	if err != nil {
		return err
	}
	entity.CalculatedIU = result.IU
	return nil
}

func (ctl *Controller) Create(c *gin.Context) {
	var payload structs.PeptidePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if err := payload.ValidateCreate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	entity := models.Peptide{Base: models.NewBase()}
	if err := mergeAndRecalculate(&payload, &entity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

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
	results := []models.Peptide{}
	if err := ctl.store.List(c.Request.Context(), page.Skip, page.Limit, &results); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}

func (ctl *Controller) Get(c *gin.Context) {
	var entity models.Peptide
	if err := ctl.store.Get(c.Request.Context(), c.Param("id"), &entity); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Peptide not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, entity)
}

// Update recomputes calculated_iu from the merged triple on every
// call, even when the payload touched none of the three inputs.
func (ctl *Controller) Update(c *gin.Context) {
	var payload structs.PeptidePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if err := payload.ValidateUpdate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	id := c.Param("id")
	var entity models.Peptide
	if err := ctl.store.Get(c.Request.Context(), id, &entity); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Peptide not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}

	if err := mergeAndRecalculate(&payload, &entity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	entity.Touch()

	if err := ctl.store.Replace(c.Request.Context(), id, entity); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Peptide not found"})
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
			c.JSON(http.StatusNotFound, gin.H{"detail": "Peptide not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}
	events.Emit(events.ActionDeleted, resource, id)
	c.JSON(http.StatusOK, gin.H{"detail": "Peptide deleted successfully"})
}
