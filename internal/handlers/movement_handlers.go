package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tonycharles1/Trackz/internal/middleware"
	"github.com/tonycharles1/Trackz/internal/models"
	"github.com/tonycharles1/Trackz/internal/sheetstore"
)

func (h *Handlers) GetAllMovements(c *gin.Context) {
	store := h.store(c)
	if store == nil {
		return
	}
	records, err := store.List(sheetstore.TabAssetMovements)
	if err != nil {
		h.storeError(c, err)
		return
	}
	movements := make([]models.AssetMovement, 0, len(records))
	for _, rec := range records {
		movements = append(movements, models.AssetMovementFromRecord(rec))
	}
	c.JSON(http.StatusOK, gin.H{"movements": movements})
}

type CreateMovementInput struct {
	AssetCode  string `json:"assetCode" binding:"required"`
	ToLocation string `json:"toLocation" binding:"required"`
	Notes      string `json:"notes"`
}

// CreateMovement records a location change for an asset. The movement
// row is appended first, then the asset's Location column is patched to
// the destination; the mover and timestamp come from the server, not
// the request body.
func (h *Handlers) CreateMovement(c *gin.Context) {
	var input CreateMovementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	store := h.store(c)
	if store == nil {
		return
	}

	// The asset must exist; its stored Location is the movement origin.
	rec, err := store.Find(sheetstore.TabAssets, "Asset Code", input.AssetCode)
	if err != nil {
		h.storeError(c, err)
		return
	}
	fromLocation := rec["Location"]

	movement := models.AssetMovement{
		AssetCode:    input.AssetCode,
		FromLocation: fromLocation,
		ToLocation:   input.ToLocation,
		MovementDate: time.Now().Format(timestampFormat),
		MovedBy:      middleware.Username(c),
		Notes:        input.Notes,
	}
	id, err := store.InsertWithNextID(sheetstore.TabAssetMovements, movement.ToRecord())
	if err != nil {
		h.storeError(c, err)
		return
	}
	movement.ID = id

	patch := sheetstore.Record{"Location": input.ToLocation}
	if err := store.Update(sheetstore.TabAssets, "Asset Code", input.AssetCode, patch); err != nil {
		// The movement row is already appended; report the partial write.
		h.storeError(c, err)
		return
	}

	h.recordActivity(middleware.Username(c), "Move", "Asset", input.AssetCode,
		fmt.Sprintf("Moved asset %s from %s to %s", input.AssetCode, fromLocation, input.ToLocation),
		input.Notes)
	c.JSON(http.StatusCreated, gin.H{"message": "Movement recorded", "movement": movement})
}
