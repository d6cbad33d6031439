package handlers

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/tonycharles1/Trackz/internal/models"
	"github.com/tonycharles1/Trackz/internal/sheetstore"
)

// GetLogs returns the merged audit view: ActivityLogs rows plus every
// movement rendered as a "Movement" log line, newest first. Filterable
// by ?type=, ?user=, ?from= and ?to= (dates inclusive).
func (h *Handlers) GetLogs(c *gin.Context) {
	store := h.store(c)
	if store == nil {
		return
	}
	entries, err := h.mergedLogs(store)
	if err != nil {
		h.storeError(c, err)
		return
	}

	logType := c.Query("type")
	user := c.Query("user")
	from := c.Query("from")
	to := c.Query("to")

	filtered := entries[:0:0]
	for _, e := range entries {
		if logType != "" && e.Type != logType {
			continue
		}
		if user != "" && e.User != user {
			continue
		}
		day := movementDay(e.Timestamp)
		if day != "" {
			if from != "" && day < from {
				continue
			}
			if to != "" && day > to {
				continue
			}
		}
		filtered = append(filtered, e)
	}
	c.JSON(http.StatusOK, gin.H{"logs": filtered, "count": len(filtered)})
}

// mergedLogs reads both audit sources and sorts the union by timestamp,
// newest first. The stored timestamp format sorts correctly as a string.
func (h *Handlers) mergedLogs(store *sheetstore.Store) ([]models.ActivityLog, error) {
	activityRecords, err := store.List(sheetstore.TabActivityLogs)
	if err != nil {
		return nil, err
	}
	movementRecords, err := store.List(sheetstore.TabAssetMovements)
	if err != nil {
		return nil, err
	}

	entries := make([]models.ActivityLog, 0, len(activityRecords)+len(movementRecords))
	for _, rec := range activityRecords {
		entries = append(entries, models.ActivityLogFromRecord(rec))
	}
	for _, rec := range movementRecords {
		m := models.AssetMovementFromRecord(rec)
		entries = append(entries, models.ActivityLog{
			ID:         m.ID,
			Timestamp:  m.MovementDate,
			Type:       "Movement",
			User:       m.MovedBy,
			Action:     "Move",
			EntityType: "Asset",
			EntityID:   m.AssetCode,
			Description: fmt.Sprintf("Asset %s moved from %s to %s",
				m.AssetCode, m.FromLocation, m.ToLocation),
			Details: m.Notes,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp > entries[j].Timestamp
	})
	return entries, nil
}
