package handlers

import (
	"log"
	"time"

	"github.com/tonycharles1/Trackz/internal/models"
	"github.com/tonycharles1/Trackz/internal/sheetstore"
)

// timestampFormat is the stored form of Date & Time and Movement Date.
const timestampFormat = "2006-01-02 15:04:05"

// recordActivity appends one row to the ActivityLogs audit trail. A
// failed audit write is logged but never fails the request that caused
// it: losing a log line beats losing the user's mutation.
func (h *Handlers) recordActivity(username, action, entityType, entityID, description, details string) {
	entry := models.ActivityLog{
		Timestamp:   time.Now().Format(timestampFormat),
		Type:        "Activity",
		User:        username,
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		Description: description,
		Details:     details,
	}
	if _, err := h.Store.InsertWithNextID(sheetstore.TabActivityLogs, entry.ToRecord()); err != nil {
		log.Printf("activity: could not append log entry: %v", err)
	}
}
