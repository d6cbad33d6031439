package models

import (
	"strconv"

	"github.com/tonycharles1/Trackz/internal/sheetstore"
)

// ActivityLog is one row of the generic audit trail.
type ActivityLog struct {
	ID          int    `json:"id"`
	Timestamp   string `json:"timestamp"` // YYYY-MM-DD HH:MM:SS
	Type        string `json:"type"`
	User        string `json:"user"`
	Action      string `json:"action"`
	EntityType  string `json:"entityType"`
	EntityID    string `json:"entityId"`
	Description string `json:"description"`
	Details     string `json:"details"`
}

func ActivityLogFromRecord(rec sheetstore.Record) ActivityLog {
	id, _ := strconv.Atoi(rec["ID"])
	return ActivityLog{
		ID:          id,
		Timestamp:   rec["Date & Time"],
		Type:        rec["Type"],
		User:        rec["User"],
		Action:      rec["Action"],
		EntityType:  rec["Entity Type"],
		EntityID:    rec["Entity ID"],
		Description: rec["Description"],
		Details:     rec["Details"],
	}
}

func (a ActivityLog) ToRecord() sheetstore.Record {
	return sheetstore.Record{
		"ID":          strconv.Itoa(a.ID),
		"Date & Time": a.Timestamp,
		"Type":        a.Type,
		"User":        a.User,
		"Action":      a.Action,
		"Entity Type": a.EntityType,
		"Entity ID":   a.EntityID,
		"Description": a.Description,
		"Details":     a.Details,
	}
}
