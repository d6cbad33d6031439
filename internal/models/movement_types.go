package models

import (
	"strconv"

	"github.com/tonycharles1/Trackz/internal/sheetstore"
)

// AssetMovement is an append-only audit row recording a location change.
type AssetMovement struct {
	ID           int    `json:"id"`
	AssetCode    string `json:"assetCode"`
	FromLocation string `json:"fromLocation"`
	ToLocation   string `json:"toLocation"`
	MovementDate string `json:"movementDate"` // YYYY-MM-DD HH:MM:SS
	MovedBy      string `json:"movedBy"`
	Notes        string `json:"notes"`
}

func AssetMovementFromRecord(rec sheetstore.Record) AssetMovement {
	id, _ := strconv.Atoi(rec["ID"])
	return AssetMovement{
		ID:           id,
		AssetCode:    rec["Asset Code"],
		FromLocation: rec["From Location"],
		ToLocation:   rec["To Location"],
		MovementDate: rec["Movement Date"],
		MovedBy:      rec["Moved By"],
		Notes:        rec["Notes"],
	}
}

func (m AssetMovement) ToRecord() sheetstore.Record {
	return sheetstore.Record{
		"ID":            strconv.Itoa(m.ID),
		"Asset Code":    m.AssetCode,
		"From Location": m.FromLocation,
		"To Location":   m.ToLocation,
		"Movement Date": m.MovementDate,
		"Moved By":      m.MovedBy,
		"Notes":         m.Notes,
	}
}
