package models

import (
	"strconv"

	"github.com/tonycharles1/Trackz/internal/sheetstore"
)

// Location maps one row of the Locations tab.
type Location struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func LocationFromRecord(rec sheetstore.Record) Location {
	id, _ := strconv.Atoi(rec["ID"])
	return Location{ID: id, Name: rec["Location Name"]}
}

func (l Location) ToRecord() sheetstore.Record {
	return sheetstore.Record{
		"ID":            strconv.Itoa(l.ID),
		"Location Name": l.Name,
	}
}
