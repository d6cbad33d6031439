package models

import (
	"strconv"

	"github.com/tonycharles1/Trackz/internal/sheetstore"
)

// Brand maps one row of the Brands tab.
type Brand struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func BrandFromRecord(rec sheetstore.Record) Brand {
	id, _ := strconv.Atoi(rec["ID"])
	return Brand{ID: id, Name: rec["Brand Name"]}
}

func (b Brand) ToRecord() sheetstore.Record {
	return sheetstore.Record{
		"ID":         strconv.Itoa(b.ID),
		"Brand Name": b.Name,
	}
}
