package models

import (
	"strconv"

	"github.com/tonycharles1/Trackz/internal/sheetstore"
)

// Subcategory maps one row of the Subcategories tab. CategoryID is a weak
// reference: it names a Category row's ID but nothing enforces it.
type Subcategory struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	CategoryID string `json:"categoryId"`
}

func SubcategoryFromRecord(rec sheetstore.Record) Subcategory {
	id, _ := strconv.Atoi(rec["ID"])
	return Subcategory{
		ID:         id,
		Name:       rec["Subcategory Name"],
		CategoryID: rec["Category ID"],
	}
}

func (s Subcategory) ToRecord() sheetstore.Record {
	return sheetstore.Record{
		"ID":               strconv.Itoa(s.ID),
		"Subcategory Name": s.Name,
		"Category ID":      s.CategoryID,
	}
}
