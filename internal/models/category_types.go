package models

import (
	"strconv"

	"github.com/tonycharles1/Trackz/internal/sheetstore"
)

// Category maps one row of the Categories tab.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func CategoryFromRecord(rec sheetstore.Record) Category {
	id, _ := strconv.Atoi(rec["ID"])
	return Category{ID: id, Name: rec["Category Name"]}
}

func (c Category) ToRecord() sheetstore.Record {
	return sheetstore.Record{
		"ID":            strconv.Itoa(c.ID),
		"Category Name": c.Name,
	}
}
