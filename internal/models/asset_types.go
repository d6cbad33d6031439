package models

import (
	"time"

	"github.com/tonycharles1/Trackz/internal/sheetstore"
)

// Asset is the central entity, one row of the Assets tab. Category,
// Subcategory, Brand and Location are free-text copies of the referenced
// entity's name column, not enforced foreign keys: renaming a Location
// does not cascade here. Amount and dates stay strings because the cells
// are text; reports parse them defensively.
type Asset struct {
	AssetCode    string `json:"assetCode"`
	ItemName     string `json:"itemName"`
	Category     string `json:"category"`
	Subcategory  string `json:"subcategory"`
	Brand        string `json:"brand"`
	Description  string `json:"description"`
	Amount       string `json:"amount"`
	Location     string `json:"location"`
	PurchaseDate string `json:"purchaseDate"` // YYYY-MM-DD
	Warranty     string `json:"warranty"`
	Department   string `json:"department"`
	Ownership    string `json:"ownership"`
	Status       string `json:"status"`
	ImageRef     string `json:"imageRef"`
	DocumentRef  string `json:"documentRef"`
}

// Statuses offered by the UI. Stored as free text; blank is allowed.
var AssetStatuses = []string{
	"Active", "Inactive", "Under Maintenance", "Disposed", "Sold", "Lost",
}

// NewAssetCode derives the generated key for a new asset from the wall
// clock at second resolution, e.g. AST-20250901143157. Two inserts within
// the same second collide; that is retained, documented behaviour of the
// stored data format.
func NewAssetCode(now time.Time) string {
	return "AST-" + now.Format("20060102150405")
}

func AssetFromRecord(rec sheetstore.Record) Asset {
	return Asset{
		AssetCode:    rec["Asset Code"],
		ItemName:     rec["Item Name"],
		Category:     rec["Asset Category"],
		Subcategory:  rec["Asset SubCategory"],
		Brand:        rec["Brand"],
		Description:  rec["Asset Description"],
		Amount:       rec["Amount"],
		Location:     rec["Location"],
		PurchaseDate: rec["Date of Purchase"],
		Warranty:     rec["Warranty"],
		Department:   rec["Department"],
		Ownership:    rec["Ownership"],
		Status:       rec["Asset Status"],
		ImageRef:     rec["Image Attachment"],
		DocumentRef:  rec["Document Attachment"],
	}
}

func (a Asset) ToRecord() sheetstore.Record {
	return sheetstore.Record{
		"Asset Code":          a.AssetCode,
		"Item Name":           a.ItemName,
		"Asset Category":      a.Category,
		"Asset SubCategory":   a.Subcategory,
		"Brand":               a.Brand,
		"Asset Description":   a.Description,
		"Amount":              a.Amount,
		"Location":            a.Location,
		"Date of Purchase":    a.PurchaseDate,
		"Warranty":            a.Warranty,
		"Department":          a.Department,
		"Ownership":           a.Ownership,
		"Asset Status":        a.Status,
		"Image Attachment":    a.ImageRef,
		"Document Attachment": a.DocumentRef,
	}
}
