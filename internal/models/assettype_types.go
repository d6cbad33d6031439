package models

import "github.com/tonycharles1/Trackz/internal/sheetstore"

// AssetType maps one row of the AssetTypes tab. The user-supplied Asset
// Code is the key; Name drives the depreciation-rate lookup by matching
// against an asset's category name.
type AssetType struct {
	AssetCode        string `json:"assetCode"`
	Name             string `json:"name"`
	DepreciationRate string `json:"depreciationRate"` // percent, stored as text
}

func AssetTypeFromRecord(rec sheetstore.Record) AssetType {
	return AssetType{
		AssetCode:        rec["Asset Code"],
		Name:             rec["Asset Type"],
		DepreciationRate: rec["Depreciation Value (%)"],
	}
}

func (a AssetType) ToRecord() sheetstore.Record {
	return sheetstore.Record{
		"Asset Code":             a.AssetCode,
		"Asset Type":             a.Name,
		"Depreciation Value (%)": a.DepreciationRate,
	}
}
