package sheetstore

// Tab names. One tab per entity, first row is the header.
const (
	TabUsers          = "Users"
	TabLocations      = "Locations"
	TabCategories     = "Categories"
	TabSubcategories  = "Subcategories"
	TabAssetTypes     = "AssetTypes"
	TabBrands         = "Brands"
	TabAssets         = "Assets"
	TabAssetMovements = "AssetMovements"
	TabActivityLogs   = "ActivityLogs"
)

// Schema maps every tab to its header row. The header names double as the
// record field names, so this table is the single source of truth for the
// stored column layout. Do not reorder after data exists: updates rewrite
// whole rows in current header order.
var Schema = map[string][]string{
	TabUsers:         {"Username", "Email", "Password", "Role"},
	TabLocations:     {"ID", "Location Name"},
	TabCategories:    {"ID", "Category Name"},
	TabSubcategories: {"ID", "Subcategory Name", "Category ID"},
	TabAssetTypes:    {"Asset Code", "Asset Type", "Depreciation Value (%)"},
	TabBrands:        {"ID", "Brand Name"},
	TabAssets: {
		"Asset Code", "Item Name", "Asset Category", "Asset SubCategory",
		"Brand", "Asset Description", "Amount", "Location",
		"Date of Purchase", "Warranty", "Department", "Ownership",
		"Asset Status", "Image Attachment", "Document Attachment",
	},
	TabAssetMovements: {
		"ID", "Asset Code", "From Location", "To Location",
		"Movement Date", "Moved By", "Notes",
	},
	TabActivityLogs: {
		"ID", "Date & Time", "Type", "User", "Action", "Entity Type",
		"Entity ID", "Description", "Details",
	},
}

// EnsureSchema creates any missing tab and writes its header row. Safe to
// run on every startup; existing tabs are left untouched.
func (s *Store) EnsureSchema() error {
	for _, tab := range []string{
		TabUsers, TabLocations, TabCategories, TabSubcategories,
		TabAssetTypes, TabBrands, TabAssets, TabAssetMovements,
		TabActivityLogs,
	} {
		if err := s.api.EnsureTab(tab, Schema[tab]); err != nil {
			return opErr("ensure", tab, err)
		}
	}
	return nil
}
