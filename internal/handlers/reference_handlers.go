package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tonycharles1/Trackz/internal/middleware"
	"github.com/tonycharles1/Trackz/internal/models"
	"github.com/tonycharles1/Trackz/internal/sheetstore"
)

// Reference-data handlers: Locations, Categories, Subcategories and
// Brands share the ID/name row shape, AssetTypes is keyed by its
// user-supplied code. Listing is open to every authenticated user;
// deletes are admin-gated in the router.

// --- Locations ---

func (h *Handlers) GetAllLocations(c *gin.Context) {
	store := h.store(c)
	if store == nil {
		return
	}
	records, err := store.List(sheetstore.TabLocations)
	if err != nil {
		h.storeError(c, err)
		return
	}
	locations := make([]models.Location, 0, len(records))
	for _, rec := range records {
		locations = append(locations, models.LocationFromRecord(rec))
	}
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

type CreateLocationInput struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handlers) CreateLocation(c *gin.Context) {
	var input CreateLocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	store := h.store(c)
	if store == nil {
		return
	}

	location := models.Location{Name: input.Name}
	id, err := store.InsertWithNextID(sheetstore.TabLocations, location.ToRecord())
	if err != nil {
		h.storeError(c, err)
		return
	}
	location.ID = id

	h.recordActivity(middleware.Username(c), "Create", "Location",
		sheetstore.Key(id), "Added location "+input.Name, "")
	c.JSON(http.StatusCreated, gin.H{"message": "Location created", "location": location})
}

func (h *Handlers) DeleteLocation(c *gin.Context) {
	h.deleteByID(c, sheetstore.TabLocations, "Location")
}

// --- Categories ---

func (h *Handlers) GetAllCategories(c *gin.Context) {
	store := h.store(c)
	if store == nil {
		return
	}
	records, err := store.List(sheetstore.TabCategories)
	if err != nil {
		h.storeError(c, err)
		return
	}
	categories := make([]models.Category, 0, len(records))
	for _, rec := range records {
		categories = append(categories, models.CategoryFromRecord(rec))
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

type CreateCategoryInput struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handlers) CreateCategory(c *gin.Context) {
	var input CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	store := h.store(c)
	if store == nil {
		return
	}

	category := models.Category{Name: input.Name}
	id, err := store.InsertWithNextID(sheetstore.TabCategories, category.ToRecord())
	if err != nil {
		h.storeError(c, err)
		return
	}
	category.ID = id

	h.recordActivity(middleware.Username(c), "Create", "Category",
		sheetstore.Key(id), "Added category "+input.Name, "")
	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "category": category})
}

func (h *Handlers) DeleteCategory(c *gin.Context) {
	h.deleteByID(c, sheetstore.TabCategories, "Category")
}

// --- Subcategories ---

func (h *Handlers) GetAllSubcategories(c *gin.Context) {
	store := h.store(c)
	if store == nil {
		return
	}
	records, err := store.List(sheetstore.TabSubcategories)
	if err != nil {
		h.storeError(c, err)
		return
	}
	subcategories := make([]models.Subcategory, 0, len(records))
	for _, rec := range records {
		subcategories = append(subcategories, models.SubcategoryFromRecord(rec))
	}
	c.JSON(http.StatusOK, gin.H{"subcategories": subcategories})
}

type CreateSubcategoryInput struct {
	Name       string `json:"name" binding:"required"`
	CategoryID string `json:"categoryId" binding:"required"`
}

func (h *Handlers) CreateSubcategory(c *gin.Context) {
	var input CreateSubcategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	store := h.store(c)
	if store == nil {
		return
	}

	subcategory := models.Subcategory{Name: input.Name, CategoryID: input.CategoryID}
	id, err := store.InsertWithNextID(sheetstore.TabSubcategories, subcategory.ToRecord())
	if err != nil {
		h.storeError(c, err)
		return
	}
	subcategory.ID = id

	h.recordActivity(middleware.Username(c), "Create", "Subcategory",
		sheetstore.Key(id), "Added subcategory "+input.Name, "")
	c.JSON(http.StatusCreated, gin.H{"message": "Subcategory created", "subcategory": subcategory})
}

func (h *Handlers) DeleteSubcategory(c *gin.Context) {
	h.deleteByID(c, sheetstore.TabSubcategories, "Subcategory")
}

// --- Brands ---

func (h *Handlers) GetAllBrands(c *gin.Context) {
	store := h.store(c)
	if store == nil {
		return
	}
	records, err := store.List(sheetstore.TabBrands)
	if err != nil {
		h.storeError(c, err)
		return
	}
	brands := make([]models.Brand, 0, len(records))
	for _, rec := range records {
		brands = append(brands, models.BrandFromRecord(rec))
	}
	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

type CreateBrandInput struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handlers) CreateBrand(c *gin.Context) {
	var input CreateBrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	store := h.store(c)
	if store == nil {
		return
	}

	brand := models.Brand{Name: input.Name}
	id, err := store.InsertWithNextID(sheetstore.TabBrands, brand.ToRecord())
	if err != nil {
		h.storeError(c, err)
		return
	}
	brand.ID = id

	h.recordActivity(middleware.Username(c), "Create", "Brand",
		sheetstore.Key(id), "Added brand "+input.Name, "")
	c.JSON(http.StatusCreated, gin.H{"message": "Brand created", "brand": brand})
}

func (h *Handlers) DeleteBrand(c *gin.Context) {
	h.deleteByID(c, sheetstore.TabBrands, "Brand")
}

// --- Asset Types ---

func (h *Handlers) GetAllAssetTypes(c *gin.Context) {
	store := h.store(c)
	if store == nil {
		return
	}
	records, err := store.List(sheetstore.TabAssetTypes)
	if err != nil {
		h.storeError(c, err)
		return
	}
	assetTypes := make([]models.AssetType, 0, len(records))
	for _, rec := range records {
		assetTypes = append(assetTypes, models.AssetTypeFromRecord(rec))
	}
	c.JSON(http.StatusOK, gin.H{"assetTypes": assetTypes})
}

type CreateAssetTypeInput struct {
	AssetCode        string `json:"assetCode" binding:"required"`
	Name             string `json:"name" binding:"required"`
	DepreciationRate string `json:"depreciationRate" binding:"required"`
}

func (h *Handlers) CreateAssetType(c *gin.Context) {
	var input CreateAssetTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	store := h.store(c)
	if store == nil {
		return
	}

	assetType := models.AssetType{
		AssetCode:        input.AssetCode,
		Name:             input.Name,
		DepreciationRate: input.DepreciationRate,
	}
	if err := store.Insert(sheetstore.TabAssetTypes, assetType.ToRecord()); err != nil {
		h.storeError(c, err)
		return
	}

	h.recordActivity(middleware.Username(c), "Create", "AssetType",
		input.AssetCode, "Added asset type "+input.Name, "")
	c.JSON(http.StatusCreated, gin.H{"message": "Asset type created", "assetType": assetType})
}

func (h *Handlers) DeleteAssetType(c *gin.Context) {
	store := h.store(c)
	if store == nil {
		return
	}
	code := c.Param("code")
	if err := store.Delete(sheetstore.TabAssetTypes, "Asset Code", code); err != nil {
		h.storeError(c, err)
		return
	}
	h.recordActivity(middleware.Username(c), "Delete", "AssetType", code,
		"Deleted asset type "+code, "")
	c.JSON(http.StatusOK, gin.H{"message": "Asset type deleted"})
}

// deleteByID removes one ID-keyed reference row and records the audit
// entry. The :id route param is matched textually against the ID column.
func (h *Handlers) deleteByID(c *gin.Context, tab, entityType string) {
	store := h.store(c)
	if store == nil {
		return
	}
	id := c.Param("id")
	if err := store.Delete(tab, "ID", id); err != nil {
		h.storeError(c, err)
		return
	}
	h.recordActivity(middleware.Username(c), "Delete", entityType, id,
		fmt.Sprintf("Deleted %s %s", entityType, id), "")
	c.JSON(http.StatusOK, gin.H{"message": entityType + " deleted"})
}
