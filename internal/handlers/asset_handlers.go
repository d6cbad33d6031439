package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tonycharles1/Trackz/internal/export"
	"github.com/tonycharles1/Trackz/internal/middleware"
	"github.com/tonycharles1/Trackz/internal/models"
	"github.com/tonycharles1/Trackz/internal/sheetstore"
)

// GetAllAssets lists the register. An optional ?search= term matches
// case-insensitively against asset code and item name.
func (h *Handlers) GetAllAssets(c *gin.Context) {
	store := h.store(c)
	if store == nil {
		return
	}
	records, err := store.List(sheetstore.TabAssets)
	if err != nil {
		h.storeError(c, err)
		return
	}

	search := strings.ToLower(strings.TrimSpace(c.Query("search")))
	assets := make([]models.Asset, 0, len(records))
	for _, rec := range records {
		asset := models.AssetFromRecord(rec)
		if search != "" &&
			!strings.Contains(strings.ToLower(asset.AssetCode), search) &&
			!strings.Contains(strings.ToLower(asset.ItemName), search) {
			continue
		}
		assets = append(assets, asset)
	}
	c.JSON(http.StatusOK, gin.H{"assets": assets})
}

func (h *Handlers) GetAsset(c *gin.Context) {
	store := h.store(c)
	if store == nil {
		return
	}
	rec, err := store.Find(sheetstore.TabAssets, "Asset Code", c.Param("code"))
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"asset": models.AssetFromRecord(rec)})
}

type CreateAssetInput struct {
	ItemName     string `json:"itemName" binding:"required"`
	Category     string `json:"category"`
	Subcategory  string `json:"subcategory"`
	Brand        string `json:"brand"`
	Description  string `json:"description"`
	Amount       string `json:"amount"`
	Location     string `json:"location"`
	PurchaseDate string `json:"purchaseDate"`
	Warranty     string `json:"warranty"`
	Department   string `json:"department"`
	Ownership    string `json:"ownership"`
	Status       string `json:"status"`
	ImageRef     string `json:"imageRef"`
	DocumentRef  string `json:"documentRef"`
}

// CreateAsset registers a new asset under a generated AST- code.
func (h *Handlers) CreateAsset(c *gin.Context) {
	var input CreateAssetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown asset status"})
		return
	}
	store := h.store(c)
	if store == nil {
		return
	}

	asset := models.Asset{
		AssetCode:    models.NewAssetCode(time.Now()),
		ItemName:     input.ItemName,
		Category:     input.Category,
		Subcategory:  input.Subcategory,
		Brand:        input.Brand,
		Description:  input.Description,
		Amount:       input.Amount,
		Location:     input.Location,
		PurchaseDate: input.PurchaseDate,
		Warranty:     input.Warranty,
		Department:   input.Department,
		Ownership:    input.Ownership,
		Status:       input.Status,
		ImageRef:     input.ImageRef,
		DocumentRef:  input.DocumentRef,
	}
	if err := store.Insert(sheetstore.TabAssets, asset.ToRecord()); err != nil {
		h.storeError(c, err)
		return
	}

	h.recordActivity(middleware.Username(c), "Create", "Asset",
		asset.AssetCode, "Added asset "+asset.ItemName, "")
	c.JSON(http.StatusCreated, gin.H{"message": "Asset created", "asset": asset})
}

type UpdateAssetInput struct {
	ItemName     *string `json:"itemName"`
	Category     *string `json:"category"`
	Subcategory  *string `json:"subcategory"`
	Brand        *string `json:"brand"`
	Description  *string `json:"description"`
	Amount       *string `json:"amount"`
	Location     *string `json:"location"`
	PurchaseDate *string `json:"purchaseDate"`
	Warranty     *string `json:"warranty"`
	Department   *string `json:"department"`
	Ownership    *string `json:"ownership"`
	Status       *string `json:"status"`
	ImageRef     *string `json:"imageRef"`
	DocumentRef  *string `json:"documentRef"`
}

// UpdateAsset patches the provided fields of one asset row. Absent
// fields keep their stored values; the asset code itself is immutable.
func (h *Handlers) UpdateAsset(c *gin.Context) {
	var input UpdateAssetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Status != nil && !validStatus(*input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown asset status"})
		return
	}
	store := h.store(c)
	if store == nil {
		return
	}

	patch := sheetstore.Record{}
	set := func(header string, v *string) {
		if v != nil {
			patch[header] = *v
		}
	}
	set("Item Name", input.ItemName)
	set("Asset Category", input.Category)
	set("Asset SubCategory", input.Subcategory)
	set("Brand", input.Brand)
	set("Asset Description", input.Description)
	set("Amount", input.Amount)
	set("Location", input.Location)
	set("Date of Purchase", input.PurchaseDate)
	set("Warranty", input.Warranty)
	set("Department", input.Department)
	set("Ownership", input.Ownership)
	set("Asset Status", input.Status)
	set("Image Attachment", input.ImageRef)
	set("Document Attachment", input.DocumentRef)
	if len(patch) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	code := c.Param("code")
	if err := store.Update(sheetstore.TabAssets, "Asset Code", code, patch); err != nil {
		h.storeError(c, err)
		return
	}

	h.recordActivity(middleware.Username(c), "Update", "Asset", code,
		"Updated asset "+code, "")
	c.JSON(http.StatusOK, gin.H{"message": "Asset updated"})
}

func (h *Handlers) DeleteAsset(c *gin.Context) {
	store := h.store(c)
	if store == nil {
		return
	}
	code := c.Param("code")
	if err := store.Delete(sheetstore.TabAssets, "Asset Code", code); err != nil {
		h.storeError(c, err)
		return
	}
	h.recordActivity(middleware.Username(c), "Delete", "Asset", code,
		"Deleted asset "+code, "")
	c.JSON(http.StatusOK, gin.H{"message": "Asset deleted"})
}

// validStatus reports whether a submitted status is one the register
// offers. Blank stays allowed, matching rows already stored.
func validStatus(status string) bool {
	if status == "" {
		return true
	}
	for _, s := range models.AssetStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// GetAssetLabel renders a printable PDF label with the asset's code128
// barcode and item name.
func (h *Handlers) GetAssetLabel(c *gin.Context) {
	store := h.store(c)
	if store == nil {
		return
	}
	code := c.Param("code")
	rec, err := store.Find(sheetstore.TabAssets, "Asset Code", code)
	if err != nil {
		h.storeError(c, err)
		return
	}

	label, err := export.Label(code, rec["Item Name"])
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render label"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+code+`-label.pdf"`)
	c.Data(http.StatusOK, export.PDFMIME, label.Bytes())
}
