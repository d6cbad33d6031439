package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tonycharles1/Trackz/internal/export"
)

// Export endpoints serialize the same filtered record sets the report
// endpoints return, as a spreadsheet or a PDF table, chosen with
// ?format=xlsx|pdf (xlsx when absent).

var assetExportHeaders = []string{
	"Asset Code", "Item Name", "Asset Category", "Asset SubCategory",
	"Brand", "Amount", "Location", "Date of Purchase", "Department",
	"Ownership", "Asset Status",
}

var movementExportHeaders = []string{
	"ID", "Asset Code", "From Location", "To Location",
	"Movement Date", "Moved By", "Notes",
}

var depreciationExportHeaders = []string{
	"Asset Code", "Item Name", "Category", "Location", "Purchase Date",
	"Purchase Amount", "Age (Years)", "Rate (%)", "Annual Depreciation",
	"Total Depreciation", "Current Value",
}

func (h *Handlers) ExportAssetReport(c *gin.Context) {
	store := h.store(c)
	if store == nil {
		return
	}
	records, err := h.filteredAssets(c, store)
	if err != nil {
		h.storeError(c, err)
		return
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, 0, len(assetExportHeaders))
		for _, header := range assetExportHeaders {
			row = append(row, rec[header])
		}
		rows = append(rows, row)
	}
	h.writeExport(c, "assets", "Assets", assetExportHeaders, rows)
}

func (h *Handlers) ExportMovementReport(c *gin.Context) {
	store := h.store(c)
	if store == nil {
		return
	}
	records, err := h.filteredMovements(c, store)
	if err != nil {
		h.storeError(c, err)
		return
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, 0, len(movementExportHeaders))
		for _, header := range movementExportHeaders {
			row = append(row, rec[header])
		}
		rows = append(rows, row)
	}
	h.writeExport(c, "movements", "Asset Movements", movementExportHeaders, rows)
}

func (h *Handlers) ExportDepreciationReport(c *gin.Context) {
	store := h.store(c)
	if store == nil {
		return
	}
	lines, err := h.depreciationLines(store)
	if err != nil {
		h.storeError(c, err)
		return
	}
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []string{
			l.AssetCode, l.ItemName, l.Category, l.Location, l.PurchaseDate,
			money(l.PurchaseAmount), fmt.Sprintf("%.2f", l.AgeYears),
			fmt.Sprintf("%.1f", l.RatePercent), money(l.AnnualDepreciation),
			money(l.TotalDepreciation), money(l.CurrentValue),
		})
	}
	h.writeExport(c, "depreciation", "Depreciation", depreciationExportHeaders, rows)
}

// writeExport renders the rows in the requested format and streams the
// file with a dated attachment name.
func (h *Handlers) writeExport(c *gin.Context, name, title string, headers []string, rows [][]string) {
	stamp := time.Now().Format("20060102")
	var (
		buf  *bytes.Buffer
		err  error
		mime string
		file string
	)
	switch c.DefaultQuery("format", "xlsx") {
	case "xlsx":
		buf, err = export.Excel(title, headers, rows)
		mime = export.ExcelMIME
		file = fmt.Sprintf("%s-report-%s.xlsx", name, stamp)
	case "pdf":
		buf, err = export.PDF(title+" Report", headers, rows)
		mime = export.PDFMIME
		file = fmt.Sprintf("%s-report-%s.pdf", name, stamp)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported format, use xlsx or pdf"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render export"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file+`"`)
	c.Data(http.StatusOK, mime, buf.Bytes())
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
