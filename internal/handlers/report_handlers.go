package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tonycharles1/Trackz/internal/models"
	"github.com/tonycharles1/Trackz/internal/reports"
	"github.com/tonycharles1/Trackz/internal/sheetstore"
)

// GetDashboard assembles the landing-page figures: register size, total
// purchase value, reference-data counts and the chart groupings.
func (h *Handlers) GetDashboard(c *gin.Context) {
	store := h.store(c)
	if store == nil {
		return
	}
	assets, err := store.List(sheetstore.TabAssets)
	if err != nil {
		h.storeError(c, err)
		return
	}
	categories, err := store.List(sheetstore.TabCategories)
	if err != nil {
		h.storeError(c, err)
		return
	}
	locations, err := store.List(sheetstore.TabLocations)
	if err != nil {
		h.storeError(c, err)
		return
	}

	byBrand := reports.CountBy(assets, "Brand", reports.NoBrand)
	c.JSON(http.StatusOK, gin.H{
		"totalAssets":     len(assets),
		"totalValue":      reports.TotalAmount(assets, "Amount"),
		"totalCategories": len(categories),
		"totalLocations":  len(locations),
		"byCategory":      reports.CountBy(assets, "Asset Category", reports.NoCategory),
		"byLocation":      reports.CountBy(assets, "Location", reports.NoLocation),
		"byStatus":        reports.CountBy(assets, "Asset Status", reports.NoStatus),
		"valueByCategory": reports.SumBy(assets, "Asset Category", "Amount", reports.NoCategory),
		"topBrands":       reports.TopGroups(byBrand, 10),
	})
}

// GetAssetReport lists assets filtered by the query parameters used on
// the reports page. Empty parameters do not filter.
func (h *Handlers) GetAssetReport(c *gin.Context) {
	store := h.store(c)
	if store == nil {
		return
	}
	records, err := h.filteredAssets(c, store)
	if err != nil {
		h.storeError(c, err)
		return
	}
	assets := make([]models.Asset, 0, len(records))
	for _, rec := range records {
		assets = append(assets, models.AssetFromRecord(rec))
	}
	c.JSON(http.StatusOK, gin.H{
		"assets":     assets,
		"count":      len(assets),
		"totalValue": reports.TotalAmount(records, "Amount"),
	})
}

// GetMovementReport lists movements filtered by ?from=, ?to= (YYYY-MM-DD,
// inclusive) and ?user=.
func (h *Handlers) GetMovementReport(c *gin.Context) {
	store := h.store(c)
	if store == nil {
		return
	}
	records, err := h.filteredMovements(c, store)
	if err != nil {
		h.storeError(c, err)
		return
	}
	movements := make([]models.AssetMovement, 0, len(records))
	for _, rec := range records {
		movements = append(movements, models.AssetMovementFromRecord(rec))
	}
	c.JSON(http.StatusOK, gin.H{"movements": movements, "count": len(movements)})
}

// GetDepreciationReport computes the straight-line valuation of every
// asset as of today, plus the summary totals.
func (h *Handlers) GetDepreciationReport(c *gin.Context) {
	store := h.store(c)
	if store == nil {
		return
	}
	lines, err := h.depreciationLines(store)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"lines":   lines,
		"summary": reports.Summarize(lines),
	})
}

// filteredAssets applies the report-page filters (?category=, ?location=,
// ?status=, ?search=) over the Assets tab.
func (h *Handlers) filteredAssets(c *gin.Context, store *sheetstore.Store) ([]sheetstore.Record, error) {
	records, err := store.List(sheetstore.TabAssets)
	if err != nil {
		return nil, err
	}

	category := c.Query("category")
	location := c.Query("location")
	status := c.Query("status")
	search := lowerTrim(c.Query("search"))

	filtered := records[:0:0]
	for _, rec := range records {
		if category != "" && rec["Asset Category"] != category {
			continue
		}
		if location != "" && rec["Location"] != location {
			continue
		}
		if status != "" && rec["Asset Status"] != status {
			continue
		}
		if search != "" &&
			!containsFold(rec["Asset Code"], search) &&
			!containsFold(rec["Item Name"], search) {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered, nil
}

// filteredMovements applies ?from=, ?to= and ?user= over AssetMovements.
// Date bounds compare against the date part of the stored timestamp and
// are inclusive; an unparsable stored date passes the bounds.
func (h *Handlers) filteredMovements(c *gin.Context, store *sheetstore.Store) ([]sheetstore.Record, error) {
	records, err := store.List(sheetstore.TabAssetMovements)
	if err != nil {
		return nil, err
	}

	from := c.Query("from")
	to := c.Query("to")
	user := c.Query("user")

	filtered := records[:0:0]
	for _, rec := range records {
		if user != "" && rec["Moved By"] != user {
			continue
		}
		day := movementDay(rec["Movement Date"])
		if day != "" {
			if from != "" && day < from {
				continue
			}
			if to != "" && day > to {
				continue
			}
		}
		filtered = append(filtered, rec)
	}
	return filtered, nil
}

// depreciationLines reads assets and asset types and runs the valuation.
func (h *Handlers) depreciationLines(store *sheetstore.Store) ([]reports.DepreciationLine, error) {
	assets, err := store.List(sheetstore.TabAssets)
	if err != nil {
		return nil, err
	}
	assetTypes, err := store.List(sheetstore.TabAssetTypes)
	if err != nil {
		return nil, err
	}
	return reports.Depreciate(assets, reports.RateLookup(assetTypes), time.Now()), nil
}

func lowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func containsFold(haystack, loweredNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), loweredNeedle)
}

// movementDay extracts the YYYY-MM-DD prefix of a stored movement
// timestamp, or "" when the cell is too short to carry one.
func movementDay(stamp string) string {
	if len(stamp) < 10 {
		return ""
	}
	return stamp[:10]
}
