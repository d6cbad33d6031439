package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tonycharles1/Trackz/internal/config"
	"github.com/tonycharles1/Trackz/internal/sheetstore"
)

// Handlers holds all dependencies for the request handlers.
type Handlers struct {
	Store      *sheetstore.Store
	Cfg        *config.Config
	ConnectErr error // why Store is nil, when it is
}

// store returns the record store, or writes the degraded-mode response
// and returns nil. The server keeps running without a backend connection
// so the operator sees actionable guidance instead of a crash loop.
func (h *Handlers) store(c *gin.Context) *sheetstore.Store {
	if h.Store != nil {
		return h.Store
	}
	detail := "no connection attempt was made"
	if h.ConnectErr != nil {
		detail = h.ConnectErr.Error()
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"error":  "Spreadsheet backend is not connected",
		"detail": detail,
		"hint": "Verify GOOGLE_CREDENTIALS_JSON (or credentials.json) and SPREADSHEET_ID, " +
			"share the sheet with the service account email as Editor, then restart.",
	})
	return nil
}

// storeError maps a store failure onto an HTTP response. Not-found,
// connectivity and rejected-write failures are distinguishable, per the
// store's error taxonomy.
func (h *Handlers) storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, sheetstore.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.Is(err, sheetstore.ErrNotConnected):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":  "Spreadsheet backend unreachable",
			"detail": err.Error(),
			"hint":   "Check the service account credentials and sheet sharing, then retry.",
		})
	case errors.Is(err, sheetstore.ErrWriteRejected):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":  "Write rejected by the spreadsheet backend",
			"detail": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
