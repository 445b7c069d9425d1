package handler

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taxlens/internal/domain"
	"taxlens/internal/export"
	"taxlens/internal/service"
)

// ExtractHandler serves the extraction endpoints.
type ExtractHandler struct {
	extractor service.Extractor
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(extractor service.Extractor) *ExtractHandler {
	return &ExtractHandler{extractor: extractor}
}

// ExtractRequest is the body of POST /extract.
type ExtractRequest struct {
	Text         string              `json:"text"`
	DocumentType domain.DocumentType `json:"document_type"`
}

// BatchRequest is the body of POST /extract/batch and /extract/export.
type BatchRequest struct {
	Documents []domain.BatchInput `json:"documents"`
}

// Extract handles POST /extract. Empty text is a normal 200 with a
// diagnostic reason in metadata, not an error: callers need to distinguish
// "extracted nothing" from "request malformed".
func (h *ExtractHandler) Extract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		return
	}

	result, err := h.extractor.Extract(c.Request.Context(), req.Text, req.DocumentType)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// ExtractBatch handles POST /extract/batch.
func (h *ExtractHandler) ExtractBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		return
	}

	items, err := h.extractor.ExtractBatch(c.Request.Context(), req.Documents)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"items": items, "count": len(items)})
}

// Export handles POST /extract/export?format=csv|xlsx: batch extraction
// streamed back as a report file.
func (h *ExtractHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		HandleError(c, domain.ErrUnsupportedFormat)
		return
	}

	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		return
	}

	items, err := h.extractor.ExtractBatch(c.Request.Context(), req.Documents)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("extractions_%s.%s", time.Now().UTC().Format("20060102_150405"), format)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	switch format {
	case "csv":
		c.Header("Content-Type", "text/csv; charset=utf-8")
		err = export.WriteCSV(c.Writer, items)
	case "xlsx":
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		err = export.WriteXLSX(c.Writer, items)
	}
	if err != nil {
		requestID, _ := c.Get("request_id")
		// Headers are already out; all we can do is log.
		log.Printf("[%v] export write failed: %v", requestID, err)
	}
}
