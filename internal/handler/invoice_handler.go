package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"invogen/internal/domain"
	"invogen/internal/export"
)

// TemplateGenerator drafts invoice records from free-text prompts.
type TemplateGenerator interface {
	Generate(ctx context.Context, prompt string) (*domain.Invoice, error)
}

// InvoiceExporter encodes invoices into downloadable payloads.
type InvoiceExporter interface {
	Export(ctx context.Context, inv *domain.Invoice, format domain.ExportFormat) (*export.Result, error)
}

// InvoiceHandler handles invoice drafting and export endpoints.
type InvoiceHandler struct {
	generator  TemplateGenerator
	dispatcher InvoiceExporter
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(generator TemplateGenerator, dispatcher InvoiceExporter) *InvoiceHandler {
	return &InvoiceHandler{generator: generator, dispatcher: dispatcher}
}

// GenerateTemplate handles POST /api/v1/generate-template
// @Summary Draft an invoice from a prompt
// @Description Ask the completion provider for placeholder invoice data matching the invoice schema
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body GenerateTemplateRequest true "Free-text prompt"
// @Success 200 {object} APIResponse{data=domain.Invoice} "Drafted invoice record"
// @Failure 400 {object} APIResponse "Missing prompt"
// @Failure 500 {object} APIResponse "Malformed AI response"
// @Failure 502 {object} APIResponse "Completion provider error"
// @Router /generate-template [post]
func (h *InvoiceHandler) GenerateTemplate(c *gin.Context) {
	var req GenerateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "prompt is required")
		return
	}

	inv, err := h.generator.Generate(c.Request.Context(), req.Prompt)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, inv)
}

// GenerateTemplateRequest is the body for POST /generate-template.
type GenerateTemplateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// Export handles POST /api/v1/export?format=pdf|xml|json|csv
// @Summary Export an invoice
// @Description Encode a complete invoice record into the requested download format
// @Tags invoices
// @Accept json
// @Produce octet-stream
// @Param format query string true "Export format" Enums(pdf, xml, json, csv)
// @Param invoice body domain.Invoice true "Invoice record"
// @Success 200 {file} binary "Encoded payload with Content-Disposition attachment"
// @Failure 400 {object} APIResponse "Unknown format or invalid record"
// @Failure 500 {object} APIResponse "Rendering failure"
// @Router /export [post]
func (h *InvoiceHandler) Export(c *gin.Context) {
	// Reject unknown format tags before any decoding work.
	format, err := domain.ParseExportFormat(c.Query("format"))
	if err != nil {
		HandleError(c, err)
		return
	}

	var inv domain.Invoice
	if err := c.ShouldBindJSON(&inv); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body is not a valid invoice record")
		return
	}
	if err := inv.Validate(); err != nil {
		HandleError(c, err)
		return
	}

	res, err := h.dispatcher.Export(c.Request.Context(), &inv, format)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", res.Filename))
	c.Data(http.StatusOK, res.ContentType, res.Data)
}
