package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"invogen/internal/domain"
	"invogen/internal/export"
	"invogen/internal/handler"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// MockGenerator is a mock TemplateGenerator.
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (*domain.Invoice, error) {
	args := m.Called(ctx, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

// MockExporter is a mock InvoiceExporter.
type MockExporter struct {
	mock.Mock
}

func (m *MockExporter) Export(ctx context.Context, inv *domain.Invoice, format domain.ExportFormat) (*export.Result, error) {
	args := m.Called(ctx, inv, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*export.Result), args.Error(1)
}

func floatPtr(v float64) *float64 { return &v }

func testInvoice() *domain.Invoice {
	return &domain.Invoice{
		Title:          "Invoice",
		CompanyName:    "Acme Design LLC",
		CompanyAddress: "123 Main St\nSpringfield, IL 62701",
		BillToName:     "Globex Corp",
		BillToAddress:  "456 Client Ave\nShelbyville, IL 62565",
		InvoiceNumber:  "INV-001",
		Date:           "2026-08-01",
		DueDate:        "2026-08-31",
		Items: []domain.InvoiceItem{
			{Description: "Widget", Quantity: 2, UnitPrice: 10.00},
			{Description: "Gadget", Quantity: 1, UnitPrice: 25.00},
		},
		ThemeColor: "#3498db",
	}
}

func newTestContext(method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGenerateTemplate_Success(t *testing.T) {
	gen := new(MockGenerator)
	exp := new(MockExporter)
	h := handler.NewInvoiceHandler(gen, exp)

	inv := testInvoice()
	inv.TaxRate = floatPtr(8.5)
	gen.On("Generate", mock.Anything, "invoice for a bakery").Return(inv, nil)

	body, _ := json.Marshal(handler.GenerateTemplateRequest{Prompt: "invoice for a bakery"})
	c, w := newTestContext(http.MethodPost, "/api/v1/generate-template", body)

	h.GenerateTemplate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var got domain.Invoice
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "Acme Design LLC", got.CompanyName)
	require.NotNil(t, got.TaxRate)
	assert.Equal(t, 8.5, *got.TaxRate)

	gen.AssertExpectations(t)
}

func TestGenerateTemplate_MissingPrompt(t *testing.T) {
	gen := new(MockGenerator)
	h := handler.NewInvoiceHandler(gen, new(MockExporter))

	c, w := newTestContext(http.MethodPost, "/api/v1/generate-template", []byte(`{}`))

	h.GenerateTemplate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestGenerateTemplate_MalformedAIResponse(t *testing.T) {
	gen := new(MockGenerator)
	h := handler.NewInvoiceHandler(gen, new(MockExporter))

	gen.On("Generate", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: invalid character 'S'", domain.ErrAIResponseMalformed))

	body, _ := json.Marshal(handler.GenerateTemplateRequest{Prompt: "anything"})
	c, w := newTestContext(http.MethodPost, "/api/v1/generate-template", body)

	h.GenerateTemplate(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeEnvelope(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "AI_RESPONSE_MALFORMED", resp.Error.Code)
}

func TestGenerateTemplate_ProviderDown(t *testing.T) {
	gen := new(MockGenerator)
	h := handler.NewInvoiceHandler(gen, new(MockExporter))

	gen.On("Generate", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: openai provider error (status 503)", domain.ErrUpstreamProvider))

	body, _ := json.Marshal(handler.GenerateTemplateRequest{Prompt: "anything"})
	c, w := newTestContext(http.MethodPost, "/api/v1/generate-template", body)

	h.GenerateTemplate(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	resp := decodeEnvelope(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UPSTREAM_PROVIDER_ERROR", resp.Error.Code)
}

func TestExport_CSV(t *testing.T) {
	exp := new(MockExporter)
	h := handler.NewInvoiceHandler(new(MockGenerator), exp)

	exp.On("Export", mock.Anything, mock.AnythingOfType("*domain.Invoice"), domain.FormatCSV).
		Return(&export.Result{
			Data:        []byte("Description,Quantity,Unit Price,Total\n"),
			ContentType: "text/csv",
			Filename:    "invoice_items.csv",
		}, nil)

	body, _ := json.Marshal(testInvoice())
	c, w := newTestContext(http.MethodPost, "/api/v1/export?format=csv", body)

	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=invoice_items.csv", w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "Description,Quantity")
	exp.AssertExpectations(t)
}

func TestExport_UnknownFormat(t *testing.T) {
	exp := new(MockExporter)
	h := handler.NewInvoiceHandler(new(MockGenerator), exp)

	body, _ := json.Marshal(testInvoice())
	c, w := newTestContext(http.MethodPost, "/api/v1/export?format=docx", body)

	h.Export(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UNSUPPORTED_FORMAT", resp.Error.Code)
	// Format is checked before the body is read or the dispatcher is called.
	exp.AssertNotCalled(t, "Export", mock.Anything, mock.Anything, mock.Anything)
}

func TestExport_MissingFormat(t *testing.T) {
	exp := new(MockExporter)
	h := handler.NewInvoiceHandler(new(MockGenerator), exp)

	body, _ := json.Marshal(testInvoice())
	c, w := newTestContext(http.MethodPost, "/api/v1/export", body)

	h.Export(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UNSUPPORTED_FORMAT", resp.Error.Code)
}

func TestExport_InvalidBody(t *testing.T) {
	h := handler.NewInvoiceHandler(new(MockGenerator), new(MockExporter))

	c, w := newTestContext(http.MethodPost, "/api/v1/export?format=json", []byte(`{"items": "not-a-list"`))

	h.Export(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}

func TestExport_IncompleteInvoice(t *testing.T) {
	exp := new(MockExporter)
	h := handler.NewInvoiceHandler(new(MockGenerator), exp)

	inv := testInvoice()
	inv.CompanyName = ""
	body, _ := json.Marshal(inv)
	c, w := newTestContext(http.MethodPost, "/api/v1/export?format=pdf", body)

	h.Export(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_INVOICE", resp.Error.Code)
	exp.AssertNotCalled(t, "Export", mock.Anything, mock.Anything, mock.Anything)
}

func TestExport_RenderingFailure(t *testing.T) {
	exp := new(MockExporter)
	h := handler.NewInvoiceHandler(new(MockGenerator), exp)

	exp.On("Export", mock.Anything, mock.AnythingOfType("*domain.Invoice"), domain.FormatPDF).
		Return(nil, fmt.Errorf("%w: theme color \"blurple\"", domain.ErrRenderingFailed))

	body, _ := json.Marshal(testInvoice())
	c, w := newTestContext(http.MethodPost, "/api/v1/export?format=pdf", body)

	h.Export(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeEnvelope(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "RENDERING_FAILED", resp.Error.Code)
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"malformed AI response", domain.ErrAIResponseMalformed, http.StatusInternalServerError, "AI_RESPONSE_MALFORMED"},
		{"upstream provider", domain.ErrUpstreamProvider, http.StatusBadGateway, "UPSTREAM_PROVIDER_ERROR"},
		{"rendering failed", domain.ErrRenderingFailed, http.StatusInternalServerError, "RENDERING_FAILED"},
		{"unsupported format", domain.ErrUnsupportedFormat, http.StatusBadRequest, "UNSUPPORTED_FORMAT"},
		{"invalid invoice", domain.ErrInvalidInvoice, http.StatusBadRequest, "INVALID_INVOICE"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, _ := handler.MapDomainError(fmt.Errorf("wrapped: %w", tt.err))
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}
