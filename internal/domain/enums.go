package domain

import "fmt"

// ExportFormat identifies one of the supported invoice export targets.
type ExportFormat string

const (
	FormatPDF  ExportFormat = "pdf"
	FormatXML  ExportFormat = "xml"
	FormatJSON ExportFormat = "json"
	FormatCSV  ExportFormat = "csv"
)

// ParseExportFormat validates a raw format tag against the closed format set.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(s); f {
	case FormatPDF, FormatXML, FormatJSON, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}
