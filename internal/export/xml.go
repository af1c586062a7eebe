package export

import (
	"encoding/xml"
	"fmt"

	"invogen/internal/domain"
)

// encodeXML serializes the record into a tagged-markup tree rooted at an
// <invoice> element. No type attributes are emitted; nil optional fields are
// omitted entirely, which is the format's absent marker.
func encodeXML(inv *domain.Invoice) (*Result, error) {
	data, err := xml.MarshalIndent(inv, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding invoice XML: %w", err)
	}
	return &Result{
		Data:        append([]byte(xml.Header), data...),
		ContentType: "application/xml",
		Filename:    "invoice.xml",
	}, nil
}
