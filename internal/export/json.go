package export

import (
	"encoding/json"
	"fmt"

	"invogen/internal/domain"
)

// encodeJSON serializes the record verbatim. Absent optional fields encode as
// explicit nulls, and the output round-trips back into an identical record;
// this is the canonical transport format.
func encodeJSON(inv *domain.Invoice) (*Result, error) {
	data, err := json.Marshal(inv)
	if err != nil {
		return nil, fmt.Errorf("encoding invoice JSON: %w", err)
	}
	return &Result{
		Data:        data,
		ContentType: "application/json",
		Filename:    "invoice.json",
	}, nil
}
