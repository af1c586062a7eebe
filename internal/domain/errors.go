package domain

import "errors"

var (
	ErrInvalidInvoice      = errors.New("invoice record is missing required fields")
	ErrAIResponseMalformed = errors.New("AI returned a malformed response")
	ErrUpstreamProvider    = errors.New("completion provider error")
	ErrUnsupportedFormat   = errors.New("unsupported export format")
	ErrRenderingFailed     = errors.New("document rendering failed")
)
