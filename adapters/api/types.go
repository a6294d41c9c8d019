package api

import "github.com/dnafinder/uroccomp/domain/roc"

// CompareRequest carries the two raw matrices and an optional significance
// level. A nil Alpha falls back to roc.DefaultAlpha.
type CompareRequest struct {
	X     [][]float64 `json:"x" binding:"required"`
	Y     [][]float64 `json:"y" binding:"required"`
	Alpha *float64    `json:"alpha,omitempty"`
}

// CompareResponse is the JSON view of one finished comparison.
type CompareResponse struct {
	ID     string               `json:"id"`
	Result roc.ComparisonResult `json:"result"`
	Report *roc.Report          `json:"report"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}
