package report

import (
	"encoding/json"
	"io"

	"github.com/dnafinder/uroccomp/domain/roc"
)

// JSONRenderer writes the report as indented JSON.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSON report renderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render implements ports.ReportRenderer.
func (r *JSONRenderer) Render(w io.Writer, rep *roc.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
