package ports

import (
	"io"

	"github.com/dnafinder/uroccomp/domain/roc"
)

// ReportRenderer writes one representation of a finished report. The
// statistical core never prints; all presentation goes through a renderer.
type ReportRenderer interface {
	Render(w io.Writer, rep *roc.Report) error
}

// PlotRenderer materializes a plot specification into an image.
type PlotRenderer interface {
	// RenderSVG returns the plot as an SVG document.
	RenderSVG(spec *roc.PlotSpec) ([]byte, error)
	// WriteFile saves the plot to path; the format follows the extension.
	WriteFile(spec *roc.PlotSpec, path string) error
}
