package report

import (
	"fmt"
	"io"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/dnafinder/uroccomp/domain/roc"
)

// MarkdownRenderer writes the report as a markdown document. The API serves
// it converted to HTML; the CLI can emit it raw.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a markdown report renderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render implements ports.ReportRenderer.
func (r *MarkdownRenderer) Render(w io.Writer, rep *roc.Report) error {
	fmt.Fprintf(w, "# Unpaired ROC curves comparison\n\n")
	fmt.Fprintf(w, "Comparison `%s`, alpha = %g\n\n", rep.ID, rep.Alpha)

	fmt.Fprintf(w, "| | ROC1 | ROC2 |\n|---|---|---|\n")
	fmt.Fprintf(w, "| AUC | %.4f | %.4f |\n", rep.Areas.AUC[0], rep.Areas.AUC[1])
	fmt.Fprintf(w, "| Standard_error | %.4f | %.4f |\n\n", rep.Areas.StandardError[0], rep.Areas.StandardError[1])

	fmt.Fprintf(w, "| z_value | p_value | Comment |\n|---|---|---|\n")
	fmt.Fprintf(w, "| %.4f | %.4f | %s |\n", rep.Verdict.ZValue, rep.Verdict.PValue, rep.Verdict.Comment)

	if len(rep.Samples) > 0 {
		fmt.Fprintf(w, "\n## Subjects\n\n")
		fmt.Fprintf(w, "| Dataset | Class | N | Mean | Median | SD |\n|---|---|---|---|---|---|\n")
		for _, s := range rep.Samples {
			fmt.Fprintf(w, "| %s | healthy | %d | %.4f | %.4f | %.4f |\n", s.Dataset, s.Healthy.N, s.Healthy.Mean, s.Healthy.Median, s.Healthy.StdDev)
			fmt.Fprintf(w, "| %s | unhealthy | %d | %.4f | %.4f | %.4f |\n", s.Dataset, s.Unhealthy.N, s.Unhealthy.Mean, s.Unhealthy.Median, s.Unhealthy.StdDev)
		}
	}
	return nil
}

// ToHTML converts a rendered markdown report to HTML for the web surface.
func ToHTML(md []byte) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse(md)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(doc, renderer)
}
