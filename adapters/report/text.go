// Package report renders a roc.Report into textual representations. The
// renderers are pure data-to-string transformations; the comparison service
// never prints.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dnafinder/uroccomp/domain/roc"
)

// TextRenderer writes the classic console report: Table 1 with the two
// areas and their standard errors, Table 2 with the z-test verdict.
type TextRenderer struct{}

// NewTextRenderer creates a console report renderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render implements ports.ReportRenderer.
func (r *TextRenderer) Render(w io.Writer, rep *roc.Report) error {
	if _, err := fmt.Fprintf(w, "UNPAIRED ROC CURVES COMPARISON\nComparison: %s  (alpha = %g)\n\n", rep.ID, rep.Alpha); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "\tROC1\tROC2\n")
	fmt.Fprintf(tw, "AUC\t%.4f\t%.4f\n", rep.Areas.AUC[0], rep.Areas.AUC[1])
	fmt.Fprintf(tw, "Standard_error\t%.4f\t%.4f\n", rep.Areas.StandardError[0], rep.Areas.StandardError[1])
	fmt.Fprintf(tw, "\n")
	fmt.Fprintf(tw, "z_value\tp_value\tComment\n")
	fmt.Fprintf(tw, "%.4f\t%.4f\t%s\n", rep.Verdict.ZValue, rep.Verdict.PValue, rep.Verdict.Comment)
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(rep.Samples) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(w, "\nSubjects\n"); err != nil {
		return err
	}
	tw = tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "Dataset\tClass\tN\tMean\tMedian\tSD\n")
	for _, s := range rep.Samples {
		fmt.Fprintf(tw, "%s\thealthy\t%d\t%.4f\t%.4f\t%.4f\n", s.Dataset, s.Healthy.N, s.Healthy.Mean, s.Healthy.Median, s.Healthy.StdDev)
		fmt.Fprintf(tw, "%s\tunhealthy\t%d\t%.4f\t%.4f\t%.4f\n", s.Dataset, s.Unhealthy.N, s.Unhealthy.Mean, s.Unhealthy.Median, s.Unhealthy.StdDev)
	}
	return tw.Flush()
}
