package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dnafinder/uroccomp/adapters/estimator"
	"github.com/dnafinder/uroccomp/adapters/ingest"
	"github.com/dnafinder/uroccomp/adapters/plot"
	"github.com/dnafinder/uroccomp/adapters/report"
	"github.com/dnafinder/uroccomp/app"
	"github.com/dnafinder/uroccomp/domain/roc"
	"github.com/dnafinder/uroccomp/internal"
	"github.com/dnafinder/uroccomp/ports"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "uroccomp",
		Short: "Compare the areas under two independent ROC curves",
	}
	rootCmd.AddCommand(newCompareCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCompareCmd() *cobra.Command {
	var alpha float64
	var format string
	var plotPath string
	var plotSize int

	cmd := &cobra.Command{
		Use:   "compare <dataset-x> <dataset-y>",
		Short: "Run the unpaired z-test on two (value, label) datasets",
		Long: `Compare the areas under two ROC curves estimated from independent samples.

Each dataset is a CSV or XLSX file with two numeric columns: the test value
and the disease label (0 healthy, 1 unhealthy). An optional header row is
skipped.

Example: uroccomp compare groupA.csv groupB.xlsx --alpha 0.05 --plot roc.svg`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args[0], args[1], alpha, format, plotPath, plotSize)
		},
	}

	cmd.Flags().Float64Var(&alpha, "alpha", roc.DefaultAlpha, "Significance level, strictly between 0 and 1")
	cmd.Flags().StringVar(&format, "format", "text", "Report format: text, markdown or json")
	cmd.Flags().StringVar(&plotPath, "plot", "", "Write the combined ROC plot to this file (format by extension)")
	cmd.Flags().IntVar(&plotSize, "plot-size", 400, "Plot edge length in points")

	return cmd
}

func runCompare(cmd *cobra.Command, pathX, pathY string, alpha float64, format, plotPath string, plotSize int) error {
	logger := internal.NewDefaultLogger()

	matrixX, err := ingest.NewDataReader(pathX).ReadMatrix()
	if err != nil {
		return err
	}
	matrixY, err := ingest.NewDataReader(pathY).ReadMatrix()
	if err != nil {
		return err
	}

	x, y, alpha, err := roc.Validate(matrixX, matrixY, alpha)
	if err != nil {
		return err
	}

	service := app.NewCompareService(estimator.NewGonumEstimator(), logger)
	cmp, err := service.Compare(cmd.Context(), x, y, alpha)
	if err != nil {
		return err
	}

	reports := app.NewReportService()
	rep := reports.BuildReport(cmp, x, y)

	var renderer ports.ReportRenderer
	switch format {
	case "text":
		renderer = report.NewTextRenderer()
	case "markdown":
		renderer = report.NewMarkdownRenderer()
	case "json":
		renderer = report.NewJSONRenderer()
	default:
		return fmt.Errorf("unknown report format %q (want text, markdown or json)", format)
	}
	if err := renderer.Render(cmd.OutOrStdout(), rep); err != nil {
		return err
	}

	if plotPath != "" {
		spec := reports.BuildPlotSpec(cmp)
		if err := plot.NewRenderer(plotSize).WriteFile(spec, plotPath); err != nil {
			return err
		}
		logger.Info("plot written to %s", plotPath)
	}
	return nil
}
