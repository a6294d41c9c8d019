package app

import (
	"time"

	"github.com/montanaflynn/stats"

	"github.com/dnafinder/uroccomp/domain/roc"
)

// ReportService reduces a finished comparison to its presentation artifacts:
// the two fixed tables, the descriptive block, and the combined plot spec.
type ReportService struct{}

// NewReportService creates a report service.
func NewReportService() *ReportService {
	return &ReportService{}
}

// BuildReport assembles the tabular report. Samples are optional; when given
// they feed the per-class descriptive block.
func (s *ReportService) BuildReport(cmp *roc.Comparison, samples ...roc.LabeledSample) *roc.Report {
	result := cmp.Result

	comment := roc.CommentNotDifferent
	if result.Significant {
		comment = roc.CommentDifferent
	}

	rep := &roc.Report{
		ID:          cmp.ID,
		GeneratedAt: time.Now().UTC(),
		Alpha:       result.Alpha,
		Areas: roc.AreasTable{
			AUC:           [2]float64{result.AUC1, result.AUC2},
			StandardError: [2]float64{result.SE1, result.SE2},
		},
		Verdict: roc.VerdictTable{
			ZValue:  result.Z,
			PValue:  result.P,
			Comment: comment,
		},
	}

	for _, sample := range samples {
		rep.Samples = append(rep.Samples, summarizeSample(sample))
	}
	return rep
}

// BuildPlotSpec assembles the combined ROC plot specification from the two
// curve summaries.
func (s *ReportService) BuildPlotSpec(cmp *roc.Comparison) *roc.PlotSpec {
	return &roc.PlotSpec{
		Title:  "ROC curves comparison",
		XLabel: "False positive rate (1 - Specificity)",
		YLabel: "True positive rate (Sensitivity)",
		Curves: []roc.CurveSeries{
			{Name: "ROC1", Points: cmp.Curve1.Points},
			{Name: "ROC2", Points: cmp.Curve2.Points},
		},
		Diagonal: true,
	}
}

func summarizeSample(sample roc.LabeledSample) roc.SampleSummary {
	healthy, unhealthy := sample.Split()
	return roc.SampleSummary{
		Dataset:   sample.Name(),
		Healthy:   summarizeClass(healthy),
		Unhealthy: summarizeClass(unhealthy),
	}
}

func summarizeClass(values []float64) roc.ClassSummary {
	data := stats.Float64Data(values)
	mean, _ := stats.Mean(data)
	median, _ := stats.Median(data)
	sd, _ := stats.StandardDeviationSample(data)
	return roc.ClassSummary{
		N:      len(values),
		Mean:   mean,
		Median: median,
		StdDev: sd,
	}
}
