package roc

import "time"

// Comment strings for the verdict table. Fixed wording; renderers must not
// rephrase them.
const (
	CommentDifferent    = "The areas are statistically different"
	CommentNotDifferent = "The areas are not statistically different"
)

// Report is the presentation-ready view of one comparison. It is pure data:
// renderers turn it into text, markdown, or JSON without touching the
// statistical core.
type Report struct {
	ID          string          `json:"id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Alpha       float64         `json:"alpha"`
	Areas       AreasTable      `json:"areas"`
	Verdict     VerdictTable    `json:"verdict"`
	Samples     []SampleSummary `json:"samples,omitempty"`
}

// AreasTable is Table 1: rows AUC and Standard_error, columns ROC1 and ROC2.
type AreasTable struct {
	AUC           [2]float64 `json:"auc"`
	StandardError [2]float64 `json:"standard_error"`
}

// VerdictTable is Table 2: the z statistic, its two-sided p-value, and the
// fixed comment classifying the result against alpha.
type VerdictTable struct {
	ZValue  float64 `json:"z_value"`
	PValue  float64 `json:"p_value"`
	Comment string  `json:"comment"`
}

// SampleSummary describes one input dataset per class for the descriptive
// block of the report.
type SampleSummary struct {
	Dataset   Dataset      `json:"dataset"`
	Healthy   ClassSummary `json:"healthy"`
	Unhealthy ClassSummary `json:"unhealthy"`
}

// ClassSummary holds descriptive statistics of the test values in one class.
type ClassSummary struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
}

// PlotSpec describes the combined ROC plot: both curves over the false
// positive rate domain plus the diagonal chance line, square aspect ratio.
type PlotSpec struct {
	Title    string        `json:"title"`
	XLabel   string        `json:"x_label"`
	YLabel   string        `json:"y_label"`
	Curves   []CurveSeries `json:"curves"`
	Diagonal bool          `json:"diagonal"`
}

// CurveSeries is one named curve of the plot.
type CurveSeries struct {
	Name   string       `json:"name"`
	Points []CurvePoint `json:"points"`
}
