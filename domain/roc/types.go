package roc

// Dataset identifies which of the two input samples a value or error refers to.
type Dataset string

const (
	DatasetX Dataset = "X"
	DatasetY Dataset = "Y"
)

// DefaultAlpha is the significance level used when the caller supplies none.
const DefaultAlpha = 0.05

// Observation pairs one diagnostic test value with its disease label.
// Label is 0 for healthy subjects and 1 for unhealthy subjects.
type Observation struct {
	Value float64 `json:"value"`
	Label int     `json:"label"`
}

// LabeledSample is a validated two-column dataset. It is immutable after
// construction through NewLabeledSample; both classes are guaranteed present.
type LabeledSample struct {
	name Dataset
	obs  []Observation
}

// Name returns the dataset identifier (X or Y).
func (s LabeledSample) Name() Dataset { return s.name }

// Len returns the number of observations.
func (s LabeledSample) Len() int { return len(s.obs) }

// Observations returns a copy of the underlying observations.
func (s LabeledSample) Observations() []Observation {
	out := make([]Observation, len(s.obs))
	copy(out, s.obs)
	return out
}

// Split partitions the test values by class.
func (s LabeledSample) Split() (healthy, unhealthy []float64) {
	for _, o := range s.obs {
		if o.Label == 0 {
			healthy = append(healthy, o.Value)
		} else {
			unhealthy = append(unhealthy, o.Value)
		}
	}
	return healthy, unhealthy
}

// CurvePoint is one point of a ROC curve in the unit square.
type CurvePoint struct {
	FPR float64 `json:"fpr"`
	TPR float64 `json:"tpr"`
}

// CurveSummary is what the comparator consumes from the ROC estimator:
// the area under the curve, its standard error, and the ordered curve
// points for plotting. Not mutated after creation.
type CurveSummary struct {
	Dataset Dataset      `json:"dataset"`
	AUC     float64      `json:"auc"`
	SE      float64      `json:"se"`
	Points  []CurvePoint `json:"points,omitempty"`
}

// ComparisonResult is the outcome of the unpaired z-test on two AUC
// estimates. Derived and immutable; exists only to be rendered.
type ComparisonResult struct {
	AUC1        float64 `json:"auc_1"`
	SE1         float64 `json:"se_1"`
	AUC2        float64 `json:"auc_2"`
	SE2         float64 `json:"se_2"`
	Z           float64 `json:"z_value"`
	P           float64 `json:"p_value"`
	Alpha       float64 `json:"alpha"`
	Significant bool    `json:"significant"`
}

// Comparison bundles the statistical verdict with the two curve summaries
// that produced it, so any presentation backend can render both.
type Comparison struct {
	ID     string           `json:"id"`
	Result ComparisonResult `json:"result"`
	Curve1 CurveSummary     `json:"curve_1"`
	Curve2 CurveSummary     `json:"curve_2"`
}
