// Package estimator provides the gonum-backed ROC curve estimator that the
// comparison service consumes through the ports.CurveEstimator seam.
package estimator

import (
	"context"
	"math"
	"sort"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"

	"github.com/dnafinder/uroccomp/domain/roc"
)

// GonumEstimator computes one ROC curve per labeled sample using gonum's
// threshold sweep. AUC comes from trapezoidal integration of the curve and
// the standard error from the Hanley & McNeil (1982) formula.
type GonumEstimator struct{}

// NewGonumEstimator creates a new gonum-backed estimator.
func NewGonumEstimator() *GonumEstimator {
	return &GonumEstimator{}
}

// EstimateROC builds the curve summary for sample. Class composition is
// re-checked here even though the validator runs first, so the estimator is
// safe to call on its own. Alpha is accepted for interface compatibility;
// the point estimate and its standard error do not depend on it.
func (e *GonumEstimator) EstimateROC(ctx context.Context, sample roc.LabeledSample, alpha float64) (roc.CurveSummary, error) {
	if err := ctx.Err(); err != nil {
		return roc.CurveSummary{}, err
	}

	healthy, unhealthy := sample.Split()
	if len(unhealthy) == 0 {
		return roc.CurveSummary{}, roc.NewOnlyHealthyError(sample.Name())
	}
	if len(healthy) == 0 {
		return roc.CurveSummary{}, roc.NewOnlyUnhealthyError(sample.Name())
	}

	// stat.ROC wants the scores ascending with classes aligned.
	obs := sample.Observations()
	sort.Slice(obs, func(i, j int) bool { return obs[i].Value < obs[j].Value })

	scores := make([]float64, len(obs))
	classes := make([]bool, len(obs))
	for i, o := range obs {
		scores[i] = o.Value
		classes[i] = o.Label == 1
	}

	tpr, fpr, _ := stat.ROC(nil, scores, classes, nil)
	auc := integrate.Trapezoidal(fpr, tpr)

	points := make([]roc.CurvePoint, len(fpr))
	for i := range fpr {
		points[i] = roc.CurvePoint{FPR: fpr[i], TPR: tpr[i]}
	}

	return roc.CurveSummary{
		Dataset: sample.Name(),
		AUC:     auc,
		SE:      hanleyMcNeilSE(auc, len(unhealthy), len(healthy)),
		Points:  points,
	}, nil
}

// hanleyMcNeilSE estimates the standard error of a trapezoidal AUC for np
// positive and nn negative subjects.
func hanleyMcNeilSE(auc float64, np, nn int) float64 {
	q1 := auc / (2 - auc)
	q2 := 2 * auc * auc / (1 + auc)
	a := auc * (1 - auc)
	v := (a + float64(np-1)*(q1-auc*auc) + float64(nn-1)*(q2-auc*auc)) / float64(np*nn)
	if v < 0 {
		// Rounding can push the variance marginally negative at auc near 1.
		v = 0
	}
	return math.Sqrt(v)
}
