package ports

import (
	"context"

	"github.com/dnafinder/uroccomp/domain/roc"
)

// CurveEstimator computes a ROC curve summary for one labeled sample.
// The comparator receives this capability through explicit injection, never
// through ambient lookup. Implementations enforce the same class-composition
// invariants as the validator (defence in depth) and their errors are
// surfaced to callers unchanged.
type CurveEstimator interface {
	EstimateROC(ctx context.Context, sample roc.LabeledSample, alpha float64) (roc.CurveSummary, error)
}
