package app

import (
	"context"
	"math"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/dnafinder/uroccomp/domain/roc"
	"github.com/dnafinder/uroccomp/internal"
	"github.com/dnafinder/uroccomp/ports"
)

// CompareService runs the unpaired comparison of two ROC areas: it obtains
// one curve summary per dataset from the injected estimator and reduces the
// pair to a single z-test verdict. It owns no presentation.
type CompareService struct {
	estimator ports.CurveEstimator
	log       *internal.Logger
}

// NewCompareService creates a comparison service around an estimator.
func NewCompareService(estimator ports.CurveEstimator, logger *internal.Logger) *CompareService {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &CompareService{estimator: estimator, log: logger}
}

// Compare estimates both curves and computes the two-sided z-test on the AUC
// difference. The two estimator calls are independent and run concurrently;
// estimator failures propagate to the caller unchanged.
func (s *CompareService) Compare(ctx context.Context, x, y roc.LabeledSample, alpha float64) (*roc.Comparison, error) {
	if s.estimator == nil {
		return nil, roc.ErrMissingEstimator
	}
	if err := roc.ValidateAlpha(alpha); err != nil {
		return nil, err
	}

	var curveX, curveY roc.CurveSummary

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		curveX, err = s.estimator.EstimateROC(gctx, x, alpha)
		return err
	})
	g.Go(func() error {
		var err error
		curveY, err = s.estimator.EstimateROC(gctx, y, alpha)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	z := zStatistic(curveX, curveY)
	p := pValue(z)
	result := roc.ComparisonResult{
		AUC1:        curveX.AUC,
		SE1:         curveX.SE,
		AUC2:        curveY.AUC,
		SE2:         curveY.SE,
		Z:           z,
		P:           p,
		Alpha:       alpha,
		Significant: p <= alpha,
	}

	s.log.Debug("compared AUC %.4f vs %.4f: z=%.4f p=%.4g", curveX.AUC, curveY.AUC, z, p)

	return &roc.Comparison{
		ID:     uuid.NewString(),
		Result: result,
		Curve1: curveX,
		Curve2: curveY,
	}, nil
}

// zStatistic computes |AUC1-AUC2| / sqrt(SE1^2+SE2^2). When both standard
// errors are zero the ratio is undefined; equal areas then mean no evidence
// of a difference (z = 0) while unequal areas mean a certain difference
// (z = +Inf).
func zStatistic(a, b roc.CurveSummary) float64 {
	num := math.Abs(a.AUC - b.AUC)
	den := math.Sqrt(a.SE*a.SE + b.SE*b.SE)
	if den == 0 {
		if num == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return num / den
}

// pValue is the two-sided p-value from the standard normal survival
// function: p = 2*(1-Phi(z)) = erfc(z/sqrt(2)).
func pValue(z float64) float64 {
	return 2 * distuv.UnitNormal.Survival(z)
}
