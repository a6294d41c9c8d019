package estimator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnafinder/uroccomp/domain/roc"
	"github.com/dnafinder/uroccomp/internal/testkit"
)

func TestEstimateROC_PerfectSeparation(t *testing.T) {
	sample, err := roc.NewLabeledSample(roc.DatasetX, testkit.PerfectMatrix())
	require.NoError(t, err)

	summary, err := NewGonumEstimator().EstimateROC(context.Background(), sample, 0.05)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, summary.AUC, 1e-12)
	assert.InDelta(t, 0.0, summary.SE, 1e-12)
	assert.Equal(t, roc.DatasetX, summary.Dataset)
}

func TestEstimateROC_CurvePointsSpanTheUnitSquare(t *testing.T) {
	sample := testkit.BinormalSample(roc.DatasetY, testkit.DefaultConfig())

	summary, err := NewGonumEstimator().EstimateROC(context.Background(), sample, 0.05)
	require.NoError(t, err)
	require.NotEmpty(t, summary.Points)

	first := summary.Points[0]
	last := summary.Points[len(summary.Points)-1]
	assert.InDelta(t, 0.0, first.FPR, 1e-12)
	assert.InDelta(t, 0.0, first.TPR, 1e-12)
	assert.InDelta(t, 1.0, last.FPR, 1e-12)
	assert.InDelta(t, 1.0, last.TPR, 1e-12)

	// FPR must be non-decreasing so the curve integrates and plots cleanly.
	prev := -1.0
	for _, pt := range summary.Points {
		assert.GreaterOrEqual(t, pt.FPR, prev)
		assert.GreaterOrEqual(t, pt.TPR, 0.0)
		assert.LessOrEqual(t, pt.TPR, 1.0)
		prev = pt.FPR
	}
}

func TestEstimateROC_BoundsAndSeparationOrdering(t *testing.T) {
	e := NewGonumEstimator()

	weak := testkit.BinormalSample(roc.DatasetX, testkit.BinormalConfig{Healthy: 80, Unhealthy: 80, Separation: 0.2, Seed: 7})
	strong := testkit.BinormalSample(roc.DatasetY, testkit.BinormalConfig{Healthy: 80, Unhealthy: 80, Separation: 2.5, Seed: 7})

	sw, err := e.EstimateROC(context.Background(), weak, 0.05)
	require.NoError(t, err)
	ss, err := e.EstimateROC(context.Background(), strong, 0.05)
	require.NoError(t, err)

	assert.Greater(t, ss.AUC, sw.AUC)
	for _, s := range []roc.CurveSummary{sw, ss} {
		assert.GreaterOrEqual(t, s.AUC, 0.0)
		assert.LessOrEqual(t, s.AUC, 1.0)
		assert.GreaterOrEqual(t, s.SE, 0.0)
	}
}

func TestEstimateROC_KnownSmallSamples(t *testing.T) {
	// X = [[1,0],[2,0],[3,1],[4,1]] separates perfectly; Y interleaves.
	x, err := roc.NewLabeledSample(roc.DatasetX, [][]float64{{1, 0}, {2, 0}, {3, 1}, {4, 1}})
	require.NoError(t, err)
	y, err := roc.NewLabeledSample(roc.DatasetY, [][]float64{{1, 0}, {2, 1}, {3, 0}, {4, 1}})
	require.NoError(t, err)

	e := NewGonumEstimator()
	sx, err := e.EstimateROC(context.Background(), x, 0.05)
	require.NoError(t, err)
	sy, err := e.EstimateROC(context.Background(), y, 0.05)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, sx.AUC, 1e-12)
	assert.InDelta(t, 0.75, sy.AUC, 1e-12)
	assert.GreaterOrEqual(t, sy.SE, 0.0)
}

func TestEstimateROC_DefenceInDepthOnClassComposition(t *testing.T) {
	// LabeledSample normally guarantees both classes; rebuild the degenerate
	// case through the zero value to exercise the estimator's own guard.
	var empty roc.LabeledSample
	_, err := NewGonumEstimator().EstimateROC(context.Background(), empty, 0.05)
	require.Error(t, err)
	assert.ErrorIs(t, err, roc.ErrOnlyHealthy)
}

func TestEstimateROC_HonoursContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sample := testkit.BinormalSample(roc.DatasetX, testkit.DefaultConfig())
	_, err := NewGonumEstimator().EstimateROC(ctx, sample, 0.05)
	assert.ErrorIs(t, err, context.Canceled)
}
