package roc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMatrix() [][]float64 {
	return [][]float64{{1, 0}, {2, 0}, {3, 1}, {4, 1}}
}

func TestValidate_AcceptsWellFormedInput(t *testing.T) {
	x, y, alpha, err := Validate(validMatrix(), [][]float64{{1, 0}, {2, 1}, {3, 0}, {4, 1}}, 0.05)
	require.NoError(t, err)

	assert.Equal(t, DatasetX, x.Name())
	assert.Equal(t, DatasetY, y.Name())
	assert.Equal(t, 4, x.Len())
	assert.Equal(t, 0.05, alpha)

	healthy, unhealthy := x.Split()
	assert.Equal(t, []float64{1, 2}, healthy)
	assert.Equal(t, []float64{3, 4}, unhealthy)
}

func TestValidate_RejectsBadAlphaBeforeDatasets(t *testing.T) {
	// A broken X matrix must not be reached when alpha is already invalid.
	broken := [][]float64{{1}}
	for _, alpha := range []float64{0, 1, -0.1, 1.5, math.NaN()} {
		_, _, _, err := Validate(broken, validMatrix(), alpha)
		require.Error(t, err, "alpha=%v", alpha)
		assert.ErrorIs(t, err, ErrSignificanceLevel, "alpha=%v", alpha)
	}
}

func TestNewLabeledSample_ShapeErrors(t *testing.T) {
	cases := []struct {
		name   string
		matrix [][]float64
	}{
		{"empty", nil},
		{"one column", [][]float64{{1}}},
		{"three columns", [][]float64{{1, 0, 7}}},
		{"nan value", [][]float64{{math.NaN(), 0}, {2, 1}}},
		{"inf value", [][]float64{{math.Inf(1), 1}, {2, 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLabeledSample(DatasetY, tc.matrix)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrShape)
			assert.Contains(t, err.Error(), "dataset Y")
		})
	}
}

func TestNewLabeledSample_LabelErrors(t *testing.T) {
	_, err := NewLabeledSample(DatasetX, [][]float64{{1, 0}, {2, 2}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLabel)
	assert.Contains(t, err.Error(), "dataset X")

	// Fractional labels are not coerced.
	_, err = NewLabeledSample(DatasetX, [][]float64{{1, 0.5}, {2, 1}})
	assert.ErrorIs(t, err, ErrInvalidLabel)
}

func TestNewLabeledSample_ClassComposition(t *testing.T) {
	_, err := NewLabeledSample(DatasetX, [][]float64{{1, 0}, {2, 0}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOnlyHealthy)
	assert.Contains(t, err.Error(), "dataset X")
	assert.True(t, IsClassBalanceError(err))

	_, err = NewLabeledSample(DatasetY, [][]float64{{1, 1}, {2, 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOnlyUnhealthy)
	assert.Contains(t, err.Error(), "dataset Y")
}

func TestValidate_NamesTheOffendingDataset(t *testing.T) {
	_, _, _, err := Validate(validMatrix(), [][]float64{{1, 0}, {2, 0}}, 0.05)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOnlyHealthy)
	assert.Contains(t, err.Error(), "dataset Y")
}

func TestIsValidationError(t *testing.T) {
	for _, err := range []error{ErrShape, ErrInvalidLabel, ErrOnlyHealthy, ErrOnlyUnhealthy, ErrSignificanceLevel} {
		assert.True(t, IsValidationError(err))
	}
	assert.False(t, IsValidationError(ErrMissingEstimator))
	assert.False(t, IsValidationError(errors.New("boom")))
}

func TestLabeledSample_ObservationsAreACopy(t *testing.T) {
	sample, err := NewLabeledSample(DatasetX, validMatrix())
	require.NoError(t, err)

	obs := sample.Observations()
	obs[0].Value = 99

	again := sample.Observations()
	assert.Equal(t, 1.0, again[0].Value)
}
