package roc

import (
	"fmt"
	"math"
)

// Validate gates both raw input matrices and the significance level before
// any computation is attempted. The significance level is checked first so a
// bad alpha is rejected before any per-dataset work. Error messages always
// name the offending dataset.
func Validate(x, y [][]float64, alpha float64) (LabeledSample, LabeledSample, float64, error) {
	if err := ValidateAlpha(alpha); err != nil {
		return LabeledSample{}, LabeledSample{}, 0, err
	}

	sx, err := NewLabeledSample(DatasetX, x)
	if err != nil {
		return LabeledSample{}, LabeledSample{}, 0, err
	}

	sy, err := NewLabeledSample(DatasetY, y)
	if err != nil {
		return LabeledSample{}, LabeledSample{}, 0, err
	}

	return sx, sy, alpha, nil
}

// ValidateAlpha checks that alpha is a real scalar strictly inside (0, 1).
func ValidateAlpha(alpha float64) error {
	if math.IsNaN(alpha) || alpha <= 0 || alpha >= 1 {
		return NewSignificanceLevelError(alpha)
	}
	return nil
}

// NewLabeledSample validates one raw two-column matrix and freezes it into a
// LabeledSample. Shape is checked row by row, then label values, then class
// composition.
func NewLabeledSample(name Dataset, matrix [][]float64) (LabeledSample, error) {
	if len(matrix) == 0 {
		return LabeledSample{}, NewShapeError(name, "is empty")
	}

	obs := make([]Observation, 0, len(matrix))
	sawHealthy, sawUnhealthy := false, false

	for i, row := range matrix {
		if len(row) != 2 {
			return LabeledSample{}, NewShapeError(name, fmt.Sprintf("row %d has %d columns, want 2", i, len(row)))
		}
		value, label := row[0], row[1]
		if !isFinite(value) || !isFinite(label) {
			return LabeledSample{}, NewShapeError(name, fmt.Sprintf("row %d contains a non-finite value", i))
		}

		switch label {
		case 0:
			sawHealthy = true
		case 1:
			sawUnhealthy = true
		default:
			return LabeledSample{}, NewLabelError(name, i, label)
		}

		obs = append(obs, Observation{Value: value, Label: int(label)})
	}

	if !sawUnhealthy {
		return LabeledSample{}, NewOnlyHealthyError(name)
	}
	if !sawHealthy {
		return LabeledSample{}, NewOnlyUnhealthyError(name)
	}

	return LabeledSample{name: name, obs: obs}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
