package plot

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnafinder/uroccomp/domain/roc"
)

func fixtureSpec() *roc.PlotSpec {
	return &roc.PlotSpec{
		Title:  "ROC curves comparison",
		XLabel: "False positive rate (1 - Specificity)",
		YLabel: "True positive rate (Sensitivity)",
		Curves: []roc.CurveSeries{
			{Name: "ROC1", Points: []roc.CurvePoint{{FPR: 0, TPR: 0}, {FPR: 0.2, TPR: 0.9}, {FPR: 1, TPR: 1}}},
			{Name: "ROC2", Points: []roc.CurvePoint{{FPR: 0, TPR: 0}, {FPR: 0.5, TPR: 0.6}, {FPR: 1, TPR: 1}}},
		},
		Diagonal: true,
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := NewRenderer(400).RenderSVG(fixtureSpec())
	require.NoError(t, err)

	out := string(svg)
	assert.True(t, strings.Contains(out, "<svg"), "expected an SVG document")
	assert.Contains(t, out, "ROC1")
	assert.Contains(t, out, "ROC2")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roc.png")
	require.NoError(t, NewRenderer(300).WriteFile(fixtureSpec(), path))
	assert.FileExists(t, path)
}

func TestNewRenderer_DefaultsBadSize(t *testing.T) {
	svg, err := NewRenderer(0).RenderSVG(fixtureSpec())
	require.NoError(t, err)
	assert.NotEmpty(t, svg)
}
