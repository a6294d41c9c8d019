// Package plot draws the combined ROC plot from a roc.PlotSpec using
// gonum/plot.
package plot

import (
	"bytes"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/dnafinder/uroccomp/domain/roc"
	"github.com/dnafinder/uroccomp/internal/errors"
)

// Renderer draws plot specs at a fixed square size.
type Renderer struct {
	size vg.Length
}

// NewRenderer creates a plot renderer with the given edge length in points.
func NewRenderer(sizePoints int) *Renderer {
	if sizePoints <= 0 {
		sizePoints = 400
	}
	return &Renderer{size: vg.Points(float64(sizePoints))}
}

// RenderSVG implements ports.PlotRenderer.
func (r *Renderer) RenderSVG(spec *roc.PlotSpec) ([]byte, error) {
	p, err := r.build(spec)
	if err != nil {
		return nil, err
	}
	wt, err := p.WriterTo(r.size, r.size, "svg")
	if err != nil {
		return nil, errors.RenderFailed("plot", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, errors.RenderFailed("plot", err)
	}
	return buf.Bytes(), nil
}

// WriteFile implements ports.PlotRenderer; the image format follows the
// file extension (svg, png, pdf, ...).
func (r *Renderer) WriteFile(spec *roc.PlotSpec, path string) error {
	p, err := r.build(spec)
	if err != nil {
		return err
	}
	if err := p.Save(r.size, r.size, path); err != nil {
		return errors.RenderFailed("plot file", err)
	}
	return nil
}

func (r *Renderer) build(spec *roc.PlotSpec) (*gplot.Plot, error) {
	p := gplot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.Legend.Top = false
	p.Legend.Left = false

	for i, curve := range spec.Curves {
		line, err := plotter.NewLine(toXYs(curve.Points))
		if err != nil {
			return nil, errors.RenderFailed("curve "+curve.Name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(curve.Name, line)
	}

	if spec.Diagonal {
		diag, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
		if err != nil {
			return nil, errors.RenderFailed("chance line", err)
		}
		diag.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(diag)
	}
	return p, nil
}

func toXYs(points []roc.CurvePoint) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: pt.FPR, Y: pt.TPR}
	}
	return xys
}
