// Package api exposes the comparison as a small gin HTTP surface.
package api

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dnafinder/uroccomp/adapters/report"
	"github.com/dnafinder/uroccomp/app"
	"github.com/dnafinder/uroccomp/domain/roc"
	"github.com/dnafinder/uroccomp/internal"
	"github.com/dnafinder/uroccomp/ports"
)

// Service wires the compare and report services to HTTP handlers.
type Service struct {
	compare *app.CompareService
	reports *app.ReportService
	plots   ports.PlotRenderer
	alpha   float64 // applied when a request omits alpha
	log     *internal.Logger
}

// NewService creates the HTTP service. alpha is the significance level used
// for requests that omit one; values outside (0,1) fall back to
// roc.DefaultAlpha.
func NewService(compare *app.CompareService, reports *app.ReportService, plots ports.PlotRenderer, alpha float64, logger *internal.Logger) *Service {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	if roc.ValidateAlpha(alpha) != nil {
		alpha = roc.DefaultAlpha
	}
	return &Service{compare: compare, reports: reports, plots: plots, alpha: alpha, log: logger}
}

// Router builds the gin engine with all routes registered.
func (s *Service) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/v1")
	v1.POST("/compare", s.handleCompare)
	v1.POST("/compare/plot", s.handleComparePlot)
	v1.POST("/compare/report", s.handleCompareReport)
	return r
}

// handleCompare runs the full comparison and returns the JSON result plus
// the tabular report.
func (s *Service) handleCompare(c *gin.Context) {
	cmp, x, y, ok := s.runComparison(c)
	if !ok {
		return
	}
	rep := s.reports.BuildReport(cmp, x, y)
	c.JSON(http.StatusOK, CompareResponse{ID: cmp.ID, Result: cmp.Result, Report: rep})
}

// handleComparePlot runs the comparison and returns the combined curve plot
// as SVG.
func (s *Service) handleComparePlot(c *gin.Context) {
	cmp, _, _, ok := s.runComparison(c)
	if !ok {
		return
	}
	svg, err := s.plots.RenderSVG(s.reports.BuildPlotSpec(cmp))
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "image/svg+xml", svg)
}

// handleCompareReport runs the comparison and returns the report rendered
// from markdown to HTML.
func (s *Service) handleCompareReport(c *gin.Context) {
	cmp, x, y, ok := s.runComparison(c)
	if !ok {
		return
	}
	rep := s.reports.BuildReport(cmp, x, y)

	var md bytes.Buffer
	if err := report.NewMarkdownRenderer().Render(&md, rep); err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", report.ToHTML(md.Bytes()))
}

func (s *Service) runComparison(c *gin.Context) (*roc.Comparison, roc.LabeledSample, roc.LabeledSample, bool) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.failCode(c, http.StatusBadRequest, "BAD_REQUEST", err)
		return nil, roc.LabeledSample{}, roc.LabeledSample{}, false
	}

	alpha := s.alpha
	if req.Alpha != nil {
		alpha = *req.Alpha
	}

	x, y, alpha, err := roc.Validate(req.X, req.Y, alpha)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return nil, roc.LabeledSample{}, roc.LabeledSample{}, false
	}

	cmp, err := s.compare.Compare(c.Request.Context(), x, y, alpha)
	if err != nil {
		status := http.StatusInternalServerError
		if roc.IsValidationError(err) {
			status = http.StatusBadRequest
		}
		s.fail(c, status, err)
		return nil, roc.LabeledSample{}, roc.LabeledSample{}, false
	}
	return cmp, x, y, true
}

func (s *Service) fail(c *gin.Context, status int, err error) {
	s.failCode(c, status, errorCode(err), err)
}

func (s *Service) failCode(c *gin.Context, status int, code string, err error) {
	s.log.Warn("request failed: %v", err)
	c.JSON(status, ErrorResponse{Code: code, Error: err.Error()})
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, roc.ErrShape):
		return "SHAPE_ERROR"
	case errors.Is(err, roc.ErrInvalidLabel):
		return "INVALID_LABEL"
	case errors.Is(err, roc.ErrOnlyHealthy):
		return "ONLY_HEALTHY"
	case errors.Is(err, roc.ErrOnlyUnhealthy):
		return "ONLY_UNHEALTHY"
	case errors.Is(err, roc.ErrSignificanceLevel):
		return "SIGNIFICANCE_LEVEL"
	case errors.Is(err, roc.ErrMissingEstimator):
		return "MISSING_DEPENDENCY"
	default:
		return "INTERNAL_ERROR"
	}
}
