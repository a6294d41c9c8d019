package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/dnafinder/uroccomp/adapters/api"
	"github.com/dnafinder/uroccomp/adapters/estimator"
	"github.com/dnafinder/uroccomp/adapters/plot"
	"github.com/dnafinder/uroccomp/app"
	"github.com/dnafinder/uroccomp/internal"
	"github.com/dnafinder/uroccomp/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	gin.SetMode(cfg.Server.GinMode)

	logger := internal.NewDefaultLogger()
	compare := app.NewCompareService(estimator.NewGonumEstimator(), logger)
	reports := app.NewReportService()
	plots := plot.NewRenderer(cfg.Report.PlotWidth)

	service := api.NewService(compare, reports, plots, cfg.Report.Alpha, logger)

	logger.Info("uroccomp API listening on :%s", cfg.Server.Port)
	if err := service.Router().Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
