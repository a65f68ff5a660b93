package main

import (
	"context"
	"os"

	"github.com/dwikikusuma/shoping-cart/internal/demo"
	"github.com/dwikikusuma/shoping-cart/pkg/config"
	"github.com/dwikikusuma/shoping-cart/pkg/logger"
	"github.com/dwikikusuma/shoping-cart/pkg/shutdown"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "cartdemo",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})
	defer func() { _ = log.Sync() }()

	ctx, cancel := shutdown.WithSignals(context.Background(), log)
	defer cancel()

	scenario, err := demo.Load(cfg.ScenarioPath)
	if err != nil {
		log.Error("load scenario failed", zap.Error(err), zap.String("path", cfg.ScenarioPath))
		os.Exit(1)
	}

	deps := demo.NewDeps(log, cfg.QuoteConcurrency)
	if err := demo.Run(ctx, scenario, deps, os.Stdout); err != nil {
		log.Error("demo failed", zap.Error(err))
		os.Exit(1)
	}
}
