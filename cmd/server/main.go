package main

import (
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"whist/internal/bots"
	"whist/internal/config"
	"whist/internal/engine/sim"
	"whist/internal/server"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logrus.WithError(err).Fatal("config")
	}
	setupLogging(cfg)

	if len(os.Args) > 1 && os.Args[1] == "simulation" {
		if err := runSimulation(cfg); err != nil {
			logrus.WithError(err).Fatal("simulation failed")
		}
		return
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	server.Register(e)

	logrus.Infof("listening on %s", cfg.Addr)
	if err := e.Start(cfg.Addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

func setupLogging(cfg config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.WithError(err).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

func runSimulation(cfg config.Config) error {
	opponent, err := bots.ParseKind(cfg.SimOpponent)
	if err != nil {
		return err
	}
	opts := sim.DefaultOptions(cfg.SimSeed, cfg.SimDeals, opponent)
	res, err := sim.RunSelfPlay(opts)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"seed":      opts.Seed,
		"deals":     res.Deals,
		"decisions": res.Decisions,
		"tricks":    res.TricksWon,
	}).Info(res.Summary(opts.Seats))
	return nil
}
