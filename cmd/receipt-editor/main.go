package main

import (
	"fmt"
	"os"

	receiptapp "receipt-editor/internal/app"
	"receipt-editor/internal/config"
	"receipt-editor/internal/idgen"
	"receipt-editor/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to a configuration file")
	logLevel := pflag.String("log-level", "", "override log.level (debug, info, warn, error)")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	appLogger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	app.SetMetadata(fyne.AppMetadata{
		ID:      receiptapp.AppID,
		Name:    receiptapp.AppName,
		Version: receiptapp.AppVersion,
	})
	fyneApp := app.NewWithID(receiptapp.AppID)

	application, err := receiptapp.NewApplication(fyneApp, cfg, appLogger, idgen.NewRandom())
	if err != nil {
		appLogger.Error("Main", err, nil)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		appLogger.Error("Main", err, nil)
		os.Exit(1)
	}
}

func newLogger(cfg config.LogConfig) (logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if cfg.JSON {
		return logger.NewJSONLogger(level), nil
	}
	return logger.NewConsoleLogger(level), nil
}
