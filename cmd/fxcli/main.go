package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"fxconverter/internal/adapters/httpclient"
	"fxconverter/internal/app"
	"fxconverter/internal/cli"
	"fxconverter/internal/config"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Init("config.yaml")
	if err != nil {
		logrus.WithError(err).Fatal("Failed to read config")
	}
	app.ConfigureLogger(cfg.Logging)

	fmt.Printf("Fetching latest exchange rates with %s as base...\n", cfg.RatesAPI.BaseCurrency)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	client := httpclient.NewExchangeRateClient(app.NewHTTPClient(cfg.HTTPClient), strings.TrimSuffix(cfg.RatesAPI.BaseURL, "/"))
	snapshot, err := client.GetLatestRates(ctx, cfg.RatesAPI.BaseCurrency)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to fetch rates")
	}

	if err = cli.Run(os.Stdin, os.Stdout, snapshot); err != nil {
		logrus.WithError(err).Fatal("Converter stopped")
	}
}
