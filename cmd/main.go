package main

import (
	"fxconverter/internal/app"

	"github.com/sirupsen/logrus"
)

// @title FX Converter API
// @version 1.0
// @description Currency rates, conversion and currency detection.
// @BasePath /api
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Fatal("Application stopped")
	}
}
