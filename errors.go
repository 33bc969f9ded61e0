/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

func newLogger(cfg *Config) zerolog.Logger {
	level := zerolog.WarnLevel
	if cfg.verbose {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: logDate,
		NoColor:    true,
	}).Level(level).With().Timestamp().Logger()
}

func logf(cfg *Config, format string, args ...any) {
	if !cfg.verbose {
		return
	}

	cfg.log.Info().Msgf(format, args...)
}

func errorf(cfg *Config, format string, args ...any) {
	cfg.log.Error().Msgf(format, args...)
}

// drainErrors logs handler errors until errs is closed.
func drainErrors(cfg *Config, errs <-chan error) {
	for err := range errs {
		errorf(cfg, "SERVE: %v", err)
	}
}

func newPage(prefix, title, body string) string {
	var htmlBody strings.Builder

	htmlBody.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
	htmlBody.WriteString(getFavicon(prefix))
	htmlBody.WriteString(fmt.Sprintf(`<link rel="stylesheet" href="%s/assets/wordraw/app.css">`, prefix))
	htmlBody.WriteString(fmt.Sprintf("<title>%s</title></head>", html.EscapeString(title)))
	htmlBody.WriteString(fmt.Sprintf(`<body class="page"><main class="card">%s</main></body></html>`, body))

	return htmlBody.String()
}
