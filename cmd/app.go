package main

import (
	"context"
	"fmt"
	"idcode/internal/config"
	"idcode/internal/decoder"
	"idcode/internal/report"
	"idcode/pkg/logger"
	"idcode/pkg/metrics"
	"io"

	"go.uber.org/zap"
)

// newReporter creates the Reporter selected by the output configuration.
func newReporter(cfg *config.Config, w io.Writer) report.Reporter {
	opts := report.TextOptions{
		NoColor: cfg.Output.NoColor,
		ASCII:   cfg.Output.ASCII,
	}
	if cfg.Output.Format == config.FormatJSON {
		return report.NewJSON(w, opts)
	}

	return report.NewText(w, opts)
}

// getDecoder creates a Decoder writing reports to w and returns it along with
// a cleanup function that writes the metrics textfile when one is configured.
func getDecoder(ctx context.Context, cfg *config.Config, w io.Writer) (decoder.Decoder, func(), error) {
	deps := decoder.Deps{Reporter: newReporter(cfg, w)}

	if cfg.Metrics.TextfilePath == "" {
		return decoder.New(deps), func() {}, nil
	}

	rec, err := metrics.New()
	if err != nil {
		return nil, nil, fmt.Errorf("could not create metrics recorder: %w", err)
	}
	deps.Metrics = rec

	return decoder.New(deps), func() {
		logger.Debug(ctx, "writing metrics textfile...", zap.String("path", cfg.Metrics.TextfilePath))
		if err := rec.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
			logger.Warn(ctx, "could not write metrics", zap.Error(err))
		}
		if err := rec.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not shut down metrics", zap.Error(err))
		}
	}, nil
}
