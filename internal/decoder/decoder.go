package decoder

import (
	"context"
	"fmt"
	"idcode/internal/report"
	"idcode/internal/source"
	"idcode/pkg/idcode"
	"idcode/pkg/logger"
	"idcode/pkg/metrics"
	"idcode/pkg/serrors"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Deps are the collaborators of the decoder.
type Deps struct {
	// Reporter renders every decoded record and source failure.
	Reporter report.Reporter
	// Metrics is optional; nil records nothing.
	Metrics *metrics.Recorder
	// Fs is the filesystem input files are read from.
	Fs afero.Fs
}

// decoder is the concrete implementation of the Decoder interface.
type decoder struct {
	reporter report.Reporter
	metrics  *metrics.Recorder
	fs       afero.Fs
}

// Code decodes a single code, records its outcome and reports it.
func (d decoder) Code(ctx context.Context, code string) (idcode.Record, error) {
	return d.decode(ctx, code, report.OriginArgument)
}

func (d decoder) decode(ctx context.Context, code string, origin report.Origin) (idcode.Record, error) {
	rec := idcode.Decode(code)

	failed := failedKinds(rec)
	logger.Debug(ctx, "decoded code",
		zap.String("code", code),
		zap.Bool("valid", rec.Valid()),
		zap.Strings("failed", failed),
	)
	d.metrics.Decoded(ctx, rec.Valid(), failed)

	if err := d.reporter.Record(ctx, rec, origin); err != nil {
		return rec, fmt.Errorf("could not report code: %w", err)
	}

	return rec, nil
}

// File decodes every non-empty line of path. Source failures are reported
// through the Reporter before being returned.
func (d decoder) File(ctx context.Context, path string) (Summary, error) {
	ctx = logger.WithFields(ctx,
		zap.String("run_id", uuid.New().String()),
		zap.String("source", path),
	)
	summary := Summary{Source: path}
	start := time.Now()

	lines, err := source.Open(d.fs, path)
	if err != nil {
		return summary, d.sourceFailed(ctx, err)
	}
	defer func() {
		if err := lines.Close(); err != nil {
			logger.Warn(ctx, "could not close source", zap.Error(err))
		}
	}()

	logger.Info(ctx, "decoding codes from file")

	for lines.Next() {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("decoding interrupted: %w", err)
		}

		lineCtx := logger.WithFields(ctx, zap.Int("line", lines.Line()))
		rec, err := d.decode(lineCtx, lines.Code(), report.OriginFile)
		if err != nil {
			return summary, err
		}

		summary.Total++
		if rec.Valid() {
			summary.Valid++
		} else {
			summary.Invalid++
		}
	}

	if err := lines.Err(); err != nil {
		return summary, d.sourceFailed(ctx, err)
	}

	summary.Duration = time.Since(start)
	d.metrics.Batch(ctx, path, summary.Duration)

	logger.Info(ctx, "finished decoding file",
		zap.Int("total", summary.Total),
		zap.Int("valid", summary.Valid),
		zap.Int("invalid", summary.Invalid),
		zap.Duration("duration", summary.Duration),
	)

	return summary, nil
}

func (d decoder) sourceFailed(ctx context.Context, err error) error {
	logger.Error(ctx, "could not read source", zap.Error(err))

	if rerr := d.reporter.SourceError(ctx, err); rerr != nil {
		logger.Warn(ctx, "could not report source error", zap.Error(rerr))
	}

	return err
}

// failedKinds lists the error kind of every failed field of rec.
func failedKinds(rec idcode.Record) []string {
	errs := rec.Errors()
	kinds := make([]string, 0, len(errs))
	for _, err := range errs {
		if k := serrors.KindOf(err); k != nil {
			kinds = append(kinds, k.Error())
		}
	}

	return kinds
}

// New creates a Decoder reporting through deps.Reporter. A nil deps.Fs reads
// from the operating system.
func New(deps Deps) Decoder {
	fs := deps.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &decoder{
		reporter: deps.Reporter,
		metrics:  deps.Metrics,
		fs:       fs,
	}
}
