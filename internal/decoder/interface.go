package decoder

import (
	"context"
	"idcode/pkg/idcode"
	"time"
)

// Summary counts the codes decoded from one source.
type Summary struct {
	Source   string
	Total    int
	Valid    int
	Invalid  int
	Duration time.Duration
}

// Decoder decodes personal codes and hands the records to a reporter.
type Decoder interface {
	// Code decodes and reports a single code. Decode failures are part of the
	// record; the error is only set when the record could not be reported.
	Code(ctx context.Context, code string) (idcode.Record, error)
	// File decodes and reports every non-empty line of path. A failing line
	// never stops the run; a missing or unreadable file does.
	File(ctx context.Context, path string) (Summary, error)
}
