// Package report renders decoded records and input source failures.
package report

import (
	"context"
	"idcode/pkg/idcode"
)

// Origin tells where a decoded code came from.
type Origin int

const (
	// OriginArgument is a code given directly, on the command line or stdin.
	OriginArgument Origin = iota
	// OriginFile is a code read from a line of an input file.
	OriginFile
)

// String returns "argument" or "file".
func (o Origin) String() string {
	if o == OriginFile {
		return "file"
	}

	return "argument"
}

// Reporter writes decode results for a human or a machine reader.
//
//go:generate mockgen -package mockreport -source=interface.go -destination=mock/mockreport.go *
type Reporter interface {
	// Record writes one decoded record, including every field failure.
	Record(ctx context.Context, rec idcode.Record, origin Origin) error
	// SourceError writes a message for an input source that could not be opened or read.
	SourceError(ctx context.Context, err error) error
}
