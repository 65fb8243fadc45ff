package report

import (
	"context"
	"fmt"
	"idcode/pkg/idcode"
	"idcode/pkg/serrors"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const (
	unknown   = "Unknown"
	separator = "\n======== New code: ========\n"
)

// TextOptions control the text rendering.
type TextOptions struct {
	// NoColor disables red error lines even on a terminal.
	NoColor bool
	// ASCII folds facility names to plain ASCII.
	ASCII bool
}

// Text renders records as the human readable block:
//
//	Decoding ID code 34501234215
//	Birthdate: 23.01.1945
//	Gender: male
//	Birthplace: Pärnu haigla, birth number 1
//	Calculated checksum: 5
//	Encoded checksum: 5
//	Checksums match: true
//
// Field failures are printed as "Error: <reason>" lines before the block and
// the failed fields read "Unknown". Every record read from a file, and every
// other record after the first, is preceded by a separator.
type Text struct {
	w        io.Writer
	opts     TextOptions
	errColor *color.Color
	records  int
}

// NewText creates a text Reporter writing to w.
func NewText(w io.Writer, opts TextOptions) *Text {
	errColor := color.New(color.FgRed)
	if opts.NoColor {
		errColor.DisableColor()
	}

	return &Text{w: w, opts: opts, errColor: errColor}
}

// Record implements Reporter.
func (t *Text) Record(_ context.Context, rec idcode.Record, origin Origin) error {
	var b strings.Builder

	if origin == OriginFile || t.records > 0 {
		b.WriteString(separator)
		b.WriteByte('\n')
	}
	t.records++

	for _, err := range rec.Errors() {
		b.WriteString(t.errColor.Sprint("Error: " + err.Error()))
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "Decoding ID code %s\n", rec.Code)
	fmt.Fprintf(&b, "Birthdate: %s\n", textOf(rec.BirthDate, idcode.Date.String))
	fmt.Fprintf(&b, "Gender: %s\n", textOf(rec.Gender, func(g idcode.Gender) string { return string(g) }))
	fmt.Fprintf(&b, "Birthplace: %s\n", textOf(rec.Birthplace, t.birthplace))
	fmt.Fprintf(&b, "Calculated checksum: %s\n", textOf(rec.ComputedChecksum, strconv.Itoa))
	fmt.Fprintf(&b, "Encoded checksum: %s\n", textOf(rec.EncodedChecksum, strconv.Itoa))
	fmt.Fprintf(&b, "Checksums match: %t\n", rec.ChecksumsMatch)

	if _, err := io.WriteString(t.w, b.String()); err != nil {
		return fmt.Errorf("could not write record: %w", err)
	}

	return nil
}

// SourceError implements Reporter.
func (t *Text) SourceError(_ context.Context, err error) error {
	msg := "Error reading the file: " + err.Error()
	if serrors.KindOf(err) == serrors.ErrSourceNotFound {
		msg = "Error: " + err.Error()
	}

	if _, werr := io.WriteString(t.w, t.errColor.Sprint(msg)+"\n"); werr != nil {
		return fmt.Errorf("could not write source error: %w", werr)
	}

	return nil
}

func (t *Text) birthplace(b idcode.Birthplace) string {
	if t.opts.ASCII {
		b.Facility = FoldASCII(b.Facility)
	}

	return b.String()
}

func textOf[T any](r idcode.Result[T], format func(T) string) string {
	if !r.OK() {
		return unknown
	}

	return format(r.Value)
}
