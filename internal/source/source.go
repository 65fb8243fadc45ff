// Package source reads personal codes from a line oriented text file.
//
// Each non-empty line, with surrounding whitespace removed, is one code. A
// leading UTF-8 or UTF-16 byte order mark is honoured so files saved by
// Windows editors decode the same as plain UTF-8 files.
package source

import (
	"bufio"
	"idcode/pkg/serrors"
	"io"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Lines iterates over the non-empty lines of an opened file.
type Lines struct {
	path    string
	file    afero.File
	scanner *bufio.Scanner

	line int
	text string
	err  error
}

// Open opens path on fs. A missing file yields an error of kind
// serrors.ErrSourceNotFound, any other failure serrors.ErrSourceUnreadable.
func Open(fs afero.Fs, path string) (*Lines, error) {
	f, err := fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, serrors.Wrap(serrors.ErrSourceNotFound, err, "the file '%s' was not found", path)
		}

		return nil, serrors.Wrap(serrors.ErrSourceUnreadable, err, "could not open '%s'", path)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()

		return nil, serrors.Wrap(serrors.ErrSourceUnreadable, err, "could not stat '%s'", path)
	}
	if info.IsDir() {
		_ = f.Close()

		return nil, serrors.With(serrors.ErrSourceUnreadable, "'%s' is a directory", path)
	}

	decoder := unicode.BOMOverride(encoding.Nop.NewDecoder())

	return &Lines{
		path:    path,
		file:    f,
		scanner: bufio.NewScanner(transform.NewReader(f, decoder)),
	}, nil
}

// Next advances to the next non-empty line. It returns false at the end of
// the file or on a read error; Err tells them apart.
func (l *Lines) Next() bool {
	if l.err != nil {
		return false
	}

	for l.scanner.Scan() {
		l.line++
		if text := strings.TrimSpace(l.scanner.Text()); text != "" {
			l.text = text

			return true
		}
	}

	if err := l.scanner.Err(); err != nil {
		l.err = serrors.Wrap(serrors.ErrSourceUnreadable, errors.Wrapf(err, "line %d", l.line+1),
			"could not read '%s'", l.path)
	}
	l.text = ""

	return false
}

// Code returns the current code.
func (l *Lines) Code() string { return l.text }

// Line returns the 1-based line number of the current code.
func (l *Lines) Line() int { return l.line }

// Path returns the path the lines are read from.
func (l *Lines) Path() string { return l.path }

// Err returns the read error that stopped iteration, if any.
func (l *Lines) Err() error { return l.err }

// Close closes the underlying file.
func (l *Lines) Close() error {
	if err := l.file.Close(); err != nil {
		return errors.Wrapf(err, "close %s", l.path)
	}

	return nil
}

// ReadAll returns every code of r, one per non-empty line. It is meant for
// small inputs such as stdin.
func ReadAll(r io.Reader) ([]string, error) {
	var codes []string
	scanner := bufio.NewScanner(transform.NewReader(r, unicode.BOMOverride(encoding.Nop.NewDecoder())))
	for scanner.Scan() {
		if text := strings.TrimSpace(scanner.Text()); text != "" {
			codes = append(codes, text)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, serrors.Wrap(serrors.ErrSourceUnreadable, err, "could not read input")
	}

	return codes, nil
}
