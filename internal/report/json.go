package report

import (
	"context"
	"fmt"
	"idcode/pkg/idcode"
	"idcode/pkg/serrors"
	"io"

	"github.com/go-faster/jx"
)

// JSON renders one JSON object per line. Every field is an object holding
// either "value" or "error", where an error has a "kind" and a "message".
type JSON struct {
	w    io.Writer
	opts TextOptions
	enc  jx.Encoder
}

// NewJSON creates a JSON lines Reporter writing to w. Only opts.ASCII is used.
func NewJSON(w io.Writer, opts TextOptions) *JSON {
	return &JSON{w: w, opts: opts}
}

// Record implements Reporter.
func (j *JSON) Record(_ context.Context, rec idcode.Record, origin Origin) error {
	j.enc.Reset()
	j.enc.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str(rec.Code) })
		e.Field("origin", func(e *jx.Encoder) { e.Str(origin.String()) })
		e.Field("valid", func(e *jx.Encoder) { e.Bool(rec.Valid()) })
		e.Field("structure", func(e *jx.Encoder) {
			if rec.Structure == nil {
				e.Null()

				return
			}
			encodeError(e, rec.Structure)
		})
		e.Field("birthDate", func(e *jx.Encoder) {
			encodeResult(e, rec.BirthDate, func(e *jx.Encoder, d idcode.Date) {
				e.Str(d.Time().Format("2006-01-02"))
			})
		})
		e.Field("gender", func(e *jx.Encoder) {
			encodeResult(e, rec.Gender, func(e *jx.Encoder, g idcode.Gender) { e.Str(string(g)) })
		})
		e.Field("birthplace", func(e *jx.Encoder) {
			encodeResult(e, rec.Birthplace, j.encodeBirthplace)
		})
		e.Field("computedChecksum", func(e *jx.Encoder) {
			encodeResult(e, rec.ComputedChecksum, func(e *jx.Encoder, c int) { e.Int(c) })
		})
		e.Field("encodedChecksum", func(e *jx.Encoder) {
			encodeResult(e, rec.EncodedChecksum, func(e *jx.Encoder, c int) { e.Int(c) })
		})
		e.Field("checksumsMatch", func(e *jx.Encoder) { e.Bool(rec.ChecksumsMatch) })
	})

	return j.flush()
}

// SourceError implements Reporter.
func (j *JSON) SourceError(_ context.Context, err error) error {
	j.enc.Reset()
	j.enc.Obj(func(e *jx.Encoder) {
		e.Field("error", func(e *jx.Encoder) { encodeError(e, err) })
	})

	return j.flush()
}

func (j *JSON) flush() error {
	out := append(j.enc.Bytes(), '\n')
	if _, err := j.w.Write(out); err != nil {
		return fmt.Errorf("could not write json record: %w", err)
	}

	return nil
}

func (j *JSON) encodeBirthplace(e *jx.Encoder, b idcode.Birthplace) {
	facility := b.Facility
	if j.opts.ASCII {
		facility = FoldASCII(facility)
	}

	e.Obj(func(e *jx.Encoder) {
		e.Field("facility", func(e *jx.Encoder) { e.Str(facility) })
		e.Field("registration", func(e *jx.Encoder) { e.Int(b.Registration) })
		e.Field("ordinal", func(e *jx.Encoder) { e.Int(b.Ordinal) })
	})
}

func encodeResult[T any](e *jx.Encoder, r idcode.Result[T], value func(e *jx.Encoder, v T)) {
	e.Obj(func(e *jx.Encoder) {
		if !r.OK() {
			e.Field("error", func(e *jx.Encoder) { encodeError(e, r.Err) })

			return
		}
		e.Field("value", func(e *jx.Encoder) { value(e, r.Value) })
	})
}

func encodeError(e *jx.Encoder, err error) {
	kind := "UNKNOWN"
	if k := serrors.KindOf(err); k != nil {
		kind = k.Error()
	}

	e.Obj(func(e *jx.Encoder) {
		e.Field("kind", func(e *jx.Encoder) { e.Str(kind) })
		e.Field("message", func(e *jx.Encoder) { e.Str(err.Error()) })
	})
}
