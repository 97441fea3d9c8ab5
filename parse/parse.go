// Package parse converts text lines into numbers.
package parse

import (
	"context"
	"strconv"
	"strings"

	"github.com/kbukum/streamcalc/errors"
	"github.com/kbukum/streamcalc/pipeline"
	"github.com/kbukum/streamcalc/source"
)

// CommentPrefix marks a line the parser ignores.
const CommentPrefix = "#"

// Skip reports whether a line carries no value: blank after trimming, or a
// comment.
func Skip(text string) bool {
	t := strings.TrimSpace(text)
	return t == "" || strings.HasPrefix(t, CommentPrefix)
}

// Number parses a single trimmed line. Anything strconv.ParseFloat accepts
// is a number, including "inf" and "nan".
func Number(line source.Line) (float64, error) {
	t := strings.TrimSpace(line.Text)
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, errors.ParseError(line.Source, line.No, t, err)
	}
	return v, nil
}

// Numbers drops blank and comment lines and converts the rest. The first
// line that is not a number ends the stream with a PARSE_ERROR.
func Numbers(lines *pipeline.Pipeline[source.Line]) *pipeline.Pipeline[float64] {
	kept := pipeline.Filter(lines, func(l source.Line) bool { return !Skip(l.Text) })
	return pipeline.Map(kept, func(_ context.Context, l source.Line) (float64, error) {
		return Number(l)
	})
}
