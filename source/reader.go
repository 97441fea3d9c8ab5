package source

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/kbukum/streamcalc/errors"
	"github.com/kbukum/streamcalc/logger"
	"github.com/kbukum/streamcalc/pipeline"
)

// Stdin is the source name that selects standard input.
const Stdin = "-"

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Line is one line of text together with where it came from.
type Line struct {
	// Source is the file name, or "-" for standard input.
	Source string
	// No is the 1-based line number within Source.
	No int
	// Text is the line without its trailing newline.
	Text string
}

// Lines returns a lazy pipeline over every line of the named sources, in
// argument order. An empty names slice reads stdin.
func Lines(names []string, stdin io.Reader) *pipeline.Pipeline[Line] {
	if len(names) == 0 {
		names = []string{Stdin}
	}
	log := logger.Get("reader")
	return pipeline.FlatMap(pipeline.FromSlice(names), func(_ context.Context, name string) (pipeline.Iterator[Line], error) {
		if name == Stdin {
			log.Debug("reading standard input", logger.Fields(logger.FieldSource, name))
			return newLineIter(name, stdin, nil, log), nil
		}
		rc, err := Open(name)
		if err != nil {
			return nil, err
		}
		log.Debug("opened source", logger.Fields(logger.FieldSource, name))
		return newLineIter(name, rc, rc, log), nil
	})
}

// Open opens a file for reading, decompressing it if its extension calls
// for it. Errors are IO_ERROR AppErrors.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.ReadFailed(name, err)
	}
	dec := decoderFor(name)
	if dec == nil {
		return f, nil
	}
	r, err := dec(f)
	if err != nil {
		_ = f.Close()
		return nil, errors.ReadFailed(name, err)
	}
	return &decodedFile{ReadCloser: r, file: f}, nil
}

// decodedFile closes both the decoder and the underlying file.
type decodedFile struct {
	io.ReadCloser
	file *os.File
}

func (d *decodedFile) Close() error {
	derr := d.ReadCloser.Close()
	ferr := d.file.Close()
	if derr != nil {
		return derr
	}
	return ferr
}

type lineIter struct {
	name    string
	scanner *bufio.Scanner
	closer  io.Closer
	no      int
	log     *logger.Logger
}

func newLineIter(name string, r io.Reader, closer io.Closer, log *logger.Logger) *lineIter {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &lineIter{name: name, scanner: sc, closer: closer, log: log}
}

func (it *lineIter) Next(ctx context.Context) (Line, bool, error) {
	if err := ctx.Err(); err != nil {
		return Line{}, false, err
	}
	if !it.scanner.Scan() {
		if err := it.scanner.Err(); err != nil {
			return Line{}, false, errors.ReadFailed(it.name, err).WithDetail("line", it.no+1)
		}
		return Line{}, false, nil
	}
	it.no++
	return Line{Source: it.name, No: it.no, Text: it.scanner.Text()}, true, nil
}

func (it *lineIter) Close() error {
	if it.closer == nil {
		return nil
	}
	closer := it.closer
	it.closer = nil
	it.log.Debug("closed source", logger.Fields(logger.FieldSource, it.name, logger.FieldCount, it.no))
	if err := closer.Close(); err != nil {
		return errors.ReadFailed(it.name, err)
	}
	return nil
}
