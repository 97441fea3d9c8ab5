package source

import (
	"compress/bzip2"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Decoder wraps a raw file stream with a decompressing reader.
type Decoder func(r io.Reader) (io.ReadCloser, error)

var decoders = map[string]Decoder{
	".gz": func(r io.Reader) (io.ReadCloser, error) {
		return gzip.NewReader(r)
	},
	".bz2": func(r io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(bzip2.NewReader(r)), nil
	},
	".zst": func(r io.Reader) (io.ReadCloser, error) {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	},
}

// decoderFor returns the decoder registered for name's extension, or nil for
// plain text.
func decoderFor(name string) Decoder {
	return decoders[strings.ToLower(filepath.Ext(name))]
}

