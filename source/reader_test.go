package source

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/kbukum/streamcalc/errors"
	"github.com/kbukum/streamcalc/pipeline"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeGzip(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	w := gzip.NewWriter(f)
	if _, err := io.WriteString(w, content); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeZstd(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	w, err := zstd.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.WriteString(w, content); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLines_Stdin(t *testing.T) {
	tests := []struct {
		name  string
		names []string
	}{
		{"no names", nil},
		{"dash", []string{"-"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pipeline.Collect(context.Background(), Lines(tt.names, strings.NewReader("1\n2\n3")))
			if err != nil {
				t.Fatal(err)
			}
			if !equal(texts(got), []string{"1", "2", "3"}) {
				t.Errorf("got %v", texts(got))
			}
			if got[2].Source != Stdin || got[2].No != 3 {
				t.Errorf("last line = %+v", got[2])
			}
		})
	}
}

func TestLines_FilesInOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "1\n2\n")
	b := writeGzip(t, dir, "b.txt.gz", "3\n4\n")
	c := writeZstd(t, dir, "c.txt.zst", "5\n")

	got, err := pipeline.Collect(context.Background(), Lines([]string{a, b, c}, strings.NewReader("")))
	if err != nil {
		t.Fatal(err)
	}
	if !equal(texts(got), []string{"1", "2", "3", "4", "5"}) {
		t.Errorf("got %v", texts(got))
	}
	if got[3].Source != b || got[3].No != 2 {
		t.Errorf("line numbering restarts per source, got %+v", got[3])
	}
}

func TestLines_MixesStdinAndFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "file\n")

	got, err := pipeline.Collect(context.Background(), Lines([]string{a, "-"}, strings.NewReader("stdin\n")))
	if err != nil {
		t.Fatal(err)
	}
	if !equal(texts(got), []string{"file", "stdin"}) {
		t.Errorf("got %v", texts(got))
	}
}

func TestLines_MissingFile(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "1\n")
	missing := filepath.Join(dir, "missing.txt")

	got, err := pipeline.Collect(context.Background(), Lines([]string{a, missing}, nil))
	if !errors.IsCode(err, errors.ErrCodeIO) {
		t.Fatalf("expected IO_ERROR, got %v", err)
	}
	if !equal(texts(got), []string{"1"}) {
		t.Errorf("lines before the failure should still be yielded, got %v", texts(got))
	}
}

func TestLines_Lazy(t *testing.T) {
	// A missing file is not touched until the stream reaches it.
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "1\n2\n")
	p := Lines([]string{a, filepath.Join(dir, "missing")}, nil)

	stop := stderrors.New("stop")
	var seen []string
	err := pipeline.ForEach(context.Background(), p, func(_ context.Context, l Line) error {
		seen = append(seen, l.Text)
		return stop
	})
	if err != stop {
		t.Fatalf("expected the sink error, got %v", err)
	}
	if !equal(seen, []string{"1"}) {
		t.Errorf("seen = %v", seen)
	}
}

func TestOpen_CorruptCompressed(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		file string
	}{
		{"gzip header", "bad.gz"},
		{"bzip2 stream", "bad.bz2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, "definitely not compressed\n")
			_, err := pipeline.Collect(context.Background(), Lines([]string{path}, nil))
			if !errors.IsCode(err, errors.ErrCodeIO) {
				t.Fatalf("expected IO_ERROR, got %v", err)
			}
		})
	}
}

func TestDecoderFor(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"data.txt", false},
		{"data", false},
		{"data.gz", true},
		{"DATA.GZ", true},
		{"data.bz2", true},
		{"data.zst", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decoderFor(tt.name) != nil; got != tt.want {
				t.Errorf("decoderFor(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
