package archive

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ulikunitz/xz"
)

// CompressionFor picks the compression implied by the extension of name.
func CompressionFor(name string) Compression {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".xz"):
		return XZ
	case strings.HasSuffix(lower, ".gz"), strings.HasSuffix(lower, ".tgz"):
		return Gzip
	}
	return None
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// Compress wraps w in a compressor for c. Closing the result flushes the
// compressor but does not close w.
func Compress(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case XZ:
		xw, err := xz.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("xz writer: %w", err)
		}
		return xw, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	}
	return nopWriteCloser{w}, nil
}

// fileWriter compresses into a file and closes both on Close.
type fileWriter struct {
	io.WriteCloser
	file *os.File
}

func (w *fileWriter) Close() error {
	err := w.WriteCloser.Close()
	if cerr := w.file.Close(); err == nil {
		err = cerr
	}
	return err
}

// Create creates the file at path, compressed according to its extension.
// Parent directories are created as needed.
func Create(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create parent directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	cw, err := Compress(f, CompressionFor(path))
	if err != nil {
		f.Close()
		return nil, err
	}
	return &fileWriter{WriteCloser: cw, file: f}, nil
}

// Writer writes a tar bundle.
type Writer struct {
	tw      *tar.Writer
	stream  io.WriteCloser
	modTime time.Time
}

// NewWriter creates a tar bundle at path, compressed according to its
// extension (.tar, .tar.gz, .tgz, .tar.xz).
func NewWriter(path string) (*Writer, error) {
	stream, err := Create(path)
	if err != nil {
		return nil, err
	}
	return &Writer{tw: tar.NewWriter(stream), stream: stream, modTime: time.Now()}, nil
}

// AddFile adds a regular file to the bundle.
func (w *Writer) AddFile(name string, data []byte) error {
	header := &tar.Header{
		Name:    name,
		Mode:    0644,
		Size:    int64(len(data)),
		ModTime: w.modTime,
	}
	if err := w.tw.WriteHeader(header); err != nil {
		return fmt.Errorf("write header %s: %w", name, err)
	}
	if _, err := w.tw.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// Close finishes the bundle and closes the file.
func (w *Writer) Close() error {
	err := w.tw.Close()
	if cerr := w.stream.Close(); err == nil {
		err = cerr
	}
	return err
}
