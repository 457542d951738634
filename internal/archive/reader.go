// Package archive opens the files handed to the importer. A file may be a
// plain text or XML file, a single xz or gzip stream, or a tar bundle
// (optionally compressed) holding several such files.
package archive

import (
	"archive/tar"
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// Compression identifies the compression of a stream.
type Compression int

const (
	None Compression = iota
	Gzip
	XZ
)

func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case XZ:
		return "xz"
	}
	return "none"
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// Detect reports the compression of the stream behind br from its magic
// bytes without consuming them.
func Detect(br *bufio.Reader) Compression {
	head, _ := br.Peek(len(xzMagic))
	switch {
	case bytes.HasPrefix(head, xzMagic):
		return XZ
	case bytes.HasPrefix(head, gzipMagic):
		return Gzip
	}
	return None
}

// stream is a decompressing reader that closes its layers in order.
type stream struct {
	io.Reader
	closers []io.Closer
}

func (s *stream) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Decompress wraps r in the decompressor its magic bytes call for. The
// returned reader does not close r.
func Decompress(r io.Reader) (io.ReadCloser, Compression, error) {
	br := bufio.NewReader(r)
	c := Detect(br)
	switch c {
	case XZ:
		xzr, err := xz.NewReader(br)
		if err != nil {
			return nil, c, fmt.Errorf("xz reader: %w", err)
		}
		return &stream{Reader: xzr}, c, nil
	case Gzip:
		gzr, err := gzip.NewReader(br)
		if err != nil {
			return nil, c, fmt.Errorf("gzip reader: %w", err)
		}
		return &stream{Reader: gzr, closers: []io.Closer{gzr}}, c, nil
	}
	return &stream{Reader: br}, c, nil
}

// Open opens the file at path and transparently decompresses it.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	rc, _, err := Decompress(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	s := rc.(*stream)
	s.closers = append(s.closers, f)
	return s, nil
}

// TrimCompression removes a trailing .xz or .gz extension from name.
func TrimCompression(name string) string {
	for _, ext := range []string{".xz", ".gz"} {
		if strings.HasSuffix(strings.ToLower(name), ext) {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// IsBundle reports whether name is a tar bundle by its extension.
func IsBundle(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(TrimCompression(lower), ".tar") || strings.HasSuffix(lower, ".tgz")
}

// Reader reads the entries of a tar bundle.
type Reader struct {
	*tar.Reader
	stream io.Closer
}

// NewReader opens a tar bundle at path, decompressing it as needed.
func NewReader(path string) (*Reader, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{Reader: tar.NewReader(rc), stream: rc}, nil
}

// Close closes the bundle and its underlying file.
func (r *Reader) Close() error {
	return r.stream.Close()
}

// Visitor is called for each file. Return true to stop iteration.
type Visitor func(name string, content io.Reader) (stop bool, err error)

// Iterate walks the regular files of the bundle in archive order. Nested
// compressed entries such as "john.tsv.xz" are decompressed and reported
// without their compression extension.
func (r *Reader) Iterate(visitor Visitor) error {
	for {
		header, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read header: %w", err)
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}

		content, _, err := Decompress(r)
		if err != nil {
			return fmt.Errorf("%s: %w", header.Name, err)
		}
		stop, err := visitor(TrimCompression(header.Name), content)
		content.Close()
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
}

// Walk calls visitor for every file held in path: each entry of a tar
// bundle, or the file itself. Names are reported without compression
// extensions.
func Walk(p string, visitor Visitor) error {
	if IsBundle(p) {
		r, err := NewReader(p)
		if err != nil {
			return err
		}
		defer r.Close()
		return r.Iterate(visitor)
	}

	rc, err := Open(p)
	if err != nil {
		return err
	}
	defer rc.Close()
	_, err = visitor(TrimCompression(filepath.Base(p)), rc)
	return err
}
