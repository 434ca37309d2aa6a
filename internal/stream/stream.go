// Package stream opens the input and output of a conversion: a file path or
// the standard streams, compressed or not.
package stream

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// MaxLineLength is the longest line a Scanner from NewScanner accepts.
const MaxLineLength = 1 << 20

var (
	gzipMagic  = []byte{0x1f, 0x8b}
	zstdMagic  = []byte{0x28, 0xb5, 0x2f, 0xfd}
	bzip2Magic = []byte("BZh")
)

// IsStd reports whether path names a standard stream rather than a file.
func IsStd(path string) bool {
	return path == "" || path == "-"
}

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open a file for reading, or stdin if path is empty or "-". gzip, zstd and
// bzip2 input is detected by its magic number and decompressed.
func Open(path string) (io.ReadCloser, error) {
	var src io.ReadCloser = io.NopCloser(os.Stdin)
	if !IsStd(path) {
		fh, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		src = fh
	}

	r, closers, err := decompress(bufio.NewReader(src), strings.HasSuffix(path, ".gz"))
	if err != nil {
		_ = src.Close()
		return nil, fmt.Errorf("failed to decompress %s: %w", Name(path, "stdin"), err)
	}
	return &multiReadCloser{Reader: r, closers: append(closers, src)}, nil
}

// decompress wraps br in a decompressor if its leading bytes call for one.
func decompress(br *bufio.Reader, forceGzip bool) (io.Reader, []io.Closer, error) {
	sig, _ := br.Peek(len(zstdMagic)) // short input is plain text

	switch {
	case forceGzip || bytes.HasPrefix(sig, gzipMagic):
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, err
		}
		return gr, []io.Closer{gr}, nil
	case bytes.HasPrefix(sig, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, nil, err
		}
		rc := zr.IOReadCloser()
		return rc, []io.Closer{rc}, nil
	case len(sig) == 4 && bytes.HasPrefix(sig, bzip2Magic) && sig[3] >= '1' && sig[3] <= '9':
		return bzip2.NewReader(br), nil, nil
	}
	return br, nil, nil
}

// NewScanner returns a line scanner over r that accepts lines up to MaxLineLength.
func NewScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), MaxLineLength)
	return s
}

// Sink is a buffered, optionally compressed, output stream.
type Sink struct {
	buf  *bufio.Writer
	enc  io.WriteCloser
	file *os.File
}

// Create a file for writing, or stdout if path is empty or "-". A path
// ending in ".gz" is gzip compressed and one ending in ".zst" is zstd compressed.
func Create(path string) (*Sink, error) {
	if strings.EqualFold(filepath.Ext(path), ".bz2") {
		return nil, fmt.Errorf("failed to create %s: bzip2 output is not supported", path)
	}

	s := &Sink{}
	var w io.Writer = os.Stdout
	if !IsStd(path) {
		fh, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", path, err)
		}
		s.file = fh
		w = fh
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		s.enc = gzip.NewWriter(w)
	case ".zst":
		enc, err := zstd.NewWriter(w)
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("failed to create zstd writer for %s: %w", path, err)
		}
		s.enc = enc
	}

	if s.enc != nil {
		w = s.enc
	}
	s.buf = bufio.NewWriter(w)
	return s, nil
}

// Write implements io.Writer.
func (s *Sink) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

// Flush writes any buffered data and finishes the compressed stream, if any.
// Nothing may be written after a Flush to a compressed Sink.
func (s *Sink) Flush() error {
	if err := s.buf.Flush(); err != nil {
		return err
	}
	if s.enc != nil {
		enc := s.enc
		s.enc = nil
		return enc.Close()
	}
	return nil
}

// Close releases the underlying file. It doesn't Flush. Stdout is left open.
func (s *Sink) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}

// Name is path, or std if path names a standard stream. For messages.
func Name(path, std string) string {
	if IsStd(path) {
		return std
	}
	return path
}
