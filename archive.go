package unzip

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
)

// zstdMethod is the ZIP compression method ID for Zstandard (APPNOTE 4.4.5).
const zstdMethod = 93

// Archive is an opened ZIP container.
//
// An Archive is owned by a single listing or extraction operation at a time.
// It is not safe for concurrent use, and overlapping extractions into the
// same directory are not coordinated.
type Archive struct {
	entries []Entry
	closer  io.Closer
}

// Open opens the ZIP archive at path.
//
// A missing or unreadable file and a file whose central directory cannot be
// parsed produce distinct errors; both are fatal. The caller must Close the
// returned Archive.
func Open(path string) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unzip: open %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("unzip: open %s: %w", path, err)
	}
	a, err := newArchive(f, info.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("unzip: read %s: %w", path, err)
	}
	a.closer = f
	return a, nil
}

// NewArchive parses a ZIP central directory from a seekable byte source.
// The source must remain valid for the lifetime of the Archive; closing it
// is the caller's responsibility.
func NewArchive(r io.ReaderAt, size int64) (*Archive, error) {
	a, err := newArchive(r, size)
	if err != nil {
		return nil, fmt.Errorf("unzip: read archive: %w", err)
	}
	return a, nil
}

func newArchive(r io.ReaderAt, size int64) (*Archive, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	// Zstandard entries are not decoded out of the box.
	zr.RegisterDecompressor(zstdMethod, zstdDecompressor)

	entries := make([]Entry, len(zr.File))
	for i, f := range zr.File {
		entries[i] = entryFromZip(f)
	}
	return &Archive{entries: entries}, nil
}

// Len returns the number of entries in the archive.
func (a *Archive) Len() int { return len(a.entries) }

// Entry returns the entry at index i, in central directory order.
// i must be in [0, Len()).
func (a *Archive) Entry(i int) Entry { return a.entries[i] }

// Close releases the underlying file handle when the Archive was opened with
// Open. It is a no-op for archives over caller-owned sources.
func (a *Archive) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func zstdDecompressor(r io.Reader) io.ReadCloser {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return io.NopCloser(&errReader{err: err})
	}
	return dec.IOReadCloser()
}

// errReader surfaces a decoder construction error on first read.
type errReader struct{ err error }

func (r *errReader) Read([]byte) (int, error) { return 0, r.err }
