package unzip

import (
	"io"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"

	"github.com/windtail/unzip/internal/ziptime"
)

// EntryKind distinguishes stored files from directory markers.
type EntryKind uint8

const (
	// EntryFile is a regular file entry with streamable content.
	EntryFile EntryKind = iota

	// EntryDir is a directory marker with no content.
	EntryDir
)

func (k EntryKind) String() string {
	switch k {
	case EntryFile:
		return "file"
	case EntryDir:
		return "dir"
	default:
		return "unknown"
	}
}

// Entry is one record inside an Archive.
//
// Name comes straight from the central directory and is untrusted: it may
// name an absolute or parent-traversing path. Extraction sanitizes it before
// any filesystem access.
type Entry struct {
	// Name is the archive-internal path, slash-separated.
	Name string

	// Kind is resolved once when the archive is opened.
	Kind EntryKind

	// Size is the uncompressed size in bytes.
	Size int64

	zf *zip.File
}

// open returns the entry's decompressed content stream. The stream is
// one-shot: once consumed it cannot be rewound. An error here means the
// entry's local header could not be decoded and the entry should be skipped.
func (e Entry) open() (io.ReadCloser, error) {
	return e.zf.Open()
}

// modTime resolves the entry's modification time, preferring the
// extended-timestamp extra field over the native MS-DOS field.
func (e Entry) modTime() time.Time {
	return ziptime.Resolve(
		ziptime.Extended(e.zf.Extra),
		ziptime.MSDOS(e.zf.ModifiedDate, e.zf.ModifiedTime),
	)
}

func entryFromZip(f *zip.File) Entry {
	kind := EntryFile
	if f.FileInfo().IsDir() || strings.HasSuffix(f.Name, "/") {
		kind = EntryDir
	}
	return Entry{
		Name: f.Name,
		Kind: kind,
		Size: int64(f.UncompressedSize64),
		zf:   f,
	}
}
