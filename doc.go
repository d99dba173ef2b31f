// Package unzip lists and extracts the contents of ZIP archives.
//
// An [Archive] is opened from a file path or any seekable byte source and
// exposes two operations: [Archive.List] produces one row per entry (name,
// uncompressed size, best-effort modification time) in archive order, and
// [Archive.Extract] materializes the entry tree under a destination
// directory, streaming file contents with bounded memory.
//
// Entry names are untrusted. Names that would resolve outside the
// destination directory (absolute paths, drive roots, parent traversal) are
// never written; such entries are skipped.
//
// # Quick start
//
// List an archive:
//
//	a, err := unzip.Open("release.zip")
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//	for _, row := range a.List() {
//	    fmt.Println(row.Name, row.Size, row.Modified)
//	}
//
// Extract into a directory, overwriting existing files:
//
//	err = a.Extract("./out", unzip.WithOverwrite(true))
//
// Extraction is not transactional: when it aborts on a conflict or an I/O
// failure, entries written earlier in the same run remain on disk.
package unzip
