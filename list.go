package unzip

import "time"

// Row is one listing record. Rows carry no identity beyond their position:
// order mirrors the archive's entry order and colliding names are not
// deduplicated.
type Row struct {
	// Name is the raw archive-internal path of the entry.
	Name string

	// Size is the uncompressed size in bytes.
	Size int64

	// Modified is the best-effort modification time; see List.
	Modified time.Time
}

// List returns one Row per entry, in archive order.
//
// The modification time is resolved per entry from the first available
// source: the extended-timestamp extra field when present and parseable,
// otherwise the native MS-DOS timestamp read as local civil time, otherwise
// the Unix epoch. Missing precision never fails a row.
func (a *Archive) List() []Row {
	rows := make([]Row, 0, len(a.entries))
	for _, e := range a.entries {
		rows = append(rows, Row{
			Name:     e.Name,
			Size:     e.Size,
			Modified: e.modTime(),
		})
	}
	return rows
}
