// Package ziptime resolves ZIP entry modification times from their optional,
// conflicting metadata sources.
//
// The extended-timestamp extra field carries a Unix epoch count with full
// second fidelity; the native MS-DOS field has two-second resolution and no
// timezone. Both are optional per entry, so resolution is an ordered chain
// of attempts with a fixed default at the end.
package ziptime

import (
	"encoding/binary"
	"time"
)

// extendedTimestampTag identifies the Info-ZIP extended timestamp ("UT")
// extra field.
const extendedTimestampTag = 0x5455

// Default is the time Resolve falls back to when no source yields a value.
var Default = time.Unix(0, 0)

// Resolver attempts to produce a modification time from one metadata source.
type Resolver func() (time.Time, bool)

// Resolve tries each resolver in order and returns the first hit, falling
// back to Default. Precedence is the argument order.
func Resolve(resolvers ...Resolver) time.Time {
	for _, r := range resolvers {
		if t, ok := r(); ok {
			return t
		}
	}
	return Default
}

// Extended resolves the mtime carried by the extended timestamp extra field:
// a Unix epoch second count, converted to local time.
func Extended(extra []byte) Resolver {
	return func() (time.Time, bool) {
		secs, ok := extendedModTime(extra)
		if !ok {
			return time.Time{}, false
		}
		return time.Unix(int64(secs), 0), true
	}
}

// MSDOS resolves the native last-modified field: an MS-DOS date/time pair
// read as naive local civil time.
func MSDOS(date, tm uint16) Resolver {
	return func() (time.Time, bool) {
		return dosTime(date, tm)
	}
}

// extendedModTime walks the extra field blocks looking for the extended
// timestamp and returns its mtime when present.
//
// Blocks are tag(2) size(2) data(size), little-endian. The extended
// timestamp data is a flags byte followed by up to three 4-byte epoch
// counts; bit 0 marks the mtime as present and first.
func extendedModTime(extra []byte) (uint32, bool) {
	for len(extra) >= 4 {
		tag := binary.LittleEndian.Uint16(extra[:2])
		size := int(binary.LittleEndian.Uint16(extra[2:4]))
		extra = extra[4:]
		if size > len(extra) {
			break
		}
		if tag == extendedTimestampTag {
			if size >= 5 && extra[0]&0x1 != 0 {
				return binary.LittleEndian.Uint32(extra[1:5]), true
			}
			return 0, false
		}
		extra = extra[size:]
	}
	return 0, false
}

// dosTime converts an MS-DOS date/time pair. An all-zero or out-of-range
// field reports no value rather than a bogus date.
func dosTime(date, tm uint16) (time.Time, bool) {
	year := int(date>>9) + 1980
	month := int(date>>5) & 0xf
	day := int(date) & 0x1f
	hour := int(tm >> 11)
	minute := int(tm>>5) & 0x3f
	sec := int(tm&0x1f) * 2
	if month < 1 || month > 12 || day < 1 || hour > 23 || minute > 59 || sec > 59 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, hour, minute, sec, 0, time.Local), true
}
