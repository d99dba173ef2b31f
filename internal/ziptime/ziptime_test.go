package ziptime

import (
	"encoding/binary"
	"testing"
	"time"
)

// utField builds an extended timestamp extra field block.
func utField(flags byte, mtime uint32) []byte {
	buf := make([]byte, 9)
	binary.LittleEndian.PutUint16(buf[0:2], extendedTimestampTag)
	binary.LittleEndian.PutUint16(buf[2:4], 5)
	buf[4] = flags
	binary.LittleEndian.PutUint32(buf[5:9], mtime)
	return buf
}

// otherField builds an unrelated extra field block of the given size.
func otherField(tag uint16, size int) []byte {
	buf := make([]byte, 4+size)
	binary.LittleEndian.PutUint16(buf[0:2], tag)
	binary.LittleEndian.PutUint16(buf[2:4], uint16(size))
	return buf
}

func TestExtended(t *testing.T) {
	t.Parallel()

	const mtime = 1700000000

	tests := []struct {
		name   string
		extra  []byte
		want   int64
		wantOK bool
	}{
		{name: "mtime present", extra: utField(0x1, mtime), want: mtime, wantOK: true},
		{name: "after unrelated field", extra: append(otherField(0x000a, 8), utField(0x1, mtime)...), want: mtime, wantOK: true},
		{name: "mtime flag unset", extra: utField(0x0, mtime), wantOK: false},
		{name: "empty extra", extra: nil, wantOK: false},
		{name: "unrelated field only", extra: otherField(0x000a, 8), wantOK: false},
		{name: "truncated block", extra: utField(0x1, mtime)[:6], wantOK: false},
		{name: "declared size past end", extra: otherField(extendedTimestampTag, 200)[:8], wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Extended(tt.extra)()
			if ok != tt.wantOK {
				t.Fatalf("Extended() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.Unix() != tt.want {
				t.Errorf("Extended() = %v (unix %d), want unix %d", got, got.Unix(), tt.want)
			}
		})
	}
}

func TestMSDOS(t *testing.T) {
	t.Parallel()

	// 2024-03-15 13:30:10 local: date = (2024-1980)<<9 | 3<<5 | 15,
	// time = 13<<11 | 30<<5 | 5 (two-second units).
	date := uint16(44<<9 | 3<<5 | 15)
	tm := uint16(13<<11 | 30<<5 | 5)

	got, ok := MSDOS(date, tm)()
	if !ok {
		t.Fatal("MSDOS() ok = false, want true")
	}
	want := time.Date(2024, time.March, 15, 13, 30, 10, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("MSDOS() = %v, want %v", got, want)
	}

	if _, ok := MSDOS(0, 0)(); ok {
		t.Error("MSDOS(0, 0) ok = true, want false for absent field")
	}
	if _, ok := MSDOS(44<<9|13<<5|1, 0)(); ok {
		t.Error("MSDOS() ok = true for month 13, want false")
	}
}

func TestResolvePrecedence(t *testing.T) {
	t.Parallel()

	const mtime = 1700000000
	date := uint16(44<<9 | 3<<5 | 15)
	tm := uint16(13<<11 | 30<<5 | 5)

	// Extended timestamp wins over the native field.
	got := Resolve(Extended(utField(0x1, mtime)), MSDOS(date, tm))
	if got.Unix() != mtime {
		t.Errorf("Resolve() = %v, want extended timestamp %d", got, mtime)
	}

	// Native field when the extension is absent.
	got = Resolve(Extended(nil), MSDOS(date, tm))
	want := time.Date(2024, time.March, 15, 13, 30, 10, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("Resolve() = %v, want native %v", got, want)
	}

	// Default when nothing resolves.
	got = Resolve(Extended(nil), MSDOS(0, 0))
	if !got.Equal(Default) {
		t.Errorf("Resolve() = %v, want default %v", got, Default)
	}
}
