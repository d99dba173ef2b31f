package pathutil

import "testing"

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{name: "plain file", in: "a.txt", want: "a.txt", wantOK: true},
		{name: "nested file", in: "a_dir/file2.txt", want: "a_dir/file2.txt", wantOK: true},
		{name: "directory marker", in: "a_dir/", want: "a_dir", wantOK: true},
		{name: "dot slash prefix", in: "./a.txt", want: "a.txt", wantOK: true},
		{name: "internal parent collapses", in: "a/../b.txt", want: "b.txt", wantOK: true},
		{name: "redundant slashes", in: "a//b.txt", want: "a/b.txt", wantOK: true},
		{name: "empty", in: "", wantOK: false},
		{name: "dot", in: ".", wantOK: false},
		{name: "dot slash", in: "./", wantOK: false},
		{name: "absolute", in: "/etc/passwd", wantOK: false},
		{name: "parent traversal", in: "../evil.txt", wantOK: false},
		{name: "nested traversal escapes", in: "a/../../evil.txt", wantOK: false},
		{name: "bare parent", in: "..", wantOK: false},
		{name: "backslash traversal", in: `..\evil.txt`, wantOK: false},
		{name: "backslash absolute", in: `\evil.txt`, wantOK: false},
		{name: "drive root", in: "C:/evil.txt", wantOK: false},
		{name: "drive root backslash", in: `C:\evil.txt`, wantOK: false},
		{name: "colon after slash ok", in: "a/b:c.txt", want: "a/b:c.txt", wantOK: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Sanitize(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("Sanitize(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
