package source

import "testing"

func TestFileSet_Resolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("lib.sg", []byte("fn mul(x) {\n    x * 5\n}\n"))

	tests := []struct {
		name      string
		span      Span
		wantStart LineCol
		wantEnd   LineCol
	}{
		{
			name:      "first line",
			span:      Span{File: id, Start: 0, End: 2},
			wantStart: LineCol{Line: 1, Col: 1},
			wantEnd:   LineCol{Line: 1, Col: 3},
		},
		{
			name:      "second line body",
			span:      Span{File: id, Start: 16, End: 21},
			wantStart: LineCol{Line: 2, Col: 5},
			wantEnd:   LineCol{Line: 2, Col: 10},
		},
		{
			name:      "span crossing lines",
			span:      Span{File: id, Start: 3, End: 16},
			wantStart: LineCol{Line: 1, Col: 4},
			wantEnd:   LineCol{Line: 2, Col: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := fs.Resolve(tt.span)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("Resolve() = %+v..%+v, want %+v..%+v", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestFileSet_ResolveSingleLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("one", []byte("abcdef"))
	start, _ := fs.Resolve(Span{File: id, Start: 4, End: 5})
	if want := (LineCol{Line: 1, Col: 5}); start != want {
		t.Errorf("Resolve() start = %+v, want %+v", start, want)
	}
}

func TestFileSet_LookupTracksLatest(t *testing.T) {
	fs := NewFileSet()
	first := fs.AddVirtual("a.sg", []byte("v1"))
	second := fs.AddVirtual("a.sg", []byte("v2"))

	if first == second {
		t.Fatalf("re-adding a path reused FileID %d", first)
	}
	id, ok := fs.Lookup("a.sg")
	if !ok || id != second {
		t.Errorf("Lookup() = (%d, %v), want latest id %d", id, ok, second)
	}
	if got := fs.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if f := fs.Get(second); f == nil || string(f.Content) != "v2" {
		t.Errorf("Get(latest) content mismatch")
	}
}

func TestFileSet_GetUnknown(t *testing.T) {
	fs := NewFileSet()
	if f := fs.Get(42); f != nil {
		t.Errorf("Get(unknown) = %+v, want nil", f)
	}
}

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		want        string
		wantChanged bool
	}{
		{name: "no carriage returns", in: "a\nb\n", want: "a\nb\n", wantChanged: false},
		{name: "crlf pairs replaced", in: "a\r\nb\r\n", want: "a\nb\n", wantChanged: true},
		{name: "lone cr preserved", in: "a\rb", want: "a\rb", wantChanged: false},
		{name: "mixed", in: "a\r\nb\rc\n", want: "a\nb\rc\n", wantChanged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeCRLF([]byte(tt.in))
			if string(got) != tt.want || changed != tt.wantChanged {
				t.Errorf("normalizeCRLF(%q) = (%q, %v), want (%q, %v)",
					tt.in, got, changed, tt.want, tt.wantChanged)
			}
		})
	}
}

func TestStripBOM(t *testing.T) {
	got, stripped := stripBOM([]byte{0xEF, 0xBB, 0xBF, 'h', 'i'})
	if !stripped || string(got) != "hi" {
		t.Errorf("stripBOM() = (%q, %v), want (\"hi\", true)", got, stripped)
	}
	got, stripped = stripBOM([]byte("hi"))
	if stripped || string(got) != "hi" {
		t.Errorf("stripBOM() on clean input = (%q, %v)", got, stripped)
	}
}
