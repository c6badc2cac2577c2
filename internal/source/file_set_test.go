package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSet_AddAndGet(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.cfgpp", []byte("a = 1;"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	id2 := fs.Add("other.cfgpp", []byte("b = 2;"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	if fs.Len() != 2 {
		t.Errorf("Expected 2 files, got %d", fs.Len())
	}
	if string(fs.Get(id1).Content) != "a = 1;" {
		t.Error("First file content changed")
	}
	if f, ok := fs.GetByPath("other.cfgpp"); !ok || f.ID != id2 {
		t.Error("GetByPath failed for other.cfgpp")
	}
}

func TestAddVirtual_LineIdx(t *testing.T) {
	fs := NewFileSet()

	// "a\nb\n" has newlines at offsets 1 and 3.
	id := fs.AddVirtual("v.cfgpp", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}

	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestLoad_NormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "win.cfgpp")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a = 1;\r\nb = 2;\r\n")...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	file := fs.Get(id)

	if string(file.Content) != "a = 1;\nb = 2;\n" {
		t.Errorf("Content not normalized: %q", string(file.Content))
	}
	if file.Flags&FileHadBOM == 0 {
		t.Error("Expected FileHadBOM flag")
	}
	if file.Flags&FileNormalizedCRLF == 0 {
		t.Error("Expected FileNormalizedCRLF flag")
	}
}

func TestResolve_LineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("v.cfgpp", []byte("ab\ncd\nef"))

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{4, 2, 2},
		{6, 3, 1},
	}
	for _, tt := range tests {
		pos := fs.ResolveStart(Span{File: id, Start: tt.off, End: tt.off})
		if pos.Line != tt.line || pos.Col != tt.col {
			t.Errorf("Offset %d: expected %d:%d, got %d:%d",
				tt.off, tt.line, tt.col, pos.Line, pos.Col)
		}
	}
}

func TestSpan_CoverAndLen(t *testing.T) {
	a := Span{File: 0, Start: 2, End: 5}
	b := Span{File: 0, Start: 4, End: 9}

	c := a.Cover(b)
	if c.Start != 2 || c.End != 9 {
		t.Errorf("Expected [2,9), got [%d,%d)", c.Start, c.End)
	}
	if c.Len() != 7 {
		t.Errorf("Expected length 7, got %d", c.Len())
	}

	other := Span{File: 1, Start: 0, End: 1}
	if got := a.Cover(other); got != a {
		t.Error("Cover across files should leave the span unchanged")
	}

	if !(Span{Start: 3, End: 3}).Empty() {
		t.Error("Zero-width span should be empty")
	}
}
