package loader

import "testing"

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		wantType string
		wantErr  bool
	}{
		{"paper.pdf", "*loader.PDFLoader", false},
		{"Report.PDF", "*loader.PDFLoader", false},
		{"notes.md", "*loader.MarkdownLoader", false},
		{"notes.markdown", "*loader.MarkdownLoader", false},
		{"page.html", "*loader.HTMLLoader", false},
		{"page.htm", "*loader.HTMLLoader", false},
		{"memo.docx", "*loader.DOCXLoader", false},
		{"archive.zip", "", true},
		{"noextension", "", true},
	}
	for _, tt := range tests {
		ld, err := ForFile(tt.filename)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ForFile(%q): expected error", tt.filename)
			}
			continue
		}
		if err != nil {
			t.Errorf("ForFile(%q): %v", tt.filename, err)
			continue
		}
		var got string
		switch ld.(type) {
		case *PDFLoader:
			got = "*loader.PDFLoader"
		case *MarkdownLoader:
			got = "*loader.MarkdownLoader"
		case *HTMLLoader:
			got = "*loader.HTMLLoader"
		case *DOCXLoader:
			got = "*loader.DOCXLoader"
		}
		if got != tt.wantType {
			t.Errorf("ForFile(%q) = %s, want %s", tt.filename, got, tt.wantType)
		}
	}
}

func TestIsSupportedExtension(t *testing.T) {
	for _, name := range []string{"a.pdf", "b.MD", "c.html", "d.docx"} {
		if !IsSupportedExtension(name) {
			t.Errorf("expected %q supported", name)
		}
	}
	for _, name := range []string{"a.txt", "b.csv", "c", "d.doc"} {
		if IsSupportedExtension(name) {
			t.Errorf("expected %q unsupported", name)
		}
	}
}
