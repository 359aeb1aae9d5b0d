package outline

import "testing"

func cand(level Level, text string, page int, y, size float64) candidate {
	return candidate{
		run:   TextRun{Text: text, Page: page, Y: y, Size: size},
		level: level,
	}
}

func TestAssemble_MergesWrappedHeading(t *testing.T) {
	cands := []candidate{
		cand(H1, "Advanced Retrieval", 0, 100, 16),
		cand(H1, "Techniques", 0, 118, 16), // gap 18 <= 1.5*16
	}
	got := assemble(cands, testConfig())
	if len(got) != 1 {
		t.Fatalf("expected 1 merged heading, got %d: %+v", len(got), got)
	}
	if got[0].text != "Advanced Retrieval Techniques" {
		t.Errorf("merged text = %q", got[0].text)
	}
	if got[0].y != 100 {
		t.Errorf("merged heading keeps first run position, got y=%.0f", got[0].y)
	}
}

func TestAssemble_ChainsAcrossManyLines(t *testing.T) {
	// Each adjacent gap is 18 points (under 1.5*14); the distance from the
	// first line to the third is not. The gap must chain from the previous
	// line, not anchor on the first.
	cands := []candidate{
		cand(H1, "A Unified Model of", 0, 100, 14),
		cand(H1, "Incremental Outline", 0, 118, 14),
		cand(H1, "Extraction Pipelines", 0, 136, 14),
	}
	got := assemble(cands, testConfig())
	if len(got) != 1 {
		t.Fatalf("expected 1 heading, got %d: %+v", len(got), got)
	}
	if want := "A Unified Model of Incremental Outline Extraction Pipelines"; got[0].text != want {
		t.Errorf("merged text = %q, want %q", got[0].text, want)
	}
	if got[0].y != 100 || got[0].lastY != 136 {
		t.Errorf("y = %.0f, lastY = %.0f", got[0].y, got[0].lastY)
	}
}

func TestAssemble_MixedSizeRunKeepsLargest(t *testing.T) {
	// A heading that changes font size mid-way still merges when both runs
	// classify at the same level; the larger size wins for title ranking.
	cands := []candidate{
		cand(H1, "Chapter One:", 0, 100, 18),
		cand(H1, "Beginnings", 0, 120, 16),
	}
	got := assemble(cands, testConfig())
	if len(got) != 1 {
		t.Fatalf("expected 1 heading, got %d", len(got))
	}
	if got[0].size != 18 {
		t.Errorf("expected size 18, got %.0f", got[0].size)
	}
}

func TestAssemble_NoMergeCases(t *testing.T) {
	tests := []struct {
		name  string
		cands []candidate
	}{
		{"different levels", []candidate{
			cand(H1, "Overview", 0, 100, 16),
			cand(H2, "Scope", 0, 115, 13),
		}},
		{"different pages", []candidate{
			cand(H1, "Part One", 0, 700, 16),
			cand(H1, "Part Two", 1, 60, 16),
		}},
		{"gap too wide", []candidate{
			cand(H2, "Methods", 0, 100, 13),
			cand(H2, "Results", 0, 300, 13),
		}},
		{"negative gap", []candidate{
			cand(H2, "Lower First", 0, 200, 13),
			cand(H2, "Higher Second", 0, 150, 13),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := assemble(tt.cands, testConfig()); len(got) != 2 {
				t.Errorf("expected 2 headings, got %d: %+v", len(got), got)
			}
		})
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Neural Networks: A Primer", "Neural Networks: A Primer"},
		{"  spaced   out\ttitle ", "spaced out title"},
		{"**Draft** (v2)!", "Draft v2"},
		{"Ab", ""},          // too short after cleaning
		{"12345 678", ""},   // no letters
		{"!!!???", ""},      // nothing survives
		{"", ""},
	}
	for _, tt := range tests {
		if got := cleanTitle(tt.in); got != tt.want {
			t.Errorf("cleanTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInferTitle_LargestFirstPageH1Wins(t *testing.T) {
	headings := []heading{
		{level: H1, text: "Running Header", page: 0, y: 40, size: 16},
		{level: H1, text: "The Document Title", page: 0, y: 120, size: 22},
		{level: H1, text: "Introduction", page: 1, y: 60, size: 22},
	}
	title, rest := inferTitle(headings, "")
	if title != "The Document Title" {
		t.Fatalf("title = %q", title)
	}
	if len(rest) != 2 {
		t.Fatalf("expected winning heading consumed, %d remain", len(rest))
	}
	for _, h := range rest {
		if h.text == "The Document Title" {
			t.Error("title heading still present in outline")
		}
	}
}

func TestInferTitle_SizeTieTopmostWins(t *testing.T) {
	headings := []heading{
		{level: H1, text: "Second On Page", page: 0, y: 300, size: 20},
		{level: H1, text: "First On Page", page: 0, y: 90, size: 20},
	}
	title, rest := inferTitle(headings, "")
	if title != "First On Page" {
		t.Errorf("title = %q, want topmost on size tie", title)
	}
	if len(rest) != 1 || rest[0].text != "Second On Page" {
		t.Errorf("unexpected remaining headings: %+v", rest)
	}
}

func TestInferTitle_UncleanWinnerFallsBackToMetadata(t *testing.T) {
	headings := []heading{
		{level: H1, text: "????", page: 0, y: 100, size: 24},
	}
	title, rest := inferTitle(headings, "Metadata Title")
	if title != "Metadata Title" {
		t.Errorf("title = %q, want metadata fallback", title)
	}
	if len(rest) != 1 {
		t.Errorf("heading with unusable text must stay in the outline, got %d", len(rest))
	}
}

func TestInferTitle_NoFirstPageH1(t *testing.T) {
	headings := []heading{
		{level: H2, text: "Subsection", page: 0, y: 100, size: 14},
		{level: H1, text: "Later Chapter", page: 3, y: 80, size: 18},
	}
	title, rest := inferTitle(headings, "")
	if title != "" {
		t.Errorf("title = %q, want empty", title)
	}
	if len(rest) != 2 {
		t.Errorf("expected headings untouched, got %d", len(rest))
	}
}
