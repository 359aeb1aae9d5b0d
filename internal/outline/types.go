package outline

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// TextRun is one styled run of text on a page, as delivered by a loader.
// Y grows downward (0 = top of page), so ascending (Page, Y) is reading order.
type TextRun struct {
	Text string
	Size float64 // font size in points
	Bold bool
	Page int // 0-based
	Y    float64
	X    float64
}

// EmbeddedEntry is one entry of a document's authored table of contents
// (PDF bookmarks, markdown/HTML/DOCX headings).
type EmbeddedEntry struct {
	Level int // as authored; clamped to 1..3 on extraction
	Title string
	Page  int // 0-based
}

// Document is the loader-side view of a parsed file: everything the
// analysis needs, nothing of the parsing library behind it.
type Document struct {
	MetaTitle   string  // title from document metadata, may be empty
	PageCount   int
	PageHeights []float64 // per page, in points; used for footer suppression
	Embedded    []EmbeddedEntry
	Runs        []TextRun // reading order
}

// Level is a heading level, serialized as "H1".."H3".
type Level int

const (
	H1 Level = 1
	H2 Level = 2
	H3 Level = 3
)

func (l Level) String() string {
	return fmt.Sprintf("H%d", int(l))
}

func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *Level) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch s {
	case "H1":
		*l = H1
	case "H2":
		*l = H2
	case "H3":
		*l = H3
	default:
		return fmt.Errorf("invalid heading level %q", s)
	}
	return nil
}

// Entry is one heading in the final outline.
type Entry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Result is the finished analysis of one document.
type Result struct {
	Title   string  `json:"title"`
	Outline []Entry `json:"outline"`
}

// Config holds the tuning knobs for heuristic analysis.
type Config struct {
	// SizeTolerance is the rounding tolerance in points below which two
	// font sizes are treated as the same tier (default: 0.5).
	SizeTolerance float64

	// MinHeadingChars is the minimum run length for heading candidacy,
	// filtering stray large glyphs like drop caps (default: 4).
	MinHeadingChars int

	// LineMergeGapFactor scales a run's font size into the maximum
	// vertical gap for merging wrapped heading lines (default: 1.5).
	LineMergeGapFactor float64

	// Logger for debug messages.
	Logger *slog.Logger `json:"-"`
}

func (c *Config) defaults() {
	if c.SizeTolerance <= 0 {
		c.SizeTolerance = 0.5
	}
	if c.MinHeadingChars <= 0 {
		c.MinHeadingChars = 4
	}
	if c.LineMergeGapFactor <= 0 {
		c.LineMergeGapFactor = 1.5
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
