package loader

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

// PDFLoader reads PDFs. Text runs with font geometry come from ledongthuc/pdf;
// bookmark trees (the authored outline, when one exists) come from pdfcpu.
type PDFLoader struct{}

const (
	// rowTolerance groups characters whose baselines differ by less than
	// this many points onto the same visual line.
	rowTolerance = 2.0

	// wordSpaceFactor scales font size into the horizontal gap that
	// separates two words within a line.
	wordSpaceFactor = 0.3

	defaultPageHeight = 792.0 // US Letter
)

func (l *PDFLoader) Load(data []byte, filename string) (*outline.Document, error) {
	r, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	doc := &outline.Document{
		MetaTitle: metaTitle(r),
		PageCount: r.NumPage(),
		Embedded:  bookmarkEntries(data),
	}

	for i := 1; i <= doc.PageCount; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			doc.PageHeights = append(doc.PageHeights, defaultPageHeight)
			continue
		}
		h := pageHeight(page)
		doc.PageHeights = append(doc.PageHeights, h)
		doc.Runs = append(doc.Runs, pageRuns(page, i-1, h)...)
	}
	return doc, nil
}

// bookmarkEntries flattens the PDF bookmark tree into outline entries.
// Absent or unreadable bookmarks are not an error: an empty slice sends the
// document down the heuristic path.
func bookmarkEntries(data []byte) []outline.EmbeddedEntry {
	conf := model.NewDefaultConfiguration()
	bms, err := api.Bookmarks(bytes.NewReader(data), conf)
	if err != nil || len(bms) == 0 {
		return nil
	}
	return flattenBookmarks(bms, 1)
}

// flattenBookmarks walks the bookmark tree depth-first, mapping tree depth
// to heading level. Untitled nodes are skipped but their children keep
// their depth.
func flattenBookmarks(bms []pdfcpu.Bookmark, level int) []outline.EmbeddedEntry {
	var entries []outline.EmbeddedEntry
	for _, bm := range bms {
		title := strings.TrimSpace(bm.Title)
		if title != "" {
			page := bm.PageFrom - 1 // pdfcpu pages are 1-based
			if page < 0 {
				page = 0
			}
			entries = append(entries, outline.EmbeddedEntry{
				Level: level,
				Title: title,
				Page:  page,
			})
		}
		entries = append(entries, flattenBookmarks(bm.Kids, level+1)...)
	}
	return entries
}

// metaTitle reads the Info dictionary's Title, if the document has one.
func metaTitle(r *pdflib.Reader) string {
	defer func() { recover() }() // malformed Info dicts panic deep in the lexer
	info := r.Trailer().Key("Info")
	if info.IsNull() {
		return ""
	}
	return strings.TrimSpace(info.Key("Title").Text())
}

// pageHeight resolves the MediaBox height, walking up the page tree for
// inherited boxes.
func pageHeight(p pdflib.Page) float64 {
	for v := p.V; !v.IsNull(); v = v.Key("Parent") {
		box := v.Key("MediaBox")
		if !box.IsNull() && box.Len() >= 4 {
			if h := box.Index(3).Float64() - box.Index(1).Float64(); h > 0 {
				return h
			}
		}
	}
	return defaultPageHeight
}

// pageRuns reassembles the page's per-character content into styled runs.
// Characters are sorted into reading order, grouped into lines by baseline,
// and split into runs on font or size changes. The emitted Y grows downward
// so ascending (page, Y) is document order.
func pageRuns(page pdflib.Page, pageIdx int, height float64) []outline.TextRun {
	content := page.Content()
	chars := content.Text
	if len(chars) == 0 {
		return nil
	}

	sort.SliceStable(chars, func(i, j int) bool {
		if math.Abs(chars[i].Y-chars[j].Y) > rowTolerance {
			return chars[i].Y > chars[j].Y // PDF Y grows upward; top of page first
		}
		return chars[i].X < chars[j].X
	})

	var runs []outline.TextRun
	var sb strings.Builder
	var cur pdflib.Text
	open := false

	flush := func() {
		if !open {
			return
		}
		text := strings.TrimSpace(sb.String())
		sb.Reset()
		open = false
		if text == "" {
			return
		}
		runs = append(runs, outline.TextRun{
			Text: text,
			Size: cur.FontSize,
			Bold: isBoldFont(cur.Font),
			Page: pageIdx,
			Y:    height - cur.Y,
			X:    cur.X,
		})
	}

	var prev pdflib.Text
	for _, ch := range chars {
		sameLine := open && math.Abs(ch.Y-cur.Y) <= rowTolerance
		sameStyle := open && ch.Font == cur.Font && ch.FontSize == cur.FontSize
		if !sameLine || !sameStyle {
			flush()
			cur = ch
			open = true
		} else if gap := ch.X - (prev.X + prev.W); gap > wordSpaceFactor*ch.FontSize {
			sb.WriteByte(' ')
		}
		sb.WriteString(ch.S)
		prev = ch
	}
	flush()
	return runs
}

// isBoldFont detects bold weight from the font name, the only weight signal
// the content stream carries.
func isBoldFont(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range []string{"bold", "black", "heavy", "semibold", "demibold"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
