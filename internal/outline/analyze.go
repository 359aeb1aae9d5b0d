// Package outline recovers a structured outline (title plus H1-H3 headings)
// from a loaded document. Documents carrying an authored table of contents
// use it directly; everything else goes through statistical font analysis
// of the raw text runs. The two paths are mutually exclusive per document.
package outline

import "strings"

// Analyze produces the outline for one document. It is pure and
// synchronous: same document and config in, same result out. A document
// with no extractable structure yields an empty result, not an error.
func Analyze(doc *Document, cfg Config) Result {
	cfg.defaults()

	if len(doc.Embedded) > 0 {
		cfg.Logger.Debug("using embedded outline", "entries", len(doc.Embedded))
		return fromEmbedded(doc)
	}

	profile := BuildFontProfile(doc.Runs)
	cfg.Logger.Debug("font profile built", "body_size", profile.BodySize, "tiers", profile.Tiers)
	cands := classify(doc.Runs, profile, doc.PageHeights, cfg)
	headings := assemble(cands, cfg)
	title, headings := inferTitle(headings, doc.MetaTitle)

	// Repeated text on the same page (running titles, decorative repeats
	// outside the footer band) collapses to one entry.
	type dedupKey struct {
		text string
		page int
	}
	seen := make(map[dedupKey]struct{}, len(headings))
	entries := make([]Entry, 0, len(headings))
	for _, h := range headings {
		k := dedupKey{text: h.text, page: h.page}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		entries = append(entries, Entry{Level: h.level, Text: h.text, Page: h.page})
	}
	return Result{Title: title, Outline: entries}
}

// fromEmbedded copies the authored outline into the output schema. Levels
// deeper than H3 are clamped to H3, never dropped.
func fromEmbedded(doc *Document) Result {
	entries := make([]Entry, 0, len(doc.Embedded))
	for _, e := range doc.Embedded {
		level := e.Level
		if level < 1 {
			level = 1
		}
		if level > 3 {
			level = 3
		}
		entries = append(entries, Entry{Level: Level(level), Text: e.Title, Page: e.Page})
	}
	return Result{Title: cleanMetaTitle(doc.MetaTitle), Outline: entries}
}

func cleanMetaTitle(s string) string {
	return multiSpaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

