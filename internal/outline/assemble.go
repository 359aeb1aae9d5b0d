package outline

import (
	"regexp"
	"strings"
)

// heading is an assembled logical heading, possibly merged from several runs.
type heading struct {
	level Level
	text  string
	page  int
	y     float64 // of the first constituent run
	lastY float64 // of the last constituent run
	size  float64 // largest constituent size
}

// assemble merges adjacent candidates into logical headings. Two candidates
// merge when they are contiguous, share level and page, and the vertical gap
// from the previous constituent line stays under LineMergeGapFactor times
// the font size. Gaps chain line to line, so a heading wrapped over any
// number of lines folds into one.
func assemble(cands []candidate, cfg Config) []heading {
	var out []heading
	for _, c := range cands {
		if n := len(out); n > 0 {
			prev := &out[n-1]
			gap := c.run.Y - prev.lastY
			if prev.level == c.level && prev.page == c.run.Page &&
				gap >= 0 && gap <= cfg.LineMergeGapFactor*c.run.Size {
				prev.text = strings.TrimSpace(prev.text + " " + strings.TrimSpace(c.run.Text))
				prev.lastY = c.run.Y
				if c.run.Size > prev.size {
					prev.size = c.run.Size
				}
				continue
			}
		}
		out = append(out, heading{
			level: c.level,
			text:  strings.TrimSpace(c.run.Text),
			page:  c.run.Page,
			y:     c.run.Y,
			lastY: c.run.Y,
			size:  c.run.Size,
		})
	}
	return out
}

var (
	titleJunkRe  = regexp.MustCompile(`[^\w\s\-:]`)
	multiSpaceRe = regexp.MustCompile(`\s+`)
)

const minTitleChars = 5

// cleanTitle sanitizes a title candidate. It returns "" when the cleaned
// text is too short or carries no letters, in which case the caller falls
// back or leaves the title empty.
func cleanTitle(title string) string {
	title = titleJunkRe.ReplaceAllString(strings.TrimSpace(title), "")
	title = multiSpaceRe.ReplaceAllString(title, " ")
	title = strings.TrimSpace(title)
	if len([]rune(title)) < minTitleChars || !hasLetter(title) {
		return ""
	}
	return title
}

// inferTitle picks the document title from the assembled headings: the
// largest level-1 heading on the first page, topmost on a size tie. The
// winning heading is consumed so it does not repeat as an H1 entry.
// A heading whose text does not survive sanitization stays in the outline
// and the metadata title is tried instead; the title is never fabricated
// from body text.
func inferTitle(headings []heading, metaTitle string) (string, []heading) {
	best := -1
	for i, h := range headings {
		if h.level != H1 || h.page != 0 {
			continue
		}
		if best < 0 || h.size > headings[best].size ||
			(h.size == headings[best].size && h.y < headings[best].y) {
			best = i
		}
	}

	if best >= 0 {
		if title := cleanTitle(headings[best].text); title != "" {
			rest := make([]heading, 0, len(headings)-1)
			rest = append(rest, headings[:best]...)
			rest = append(rest, headings[best+1:]...)
			return title, rest
		}
	}
	return cleanTitle(metaTitle), headings
}
