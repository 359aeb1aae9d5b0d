package outline

import "strings"

// footerBandRatio marks the bottom slice of a page scanned for repeated
// footer text (page numbers, running titles).
const footerBandRatio = 0.85

const defaultPageHeight = 792 // US Letter in points

// footerLines finds text repeated in the bottom band of the first and last
// two pages. Such lines are furniture, not structure, and are excluded from
// both heading candidacy and title assembly.
func footerLines(runs []TextRun, heights []float64) map[string]struct{} {
	pageCount := 0
	for _, r := range runs {
		if r.Page+1 > pageCount {
			pageCount = r.Page + 1
		}
	}
	if pageCount < 2 {
		return nil
	}

	scan := map[int]bool{0: true, 1: true, pageCount - 2: true, pageCount - 1: true}

	counts := make(map[string]int)
	for _, r := range runs {
		if !scan[r.Page] {
			continue
		}
		h := float64(defaultPageHeight)
		if r.Page < len(heights) && heights[r.Page] > 0 {
			h = heights[r.Page]
		}
		if r.Y < h*footerBandRatio {
			continue
		}
		if text := strings.TrimSpace(r.Text); text != "" {
			counts[text]++
		}
	}

	var repeated map[string]struct{}
	for text, n := range counts {
		if n > 1 {
			if repeated == nil {
				repeated = make(map[string]struct{})
			}
			repeated[text] = struct{}{}
		}
	}
	return repeated
}
