package outline

import (
	"math"
	"sort"
	"strings"
)

// FontProfile is the document-wide font statistic the classifier works from:
// the dominant body size plus up to three larger tiers mapped to H1..H3.
type FontProfile struct {
	BodySize int   // rounded points of the most common size
	Tiers    []int // distinct rounded sizes above body, descending, len <= 3
}

const maxTiers = 3

func roundSize(size float64) int {
	return int(math.Round(size))
}

// BuildFontProfile buckets runs by rounded font size, weighted by character
// count so a long paragraph outweighs many short heading-sized runs. The
// heaviest bucket is body text; the top three larger sizes become tiers.
func BuildFontProfile(runs []TextRun) FontProfile {
	weights := make(map[int]int)
	for _, r := range runs {
		text := strings.TrimSpace(r.Text)
		if text == "" {
			continue
		}
		weights[roundSize(r.Size)] += len([]rune(text))
	}
	if len(weights) == 0 {
		return FontProfile{}
	}

	body := 0
	bodyWeight := -1
	for size, w := range weights {
		// On equal weight, prefer the smaller size: body text is the
		// smaller of two equally heavy styles far more often than not.
		if w > bodyWeight || (w == bodyWeight && size < body) {
			body = size
			bodyWeight = w
		}
	}

	var larger []int
	for size := range weights {
		if size > body {
			larger = append(larger, size)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(larger)))
	if len(larger) > maxTiers {
		larger = larger[:maxTiers]
	}

	return FontProfile{BodySize: body, Tiers: larger}
}

// LevelFor maps a rounded font size to its heading tier, if any.
func (p FontProfile) LevelFor(size int) (Level, bool) {
	for i, tier := range p.Tiers {
		if size == tier {
			return Level(i + 1), true
		}
	}
	return 0, false
}

// HasHeadingSizes reports whether any size above body exists. A document
// set entirely in one size legitimately has no heading candidates.
func (p FontProfile) HasHeadingSizes() bool {
	return len(p.Tiers) > 0
}
