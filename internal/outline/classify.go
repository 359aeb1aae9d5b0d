package outline

import (
	"regexp"
	"strings"
	"unicode"
)

// candidate is a run the classifier accepted as heading material.
type candidate struct {
	run   TextRun
	level Level
}

var (
	leaderLineRe   = regexp.MustCompile(`^[.\-–—•\s]{5,}$`)
	pageNumberRe   = regexp.MustCompile(`^\d+[.:]?$`)
	numberedListRe = regexp.MustCompile(`^\s*\d+[.):]\s+`)
)

// isJunkLine rejects text that can pass the size filter but is never a
// heading: dot leaders, bare page numbers, ToC rows, numbered list sentences.
func isJunkLine(text string) bool {
	if leaderLineRe.MatchString(text) {
		return true
	}
	if pageNumberRe.MatchString(text) {
		return true
	}
	if strings.HasPrefix(strings.ToLower(text), "table of contents") {
		return true
	}
	if numberedListRe.MatchString(text) && len(strings.Fields(text)) > 10 {
		return true
	}
	return false
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// classifyRun decides heading/body for a single run. It is a pure function
// of the run and profile: classifying twice always agrees.
func classifyRun(r TextRun, p FontProfile, cfg Config) (Level, bool) {
	text := strings.TrimSpace(r.Text)
	if len([]rune(text)) < cfg.MinHeadingChars || !hasLetter(text) {
		return 0, false
	}
	if isJunkLine(text) {
		return 0, false
	}

	base := roundSize(r.Size)
	if base <= p.BodySize {
		return 0, false
	}

	level, ok := p.LevelFor(base)

	// Bold breaks near-ties: a bold run within the rounding tolerance of
	// the next tier boundary takes the more senior level.
	if r.Bold {
		if promoted, pok := p.LevelFor(roundSize(r.Size + cfg.SizeTolerance)); pok && (!ok || promoted < level) {
			return promoted, true
		}
	}
	return level, ok
}

// classify labels every run against the profile and drops lines that repeat
// in the footer band across pages. Candidates come back in run order.
func classify(runs []TextRun, p FontProfile, heights []float64, cfg Config) []candidate {
	if !p.HasHeadingSizes() {
		return nil
	}
	footers := footerLines(runs, heights)

	var out []candidate
	for _, r := range runs {
		if _, repeated := footers[strings.TrimSpace(r.Text)]; repeated {
			continue
		}
		if level, ok := classifyRun(r, p, cfg); ok {
			out = append(out, candidate{run: r, level: level})
		}
	}
	return out
}
