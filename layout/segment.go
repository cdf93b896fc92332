package layout

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"
)

// segment is a piece of a run shaped in one direction.
type segment struct {
	text  string
	start int // byte offset in the run text
	rtl   bool
}

// splitParagraphs splits text on hard line breaks ("\r\n", "\r", "\n").
// The returned offsets are the byte positions of each paragraph in text.
func splitParagraphs(text string) (paras []string, offsets []int) {
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			paras = append(paras, text[start:i])
			offsets = append(offsets, start)
			start = i + 1
		case '\r':
			paras = append(paras, text[start:i])
			offsets = append(offsets, start)
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	paras = append(paras, text[start:])
	offsets = append(offsets, start)
	return paras, offsets
}

// segmentDirections splits a paragraph into runs of uniform direction.
// Text without right-to-left characters is returned as one segment.
func segmentDirections(text string) []segment {
	if text == "" {
		return nil
	}
	if !strings.ContainsFunc(text, isStrongRTL) {
		return []segment{{text: text}}
	}

	levels := bidiLevels(text)

	segs := make([]segment, 0, 4)
	startByte := 0
	startLevel := levels[0]
	runeIdx := 0
	for i := range text {
		if runeIdx > 0 && levels[runeIdx] != startLevel {
			segs = append(segs, segment{
				text:  text[startByte:i],
				start: startByte,
				rtl:   startLevel%2 == 1,
			})
			startByte = i
			startLevel = levels[runeIdx]
		}
		runeIdx++
	}
	segs = append(segs, segment{
		text:  text[startByte:],
		start: startByte,
		rtl:   startLevel%2 == 1,
	})
	return segs
}

// bidiLevels returns an embedding level per rune of text.
func bidiLevels(text string) []int {
	levels := make([]int, utf8.RuneCountInString(text))

	p := bidi.Paragraph{}
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return levels
	}
	ordering, err := p.Order()
	if err != nil {
		return levels
	}

	// run.Pos() returns rune indices, end inclusive.
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos()
		level := 0
		if run.Direction() == bidi.RightToLeft {
			level = 1
		}
		for j := start; j <= end && j < len(levels); j++ {
			levels[j] = level
		}
	}
	return levels
}

// isStrongRTL reports whether r belongs to a right-to-left script block.
func isStrongRTL(r rune) bool {
	switch {
	case r >= 0x0590 && r <= 0x08FF: // Hebrew, Arabic, Syriac, Thaana, NKo, Samaritan, Mandaic
		return true
	case r >= 0xFB1D && r <= 0xFDFF: // Hebrew and Arabic presentation forms A
		return true
	case r >= 0xFE70 && r <= 0xFEFF: // Arabic presentation forms B
		return true
	case r >= 0x10800 && r <= 0x10FFF: // historic RTL scripts
		return true
	case r >= 0x1E800 && r <= 0x1EFFF:
		return true
	}
	return false
}
