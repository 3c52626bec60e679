package render

import (
	"regexp"
	"strings"
)

// Minimal line-oriented markdown model, enough for LLM report output:
// headings, bullets, numbered items and plain paragraphs.

type blockKind int

const (
	blockHeading blockKind = iota
	blockBullet
	blockNumbered
	blockParagraph
)

type block struct {
	kind  blockKind
	level int
	text  string
}

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBullet   = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reNumbered = regexp.MustCompile(`^\d+\.\s+(.+)$`)
)

// parseBlocks splits markdown into renderable blocks. Blank lines and
// horizontal rules separate blocks and are dropped.
func parseBlocks(markdown string) []block {
	var blocks []block

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			blocks = append(blocks, block{kind: blockHeading, level: len(m[1]), text: m[2]})
			continue
		}
		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			blocks = append(blocks, block{kind: blockBullet, text: m[1]})
			continue
		}
		if m := reNumbered.FindStringSubmatch(trimmed); m != nil {
			blocks = append(blocks, block{kind: blockNumbered, text: trimmed})
			continue
		}
		blocks = append(blocks, block{kind: blockParagraph, text: trimmed})
	}

	return blocks
}

// cleanInline strips the inline markers the renderers don't style.
func cleanInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
