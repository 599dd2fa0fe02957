// Package report turns a free-form analysis summary into an ordered
// sequence of titled sections. Summaries arrive in wildly varying
// shapes across runs, so the splitter first coerces bare label lines
// into real headings and always degrades to a single synthetic section
// rather than failing.
package report

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Prosono/HomeGPT/internal/model"
)

// FallbackTitle is the synthetic title given to the single section
// produced when a summary cannot be lexed.
const FallbackTitle = "Details"

// coercibleLabels is the fixed vocabulary of lines rewritten into
// headings: the canonical category names, their common phrasings, and
// a few structural labels. Longer phrases come first so the
// alternation prefers them.
var coercibleLabels = []string{
	"estimated presence",
	"actions to take",
	"next steps",
	"anomalies",
	"anomaly",
	"security",
	"comfort",
	"energy",
	"presence",
	"occupancy",
	"actions",
	"summary",
	"details",
	"overview",
	"highlights",
}

var (
	// A coercible line is one label on its own, optionally wrapped in
	// emphasis markers and/or followed by a colon. Emphasis markers must
	// hug the label: "* Security" is a one-item list, not "*Security*".
	labelLine = regexp.MustCompile(
		`(?i)^\s*[*_]{0,3}(` + strings.Join(coercibleLabels, "|") + `):?[*_]{0,3}:?\s*$`)

	blankRun = regexp.MustCompile(`\n{4,}`)

	headingLine  = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	listItemLine = regexp.MustCompile(`^\s*(?:[-*+]|\d+[.)])\s+(.*)$`)
)

// Split decomposes a summary into sections. It never fails: malformed,
// empty or otherwise unlexable input yields one synthetic section
// holding the raw text verbatim.
func Split(text string) []model.Section {
	sections, err := split(text)
	if err != nil || len(sections) == 0 {
		return []model.Section{fallbackSection(text)}
	}
	return sections
}

func split(text string) (sections []model.Section, err error) {
	// The lexer is heuristic; any panic on degenerate input downgrades
	// to the fallback section instead of reaching the caller.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lexing summary: %v", r)
		}
	}()

	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	blocks := lex(normalize(text))
	if len(blocks) == 0 {
		return nil, nil
	}

	current := model.Section{}
	flush := func() {
		if current.Title != "" || len(current.Content) > 0 {
			sections = append(sections, current)
		}
	}
	for _, b := range blocks {
		if b.Kind == model.BlockHeading && b.Level <= 4 {
			flush()
			current = model.Section{Title: b.Text}
			continue
		}
		current.Content = append(current.Content, b)
	}
	flush()
	return sections, nil
}

func fallbackSection(text string) model.Section {
	return model.Section{
		Title: FallbackTitle,
		Content: []model.Block{
			{Kind: model.BlockParagraph, Text: text},
		},
	}
}

// normalize rewrites bare label lines into explicit headings and
// collapses runs of three or more blank lines to a single blank line.
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if m := labelLine.FindStringSubmatch(line); m != nil {
			lines[i] = "### " + m[1]
		}
	}
	return blankRun.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
}

// lex tokenizes normalized text into block-level nodes. Headings and
// list items are recognized per line; fenced code is kept opaque;
// consecutive plain lines merge into one paragraph.
func lex(text string) []model.Block {
	var (
		blocks []model.Block
		para   []string
		list   []string
		code   []string
		inCode bool
	)

	flushPara := func() {
		if len(para) > 0 {
			blocks = append(blocks, model.Block{Kind: model.BlockParagraph, Text: strings.Join(para, " ")})
			para = nil
		}
	}
	flushList := func() {
		if len(list) > 0 {
			blocks = append(blocks, model.Block{Kind: model.BlockList, Items: list})
			list = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			if inCode {
				blocks = append(blocks, model.Block{Kind: model.BlockCode, Text: strings.Join(code, "\n")})
				code = nil
				inCode = false
			} else {
				flushPara()
				flushList()
				inCode = true
			}
			continue
		}
		if inCode {
			code = append(code, line)
			continue
		}

		if trimmed == "" {
			flushPara()
			flushList()
			continue
		}
		if m := headingLine.FindStringSubmatch(trimmed); m != nil {
			flushPara()
			flushList()
			blocks = append(blocks, model.Block{
				Kind:  model.BlockHeading,
				Level: len(m[1]),
				Text:  StripInline(m[2]),
			})
			continue
		}
		if m := listItemLine.FindStringSubmatch(line); m != nil {
			flushPara()
			list = append(list, StripInline(m[1]))
			continue
		}
		flushList()
		para = append(para, trimmed)
	}

	// An unterminated fence is still content.
	if inCode && len(code) > 0 {
		blocks = append(blocks, model.Block{Kind: model.BlockCode, Text: strings.Join(code, "\n")})
	}
	flushPara()
	flushList()
	return blocks
}
