package model

// BlockKind identifies the structural role of a lexed content block.
type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockList      BlockKind = "list"
	BlockCode      BlockKind = "code"
)

// Block is one block-level node lexed from a report summary.
type Block struct {
	Kind  BlockKind
	Level int      // heading nesting depth, 0 otherwise
	Text  string   // paragraph/heading/code text
	Items []string // list item text, in document order
}

// Section groups the blocks that follow one heading. The first section
// of a report may have no title (preamble before any heading).
// Sections are ephemeral: recomputed per render, never persisted.
type Section struct {
	Title   string
	Content []Block
}

// PlainText flattens the section content to a single lowercase-agnostic
// string for keyword containment checks. Blocks are joined by newlines,
// list items by newlines within their block.
func (s Section) PlainText() string {
	out := make([]byte, 0, 256)
	for _, b := range s.Content {
		if len(out) > 0 {
			out = append(out, '\n')
		}
		switch b.Kind {
		case BlockList:
			for i, item := range b.Items {
				if i > 0 {
					out = append(out, '\n')
				}
				out = append(out, item...)
			}
		default:
			out = append(out, b.Text...)
		}
	}
	return string(out)
}

// ScoredSection is a section after canonicalization and salience
// scoring. Scores are only comparable within the same category.
type ScoredSection struct {
	Category Category
	Score    int
	Content  []Block
}
