// Package review holds the card-review pipeline: content layout against a
// row-addressed buffer, the two-phase render orchestrator, and the mutable
// session state of one review run.
package review

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ankiterm/ankiterm/termgfx"
)

// ReservedRows is the fixed vertical budget reserved below each image
// placeholder. It is deliberately independent of the image's resolved
// geometry: the true row count is computed at emission time and may be
// smaller or larger, so a tall image can overpaint its reservation and a
// short one leaves slack. Accepted visual misalignment, not a layout bug.
const ReservedRows = 10

// Kind discriminates layout entries.
type Kind int

const (
	KindText Kind = iota
	KindImage
)

// Entry is one run of the layout plan. Rows are 1-indexed buffer rows.
type Entry struct {
	Kind Kind
	// Text is the stripped text run, including the placeholder line for
	// image entries' preceding "[Image: ...]" marker.
	Text string
	// Src is the media-resolved image path. Image entries only.
	Src string
	// Row is the first buffer row this entry occupies.
	Row int
	// Rows is how many buffer rows the entry occupies.
	Rows int
}

// Plan is the ordered placement of text and images for one render pass.
// It is built once per pass and never mutated afterwards.
type Plan struct {
	Entries  []Entry
	startRow int
	finalRow int
}

// FinalRow is the first row after the plan's content.
func (p *Plan) FinalRow() int { return p.finalRow }

// Lines materializes the plan as the full replacement line buffer: text
// entries contribute their lines, image entries contribute blank rows that
// the emitted image will later paint over.
func (p *Plan) Lines() []string {
	lines := make([]string, 0, p.finalRow-p.startRow)
	for _, e := range p.Entries {
		switch e.Kind {
		case KindText:
			lines = append(lines, strings.Split(e.Text, "\n")...)
		case KindImage:
			for range e.Rows {
				lines = append(lines, "")
			}
		}
	}
	return lines
}

var (
	imgTagRe = regexp.MustCompile(`(?i)<img[^>]*>`)
	srcRe    = regexp.MustCompile(`(?i)src\s*=\s*(?:"([^"]+)"|'([^']+)'|([^\s>"']+))`)
)

// srcAttr extracts the src attribute of an image tag, or "" when absent.
func srcAttr(tag string) string {
	m := srcRe.FindStringSubmatch(tag)
	if m == nil {
		return ""
	}
	for _, g := range m[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}

// Layouter walks marked-up card content and assigns row offsets.
type Layouter struct {
	capability termgfx.Capability
	mediaDir   string
}

// NewLayouter builds a layouter. Images are placed only when the terminal
// has a graphics capability and a media directory was resolved; otherwise
// layout short-circuits to plain tag stripping.
func NewLayouter(capability termgfx.Capability, mediaDir string) *Layouter {
	return &Layouter{capability: capability, mediaDir: mediaDir}
}

func (l *Layouter) imagesEnabled() bool {
	return l.capability != termgfx.Unsupported && l.mediaDir != ""
}

// Layout splits blob into text runs and image references starting at
// startRow and returns the plan plus the first row after it.
func (l *Layouter) Layout(blob string, startRow int) (*Plan, int) {
	plan := &Plan{startRow: startRow}
	row := startRow

	if !l.imagesEnabled() {
		text := StripTags(blob)
		plan.Entries = append(plan.Entries, Entry{
			Kind: KindText,
			Text: text,
			Row:  row,
			Rows: strings.Count(text, "\n") + 1,
		})
		row += strings.Count(text, "\n") + 1
		plan.finalRow = row
		return plan, row
	}

	rest := blob
	for {
		loc := imgTagRe.FindStringIndex(rest)
		if loc == nil {
			break
		}

		row = l.flushText(plan, rest[:loc[0]], row)

		tag := rest[loc[0]:loc[1]]
		rest = rest[loc[1]:]

		// A marker without a source contributes nothing; surrounding
		// text is already flushed.
		src := srcAttr(tag)
		if src == "" {
			continue
		}

		plan.Entries = append(plan.Entries, Entry{
			Kind: KindText,
			Text: fmt.Sprintf("[Image: %s]", src),
			Row:  row,
			Rows: 1,
		})
		row++

		plan.Entries = append(plan.Entries, Entry{
			Kind: KindImage,
			Src:  filepath.Join(l.mediaDir, src),
			Row:  row,
			Rows: ReservedRows,
		})
		row += ReservedRows
	}

	row = l.flushText(plan, rest, row)
	plan.finalRow = row
	return plan, row
}

// flushText strips a raw span and appends it as a text entry; empty spans
// produce no entry and no row movement.
func (l *Layouter) flushText(plan *Plan, raw string, row int) int {
	text := StripTags(raw)
	if text == "" {
		return row
	}
	rows := strings.Count(text, "\n") + 1
	plan.Entries = append(plan.Entries, Entry{
		Kind: KindText,
		Text: text,
		Row:  row,
		Rows: rows,
	})
	return row + rows
}
