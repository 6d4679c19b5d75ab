package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)
)

const reviewHelp = "space reveal · 1-4 rate · a answer · s skip · t images · r restart · q quit"

func (m *Model) View() string {
	switch m.state {
	case statePicking:
		return m.pickerView()
	case stateLoading:
		return headerStyle.Render("ankiterm") + "\n\n" + dimStyle.Render("loading…") + "\n"
	case stateDone:
		return m.doneView()
	default:
		return m.reviewView()
	}
}

func (m *Model) pickerView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("ankiterm — pick a deck"))
	b.WriteString("\n\n")

	if len(m.decks) == 0 {
		b.WriteString(dimStyle.Render("no decks"))
		b.WriteString("\n")
	}
	for i, name := range m.decks {
		if i == m.deckIdx {
			b.WriteString(cursorStyle.Render("> " + name))
		} else {
			b.WriteString("  " + name)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("j/k move · enter open · q quit"))
	return b.String()
}

func (m *Model) reviewView() string {
	var b strings.Builder

	progress := ""
	if m.session != nil {
		progress = fmt.Sprintf("  %d/%d", m.session.Index+1, len(m.session.Cards))
	}
	b.WriteString(headerStyle.Render(m.opts.Deck) + dimStyle.Render(progress))
	b.WriteString("\n\n")

	for _, line := range m.sink.lines {
		b.WriteString(m.truncate(line))
		b.WriteString("\n")
	}

	if m.typing {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(m.truncate(m.session.Stats.Summary())))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.truncate(reviewHelp)))
	return b.String()
}

func (m *Model) doneView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.opts.Deck + " — done"))
	b.WriteString("\n\n")
	if m.session != nil {
		b.WriteString(m.session.Stats.Summary())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("r restart · q quit"))
	return b.String()
}

// truncate clips a line to the terminal width, rune-width aware so wide
// glyphs do not wrap and shift the rows images were positioned against.
func (m *Model) truncate(line string) string {
	if m.width <= 0 {
		return line
	}
	return runewidth.Truncate(line, m.width, "…")
}
