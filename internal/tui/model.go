// Package tui is the host surface for card review: a bubbletea program
// owning key dispatch, the deck picker, and the render sink the orchestrator
// writes into.
package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/ankiterm/ankiterm/internal/anki"
	"github.com/ankiterm/ankiterm/internal/review"
	"github.com/ankiterm/ankiterm/termgfx"
)

type state int

const (
	statePicking state = iota
	stateLoading
	stateReview
	stateDone
)

// contentTop is the absolute screen row of the card buffer's first line:
// the header occupies rows 1 and 2.
const contentTop = 3

// Options configures a review program.
type Options struct {
	Deck       string
	MediaDir   string
	Capability termgfx.Capability
	MaxCells   int
	ShowImages bool
}

// Model is the bubbletea model of one review run.
type Model struct {
	client *anki.Client
	logger *log.Logger
	opts   Options

	sink *screenSink
	orch *review.Orchestrator

	state   state
	session *review.Session

	decks   []string
	deckIdx int

	input  textinput.Model
	typing bool

	frame  *review.Frame
	notice string

	width  int
	height int
}

// New builds the model. The encoder is selected once from the detected
// capability and injected into the orchestrator.
func New(client *anki.Client, logger *log.Logger, opts Options) *Model {
	sink := &screenSink{out: os.Stdout}

	orch := review.NewOrchestrator(sink, termgfx.EncoderFor(opts.Capability), logger)
	if opts.MaxCells > 0 {
		budget := opts.MaxCells
		orch = orch.WithResolver(func(path string) *termgfx.Geometry {
			return termgfx.ResolveMax(path, budget)
		})
	}

	input := textinput.New()
	input.Placeholder = "type your answer"
	input.CharLimit = 200

	return &Model{
		client: client,
		logger: logger,
		opts:   opts,
		sink:   sink,
		orch:   orch,
		input:  input,
		state:  statePicking,
	}
}

func (m *Model) Init() tea.Cmd {
	if m.opts.Deck != "" {
		m.state = stateLoading
		return loadCardsCmd(m.client, m.opts.Deck)
	}
	return loadDecksCmd(m.client)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == stateReview {
			return m, m.renderPass()
		}
		return m, nil

	case noticeMsg:
		// Transport failures abort the current operation and leave the
		// session untouched.
		m.notice = msg.text
		if m.state == stateLoading {
			m.state = statePicking
		}
		return m, nil

	case decksLoadedMsg:
		m.decks = msg.names
		m.state = statePicking
		return m, nil

	case cardsLoadedMsg:
		if m.session == nil {
			m.session = review.NewSession(msg.deck, msg.cards, m.opts.ShowImages)
		} else {
			m.session.Restart(msg.cards)
		}
		if m.session.Done() {
			m.state = stateDone
			return m, nil
		}
		m.state = stateReview
		return m, m.renderPass()

	case answeredMsg:
		m.notice = ""
		m.session.Rate(msg.ease)
		if m.session.Done() {
			m.state = stateDone
			return m, m.clearPass()
		}
		return m, m.renderPass()

	case imagesPaintedMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.typing {
		return m.handleTypingKey(msg)
	}

	switch m.state {
	case statePicking:
		return m.handlePickerKey(msg)
	case stateReview:
		return m.handleReviewKey(msg)
	case stateDone:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "r":
			return m.restart()
		}
	}
	return m, nil
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "j", "down":
		if m.deckIdx < len(m.decks)-1 {
			m.deckIdx++
		}
	case "k", "up":
		if m.deckIdx > 0 {
			m.deckIdx--
		}
	case "enter":
		if len(m.decks) > 0 {
			m.state = stateLoading
			m.session = nil
			m.opts.Deck = m.decks[m.deckIdx]
			return m, loadCardsCmd(m.client, m.opts.Deck)
		}
	}
	return m, nil
}

func (m *Model) handleReviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case " ", "enter":
		if !m.session.Revealed {
			m.session.Reveal()
			return m, m.renderPass()
		}

	case "1", "2", "3", "4":
		if !m.session.Revealed {
			return m, nil
		}
		card, ok := m.session.Current()
		if !ok {
			return m, nil
		}
		ease := int(msg.Runes[0] - '0')
		return m, answerCmd(m.client, card.CardID, ease)

	case "s":
		m.session.Skip()
		if m.session.Done() {
			m.state = stateDone
			return m, m.clearPass()
		}
		return m, m.renderPass()

	case "r":
		return m.restart()

	case "t":
		m.session.ToggleImages()
		return m, m.renderPass()

	case "a":
		if !m.session.Revealed {
			m.typing = true
			m.input.SetValue(m.session.TypedAnswer)
			m.input.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

func (m *Model) handleTypingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.session.TypedAnswer = m.input.Value()
		m.typing = false
		m.input.Blur()
		return m, m.renderPass()
	case tea.KeyEsc:
		m.typing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) restart() (tea.Model, tea.Cmd) {
	m.state = stateLoading
	m.notice = ""
	return m, loadCardsCmd(m.client, m.opts.Deck)
}

// renderPass runs the full layout -> commit -> deferred-emit pipeline for
// the current card. Each pass supersedes the previous one.
func (m *Model) renderPass() tea.Cmd {
	card, ok := m.session.Current()
	if !ok {
		return m.clearPass()
	}

	capability := m.opts.Capability
	if !m.session.ShowImages {
		capability = termgfx.Unsupported
	}

	layouter := review.NewLayouter(capability, m.opts.MediaDir)
	plan, _ := layouter.Layout(m.composeBlob(card), 1)
	m.frame = m.orch.Commit(plan, contentTop)
	return paintCmd(m.frame)
}

// clearPass commits an empty buffer; under kitty the deferred emit still
// issues the global image clear.
func (m *Model) clearPass() tea.Cmd {
	layouter := review.NewLayouter(termgfx.Unsupported, "")
	plan, _ := layouter.Layout("", 1)
	m.frame = m.orch.Commit(plan, contentTop)
	return paintCmd(m.frame)
}

// composeBlob assembles the markup handed to the layout engine: the front
// field, then (once revealed) the typed answer and the back field.
func (m *Model) composeBlob(card anki.CardInfo) string {
	var b strings.Builder
	b.WriteString(card.Front())

	if !m.session.Revealed {
		return b.String()
	}

	b.WriteString("<br><br>")
	b.WriteString(strings.Repeat("─", 40))
	b.WriteString("<br><br>")

	if m.session.TypedAnswer != "" {
		b.WriteString("Your answer: ")
		b.WriteString(m.session.TypedAnswer)
		b.WriteString("<br><br>")
	}

	b.WriteString(card.Back())
	return b.String()
}
