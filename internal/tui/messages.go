package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ankiterm/ankiterm/internal/anki"
	"github.com/ankiterm/ankiterm/internal/review"
)

type decksLoadedMsg struct {
	names []string
}

type cardsLoadedMsg struct {
	deck  string
	cards []anki.CardInfo
}

type answeredMsg struct {
	ease int
}

// imagesPaintedMsg reports that a frame's image sequences were written.
type imagesPaintedMsg struct{}

// noticeMsg carries a user-visible notice, usually a backend failure.
type noticeMsg struct {
	text string
}

const rpcTimeout = 15 * time.Second

func loadDecksCmd(client *anki.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
		defer cancel()

		names, err := client.DeckNames(ctx)
		if err != nil {
			return noticeMsg{text: err.Error()}
		}
		return decksLoadedMsg{names: names}
	}
}

func loadCardsCmd(client *anki.Client, deck string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
		defer cancel()

		ids, err := client.FindDueCards(ctx, deck)
		if err != nil {
			return noticeMsg{text: err.Error()}
		}
		if len(ids) == 0 {
			return cardsLoadedMsg{deck: deck}
		}

		cards, err := client.CardsInfo(ctx, ids)
		if err != nil {
			return noticeMsg{text: err.Error()}
		}
		return cardsLoadedMsg{deck: deck, cards: cards}
	}
}

func answerCmd(client *anki.Client, cardID int64, ease int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
		defer cancel()

		if err := client.AnswerCard(ctx, cardID, ease); err != nil {
			return noticeMsg{text: err.Error()}
		}
		return answeredMsg{ease: ease}
	}
}

// paintCmd defers image emission to the command queue: it runs after the
// Update that committed the buffer has returned and the view was redrawn.
func paintCmd(frame *review.Frame) tea.Cmd {
	if frame == nil {
		return nil
	}
	return func() tea.Msg {
		frame.Emit()
		return imagesPaintedMsg{}
	}
}
