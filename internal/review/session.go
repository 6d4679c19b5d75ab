package review

import (
	"fmt"

	"github.com/ankiterm/ankiterm/internal/anki"
)

// Ease values accepted by the scheduling backend.
const (
	EaseAgain = 1
	EaseHard  = 2
	EaseGood  = 3
	EaseEasy  = 4
)

// Stats counts the outcomes of one review session.
type Stats struct {
	Reviewed int
	Again    int
	Hard     int
	Good     int
	Easy     int
	Skipped  int
}

func (s Stats) Summary() string {
	return fmt.Sprintf("reviewed %d · again %d · hard %d · good %d · easy %d · skipped %d",
		s.Reviewed, s.Again, s.Hard, s.Good, s.Easy, s.Skipped)
}

// Session is the mutable state of one review run: the deck, its due cards,
// the cursor into them, and per-run counters. It is constructed when a deck
// is opened and replaced wholesale on restart; nothing here is global.
type Session struct {
	Deck  string
	Cards []anki.CardInfo
	Index int

	Revealed    bool
	ShowImages  bool
	TypedAnswer string

	Stats Stats
}

func NewSession(deck string, cards []anki.CardInfo, showImages bool) *Session {
	return &Session{
		Deck:       deck,
		Cards:      cards,
		ShowImages: showImages,
	}
}

// Current returns the card under review, or ok=false when the session is
// exhausted.
func (s *Session) Current() (anki.CardInfo, bool) {
	if s.Index < 0 || s.Index >= len(s.Cards) {
		return anki.CardInfo{}, false
	}
	return s.Cards[s.Index], true
}

func (s *Session) Done() bool {
	return s.Index >= len(s.Cards)
}

// Reveal flips the current card to show its answer side.
func (s *Session) Reveal() {
	s.Revealed = true
}

// Rate records a submitted ease and advances to the next card. The caller
// submits the rating to the backend first; session state only moves on
// success, so a failed submission leaves the run untouched.
func (s *Session) Rate(ease int) {
	switch ease {
	case EaseAgain:
		s.Stats.Again++
	case EaseHard:
		s.Stats.Hard++
	case EaseGood:
		s.Stats.Good++
	case EaseEasy:
		s.Stats.Easy++
	}
	s.Stats.Reviewed++
	s.advance()
}

// Skip moves past the current card without answering it.
func (s *Session) Skip() {
	s.Stats.Skipped++
	s.advance()
}

func (s *Session) advance() {
	s.Index++
	s.Revealed = false
	s.TypedAnswer = ""
}

// Restart rewinds the session with a fresh card list and zeroed stats.
func (s *Session) Restart(cards []anki.CardInfo) {
	s.Cards = cards
	s.Index = 0
	s.Revealed = false
	s.TypedAnswer = ""
	s.Stats = Stats{}
}

// ToggleImages flips inline-image rendering for subsequent render passes.
func (s *Session) ToggleImages() {
	s.ShowImages = !s.ShowImages
}
