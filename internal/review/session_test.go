package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankiterm/ankiterm/internal/anki"
)

func testCards(n int) []anki.CardInfo {
	cards := make([]anki.CardInfo, n)
	for i := range cards {
		cards[i] = anki.CardInfo{CardID: int64(i + 1)}
	}
	return cards
}

func TestSessionAdvancesOnRate(t *testing.T) {
	s := NewSession("Default", testCards(2), true)

	card, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, int64(1), card.CardID)

	s.Reveal()
	assert.True(t, s.Revealed)

	s.Rate(EaseGood)
	assert.False(t, s.Revealed, "reveal state resets on advance")
	assert.Equal(t, 1, s.Stats.Good)
	assert.Equal(t, 1, s.Stats.Reviewed)

	card, ok = s.Current()
	require.True(t, ok)
	assert.Equal(t, int64(2), card.CardID)
}

func TestSessionRateCountsEveryEase(t *testing.T) {
	s := NewSession("Default", testCards(4), false)
	s.Rate(EaseAgain)
	s.Rate(EaseHard)
	s.Rate(EaseGood)
	s.Rate(EaseEasy)

	assert.Equal(t, Stats{Reviewed: 4, Again: 1, Hard: 1, Good: 1, Easy: 1}, s.Stats)
	assert.True(t, s.Done())
}

func TestSessionSkip(t *testing.T) {
	s := NewSession("Default", testCards(1), false)
	s.TypedAnswer = "guess"

	s.Skip()

	assert.Equal(t, 1, s.Stats.Skipped)
	assert.Zero(t, s.Stats.Reviewed, "skips are not reviews")
	assert.Empty(t, s.TypedAnswer, "typed answer cleared on advance")
	assert.True(t, s.Done())
}

func TestSessionRestart(t *testing.T) {
	s := NewSession("Default", testCards(2), true)
	s.Rate(EaseGood)
	s.Skip()
	require.True(t, s.Done())

	s.Restart(testCards(3))

	assert.Equal(t, 0, s.Index)
	assert.Equal(t, Stats{}, s.Stats)
	assert.Len(t, s.Cards, 3)
	assert.False(t, s.Done())
}

func TestSessionToggleImages(t *testing.T) {
	s := NewSession("Default", nil, true)
	s.ToggleImages()
	assert.False(t, s.ShowImages)
	s.ToggleImages()
	assert.True(t, s.ShowImages)
}

func TestStatsSummary(t *testing.T) {
	s := Stats{Reviewed: 3, Again: 1, Good: 2, Skipped: 1}
	assert.Equal(t, "reviewed 3 · again 1 · hard 0 · good 2 · easy 0 · skipped 1", s.Summary())
}
