package anki

// CardInfo is one card as returned by cardsInfo. Field values are raw HTML.
type CardInfo struct {
	CardID    int64                `json:"cardId"`
	NoteID    int64                `json:"note"`
	DeckName  string               `json:"deckName"`
	ModelName string               `json:"modelName"`
	Fields    map[string]FieldData `json:"fields"`
}

// FieldData is one field of a card.
type FieldData struct {
	Value string `json:"value"`
	Order int    `json:"order"`
}

// Front returns the card's question HTML. Fields are keyed
// "<modelName>-Front" with a plain "Front" fallback for stock note types.
func (c CardInfo) Front() string {
	return c.field("Front")
}

// Back returns the card's answer HTML.
func (c CardInfo) Back() string {
	return c.field("Back")
}

func (c CardInfo) field(side string) string {
	if f, ok := c.Fields[c.ModelName+"-"+side]; ok {
		return f.Value
	}
	if f, ok := c.Fields[side]; ok {
		return f.Value
	}
	return ""
}
