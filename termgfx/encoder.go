package termgfx

import "fmt"

// ProtocolEncoder turns a resolved image into terminal control sequences.
// Implementations are stateless aside from id generation; the caller emits
// the returned sequences in order.
type ProtocolEncoder interface {
	// Encode returns the sequences that paint the file at originRow,
	// column 1, plus the number of rows the painted image occupies.
	// An unreadable file yields (nil, 0); the caller's layout falls back
	// to its placeholder line.
	Encode(path string, geom *Geometry, originRow int) ([]string, int)

	// ClearAll returns the sequence that deletes every image this
	// protocol has drawn, or "" when the protocol has no such primitive.
	// For protocols without one, stale images persist until the terminal
	// itself scrolls or redraws over them.
	ClearAll() string

	// Capability reports which protocol the encoder speaks.
	Capability() Capability
}

// EncoderFor selects the encoder for a detected capability. It returns nil
// for Unsupported; callers then skip image emission entirely.
func EncoderFor(c Capability) ProtocolEncoder {
	switch c {
	case Kitty:
		return &KittyEncoder{}
	case ITerm2:
		return &ITerm2Encoder{}
	default:
		return nil
	}
}

// cursorTo moves the cursor to row (1-indexed), column 1.
func cursorTo(row int) string {
	return fmt.Sprintf("\x1b[%d;1H", row)
}
