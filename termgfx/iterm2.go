package termgfx

import (
	"encoding/base64"
	"fmt"
	"os"
)

// ITerm2Encoder speaks the iTerm2 inline-images protocol (OSC 1337), which
// WezTerm also understands. The whole payload travels in one sequence; the
// protocol keeps no image registry, so there is nothing to clear.
type ITerm2Encoder struct{}

func (e *ITerm2Encoder) Capability() Capability { return ITerm2 }

// ClearAll returns "" because the protocol has no delete primitive.
func (e *ITerm2Encoder) ClearAll() string { return "" }

// Encode emits a cursor move followed by a single File sequence with the
// full base64 payload, terminated by BEL.
func (e *ITerm2Encoder) Encode(path string, geom *Geometry, originRow int) ([]string, int) {
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return nil, 0
	}

	seq := fmt.Sprintf("\x1b]1337;File=inline=1;size=%d;width=%dpx;height=%dpx;preserveAspectRatio=1:%s\x07",
		len(data), geom.DisplayWidth, geom.DisplayHeight,
		base64.StdEncoding.EncodeToString(data))

	return []string{cursorTo(originRow), seq}, geom.Rows
}
