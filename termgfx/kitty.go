package termgfx

import (
	"encoding/base64"
	"fmt"
	"math/rand/v2"
	"os"
)

const (
	kittyHdr = "\x1b_G"
	kittyFtr = "\x1b\\"

	// ChunkSize is the base64 payload size per escape sequence. Chunk
	// boundaries are protocol-visible: the terminal reassembles chunks
	// that share an image id until it sees m=0.
	ChunkSize = 4096
)

// KittyEncoder speaks the kitty graphics protocol: base64 data split into
// fixed-size chunks, each wrapped in an APC sequence, tied together by a
// random image id.
type KittyEncoder struct {
	// newID overrides id generation in tests.
	newID func() int
}

func (e *KittyEncoder) Capability() Capability { return Kitty }

// ClearAll deletes every visible image from the terminal's registry.
// The action is idempotent; the orchestrator issues it before each repaint
// so ids never accumulate across renders of the same region.
func (e *KittyEncoder) ClearAll() string {
	return kittyHdr + "a=d" + kittyFtr
}

func (e *KittyEncoder) id() int {
	if e.newID != nil {
		return e.newID()
	}
	// Drawn from a range wide enough that concurrently open images in one
	// interactive session will not collide.
	return rand.IntN(9_000_000) + 1_000_000
}

// Encode reads the file, base64-encodes it and splits the payload into
// ChunkSize pieces. The first chunk carries the transfer header (display
// size in pixels, PNG format tag, image id); every chunk carries the id and
// the continuation flag, which only the final chunk clears.
func (e *KittyEncoder) Encode(path string, geom *Geometry, originRow int) ([]string, int) {
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return nil, 0
	}

	payload := base64.StdEncoding.EncodeToString(data)
	id := e.id()

	seqs := []string{cursorTo(originRow)}
	first := true
	for len(payload) > 0 {
		n := min(ChunkSize, len(payload))
		chunk := payload[:n]
		payload = payload[n:]

		more := 1
		if len(payload) == 0 {
			more = 0
		}

		if first {
			seqs = append(seqs, fmt.Sprintf("%sa=T,f=100,i=%d,s=%d,v=%d,m=%d;%s%s",
				kittyHdr, id, geom.DisplayWidth, geom.DisplayHeight, more, chunk, kittyFtr))
			first = false
		} else {
			seqs = append(seqs, fmt.Sprintf("%si=%d,m=%d;%s%s",
				kittyHdr, id, more, chunk, kittyFtr))
		}
	}

	return seqs, geom.Rows
}
