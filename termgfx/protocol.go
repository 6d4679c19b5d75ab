// Package termgfx renders raster images inline in a terminal.
//
// Two graphics protocols are supported: the kitty chunked-binary protocol
// and the iTerm2 inline-base64 protocol (also spoken by WezTerm). Which one
// the hosting terminal understands is decided once per process from
// environment variables; everything else in the package degrades silently
// when the file or the terminal cannot cooperate.
package termgfx

import (
	"os"
	"strings"
	"sync"
)

// Capability identifies the graphics protocol the terminal supports.
type Capability int

const (
	Unsupported Capability = iota
	Kitty
	ITerm2
)

func (c Capability) String() string {
	switch c {
	case Kitty:
		return "kitty"
	case ITerm2:
		return "iterm2"
	default:
		return "unsupported"
	}
}

var (
	detectOnce sync.Once
	detected   Capability
)

// Detect classifies the hosting terminal from its environment variables.
// The result is cached for the lifetime of the process; later environment
// changes do not affect it.
func Detect() Capability {
	detectOnce.Do(func() {
		detected = detectFromEnvironment()
	})
	return detected
}

// detectFromEnvironment runs the ordered checks; first match wins.
func detectFromEnvironment() Capability {
	switch {
	case strings.Contains(strings.ToLower(os.Getenv("TERM")), "kitty"),
		os.Getenv("KITTY_WINDOW_ID") != "":
		return Kitty
	case os.Getenv("WEZTERM_EXECUTABLE") != "":
		return ITerm2
	case os.Getenv("TERM_PROGRAM") == "iTerm.app":
		return ITerm2
	default:
		return Unsupported
	}
}

// ResetDetection clears the cached capability so the next Detect call
// re-reads the environment. Only tests need this.
func ResetDetection() {
	detectOnce = sync.Once{}
	detected = Unsupported
}
