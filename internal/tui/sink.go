package tui

import (
	"io"
)

// screenSink is the render sink backing the card view: committed lines are
// held for the next View pass, raw control sequences go straight to the
// terminal. Image emission happens on the bubbletea command queue after the
// committed view has been drawn, so the cursor-positioned writes land on a
// stable surface.
type screenSink struct {
	lines []string
	out   io.Writer
}

func (s *screenSink) ReplaceLines(lines []string) {
	s.lines = lines
}

func (s *screenSink) WriteRaw(seq string) {
	io.WriteString(s.out, seq)
}
