package review

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankiterm/ankiterm/termgfx"
)

func TestLayoutWithoutImageSupport(t *testing.T) {
	l := NewLayouter(termgfx.Unsupported, "/media")

	plan, final := l.Layout("before<img src='a.png'>after", 1)

	require.Len(t, plan.Entries, 1)
	assert.Equal(t, KindText, plan.Entries[0].Kind)
	assert.Equal(t, "beforeafter", plan.Entries[0].Text)
	assert.Equal(t, 2, final)
	assert.Equal(t, []string{"beforeafter"}, plan.Lines())
}

func TestLayoutWithoutMediaDir(t *testing.T) {
	// A graphics-capable terminal still degrades to plain text when no
	// media directory was resolvable.
	l := NewLayouter(termgfx.Kitty, "")

	plan, _ := l.Layout("before<img src='a.png'>after", 1)

	require.Len(t, plan.Entries, 1)
	assert.Equal(t, "beforeafter", plan.Entries[0].Text)
}

func TestLayoutWithImages(t *testing.T) {
	l := NewLayouter(termgfx.Kitty, "/media")

	plan, final := l.Layout("before<img src='a.png'>after", 1)

	require.Len(t, plan.Entries, 4)

	assert.Equal(t, KindText, plan.Entries[0].Kind)
	assert.Equal(t, "before", plan.Entries[0].Text)
	assert.Equal(t, 1, plan.Entries[0].Row)

	assert.Equal(t, KindText, plan.Entries[1].Kind)
	assert.Equal(t, "[Image: a.png]", plan.Entries[1].Text)
	assert.Equal(t, 2, plan.Entries[1].Row)

	assert.Equal(t, KindImage, plan.Entries[2].Kind)
	assert.Equal(t, filepath.Join("/media", "a.png"), plan.Entries[2].Src)
	assert.Equal(t, 3, plan.Entries[2].Row)
	assert.Equal(t, ReservedRows, plan.Entries[2].Rows)

	assert.Equal(t, KindText, plan.Entries[3].Kind)
	assert.Equal(t, "after", plan.Entries[3].Text)
	assert.Equal(t, 3+ReservedRows, plan.Entries[3].Row)

	assert.Equal(t, 4+ReservedRows, final)

	lines := plan.Lines()
	require.Len(t, lines, 3+ReservedRows)
	assert.Equal(t, "before", lines[0])
	assert.Equal(t, "[Image: a.png]", lines[1])
	for i := 2; i < 2+ReservedRows; i++ {
		assert.Empty(t, lines[i], "reserved rows must be blank")
	}
	assert.Equal(t, "after", lines[2+ReservedRows])
}

func TestLayoutImageRowsFollowText(t *testing.T) {
	// Invariant: every image's first row is strictly below all preceding
	// text content.
	l := NewLayouter(termgfx.Kitty, "/m")

	plan, _ := l.Layout("one<br>two<img src=\"x.png\">three<img src=\"y.png\">", 1)

	lastTextRow := 0
	for _, e := range plan.Entries {
		switch e.Kind {
		case KindText:
			lastTextRow = e.Row + e.Rows - 1
		case KindImage:
			assert.Greater(t, e.Row, lastTextRow)
		}
	}
}

func TestLayoutMarkerWithoutSrc(t *testing.T) {
	l := NewLayouter(termgfx.ITerm2, "/media")

	plan, final := l.Layout("before<img class=\"x\">after", 1)

	require.Len(t, plan.Entries, 2)
	assert.Equal(t, "before", plan.Entries[0].Text)
	assert.Equal(t, "after", plan.Entries[1].Text)
	assert.Equal(t, 3, final, "no reserved rows for a src-less marker")
}

func TestLayoutMultilineText(t *testing.T) {
	l := NewLayouter(termgfx.Kitty, "/media")

	plan, final := l.Layout("line one<br>line two<img src='p.png'>", 5)

	require.GreaterOrEqual(t, len(plan.Entries), 3)
	assert.Equal(t, "line one\nline two", plan.Entries[0].Text)
	assert.Equal(t, 2, plan.Entries[0].Rows)
	assert.Equal(t, 7, plan.Entries[1].Row, "placeholder lands after both text rows")
	assert.Equal(t, 8+ReservedRows, final)
}

func TestLayoutDoubleQuotedSrc(t *testing.T) {
	l := NewLayouter(termgfx.Kitty, "/media")

	plan, _ := l.Layout(`<img src="cat photo.png"><img src=dog.png>`, 1)

	var srcs []string
	for _, e := range plan.Entries {
		if e.Kind == KindImage {
			srcs = append(srcs, e.Src)
		}
	}
	// Quoted values keep their spaces; unquoted values cut at whitespace.
	require.Len(t, srcs, 2)
	assert.Equal(t, filepath.Join("/media", "cat photo.png"), srcs[0])
	assert.Equal(t, filepath.Join("/media", "dog.png"), srcs[1])
}
