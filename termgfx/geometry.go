package termgfx

import (
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

const (
	// MaxCells is the default display width budget in character cells.
	MaxCells = 60
	// CellWidthPx is the assumed width of one character cell.
	CellWidthPx = 8
	// RowHeightPx is the assumed height of one terminal row.
	RowHeightPx = 16
)

// Geometry holds the source dimensions of an image and the size it will
// occupy on screen.
type Geometry struct {
	SourceWidth   int
	SourceHeight  int
	DisplayWidth  int
	DisplayHeight int
	// Rows is the number of terminal rows the image consumes, including
	// one trailing blank row.
	Rows int
}

// Resolve probes the image at path and computes its display geometry under
// the default width budget. It returns nil when the file is unreadable or
// not a decodable raster image; callers treat that as "skip the image",
// never as a fatal condition.
func Resolve(path string) *Geometry {
	return ResolveMax(path, MaxCells)
}

// ResolveMax is Resolve with an explicit width budget in character cells.
func ResolveMax(path string, maxCells int) *Geometry {
	if maxCells <= 0 {
		maxCells = MaxCells
	}

	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return nil
	}

	g := &Geometry{
		SourceWidth:  cfg.Width,
		SourceHeight: cfg.Height,
	}

	// Never upscale: narrow images keep their native width.
	g.DisplayWidth = min(cfg.Width, maxCells*CellWidthPx)
	g.DisplayHeight = cfg.Height * g.DisplayWidth / cfg.Width
	g.Rows = (g.DisplayHeight+RowHeightPx-1)/RowHeightPx + 1

	return g
}
