package anki

import (
	"context"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// MediaDir resolves the directory holding the backend's media files:
// an explicit override first, then the backend's own answer, then a fixed
// list of OS-conventional locations. It returns "" when nothing exists,
// which disables inline images without surfacing an error.
func MediaDir(ctx context.Context, c *Client, override string) string {
	if override != "" && dirExists(override) {
		return override
	}

	if c != nil {
		if path, err := c.MediaDirPath(ctx); err == nil && dirExists(path) {
			return path
		}
	}

	for _, cand := range mediaCandidates() {
		if dirExists(cand) {
			return cand
		}
	}
	return ""
}

// mediaCandidates lists where Anki keeps collection media per platform,
// first existing one wins.
func mediaCandidates() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return []string{
		filepath.Join(xdg.DataHome, "Anki2", "User 1", "collection.media"),
		filepath.Join(home, ".local", "share", "Anki2", "User 1", "collection.media"),
		filepath.Join(home, "Library", "Application Support", "Anki2", "User 1", "collection.media"),
		filepath.Join(home, "Documents", "Anki2", "User 1", "collection.media"),
	}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
