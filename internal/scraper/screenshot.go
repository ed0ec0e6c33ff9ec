package scraper

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/maltedev/material-scraper/internal/dom"
)

// Screenshotter writes per-card debug screenshots into the data directory.
// Enabled by SCRAPER_SCREENSHOTS=1 and wired in explicitly through the
// Service; nothing ambient. Best effort: failures just leave the listing's
// screenshot path empty.
type Screenshotter struct {
	dir    string
	runID  string
	seq    int
	logger *slog.Logger
}

func NewScreenshotter(dir, runID string) *Screenshotter {
	return &Screenshotter{
		dir:    dir,
		runID:  runID,
		logger: slog.Default().With("component", "screenshotter"),
	}
}

// Capture screenshots one card and returns the file path, or "" on failure.
func (s *Screenshotter) Capture(card dom.Element, supplier string) string {
	s.seq++
	path := filepath.Join(s.dir, fmt.Sprintf("snap_%s_%s_%04d.png", supplier, s.runID, s.seq))
	if err := card.Screenshot(path); err != nil {
		s.logger.Debug("card screenshot failed", "supplier", supplier, "error", err)
		return ""
	}
	return path
}
