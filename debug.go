package goban

import (
	"fmt"
	"os"
)

// logRenderStats prints per-render diff metrics to stderr. Only called when
// Board debug mode is on.
func logRenderStats(diff RenderDiff) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[goban] layout: %v | stones: %s | markers: %s | ghosts: %s | heat: %s | paint: %s | selections: %s | lines: %s\n",
		diff.LayoutChanged,
		layerStats(diff.Stones), layerStats(diff.Markers), layerStats(diff.Ghosts),
		layerStats(diff.Heat), layerStats(diff.Paint), layerStats(diff.Selections),
		layerStats(diff.Lines))
}

func layerStats(d LayerDiff) string {
	return fmt.Sprintf("+%d -%d ~%d", len(d.Added), len(d.Removed), len(d.Changed))
}
