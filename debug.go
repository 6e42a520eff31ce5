package sketchpad

import (
	"fmt"
	"os"
)

// debugLogf prints a gesture trace line to stderr when debug mode is on.
func (g *GestureController) debugLogf(format string, args ...any) {
	if !g.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[sketchpad] "+format+"\n", args...)
}

// debugLogEvent prints a raw contact event with its samples.
func (g *GestureController) debugLogEvent(ev ContactEvent) {
	if !g.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[sketchpad] contact %s (%d) mode=%s live=%d\n",
		ev.Phase, len(ev.Contacts), g.mode, g.live.Count())
	for _, c := range ev.Contacts {
		_, _ = fmt.Fprintf(os.Stderr, "[sketchpad]   id=%d x=%.1f y=%.1f t=%d\n", c.ID, c.X, c.Y, c.Timestamp)
	}
}
