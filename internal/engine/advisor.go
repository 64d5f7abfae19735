package engine

import (
	"fmt"
	"math"
)

// LayoutOptimalMessage is the only suggestion for a layout with nothing to improve.
const LayoutOptimalMessage = "The current layout is already optimal."

// SuggestImprovements inspects a filled layout and returns advisory notes.
// It never changes the layout.
func (c *Calculator) SuggestImprovements(r GapFillResult) []string {
	var suggestions []string
	adv := c.Config.Advice

	switch {
	case r.Leftover < 0:
		suggestions = append(suggestions, fmt.Sprintf(
			"Layout exceeds the space by %.0fmm. Narrow the modules or remove one.", math.Abs(r.Leftover)))
	case r.Leftover > c.Config.MaxRemainder:
		suggestions = append(suggestions, fmt.Sprintf(
			"%.0fmm of space is unused. Wider modules would use it better.", r.Leftover))
	}

	if r.DoorWidth > 0 {
		switch {
		case r.DoorWidth < adv.ComfortMinDoor:
			suggestions = append(suggestions, fmt.Sprintf(
				"Door width is under %.0fmm. Fewer modules would be easier to use.", adv.ComfortMinDoor))
		case r.DoorWidth > adv.ComfortMaxDoor:
			suggestions = append(suggestions, fmt.Sprintf(
				"Door width is over %.0fmm. Another module would balance the design.", adv.ComfortMaxDoor))
		}
	}

	var widths []float64
	for _, p := range r.Placements {
		if !p.Fixed {
			widths = append(widths, p.Width)
		}
	}
	if len(widths) > 0 {
		lo, hi := widths[0], widths[0]
		for _, w := range widths[1:] {
			lo = math.Min(lo, w)
			hi = math.Max(hi, w)
		}
		if hi-lo > adv.MaxWidthSpread {
			suggestions = append(suggestions, fmt.Sprintf(
				"Module widths range from %.0fmm to %.0fmm. An even distribution is recommended.", lo, hi))
		}
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, LayoutOptimalMessage)
	}
	return suggestions
}
