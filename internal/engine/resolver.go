package engine

import (
	"fmt"
	"math"
	"sort"
)

// Tier ranks candidate widths by how "round" they are.
type Tier int

const (
	TierTen  Tier = 1 // Multiple of 10
	TierEven Tier = 2 // Multiple of 2
)

// Candidate is a proposed door width for a fixed door count.
type Candidate struct {
	Width    float64
	Tier     Tier
	Leftover float64
}

// generateCandidates proposes floor and ceiling widths aligned to 10 and to 2.
// Order matters: ties in selection keep the generation order.
func generateCandidates(rawWidth float64) []Candidate {
	return []Candidate{
		{Width: math.Floor(rawWidth/10) * 10, Tier: TierTen},
		{Width: math.Ceil(rawWidth/10) * 10, Tier: TierTen},
		{Width: math.Floor(rawWidth/2) * 2, Tier: TierEven},
		{Width: math.Ceil(rawWidth/2) * 2, Tier: TierEven},
	}
}

// classify splits candidates into the tolerance tier (primary) and the
// tight-fit tier (secondary). Candidates outside bounds or overflowing the
// span are dropped, as are those leaving more than the allowance.
func (c *Calculator) classify(span float64, count int, cands []Candidate) (primary, secondary []Candidate) {
	for _, cand := range cands {
		if !c.Config.InBounds(cand.Width) {
			continue
		}
		cand.Leftover = span - cand.Width*float64(count)
		switch {
		case cand.Leftover < 0:
			continue
		case c.Config.InTolerance(cand.Leftover):
			primary = append(primary, cand)
		case cand.Leftover < c.Config.MinRemainder:
			secondary = append(secondary, cand)
		}
	}
	return primary, secondary
}

func pickBest(cands []Candidate) Candidate {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Tier != cands[j].Tier {
			return cands[i].Tier < cands[j].Tier
		}
		return cands[i].Leftover < cands[j].Leftover
	})
	return cands[0]
}

// ResolveWidth returns the best door width for splitting span into count doors.
// It returns ErrInfeasible when no candidate fits the bounds and allowance,
// and ErrOutOfRange for a negative span or a count below one.
func (c *Calculator) ResolveWidth(span float64, count int) (float64, error) {
	cand, err := c.resolve(span, count)
	if err != nil {
		return 0, err
	}
	return cand.Width, nil
}

func (c *Calculator) resolve(span float64, count int) (Candidate, error) {
	if count < 1 {
		return Candidate{}, fmt.Errorf("door count %d: %w", count, ErrOutOfRange)
	}
	if err := checkSpan(span); err != nil {
		return Candidate{}, err
	}

	raw := span / float64(count)
	if !c.Config.InBounds(raw) {
		return Candidate{}, fmt.Errorf("span %.1f over %d doors gives %.1f: %w", span, count, raw, ErrInfeasible)
	}

	primary, secondary := c.classify(span, count, generateCandidates(raw))
	if len(primary) > 0 {
		return pickBest(primary), nil
	}
	if len(secondary) > 0 {
		return pickBest(secondary), nil
	}
	return Candidate{}, fmt.Errorf("span %.1f over %d doors: %w", span, count, ErrInfeasible)
}

func checkSpan(span float64) error {
	if math.IsNaN(span) || math.IsInf(span, 0) || span < 0 {
		return fmt.Errorf("span %v: %w", span, ErrOutOfRange)
	}
	return nil
}
