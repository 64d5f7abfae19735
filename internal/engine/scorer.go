package engine

import (
	"sort"

	"github.com/piwi3910/CabinetFit/internal/model"
)

// Scoring weights for appliance fit ranking.
const (
	scoreBase          = 100.0
	scoreToleranceFit  = 30.0 // Leftover inside the installation allowance
	scoreTightFit      = 20.0 // Leftover up to tightFitLimit
	scoreLooseFit      = 10.0 // Leftover up to looseFitLimit
	scoreBuiltIn       = 15.0
	scoreComposite     = 10.0
	tightFitLimit      = 20.0
	looseFitLimit      = 50.0
	excessPenaltyRatio = 10.0 // One point lost per this many mm beyond looseFitLimit

	// TopRecommendations is the number of entries ScoreAndRank returns at most.
	TopRecommendations = 5
)

// Recommendation is a scored catalog entry that fits the available space.
type Recommendation struct {
	Entry     model.CatalogEntry `json:"entry"`
	Footprint float64            `json:"footprint"`
	Leftover  float64            `json:"leftover"`
	Score     float64            `json:"score"`
}

// Score rates how well an entry with the given leftover fits.
func (c *Calculator) Score(e model.CatalogEntry, leftover float64) float64 {
	if leftover < 0 {
		return 0
	}
	score := scoreBase
	switch {
	case c.Config.InTolerance(leftover):
		score += scoreToleranceFit
	case leftover <= tightFitLimit:
		score += scoreTightFit
	case leftover <= looseFitLimit:
		score += scoreLooseFit
	default:
		score -= (leftover - looseFitLimit) / excessPenaltyRatio
	}
	if e.Type == model.ApplianceBuiltIn {
		score += scoreBuiltIn
	}
	if e.IsComposite() {
		score += scoreComposite
	}
	return max(0, score)
}

// ScoreAndRank scores every entry whose footprint fits availableSpace and
// returns the best TopRecommendations, highest score first.
func (c *Calculator) ScoreAndRank(availableSpace float64, entries []model.CatalogEntry) []Recommendation {
	var recs []Recommendation
	for _, e := range entries {
		footprint := e.Footprint()
		leftover := availableSpace - footprint
		if leftover < 0 {
			continue
		}
		recs = append(recs, Recommendation{
			Entry:     e,
			Footprint: footprint,
			Leftover:  leftover,
			Score:     c.Score(e, leftover),
		})
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	if len(recs) > TopRecommendations {
		recs = recs[:TopRecommendations]
	}
	return recs
}
