package engine

import (
	"testing"

	"github.com/piwi3910/CabinetFit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id string, typ model.ApplianceType, width, sideGap float64, units int) model.CatalogEntry {
	e := model.CatalogEntry{ID: id, Name: id, Type: typ, Width: width, SideGap: sideGap}
	for i := 0; i < units; i++ {
		e.Units = append(e.Units, model.Unit{Name: id, Width: width / float64(units)})
	}
	return e
}

func TestScore(t *testing.T) {
	calc := defaultCalc()
	free := entry("f", model.ApplianceFreestanding, 600, 0, 1)

	assert.Equal(t, 130.0, calc.Score(free, 6))
	assert.Equal(t, 120.0, calc.Score(free, 2))
	assert.Equal(t, 120.0, calc.Score(free, 20))
	assert.Equal(t, 110.0, calc.Score(free, 50))
	assert.InDelta(t, 95.0, calc.Score(free, 100), 1e-9)
	assert.Equal(t, 0.0, calc.Score(free, 2000))
	assert.Equal(t, 0.0, calc.Score(free, -1))

	builtin := entry("b", model.ApplianceBuiltIn, 600, 0, 2)
	assert.Equal(t, 155.0, calc.Score(builtin, 6))
}

func TestScoreAndRank(t *testing.T) {
	entries := []model.CatalogEntry{
		entry("B", model.ApplianceFreestanding, 595, 0, 1),
		entry("C", model.ApplianceFreestanding, 560, 0, 2),
		entry("D", model.ApplianceBuiltIn, 700, 0, 1),
		entry("E", model.ApplianceFreestanding, 400, 0, 1),
		entry("A", model.ApplianceBuiltIn, 590, 5, 1),
		entry("H", model.ApplianceFreestanding, 100, 0, 1),
		entry("F", model.ApplianceBuiltIn, 604, 0, 1),
	}

	recs := defaultCalc().ScoreAndRank(606, entries)
	require.Len(t, recs, TopRecommendations)

	var ids []string
	for _, r := range recs {
		ids = append(ids, r.Entry.ID)
	}
	// D does not fit and H falls off the end.
	assert.Equal(t, []string{"A", "F", "B", "C", "E"}, ids)

	assert.Equal(t, 145.0, recs[0].Score)
	assert.Equal(t, 600.0, recs[0].Footprint)
	assert.Equal(t, 6.0, recs[0].Leftover)
	assert.Equal(t, 135.0, recs[1].Score)
	assert.Equal(t, 120.0, recs[2].Score)
	assert.Equal(t, 120.0, recs[3].Score)
	assert.InDelta(t, 84.4, recs[4].Score, 1e-9)
}

func TestScoreAndRank_NothingFits(t *testing.T) {
	recs := defaultCalc().ScoreAndRank(500, []model.CatalogEntry{
		entry("big", model.ApplianceBuiltIn, 900, 10, 1),
	})
	assert.Empty(t, recs)
}
