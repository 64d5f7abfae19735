package model

// FinishType is the trim applied at the ends of a run.
type FinishType string

const (
	FinishMolding FinishType = "molding"
	FinishFiller  FinishType = "filler"
	FinishEP      FinishType = "ep"
	FinishNone    FinishType = "none"
)

// DefaultFinishWidth returns the standard width of a finish type in mm.
func (f FinishType) DefaultFinishWidth() float64 {
	switch f {
	case FinishMolding, FinishFiller:
		return 60
	case FinishEP:
		return 20
	default:
		return 0
	}
}

// Editable reports whether the installer may change the finish width.
func (f FinishType) Editable() bool {
	return f == FinishMolding || f == FinishFiller
}

// Finishes holds the trim widths eating into a run's total width.
type Finishes struct {
	Left    float64 `json:"left"`
	Right   float64 `json:"right"`
	Corner1 float64 `json:"corner1"`
	Corner2 float64 `json:"corner2"`
}

// DefaultFinishes returns 60mm fillers on both ends and no corners.
func DefaultFinishes() Finishes {
	return Finishes{Left: 60, Right: 60}
}

// Total returns the sum of all finish widths.
func (f Finishes) Total() float64 {
	return f.Left + f.Right + f.Corner1 + f.Corner2
}

// EffectiveSpace returns the width left for modules once finishes are removed.
func EffectiveSpace(totalWidth float64, f Finishes) float64 {
	return totalWidth - f.Total()
}

// RemainderStatus classifies a leftover for display.
type RemainderStatus string

const (
	RemainderSuccess RemainderStatus = "success" // 0..MaxRemainder
	RemainderInfo    RemainderStatus = "info"    // slightly above the allowance
	RemainderDanger  RemainderStatus = "danger"  // negative or far above the allowance
)

// remainderInfoBand is how far above MaxRemainder a leftover is still "info".
const remainderInfoBand = 5

// ClassifyRemainder returns the display status of a leftover under c.
func (c LayoutConfig) ClassifyRemainder(leftover float64) RemainderStatus {
	if leftover < 0 || leftover > c.MaxRemainder+remainderInfoBand {
		return RemainderDanger
	}
	if leftover <= c.MaxRemainder {
		return RemainderSuccess
	}
	return RemainderInfo
}
