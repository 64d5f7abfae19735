// Package engine lays cabinet modules out along a single dimension.
//
// Every operation is a pure function of its inputs and the Calculator's
// LayoutConfig, so a Calculator may be shared between goroutines.
package engine

import "github.com/piwi3910/CabinetFit/internal/model"

// Calculator runs door width searches and module layouts.
type Calculator struct {
	Config model.LayoutConfig
}

func New(cfg model.LayoutConfig) *Calculator {
	return &Calculator{Config: cfg}
}
