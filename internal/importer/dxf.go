package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/piwi3910/CabinetFit/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// point is a drawing coordinate in mm.
type point struct {
	X, Y float64
}

// segment is a line between two points, used for chaining disconnected
// LINE and ARC entities into closed outlines.
type segment struct {
	start point
	end   point
}

// ImportDXF imports obstacles from a DXF elevation drawing. The drawing's X
// axis runs along the wall with the left wall at X=0. Each closed shape
// (LWPOLYLINE, CIRCLE, or chain of connected LINEs/ARCs) becomes one
// obstacle spanning the shape's horizontal extent.
func ImportDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var outlines [][]point
	var segments []segment

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			outline := make([]point, 0, len(e.Vertices))
			for _, v := range e.Vertices {
				outline = append(outline, point{X: v[0], Y: v[1]})
			}
			if len(outline) >= 3 {
				outlines = append(outlines, outline)
			} else {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Circle:
			outlines = append(outlines, circleToOutline(e, 64))

		case *entity.Arc:
			pts := arcToPoints(e, 32)
			if len(pts) >= 2 {
				segments = append(segments, pointsToSegments(pts)...)
			}

		case *entity.Line:
			segments = append(segments, segment{
				start: point{X: e.Start[0], Y: e.Start[1]},
				end:   point{X: e.End[0], Y: e.End[1]},
			})
		}
	}

	for _, co := range chainSegments(segments, 0.01) {
		if len(co) >= 3 {
			outlines = append(outlines, co)
		}
	}

	if len(outlines) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	var obstacles []model.Obstacle
	for _, outline := range outlines {
		minX, maxX := extentX(outline)
		width := maxX - minX
		if width < 0.01 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate shape at X=%.2f", minX))
			continue
		}
		if minX < 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Shape starts left of the wall at X=%.2f, clipped to 0", minX))
			width = maxX
			minX = 0
			if width < 0.01 {
				continue
			}
		}
		obstacles = append(obstacles, model.Obstacle{X: minX, Width: width})
	}

	sort.SliceStable(obstacles, func(i, j int) bool {
		return obstacles[i].X < obstacles[j].X
	})
	for i := range obstacles {
		obstacles[i].Label = fmt.Sprintf("DXF Obstacle %d", i+1)
	}
	result.Obstacles = obstacles

	return result
}

// extentX returns the horizontal bounds of an outline.
func extentX(o []point) (float64, float64) {
	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, p := range o {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
	}
	return minX, maxX
}

// circleToOutline approximates a circle as a regular polygon.
func circleToOutline(c *entity.Circle, numSegments int) []point {
	outline := make([]point, numSegments)
	cx, cy, r := c.Center[0], c.Center[1], c.Radius
	for i := 0; i < numSegments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(numSegments)
		outline[i] = point{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return outline
}

// arcToPoints converts a DXF ARC entity to a series of line points.
func arcToPoints(a *entity.Arc, numSegments int) []point {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius

	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}

	pts := make([]point, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startRad + t*(endRad-startRad)
		pts[i] = point{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return pts
}

// pointsToSegments converts a point sequence to a slice of connected segments.
func pointsToSegments(pts []point) []segment {
	segs := make([]segment, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		segs = append(segs, segment{start: pts[i], end: pts[i+1]})
	}
	return segs
}

// chainSegments connects individual segments into closed outlines.
// tolerance is the maximum distance between endpoints to consider them connected.
func chainSegments(segs []segment, tolerance float64) [][]point {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var outlines [][]point

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := []point{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		if len(chain) < 4 || !pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			// Open chains are construction lines, not shapes.
			continue
		}
		outlines = append(outlines, chain[:len(chain)-1])
	}

	return outlines
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b point, tolerance float64) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) <= tolerance
}
