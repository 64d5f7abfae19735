// Package export renders laid out plans to PDF elevation sheets, QR-coded
// module labels and an Excel module schedule.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/CabinetFit/internal/model"
)

// kindColor represents an RGB fill color for a placement kind.
type kindColor struct {
	R, G, B int
}

var kindColors = map[model.PlacementKind]kindColor{
	model.PlacementStorage:   {R: 210, G: 180, B: 140}, // wood
	model.PlacementHood:      {R: 176, G: 190, B: 197}, // steel
	model.PlacementReference: {R: 255, G: 204, B: 128}, // amber
	model.PlacementFixed:     {R: 224, G: 224, B: 224}, // grey
	model.PlacementAppliance: {R: 144, G: 202, B: 249}, // blue
	model.PlacementTall:      {R: 188, G: 170, B: 164}, // dark wood
}

func colorFor(k model.PlacementKind) kindColor {
	if c, ok := kindColors[k]; ok {
		return c
	}
	return kindColor{R: 255, G: 255, B: 255}
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	notesHeight  = 40.0
	drawAreaTop  = marginTop + headerHeight + 8.0

	// Drawn height of placements without one (mm).
	defaultUpperHeight = 720.0
	defaultLowerHeight = 870.0
)

// ExportPDF generates a PDF document with one elevation page per plan,
// followed by a summary page listing every plan and the layout constants.
func ExportPDF(path string, plans []model.Plan, cfg model.LayoutConfig) error {
	if len(plans) == 0 {
		return fmt.Errorf("no plans to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, plan := range plans {
		pdf.AddPage()
		renderPlanPage(pdf, plan, cfg, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, plans, cfg)

	return pdf.OutputFileAndClose(path)
}

func placementHeight(p model.Placement, section model.Section) float64 {
	if p.Height > 0 {
		return p.Height
	}
	if section == model.SectionUpper {
		return defaultUpperHeight
	}
	return defaultLowerHeight
}

// renderPlanPage draws the elevation of a single plan on the current page.
func renderPlanPage(pdf *fpdf.Fpdf, plan model.Plan, cfg model.LayoutConfig, planNum int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Plan %d: %s (%s, %.0f mm)", planNum, plan.Name, plan.Section, plan.EffectiveWidth)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	status := cfg.ClassifyRemainder(plan.Leftover)
	stats := fmt.Sprintf("Modules: %d | Doors: %d | Door width: %.0f mm | Leftover: %.1f mm (%s)",
		len(plan.StoragePlacements()), plan.DoorTotal(), plan.DoorWidth, plan.Leftover, status)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	var maxH float64
	for _, p := range plan.Placements {
		maxH = math.Max(maxH, placementHeight(p, plan.Section))
	}
	if maxH == 0 {
		maxH = placementHeight(model.Placement{}, plan.Section)
	}

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - notesHeight
	spanW := math.Max(plan.EffectiveWidth, 1)
	scale := math.Min(drawWidth/spanW, drawHeight/maxH)

	canvasW := spanW * scale
	canvasH := maxH * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Wall outline
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "D")

	// Placements hang from the top for uppers and stand on the floor for lowers.
	for _, p := range plan.Placements {
		col := colorFor(p.Kind)
		pw := p.Width * scale
		ph := placementHeight(p, plan.Section) * scale
		px := offsetX + p.X*scale
		py := offsetY + canvasH - ph
		if plan.Section == model.SectionUpper {
			py = offsetY
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		// Door split lines
		if p.Doors > 1 {
			pdf.SetLineWidth(0.15)
			for d := 1; d < p.Doors; d++ {
				lx := px + pw*float64(d)/float64(p.Doors)
				pdf.Line(lx, py, lx, py+ph)
			}
		}

		if pw > 12 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)
			label := p.Label
			dims := fmt.Sprintf("%.0f", p.Width)

			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)
			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if ph > 14 && dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionChain(pdf, plan, scale, offsetX, offsetY+canvasH+2)
	drawNotes(pdf, plan, offsetY+canvasH+12)
}

// drawDimensionChain writes the offset of every placement edge under the drawing.
func drawDimensionChain(pdf *fpdf.Fpdf, plan model.Plan, scale, offsetX, y float64) {
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(80, 80, 80)
	pdf.SetDrawColor(120, 120, 120)
	pdf.SetLineWidth(0.1)

	lastX := math.Inf(-1)
	edges := []float64{0}
	for _, p := range plan.Placements {
		edges = append(edges, p.X, p.End())
	}
	edges = append(edges, plan.EffectiveWidth)

	for _, e := range edges {
		x := offsetX + e*scale
		if x-lastX < 6 {
			continue
		}
		pdf.Line(x, y, x, y+2)
		label := fmt.Sprintf("%.0f", e)
		w := pdf.GetStringWidth(label)
		pdf.SetXY(x-w/2, y+2)
		pdf.CellFormat(w, 3, label, "", 0, "C", false, 0, "")
		lastX = x
	}
	pdf.SetTextColor(0, 0, 0)
}

// drawNotes lists the improvement suggestions stored with the plan.
func drawNotes(pdf *fpdf.Fpdf, plan model.Plan, y float64) {
	if len(plan.Suggestions) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(60, 5, "Suggestions:", "", 0, "L", false, 0, "")
	y += 5

	pdf.SetFont("Helvetica", "", 8)
	for _, s := range plan.Suggestions {
		if y > pageHeight-marginBottom {
			break
		}
		pdf.SetXY(marginLeft+3, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight-3, 4, "- "+s, "", 0, "L", false, 0, "")
		y += 4
	}
}

// renderSummaryPage draws the final summary page.
func renderSummaryPage(pdf *fpdf.Fpdf, plans []model.Plan, cfg model.LayoutConfig) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Cabinet Layout Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Plans", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{15, 60, 25, 35, 25, 20, 30, 30}
	headers := []string{"#", "Name", "Section", "Category", "Width", "Doors", "Door Width", "Leftover"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, plan := range plans {
		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			plan.Name,
			string(plan.Section),
			string(plan.Category),
			fmt.Sprintf("%.0f", plan.EffectiveWidth),
			fmt.Sprintf("%d", plan.DoorTotal()),
			fmt.Sprintf("%.0f", plan.DoorWidth),
			fmt.Sprintf("%.1f", plan.Leftover),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	y += 8
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Layout Constants", "", 0, "L", false, 0, "")
	y += 9

	items := []struct {
		label string
		value string
	}{
		{"Door Width", fmt.Sprintf("%.0f - %.0f mm (target %.0f)", cfg.MinWidth, cfg.MaxWidth, cfg.TargetWidth)},
		{"Installation Allowance", fmt.Sprintf("%.0f - %.0f mm", cfg.MinRemainder, cfg.MaxRemainder)},
		{"Minimum Fill Span", fmt.Sprintf("%.0f mm", cfg.MinFillSpan)},
		{"Hood Width", fmt.Sprintf("%.0f mm", cfg.Upper.HoodWidth)},
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range items {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(80, 5, item.value, "", 0, "L", false, 0, "")
		y += 5
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by CabinetFit - Cabinet Module Layout", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
