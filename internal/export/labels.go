package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/CabinetFit/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each module label's QR code.
type LabelInfo struct {
	ID       string              `json:"id"`
	Plan     string              `json:"plan"`
	Section  model.Section       `json:"section"`
	Label    string              `json:"label"`
	Kind     model.PlacementKind `json:"kind"`
	Position int                 `json:"position"` // 1-based order along the wall
	X        float64             `json:"x_mm"`
	Width    float64             `json:"width_mm"`
	Height   float64             `json:"height_mm,omitempty"`
	Depth    float64             `json:"depth_mm,omitempty"`
	Doors    int                 `json:"doors,omitempty"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// buildable reports whether a placement is a cabinet that gets manufactured.
func buildable(p model.Placement) bool {
	switch p.Kind {
	case model.PlacementStorage, model.PlacementReference, model.PlacementTall:
		return true
	default:
		return false
	}
}

// CollectLabelInfos extracts one label per manufactured cabinet of every plan.
// Hoods, appliances and caller obstacles get no label.
func CollectLabelInfos(plans []model.Plan) []LabelInfo {
	var labels []LabelInfo
	for _, plan := range plans {
		pos := 0
		for _, p := range plan.Placements {
			if !buildable(p) {
				continue
			}
			pos++
			labels = append(labels, LabelInfo{
				ID:       p.ID,
				Plan:     plan.Name,
				Section:  plan.Section,
				Label:    p.Label,
				Kind:     p.Kind,
				Position: pos,
				X:        p.X,
				Width:    p.Width,
				Height:   p.Height,
				Depth:    p.Depth,
				Doors:    p.Doors,
			})
		}
	}
	return labels
}

// ExportLabels generates a PDF of QR-coded labels for all manufactured
// cabinets. Each label carries the module name, size and position and a QR
// code encoding the LabelInfo as JSON. Labels use the Avery 5160 layout
// (3 columns x 10 rows on US Letter).
func ExportLabels(path string, plans []model.Plan) error {
	labels := CollectLabelInfos(plans)
	if len(labels) == 0 {
		return fmt.Errorf("no cabinets to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, i, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.Label, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, index int, info LabelInfo) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%d_%s", index, info.ID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	title := fmt.Sprintf("#%d %s", info.Position, info.Label)
	if pdf.GetStringWidth(title) > textW {
		for len(title) > 0 && pdf.GetStringWidth(title+"...") > textW {
			title = title[:len(title)-1]
		}
		title += "..."
	}
	pdf.CellFormat(textW, 4.5, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("W %.0f mm", info.Width)
	if info.Height > 0 {
		dims = fmt.Sprintf("%.0f x %.0f mm", info.Width, info.Height)
	}
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pdf.CellFormat(textW, 3, fmt.Sprintf("%s %s @ %.0f", info.Plan, info.Section, info.X), "", 1, "L", false, 0, "")

	if info.Doors > 0 {
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.CellFormat(textW, 3, fmt.Sprintf("%d door(s)", info.Doors), "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	return nil
}
