package export

import (
	"fmt"

	"github.com/piwi3910/CabinetFit/internal/model"
	"github.com/xuri/excelize/v2"
)

const (
	scheduleSheet = "Schedule"
	summarySheet  = "Summary"
)

var scheduleHeaders = []string{"Plan", "Section", "#", "Label", "Kind", "X (mm)", "Width (mm)", "Height (mm)", "Depth (mm)", "Doors"}

var summaryHeaders = []string{"Plan", "Section", "Category", "Effective Width (mm)", "Door Width (mm)", "Doors", "Leftover (mm)", "Optimal"}

// ExportSchedule writes every placement of every plan to an Excel workbook:
// one row per placement on the Schedule sheet and one row per plan on the
// Summary sheet.
func ExportSchedule(path string, plans []model.Plan) error {
	if len(plans) == 0 {
		return fmt.Errorf("no plans to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), scheduleSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	if err := writeRow(f, scheduleSheet, 1, toCells(scheduleHeaders)); err != nil {
		return err
	}
	row := 2
	for _, plan := range plans {
		for i, p := range plan.Placements {
			cells := []interface{}{
				plan.Name, string(plan.Section), i + 1, p.Label, string(p.Kind),
				p.X, p.Width, p.Height, p.Depth, p.Doors,
			}
			if err := writeRow(f, scheduleSheet, row, cells); err != nil {
				return err
			}
			row++
		}
	}

	if err := writeRow(f, summarySheet, 1, toCells(summaryHeaders)); err != nil {
		return err
	}
	for i, plan := range plans {
		cells := []interface{}{
			plan.Name, string(plan.Section), string(plan.Category), plan.EffectiveWidth,
			plan.DoorWidth, plan.DoorTotal(), plan.Leftover, plan.IsOptimal,
		}
		if err := writeRow(f, summarySheet, i+2, cells); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

func writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", row, sheet, err)
	}
	return nil
}
