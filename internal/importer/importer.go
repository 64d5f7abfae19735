// Package importer loads fixed obstacles (appliances, pillars, tall units)
// from CSV, Excel and DXF files. CSV and Excel support automatic delimiter
// detection, flexible column mapping and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/piwi3910/CabinetFit/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Obstacles []model.Obstacle
	Errors    []string
	Warnings  []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label int
	X     int
	Width int
	End   int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"label": {"label", "name", "obstacle", "description", "desc", "item", "appliance"},
	"x":     {"x", "start", "offset", "position", "pos", "from", "start offset"},
	"width": {"width", "w", "size", "length", "len"},
	"end":   {"end", "to", "stop", "end offset"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// A row is a header when at least two cells, or all of its cells, name a
// known column. Returns the mapping and true if a header was detected, or
// the positional mapping (Label, X, Width) and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Label: -1, X: -1, Width: -1, End: -1}

	matched := 0
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				matched++
				switch role {
				case "label":
					if mapping.Label == -1 {
						mapping.Label = i
					}
				case "x":
					if mapping.X == -1 {
						mapping.X = i
					}
				case "width":
					if mapping.Width == -1 {
						mapping.Width = i
					}
				case "end":
					if mapping.End == -1 {
						mapping.End = i
					}
				}
			}
		}
	}

	if matched < 2 && (matched == 0 || matched < len(row)) {
		return ColumnMapping{Label: 0, X: 1, Width: 2, End: -1}, false
	}
	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseNumber(row []string, idx int, name, rowLabel string) (float64, string) {
	s := getCell(row, idx)
	if s == "" {
		return 0, fmt.Sprintf("%s: Missing %s value", rowLabel, name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, name, s)
	}
	return v, ""
}

// parseRow extracts an Obstacle from a row using the given column mapping.
// Width may be given directly or derived from an end offset.
// Returns the obstacle, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, count int) (model.Obstacle, string, string) {
	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Obstacle %d", count+1)
	}

	x, errMsg := parseNumber(row, mapping.X, "start", rowLabel)
	if errMsg != "" {
		return model.Obstacle{}, errMsg, ""
	}

	var width float64
	var warning string
	if getCell(row, mapping.Width) != "" || mapping.End == -1 {
		width, errMsg = parseNumber(row, mapping.Width, "width", rowLabel)
		if errMsg != "" {
			return model.Obstacle{}, errMsg, ""
		}
		if getCell(row, mapping.End) != "" {
			warning = fmt.Sprintf("%s: Both width and end given, using width", rowLabel)
		}
	} else {
		end, errMsg := parseNumber(row, mapping.End, "end", rowLabel)
		if errMsg != "" {
			return model.Obstacle{}, errMsg, ""
		}
		width = end - x
	}

	if x < 0 {
		return model.Obstacle{}, fmt.Sprintf("%s: Start must not be negative", rowLabel), ""
	}
	if width <= 0 {
		return model.Obstacle{}, fmt.Sprintf("%s: Width must be positive", rowLabel), ""
	}

	return model.Obstacle{Label: label, X: x, Width: width}, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportFile picks the importer from the file extension: .csv and .txt
// for CSV, .xlsx for Excel and .dxf for drawings.
func ImportFile(path string) ImportResult {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		return ImportCSV(path)
	case ".xlsx":
		return ImportExcel(path)
	case ".dxf":
		return ImportDXF(path)
	default:
		return ImportResult{Errors: []string{fmt.Sprintf("Unsupported file type %q", ext)}}
	}
}

// ImportCSV imports obstacles from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports obstacles from a CSV reader with a known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports obstacles from the first sheet of an Excel (.xlsx) file.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.X == -1 {
			missing = append(missing, "Start")
		}
		if mapping.Width == -1 && mapping.End == -1 {
			missing = append(missing, "Width")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 3 {
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
			// Unrecognized header; keep the positional mapping.
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		obstacle, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Obstacles))

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		result.Obstacles = append(result.Obstacles, obstacle)
	}

	return result
}
