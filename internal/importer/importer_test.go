package importer

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"github.com/yofu/dxf"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Label,Start,Width\nFridge,1000,600\nPillar,2400,200\n")
	got := DetectCSVDelimiter(data)
	if got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Label;Start;Width\nFridge;1000;600\nPillar;2400;200\n")
	got := DetectCSVDelimiter(data)
	if got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Label\tStart\tWidth\nFridge\t1000\t600\nPillar\t2400\t200\n")
	got := DetectCSVDelimiter(data)
	if got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Label|Start|Width\nFridge|1000|600\nPillar|2400|200\n")
	got := DetectCSVDelimiter(data)
	if got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Label", "Start", "Width"})

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Label != 0 || mapping.X != 1 || mapping.Width != 2 || mapping.End != -1 {
		t.Errorf("unexpected mapping %+v", mapping)
	}
}

func TestDetectColumns_AlternativeNames(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"W", "Appliance", "POSITION"})

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Width != 0 || mapping.Label != 1 || mapping.X != 2 {
		t.Errorf("unexpected mapping %+v", mapping)
	}
}

func TestDetectColumns_EndColumn(t *testing.T) {
	mapping, _ := DetectColumns([]string{"name", "from", "to"})

	if mapping.X != 1 || mapping.End != 2 || mapping.Width != -1 {
		t.Errorf("unexpected mapping %+v", mapping)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Fridge", "1000", "600"})

	if isHeader {
		t.Error("expected no header")
	}
	if mapping.Label != 0 || mapping.X != 1 || mapping.Width != 2 {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}
}

func TestDetectColumns_SingleAliasIsNotHeader(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Thing", "Where", "Size"})

	if isHeader {
		t.Error("expected a single matching cell not to make a header")
	}
	if mapping.Label != 0 || mapping.X != 1 || mapping.Width != 2 {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}

	if _, isHeader := DetectColumns([]string{"Start"}); !isHeader {
		t.Error("expected a fully recognized single-column row to be a header")
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func TestImportCSVFromReader_WithHeaders(t *testing.T) {
	data := "Label,Start,Width\nFridge,1000,600\nPillar,2400,200\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Obstacles) != 2 {
		t.Fatalf("expected 2 obstacles, got %d", len(result.Obstacles))
	}

	o := result.Obstacles[0]
	if o.Label != "Fridge" || o.X != 1000 || o.Width != 600 {
		t.Errorf("unexpected obstacle %+v", o)
	}
	if result.Obstacles[1].End() != 2600 {
		t.Errorf("expected second obstacle to end at 2600, got %f", result.Obstacles[1].End())
	}
}

func TestImportCSVFromReader_WithoutHeaders(t *testing.T) {
	data := "Fridge,1000,600\nPillar,2400,200\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Obstacles) != 2 {
		t.Fatalf("expected 2 obstacles, got %d (errors: %v)", len(result.Obstacles), result.Errors)
	}
	if result.Obstacles[0].X != 1000 {
		t.Errorf("expected start 1000, got %f", result.Obstacles[0].X)
	}
}

func TestImportCSVFromReader_UnknownHeaderSkipped(t *testing.T) {
	data := "Thing,Where,Size\nFridge,1000,600\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Obstacles) != 1 {
		t.Fatalf("expected 1 obstacle, got %d (errors: %v)", len(result.Obstacles), result.Errors)
	}
	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	o := result.Obstacles[0]
	if o.Label != "Fridge" || o.X != 1000 || o.Width != 600 {
		t.Errorf("expected positional Fridge at 1000 width 600, got %+v", o)
	}
}

func TestImportCSVFromReader_EndColumn(t *testing.T) {
	data := "Name,From,To\nTall,0,600\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Obstacles) != 1 {
		t.Fatalf("expected 1 obstacle, got %d (errors: %v)", len(result.Obstacles), result.Errors)
	}
	if result.Obstacles[0].Width != 600 {
		t.Errorf("expected width 600 from end offset, got %f", result.Obstacles[0].Width)
	}
}

func TestImportCSVFromReader_WidthWinsOverEnd(t *testing.T) {
	data := "Name,Start,Width,End\nTall,100,600,900\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Obstacles) != 1 || result.Obstacles[0].Width != 600 {
		t.Fatalf("expected width 600, got %+v", result.Obstacles)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "Both width and end") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a warning about width and end, got %v", result.Warnings)
	}
}

func TestImportCSVFromReader_EmptyFile(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader(""), ',')

	if len(result.Errors) == 0 {
		t.Error("expected error for empty input")
	}
}

func TestImportCSVFromReader_InvalidValues(t *testing.T) {
	data := "Label,Start,Width\nA,abc,600\nB,100,\nC,-5,600\nD,100,0\nE,500,300\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) != 4 {
		t.Errorf("expected 4 errors, got %d: %v", len(result.Errors), result.Errors)
	}
	if len(result.Obstacles) != 1 || result.Obstacles[0].Label != "E" {
		t.Errorf("expected only E to import, got %+v", result.Obstacles)
	}
}

func TestImportCSVFromReader_EmptyRowsAndLabels(t *testing.T) {
	data := "Label,Start,Width\n,100,200\n\n,500,300\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Obstacles) != 2 {
		t.Fatalf("expected 2 obstacles, got %d (errors: %v)", len(result.Obstacles), result.Errors)
	}
	if result.Obstacles[0].Label != "Obstacle 1" || result.Obstacles[1].Label != "Obstacle 2" {
		t.Errorf("expected generated labels, got %q and %q", result.Obstacles[0].Label, result.Obstacles[1].Label)
	}
}

func TestImportCSVFromReader_MissingRequiredColumnInHeader(t *testing.T) {
	data := "Label,Width\nFridge,600\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) == 0 || !strings.Contains(result.Errors[0], "Start") {
		t.Errorf("expected missing Start column error, got: %v", result.Errors)
	}
}

func TestImportCSVFromReader_DecimalAndWhitespace(t *testing.T) {
	data := "Label,Start,Width\n  Pillar , 1200.5 , 99.5 \n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Obstacles) != 1 {
		t.Fatalf("expected 1 obstacle, got %d (errors: %v)", len(result.Obstacles), result.Errors)
	}
	o := result.Obstacles[0]
	if o.Label != "Pillar" || o.X != 1200.5 || o.Width != 99.5 {
		t.Errorf("unexpected obstacle %+v", o)
	}
}

// ─── CSV File Import Tests ──────────────────────────────────

func TestImportCSV_SemicolonFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "obstacles.csv")
	content := "Label;Start;Width\nFridge;1000;600\nPillar;2400;200\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path)

	if len(result.Obstacles) != 2 {
		t.Errorf("expected 2 obstacles, got %d (errors: %v)", len(result.Obstacles), result.Errors)
	}
	hasSemicolonWarning := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			hasSemicolonWarning = true
		}
	}
	if !hasSemicolonWarning {
		t.Error("expected warning about semicolon delimiter detection")
	}
}

func TestImportCSV_FileNotFound(t *testing.T) {
	result := ImportCSV("/nonexistent/path/file.csv")

	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(path, []byte("  \n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path)

	if len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "obstacles.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestImportExcel_WithHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Width", "Offset", "Name"},
		{600, 1000, "Fridge"},
		{200, 2400, "Pillar"},
	})

	result := ImportExcel(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Obstacles) != 2 {
		t.Fatalf("expected 2 obstacles, got %d", len(result.Obstacles))
	}
	o := result.Obstacles[0]
	if o.Label != "Fridge" || o.X != 1000 || o.Width != 600 {
		t.Errorf("unexpected obstacle %+v", o)
	}
}

func TestImportExcel_WithoutHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Fridge", 1000, 600},
		{"Pillar", 2400, 200},
	})

	result := ImportExcel(path)

	if len(result.Obstacles) != 2 {
		t.Fatalf("expected 2 obstacles, got %d (errors: %v)", len(result.Obstacles), result.Errors)
	}
}

func TestImportExcel_FileNotFound(t *testing.T) {
	result := ImportExcel("/nonexistent/path/file.xlsx")

	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}

// ─── DXF Import Tests ──────────────────────────────────────

func TestImportDXF_RectangleAndCircle(t *testing.T) {
	d := dxf.NewDrawing()
	// Circle drawn first to check the output is ordered along the wall.
	if _, err := d.Circle(2500, 500, 0, 100); err != nil {
		t.Fatalf("failed to add circle: %v", err)
	}
	corners := [][2]float64{{1000, 0}, {1600, 0}, {1600, 1800}, {1000, 1800}}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		if _, err := d.Line(a[0], a[1], 0, b[0], b[1], 0); err != nil {
			t.Fatalf("failed to add line: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "wall.dxf")
	if err := d.SaveAs(path); err != nil {
		t.Fatalf("failed to save DXF: %v", err)
	}

	result := ImportDXF(path)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Obstacles) != 2 {
		t.Fatalf("expected 2 obstacles, got %d", len(result.Obstacles))
	}

	fridge := result.Obstacles[0]
	if fridge.Label != "DXF Obstacle 1" || fridge.X != 1000 || fridge.Width != 600 {
		t.Errorf("unexpected rectangle obstacle %+v", fridge)
	}
	pipe := result.Obstacles[1]
	if math.Abs(pipe.X-2400) > 1e-6 || math.Abs(pipe.Width-200) > 1e-6 {
		t.Errorf("unexpected circle obstacle %+v", pipe)
	}
}

func TestImportDXF_OpenLinesIgnored(t *testing.T) {
	d := dxf.NewDrawing()
	if _, err := d.Line(0, 0, 0, 3000, 0, 0); err != nil {
		t.Fatalf("failed to add line: %v", err)
	}
	path := filepath.Join(t.TempDir(), "floor.dxf")
	if err := d.SaveAs(path); err != nil {
		t.Fatalf("failed to save DXF: %v", err)
	}

	result := ImportDXF(path)

	if len(result.Obstacles) != 0 {
		t.Errorf("expected no obstacles, got %+v", result.Obstacles)
	}
	if len(result.Errors) == 0 {
		t.Error("expected an error when no closed shape is found")
	}
}

func TestImportDXF_FileNotFound(t *testing.T) {
	result := ImportDXF("/nonexistent/path/file.dxf")

	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}

func TestExtentX(t *testing.T) {
	lo, hi := extentX([]point{{X: 5, Y: 0}, {X: -2, Y: 3}, {X: 9, Y: 1}})
	if lo != -2 || hi != 9 {
		t.Errorf("expected -2..9, got %f..%f", lo, hi)
	}
}

// ─── ImportFile Tests ──────────────────────────────────────

func TestImportFile_DispatchesByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "obstacles.CSV")
	if err := os.WriteFile(path, []byte("Label,Start,Width\nOven,600,600\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportFile(path)

	if len(result.Obstacles) != 1 {
		t.Fatalf("expected 1 obstacle, got %d (errors: %v)", len(result.Obstacles), result.Errors)
	}
	if result.Obstacles[0].Label != "Oven" || result.Obstacles[0].X != 600 {
		t.Errorf("unexpected obstacle: %+v", result.Obstacles[0])
	}
}

func TestImportFile_UnsupportedExtension(t *testing.T) {
	result := ImportFile("layout.pdf")

	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], ".pdf") {
		t.Errorf("expected unsupported type error, got %v", result.Errors)
	}
}
