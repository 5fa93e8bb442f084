package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/e1isev/FencePlannerReplit2-sub001/internal/engine"
	"github.com/e1isev/FencePlannerReplit2-sub001/internal/model"
)

func TestExportXLSX_CreatesWorkbook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.xlsx")

	plan := buildTestPlan()
	result := engine.Recalculate(plan)

	if err := ExportXLSX(path, plan, result); err != nil {
		t.Fatalf("ExportXLSX returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("cannot reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{"Cut List", "Posts", "Leftovers", "Summary"}
	if len(sheets) != len(want) {
		t.Fatalf("got sheets %v, want %v", sheets, want)
	}
	for i, name := range want {
		if sheets[i] != name {
			t.Errorf("sheet %d = %q, want %q", i, sheets[i], name)
		}
	}
}

func TestExportXLSX_CutListRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.xlsx")

	plan := buildTestPlan()
	result := engine.Recalculate(plan)

	if err := ExportXLSX(path, plan, result); err != nil {
		t.Fatalf("ExportXLSX returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("cannot reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Cut List")
	if err != nil {
		t.Fatalf("cannot read Cut List: %v", err)
	}
	// Header plus one row per segment
	if got, want := len(rows), len(result.Segments)+1; got != want {
		t.Errorf("Cut List has %d rows, want %d", got, want)
	}
	if rows[0][0] != "Run" {
		t.Errorf("first header cell = %q, want Run", rows[0][0])
	}
}

func TestExportXLSX_PostsRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.xlsx")

	plan := buildTestPlan()
	result := engine.Recalculate(plan)

	if err := ExportXLSX(path, plan, result); err != nil {
		t.Fatalf("ExportXLSX returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("cannot reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Posts")
	if err != nil {
		t.Fatalf("cannot read Posts: %v", err)
	}
	if got, want := len(rows), len(result.Posts)+1; got != want {
		t.Errorf("Posts has %d rows, want %d", got, want)
	}
}

func TestExportXLSX_EmptyPlanStillSaves(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.xlsx")

	plan := model.NewPlan()
	result := engine.Recalculate(plan)

	// An empty BOM is still a valid workbook, unlike the drawings
	if err := ExportXLSX(path, plan, result); err != nil {
		t.Fatalf("ExportXLSX returned error: %v", err)
	}
}
