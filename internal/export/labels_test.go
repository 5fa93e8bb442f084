package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/e1isev/FencePlannerReplit2-sub001/internal/engine"
	"github.com/e1isev/FencePlannerReplit2-sub001/internal/geom"
	"github.com/e1isev/FencePlannerReplit2-sub001/internal/model"
)

func TestCollectLabelInfos(t *testing.T) {
	plan := buildTestPlan()
	result := engine.Recalculate(plan)

	labels := CollectLabelInfos(plan, result)
	if len(labels) != len(result.Segments) {
		t.Fatalf("got %d labels, want one per segment (%d)", len(labels), len(result.Segments))
	}

	// Labels follow run order and carry the segment's run id
	if labels[0].RunIndex != 1 {
		t.Errorf("first label RunIndex = %d, want 1", labels[0].RunIndex)
	}
	if labels[0].RunID != plan.Lines[0].ID {
		t.Errorf("first label RunID = %q, want %q", labels[0].RunID, plan.Lines[0].ID)
	}
	for _, l := range labels {
		if l.LengthMM <= 0 {
			t.Errorf("label %s has non-positive length %v", l.SegmentID, l.LengthMM)
		}
	}
}

func TestCollectLabelInfos_MarksOffcutSource(t *testing.T) {
	plan := model.NewPlan()
	plan.Lines = []model.Line{model.NewLine(geom.Pt(0, 0), geom.Pt(1500, 0))}
	plan.Pool = model.NewLeftoverPool(model.NewLeftover(2000))
	result := engine.Recalculate(plan)

	labels := CollectLabelInfos(plan, result)
	if len(labels) != 1 {
		t.Fatalf("got %d labels, want 1", len(labels))
	}
	if labels[0].FromOffcut == "" {
		t.Error("segment cut from the pool should carry its offcut id")
	}
}

func TestExportLabels_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	plan := buildTestPlan()
	result := engine.Recalculate(plan)

	if err := ExportLabels(path, plan, result); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("labels PDF was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("labels PDF is empty")
	}
}

func TestExportLabels_EmptyPlan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	plan := model.NewPlan()
	result := engine.Recalculate(plan)

	if err := ExportLabels(path, plan, result); err == nil {
		t.Fatal("expected error when no segments exist, got nil")
	}
}

func TestExportLabels_MultiPage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels_multi.pdf")

	// Enough runs to spill past one label sheet (30 labels per page)
	plan := model.NewPlan()
	for i := 0; i < 16; i++ {
		y := float64(i) * 1000
		plan.Lines = append(plan.Lines, model.NewLine(geom.Pt(0, y), geom.Pt(5500, y)))
	}
	result := engine.Recalculate(plan)

	if len(result.Segments) <= labelsPerPage {
		t.Fatalf("fixture too small: %d segments", len(result.Segments))
	}

	if err := ExportLabels(path, plan, result); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("labels PDF missing or empty: %v", err)
	}
}
