package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/e1isev/FencePlannerReplit2-sub001/internal/engine"
	"github.com/e1isev/FencePlannerReplit2-sub001/internal/model"
)

// ExportXLSX writes a bill-of-materials workbook for a recalculated plan
// with three sheets: Cut List, Posts, and Summary.
func ExportXLSX(path string, plan model.Plan, result engine.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	const cutSheet = "Cut List"
	if err := f.SetSheetName("Sheet1", cutSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := writeCutList(f, cutSheet, plan, result); err != nil {
		return err
	}
	if err := writePostsSheet(f, result); err != nil {
		return err
	}
	if err := writeLeftoversSheet(f, result); err != nil {
		return err
	}
	if err := writeSummarySheet(f, plan, result); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writeCutList(f *excelize.File, sheet string, plan model.Plan, result engine.Result) error {
	header := []interface{}{"Run", "Segment", "Start (mm)", "End (mm)", "Length (mm)", "Source", "Remainder"}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	rowNum := 2
	for runIdx, line := range plan.Lines {
		for _, s := range result.SegmentsByRun[line.ID] {
			source := "fresh panel"
			if s.UsesLeftoverID != "" {
				source = "leftover " + s.UsesLeftoverID
			}
			remainder := ""
			if s.IsRemainder {
				remainder = "yes"
			}
			row := []interface{}{runIdx + 1, s.ID, s.StartMM, s.EndMM, s.LengthMM, source, remainder}
			if err := setRow(f, sheet, rowNum, row); err != nil {
				return err
			}
			rowNum++
		}
	}
	return nil
}

func writePostsSheet(f *excelize.File, result engine.Result) error {
	const sheet = "Posts"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	if err := setRow(f, sheet, 1, []interface{}{"Post", "Category", "X (mm)", "Y (mm)"}); err != nil {
		return err
	}
	for i, p := range result.Posts {
		row := []interface{}{p.ID, string(p.Category), p.Pos.X, p.Pos.Y}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeLeftoversSheet(f *excelize.File, result engine.Result) error {
	const sheet = "Leftovers"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	if err := setRow(f, sheet, 1, []interface{}{"Offcut", "Length (mm)", "State"}); err != nil {
		return err
	}
	for i, l := range result.Pool.Items {
		state := "available"
		if l.Consumed {
			state = "consumed"
		}
		if err := setRow(f, sheet, i+2, []interface{}{l.ID, l.LengthMM, state}); err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, plan model.Plan, result engine.Result) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	est := model.EstimateMaterials(result.Segments, result.Posts, result.NewLeftovers, plan.Settings)

	rows := [][]interface{}{
		{"Plan", plan.Name},
		{"Runs", len(plan.Lines)},
		{"Panel segments", est.SegmentCount},
		{"Fresh panels cut", est.FreshPanels},
		{"Segments from leftovers", est.LeftoverCuts},
		{"Panels to purchase", est.PanelsWithWaste},
		{"Waste allowance (%)", est.WastePercent},
		{"End posts", est.PostsEnd},
		{"Corner posts", est.PostsCorner},
		{"Line posts", est.PostsLine},
		{"Total cut (mm)", est.TotalCutMM},
		{"Reusable offcuts (mm)", est.ReusableMM},
		{"Waste (mm)", est.WasteMM},
		{"Estimated cost", est.EstimatedCost},
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+1, row); err != nil {
			return err
		}
	}

	rowNum := len(rows) + 2
	for _, w := range result.Warnings {
		if err := setRow(f, sheet, rowNum, []interface{}{"Warning", w}); err != nil {
			return err
		}
		rowNum++
	}
	for _, g := range result.GateFindings {
		if err := setRow(f, sheet, rowNum, []interface{}{"Gate", g}); err != nil {
			return err
		}
		rowNum++
	}
	return nil
}
