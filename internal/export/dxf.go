package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/table"

	"github.com/e1isev/FencePlannerReplit2-sub001/internal/engine"
	"github.com/e1isev/FencePlannerReplit2-sub001/internal/model"
)

// Post marker radius in drawing units (mm).
const dxfPostRadius = 40.0

// dxfPostLayers maps post categories to their layer name and color.
var dxfPostLayers = map[model.PostCategory]struct {
	name  string
	color color.ColorNumber
}{
	model.PostEnd:    {"POSTS_END", color.Red},
	model.PostCorner: {"POSTS_CORNER", color.Yellow},
	model.PostLine:   {"POSTS_LINE", color.Green},
}

// ExportDXF writes the site plan as a DXF drawing in mm units: fence runs
// on a RUNS layer, posts as circles on per-category layers, and sliding
// gate return runs on a dashed GATE_RETURNS layer. The file can be opened
// in any CAD package for site overlays.
func ExportDXF(path string, plan model.Plan, result engine.Result) error {
	if len(plan.Lines) == 0 {
		return fmt.Errorf("no runs to export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("RUNS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add RUNS layer: %w", err)
	}
	for _, l := range plan.Lines {
		if _, err := d.Line(l.A.X, l.A.Y, 0, l.B.X, l.B.Y, 0); err != nil {
			return fmt.Errorf("failed to draw run %s: %w", l.ID, err)
		}
	}

	for _, cat := range []model.PostCategory{model.PostEnd, model.PostCorner, model.PostLine} {
		layer := dxfPostLayers[cat]
		if _, err := d.AddLayer(layer.name, layer.color, dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("failed to add %s layer: %w", layer.name, err)
		}
		for _, p := range result.Posts {
			if p.Category != cat {
				continue
			}
			if _, err := d.Circle(p.Pos.X, p.Pos.Y, 0, dxfPostRadius); err != nil {
				return fmt.Errorf("failed to draw post %s: %w", p.ID, err)
			}
		}
	}

	if len(result.ReturnRuns) > 0 {
		if _, err := d.AddLayer("GATE_RETURNS", color.Cyan, table.LT_HIDDEN, true); err != nil {
			return fmt.Errorf("failed to add GATE_RETURNS layer: %w", err)
		}
		for gateID, rr := range result.ReturnRuns {
			if _, err := d.Line(rr.Start.X, rr.Start.Y, 0, rr.End.X, rr.End.Y, 0); err != nil {
				return fmt.Errorf("failed to draw return run for gate %s: %w", gateID, err)
			}
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}
