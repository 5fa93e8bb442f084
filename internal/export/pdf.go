// Package export provides functionality for exporting fence layout results
// to various file formats.
package export

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-pdf/fpdf"

	"github.com/e1isev/FencePlannerReplit2-sub001/internal/engine"
	"github.com/e1isev/FencePlannerReplit2-sub001/internal/model"
)

// segColor represents an RGB color for a panel segment.
type segColor struct {
	R, G, B int
}

// segColors is the palette used to alternate panel segments along a run.
var segColors = []segColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// postColors maps post categories to their marker colors.
var postColors = map[model.PostCategory]segColor{
	model.PostEnd:    {R: 211, G: 47, B: 47},  // red
	model.PostCorner: {R: 245, G: 124, B: 0},  // amber
	model.PostLine:   {R: 56, G: 142, B: 60},  // green
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
	drawAreaTop  = marginTop + headerHeight + 5.0
	postRadius   = 1.6
)

// ExportPDF generates a PDF document for a recalculated plan: a site plan
// page with runs, posts and gate return runs drawn to scale, a cut list
// page per run, and a closing summary page with the material estimate.
func ExportPDF(path string, plan model.Plan, result engine.Result) error {
	if len(plan.Lines) == 0 {
		return fmt.Errorf("no runs to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderPlanPage(pdf, plan, result)

	for _, line := range plan.Lines {
		pdf.AddPage()
		renderRunPage(pdf, plan, line, result.SegmentsByRun[line.ID])
	}

	pdf.AddPage()
	renderSummaryPage(pdf, plan, result)

	return pdf.OutputFileAndClose(path)
}

// planBounds returns the bounding box of all run endpoints and return runs.
func planBounds(plan model.Plan, result engine.Result) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	grow := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	for _, l := range plan.Lines {
		grow(l.A.X, l.A.Y)
		grow(l.B.X, l.B.Y)
	}
	for _, rr := range result.ReturnRuns {
		grow(rr.Start.X, rr.Start.Y)
		grow(rr.End.X, rr.End.Y)
	}
	return minX, minY, maxX, maxY
}

// renderPlanPage draws the site plan to scale on the current page.
func renderPlanPage(pdf *fpdf.Fpdf, plan model.Plan, result engine.Result) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Site Plan: %s", plan.Name)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Runs: %d | Panels: %d | Posts: %d | Gates: %d",
		len(plan.Lines), len(result.Segments), len(result.Posts), len(plan.Gates))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	minX, minY, maxX, maxY := planBounds(plan, result)
	spanX := math.Max(maxX-minX, 1)
	spanY := math.Max(maxY-minY, 1)

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - 12
	scale := math.Min(drawWidth/spanX, drawHeight/spanY)

	offsetX := marginLeft + (drawWidth-spanX*scale)/2
	offsetY := drawAreaTop + (drawHeight-spanY*scale)/2
	toPage := func(x, y float64) (float64, float64) {
		return offsetX + (x-minX)*scale, offsetY + (y-minY)*scale
	}

	// Runs
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.6)
	for _, l := range plan.Lines {
		ax, ay := toPage(l.A.X, l.A.Y)
		bx, by := toPage(l.B.X, l.B.Y)
		pdf.Line(ax, ay, bx, by)

		// Run length annotation at the midpoint
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(80, 80, 80)
		label := fmt.Sprintf("%.2fm", l.LengthMM/1000)
		lw := pdf.GetStringWidth(label)
		pdf.SetXY((ax+bx)/2-lw/2, (ay+by)/2-4)
		pdf.CellFormat(lw, 3, label, "", 0, "C", false, 0, "")
	}

	// Sliding gate return runs, dashed
	pdf.SetDrawColor(25, 118, 210)
	pdf.SetLineWidth(0.4)
	pdf.SetDashPattern([]float64{1.5, 1.5}, 0)
	for _, rr := range result.ReturnRuns {
		sx, sy := toPage(rr.Start.X, rr.Start.Y)
		ex, ey := toPage(rr.End.X, rr.End.Y)
		pdf.Line(sx, sy, ex, ey)
	}
	pdf.SetDashPattern([]float64{}, 0)

	// Posts on top of everything
	for _, p := range result.Posts {
		col := postColors[p.Category]
		px, py := toPage(p.Pos.X, p.Pos.Y)
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.2)
		pdf.Circle(px, py, postRadius, "FD")
	}

	drawPostLegend(pdf, result.Posts, pageHeight-marginBottom-6)
	pdf.SetTextColor(0, 0, 0)
}

// drawPostLegend renders post counts by category along the page bottom.
func drawPostLegend(pdf *fpdf.Fpdf, posts []model.Post, y float64) {
	counts := map[model.PostCategory]int{}
	for _, p := range posts {
		counts[p.Category]++
	}

	pdf.SetFont("Helvetica", "", 8)
	xPos := marginLeft
	for _, cat := range []model.PostCategory{model.PostEnd, model.PostCorner, model.PostLine} {
		col := postColors[cat]
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Circle(xPos+2, y+2, 1.5, "F")

		label := fmt.Sprintf("%s posts: %d", cat, counts[cat])
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(xPos+5, y)
		pdf.CellFormat(40, 4, label, "", 0, "L", false, 0, "")
		xPos += 50
	}
}

// renderRunPage draws one run's panel layout bar and its cut list table.
func renderRunPage(pdf *fpdf.Fpdf, plan model.Plan, line model.Line, segments []model.PanelSegment) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	mode := "fixed"
	if line.EvenSpacing {
		mode = "even"
	}
	title := fmt.Sprintf("Run %s: %.0f mm (%s spacing)", line.ID, line.LengthMM, mode)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	if g := plan.GateForRun(line.ID); g != nil {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(marginLeft, marginTop+headerHeight)
		pdf.CellFormat(200, 5, fmt.Sprintf("Gate: %s (%s)", g.ID, g.Type), "", 0, "L", false, 0, "")
	}

	// Horizontal layout bar: the run drawn as a strip, segments colored.
	barY := drawAreaTop + 5
	barH := 14.0
	drawWidth := pageWidth - marginLeft - marginRight
	scale := drawWidth / math.Max(line.LengthMM, 1)

	for i, s := range segments {
		col := segColors[i%len(segColors)]
		sx := marginLeft + s.StartMM*scale
		sw := s.LengthMM * scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(sx, barY, sw, barH, "FD")

		if sw > 14 {
			pdf.SetFont("Helvetica", "", 7)
			pdf.SetTextColor(0, 0, 0)
			label := fmt.Sprintf("%.0f", s.LengthMM)
			lw := pdf.GetStringWidth(label)
			pdf.SetXY(sx+(sw-lw)/2, barY+barH/2-2)
			pdf.CellFormat(lw, 4, label, "", 0, "C", false, 0, "")
		}
	}

	// Cut list table
	y := barY + barH + 10
	colWidths := []float64{15, 40, 40, 40, 50, 40}
	headers := []string{"#", "Start (mm)", "End (mm)", "Length (mm)", "Source", "Remainder"}

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
	for i, s := range segments {
		source := "fresh panel"
		if s.UsesLeftoverID != "" {
			source = "leftover " + s.UsesLeftoverID
		}
		remainder := ""
		if s.IsRemainder {
			remainder = "yes"
		}
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.1f", s.StartMM),
			fmt.Sprintf("%.1f", s.EndMM),
			fmt.Sprintf("%.1f", s.LengthMM),
			source,
			remainder,
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos = marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}
}

// renderSummaryPage draws the final material estimate and findings page.
func renderSummaryPage(pdf *fpdf.Fpdf, plan model.Plan, result engine.Result) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Material Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	est := model.EstimateMaterials(result.Segments, result.Posts, result.NewLeftovers, plan.Settings)

	y := marginTop + 18
	summaryItems := []struct {
		label string
		value string
	}{
		{"Panel Segments", fmt.Sprintf("%d", est.SegmentCount)},
		{"Fresh Panels Cut", fmt.Sprintf("%d", est.FreshPanels)},
		{"Segments From Leftovers", fmt.Sprintf("%d", est.LeftoverCuts)},
		{"Panels To Purchase", fmt.Sprintf("%d (incl. %.0f%% waste)", est.PanelsWithWaste, est.WastePercent)},
		{"Posts", fmt.Sprintf("%d end / %d corner / %d line", est.PostsEnd, est.PostsCorner, est.PostsLine)},
		{"Reusable Offcuts", fmt.Sprintf("%.0f mm", est.ReusableMM)},
		{"Waste", fmt.Sprintf("%.0f mm", est.WasteMM)},
		{"Estimated Cost", fmt.Sprintf("%.2f", est.EstimatedCost)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(70, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(80, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	// Leftover pool state after this pass, largest first.
	available := result.Pool.Available()
	sort.Slice(available, func(i, j int) bool { return available[i].LengthMM > available[j].LengthMM })
	if len(available) > 0 {
		y += 5
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(100, 7, "Leftover Pool", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		for _, lo := range available {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(200, 5, fmt.Sprintf("- %s: %.1f mm", lo.ID, lo.LengthMM), "", 0, "L", false, 0, "")
			y += 5
		}
	}

	y = renderFindings(pdf, "Warnings", result.Warnings, y)
	renderFindings(pdf, "Gate Findings", result.GateFindings, y)

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by FencePlan - Fence Run Layout Engine", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// renderFindings prints a titled message list and returns the next y.
func renderFindings(pdf *fpdf.Fpdf, title string, messages []string, y float64) float64 {
	if len(messages) == 0 {
		return y
	}
	y += 8
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(200, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(200, 7, title, "", 0, "L", false, 0, "")
	y += 8

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, msg := range messages {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(250, 5, "- "+msg, "", 0, "L", false, 0, "")
		y += 5
	}
	return y
}
