package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/e1isev/FencePlannerReplit2-sub001/internal/engine"
	"github.com/e1isev/FencePlannerReplit2-sub001/internal/model"
)

// LabelInfo holds the data encoded into each panel segment's QR code.
type LabelInfo struct {
	SegmentID   string  `json:"segment"`
	RunID       string  `json:"run"`
	RunIndex    int     `json:"run_index"`
	LengthMM    float64 `json:"length_mm"`
	StartMM     float64 `json:"start_mm"`
	FromOffcut  string  `json:"from_offcut,omitempty"`
	IsRemainder bool    `json:"remainder,omitempty"`
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

// ExportLabels generates a PDF of QR-coded labels, one per panel segment.
// Each label carries the segment's run, position and length plus a QR code
// encoding the same data as JSON, so a cut piece can be matched back to
// its place in the plan on site. Labels are laid out on a standard label
// sheet format (Avery 5160 / 3 columns x 10 rows on US Letter).
func ExportLabels(path string, plan model.Plan, result engine.Result) error {
	labels := CollectLabelInfos(plan, result)
	if len(labels) == 0 {
		return fmt.Errorf("no panel segments to generate labels for")
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

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for segment %q: %w", label.SegmentID, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border for cutting guide
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

	imgName := fmt.Sprintf("qr_%s", info.SegmentID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Segment id and run
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, fmt.Sprintf("Run %d  %s", info.RunIndex, info.SegmentID), "", 1, "L", false, 0, "")

	// Cut length
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("Cut %.1f mm", info.LengthMM), "", 1, "L", false, 0, "")

	// Position along the run
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pdf.CellFormat(textW, 3, fmt.Sprintf("@ %.0f mm from run start", info.StartMM), "", 1, "L", false, 0, "")

	// Material source hint
	if info.FromOffcut != "" || info.IsRemainder {
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(150, 100, 0)
		hint := "Remainder cut"
		if info.FromOffcut != "" {
			hint = "From offcut " + info.FromOffcut
		}
		pdf.CellFormat(textW, 3, hint, "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos extracts label information from a recalculation result,
// in run order.
func CollectLabelInfos(plan model.Plan, result engine.Result) []LabelInfo {
	var labels []LabelInfo
	for runIdx, line := range plan.Lines {
		for _, s := range result.SegmentsByRun[line.ID] {
			labels = append(labels, LabelInfo{
				SegmentID:   s.ID,
				RunID:       s.RunID,
				RunIndex:    runIdx + 1,
				LengthMM:    s.LengthMM,
				StartMM:     s.StartMM,
				FromOffcut:  s.UsesLeftoverID,
				IsRemainder: s.IsRemainder,
			})
		}
	}
	return labels
}
