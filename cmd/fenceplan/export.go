package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/e1isev/FencePlannerReplit2-sub001/internal/engine"
	"github.com/e1isev/FencePlannerReplit2-sub001/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <pdf|labels|xlsx|dxf> <output-file>",
	Short: "Export the recalculated plan to a document format",
	Long: `Export recalculates the plan and writes one of:

  pdf     site plan, per-run cut lists and material summary
  labels  QR-coded cut labels, one per panel segment (Avery 5160)
  xlsx    bill-of-materials workbook
  dxf     CAD drawing of runs, posts and gate return runs`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, outPath := args[0], args[1]

		plan, err := loadPlan()
		if err != nil {
			return err
		}
		result := engine.Recalculate(plan)

		switch format {
		case "pdf":
			err = export.ExportPDF(outPath, plan, result)
		case "labels":
			err = export.ExportLabels(outPath, plan, result)
		case "xlsx":
			err = export.ExportXLSX(outPath, plan, result)
		case "dxf":
			err = export.ExportDXF(outPath, plan, result)
		default:
			return fmt.Errorf("unknown export format %q (want pdf, labels, xlsx or dxf)", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		fmt.Printf("Exported %s to %s\n", format, outPath)
		return nil
	},
}
