package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/e1isev/FencePlannerReplit2-sub001/internal/importer"
	"github.com/e1isev/FencePlannerReplit2-sub001/internal/model"
	"github.com/e1isev/FencePlannerReplit2-sub001/internal/project"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv|file.xlsx>",
	Short: "Import fence runs from a CSV or Excel run list",
	Long: `Import reads a run list and appends its runs and gates to the plan.
Columns are matched by header name (label, length, spacing, gate); files
without a header are read positionally. With --new the plan file is
created fresh instead of appended to.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fresh, _ := cmd.Flags().GetBool("new")
		path := args[0]

		var result importer.ImportResult
		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv", ".txt":
			result = importer.ImportCSV(path)
		case ".xlsx":
			result = importer.ImportExcel(path)
		default:
			return fmt.Errorf("unsupported file type %q (want .csv or .xlsx)", filepath.Ext(path))
		}

		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "error: %s\n", e)
		}
		if len(result.Lines) == 0 {
			return fmt.Errorf("no runs imported from %s", path)
		}

		var plan model.Plan
		if fresh {
			plan = model.NewPlan()
			plan.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			appConfig.ApplyToSettings(&plan.Settings)
		} else {
			loaded, err := project.LoadPlan(planPath)
			if err != nil {
				if !os.IsNotExist(err) {
					return fmt.Errorf("failed to load plan %s: %w", planPath, err)
				}
				loaded = model.NewPlan()
				appConfig.ApplyToSettings(&loaded.Settings)
			}
			plan = loaded
		}

		plan.Lines = append(plan.Lines, result.Lines...)
		plan.Gates = append(plan.Gates, result.Gates...)

		if err := project.SavePlan(planPath, plan); err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}

		fmt.Printf("Imported %d run(s) and %d gate(s) into %s\n", len(result.Lines), len(result.Gates), planPath)
		return nil
	},
}

func init() {
	importCmd.Flags().Bool("new", false, "start a fresh plan instead of appending")
}
