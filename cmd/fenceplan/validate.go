package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/e1isev/FencePlannerReplit2-sub001/internal/project"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a plan file for structural problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := loadPlan()
		if err != nil {
			return err
		}

		problems := project.ValidatePlan(plan)
		if len(problems) == 0 {
			fmt.Printf("%s: OK (%d runs, %d gates)\n", planPath, len(plan.Lines), len(plan.Gates))
			return nil
		}
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "%s: %s\n", planPath, p)
		}
		return fmt.Errorf("%d problem(s) found", len(problems))
	},
}
