package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/e1isev/FencePlannerReplit2-sub001/internal/engine"
	"github.com/e1isev/FencePlannerReplit2-sub001/internal/model"
	"github.com/e1isev/FencePlannerReplit2-sub001/internal/project"
)

var recalcCmd = &cobra.Command{
	Use:   "recalc",
	Short: "Recalculate panel layout, posts and gates for a plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		adoptPool, _ := cmd.Flags().GetBool("adopt-pool")

		plan, err := loadPlan()
		if err != nil {
			return err
		}

		result := engine.Recalculate(plan)

		if adoptPool {
			plan.Pool = result.Pool
			if err := project.SavePlan(planPath, plan); err != nil {
				return fmt.Errorf("failed to save plan: %w", err)
			}
		}

		if jsonOutput {
			return printResultJSON(plan, result)
		}
		printResultTable(plan, result)
		return nil
	},
}

func init() {
	recalcCmd.Flags().Bool("adopt-pool", false, "write the updated leftover pool back to the plan file")
}

// recalcReport is the JSON shape of a recalculation for scripting.
type recalcReport struct {
	Plan         string                 `json:"plan"`
	Segments     []model.PanelSegment   `json:"segments"`
	Posts        []model.Post           `json:"posts"`
	NewLeftovers []model.Leftover       `json:"new_leftovers"`
	Warnings     []string               `json:"warnings,omitempty"`
	GateFindings []string               `json:"gate_findings,omitempty"`
	Estimate     model.MaterialEstimate `json:"estimate"`
}

func printResultJSON(plan model.Plan, result engine.Result) error {
	report := recalcReport{
		Plan:         plan.Name,
		Segments:     result.Segments,
		Posts:        result.Posts,
		NewLeftovers: result.NewLeftovers,
		Warnings:     result.Warnings,
		GateFindings: result.GateFindings,
		Estimate:     model.EstimateMaterials(result.Segments, result.Posts, result.NewLeftovers, plan.Settings),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func printResultTable(plan model.Plan, result engine.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "Plan: %s\n\n", plan.Name)
	fmt.Fprintln(w, "RUN\tLENGTH\tMODE\tPANELS\tJOINTS")
	for i, line := range plan.Lines {
		mode := "fixed"
		if line.EvenSpacing {
			mode = "even"
		}
		segs := result.SegmentsByRun[line.ID]
		joints := 0
		if len(segs) > 1 {
			joints = len(segs) - 1
		}
		fmt.Fprintf(w, "%d\t%.0f mm\t%s\t%d\t%d\n", i+1, line.LengthMM, mode, len(segs), joints)
	}

	est := model.EstimateMaterials(result.Segments, result.Posts, result.NewLeftovers, plan.Settings)
	fmt.Fprintf(w, "\nPosts:\t%d end, %d corner, %d line\n", est.PostsEnd, est.PostsCorner, est.PostsLine)
	fmt.Fprintf(w, "Panels to purchase:\t%d (incl. %.0f%% waste)\n", est.PanelsWithWaste, est.WastePercent)
	fmt.Fprintf(w, "Estimated cost:\t%.2f\n", est.EstimatedCost)

	if avail := result.Pool.Available(); len(avail) > 0 {
		fmt.Fprintf(w, "Leftover pool:\t%d pieces\n", len(avail))
	}
	w.Flush()

	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}
	for _, finding := range result.GateFindings {
		fmt.Fprintf(os.Stderr, "gate: %s\n", finding)
	}
}
