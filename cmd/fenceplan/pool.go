package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/e1isev/FencePlannerReplit2-sub001/internal/model"
	"github.com/e1isev/FencePlannerReplit2-sub001/internal/project"
)

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Manage the plan's leftover pool",
}

var poolListCmd = &cobra.Command{
	Use:   "list",
	Short: "List offcuts in the pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := loadPlan()
		if err != nil {
			return err
		}

		if len(plan.Pool.Items) == 0 {
			fmt.Println("Pool is empty")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tLENGTH\tSTATE")
		for _, l := range plan.Pool.Items {
			state := "available"
			if l.Consumed {
				state = "consumed"
			}
			fmt.Fprintf(w, "%s\t%.1f mm\t%s\n", l.ID, l.LengthMM, state)
		}
		return w.Flush()
	},
}

var poolAddCmd = &cobra.Command{
	Use:   "add <length-mm>",
	Short: "Register an offcut in the pool",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		length, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid length %q: %w", args[0], err)
		}
		if length < model.MinLeftoverLength {
			return fmt.Errorf("offcuts under %.0f mm are scrap", model.MinLeftoverLength)
		}

		plan, err := loadPlan()
		if err != nil {
			return err
		}

		leftover := model.NewLeftover(length)
		plan.Pool.Add(leftover)
		if err := project.SavePlan(planPath, plan); err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}

		fmt.Printf("Added offcut %s (%.1f mm)\n", leftover.ID, leftover.LengthMM)
		return nil
	},
}

var poolPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Drop consumed offcuts from the pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := loadPlan()
		if err != nil {
			return err
		}

		kept := plan.Pool.Items[:0]
		removed := 0
		for _, l := range plan.Pool.Items {
			if l.Consumed {
				removed++
				continue
			}
			kept = append(kept, l)
		}
		plan.Pool.Items = kept

		if err := project.SavePlan(planPath, plan); err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}
		fmt.Printf("Removed %d consumed offcut(s)\n", removed)
		return nil
	},
}

func init() {
	poolCmd.AddCommand(poolListCmd)
	poolCmd.AddCommand(poolAddCmd)
	poolCmd.AddCommand(poolPruneCmd)
}
