// fenceplan is the command line interface to the fence run layout engine:
// it recalculates plans, imports run lists, and exports drawings and
// bills of materials.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/e1isev/FencePlannerReplit2-sub001/internal/model"
	"github.com/e1isev/FencePlannerReplit2-sub001/internal/project"
)

var (
	planPath   string
	configPath string
	jsonOutput bool

	appConfig model.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "fenceplan <command>",
	Short: "Fence run layout engine",
	Long: `fenceplan allocates stock panels along fence runs, reuses offcuts,
places posts at run vertices and panel joints, and validates gates.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := project.LoadAppConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		appConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&planPath, "plan", "p", "plan.json", "plan file")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", project.DefaultConfigPath(), "app config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	rootCmd.AddCommand(recalcCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(poolCmd)
	rootCmd.AddCommand(backupCmd)
}

// loadPlan reads the plan named by --plan and records it as recently used.
func loadPlan() (model.Plan, error) {
	plan, err := project.LoadPlan(planPath)
	if err != nil {
		return model.Plan{}, fmt.Errorf("failed to load plan %s: %w", planPath, err)
	}
	appConfig.AddRecentProject(planPath)
	if err := project.SaveAppConfig(configPath, appConfig); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not update config: %v\n", err)
	}
	return plan, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
