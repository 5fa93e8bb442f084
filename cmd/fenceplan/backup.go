package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/e1isev/FencePlannerReplit2-sub001/internal/project"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export or restore the plan and settings as one file",
}

var backupExportCmd = &cobra.Command{
	Use:   "export <backup.json>",
	Short: "Write plan and app config to a single backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := loadPlan()
		if err != nil {
			return err
		}
		if err := project.ExportAllData(args[0], appConfig, plan); err != nil {
			return fmt.Errorf("backup failed: %w", err)
		}
		fmt.Printf("Backed up plan and settings to %s\n", args[0])
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <backup.json>",
	Short: "Restore plan and app config from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := project.ImportAllData(args[0])
		if err != nil {
			return fmt.Errorf("restore failed: %w", err)
		}

		if err := project.SavePlan(planPath, data.Plan); err != nil {
			return fmt.Errorf("failed to write plan: %w", err)
		}
		if err := project.SaveAppConfig(configPath, data.Config); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		fmt.Printf("Restored backup from %s (created %s)\n", args[0], data.CreatedAt)
		return nil
	},
}

func init() {
	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupRestoreCmd)
}
