package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create tables, indexes and constraints",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		_, db, err := connect(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.InitializeSchema(ctx); err != nil {
			slog.Error("Schema initialization failed", slog.Any("error", err))
			return err
		}

		slog.Info("Schema is up to date")
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Truncate every application table",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			slog.Warn("Refusing to reset without --yes")
			return nil
		}

		_, db, err := connect(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		return db.ResetAppTables(ctx)
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "confirm truncating all tables")
	rootCmd.AddCommand(schemaCmd, resetCmd)
}
