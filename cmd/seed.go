package cmd

import (
	"log/slog"

	"github.com/footycards/card-market/cardmarket/database/repositories"
	"github.com/footycards/card-market/cardmarket/seed"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file.toml>",
	Short: "Import collections, cards and packs from a TOML catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		f, err := seed.Load(args[0])
		if err != nil {
			return err
		}

		_, db, err := connect(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.InitializeSchema(ctx); err != nil {
			return err
		}

		bunDB := db.BunDB()
		importer := seed.NewImporter(
			repositories.NewCardRepository(bunDB),
			repositories.NewCollectionRepository(bunDB),
			repositories.NewPackRepository(bunDB),
		)

		summary, err := importer.Import(ctx, f)
		if err != nil {
			slog.Error("Seed failed", slog.Any("error", err))
			return err
		}

		cmd.Printf("created %d collections, %d cards, upserted %d packs\n",
			summary.Collections, summary.Cards, summary.Packs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
