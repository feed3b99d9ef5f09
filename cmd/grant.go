package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/footycards/card-market/cardmarket/database/repositories"
	"github.com/footycards/card-market/cardmarket/economy"
	"github.com/spf13/cobra"
)

var grantCmd = &cobra.Command{
	Use:   "grant <user_id> <amount>",
	Short: "Credit coins to an existing account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		userID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || userID <= 0 {
			return fmt.Errorf("invalid user id %q", args[0])
		}
		amount, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil || amount <= 0 {
			return fmt.Errorf("invalid amount %q", args[1])
		}

		_, db, err := connect(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		users := repositories.NewUserRepository(db.BunDB())
		if err := users.Credit(ctx, nil, userID, amount, economy.SystemClock{}.Now()); err != nil {
			return err
		}

		slog.Info("Balance granted",
			slog.String("type", "economy"),
			slog.Int64("user_id", userID),
			slog.Int64("amount", amount))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(grantCmd)
}
