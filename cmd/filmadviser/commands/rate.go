package commands

import (
	"fmt"
	"strconv"

	"filmadviser/internal/domain/catalog"

	"github.com/spf13/cobra"
)

var rateKind string

var rateCmd = &cobra.Command{
	Use:   "rate <id> <value>",
	Short: "Rate a title from 1 to 10 (requires --token)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		value, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid rating %q", args[1])
		}

		kind, ok := catalog.ParseKind(rateKind)
		if !ok {
			return fmt.Errorf("invalid kind %q: want movies or serials", rateKind)
		}

		rating, err := newClient().Rate(cmd.Context(), kind, uint(id), value)
		if err != nil {
			return err
		}
		fmt.Printf("Saved: %s %d rated %d\n", rating.TitleKind, rating.TitleID, rating.Value)
		return nil
	},
}

var ratingsCmd = &cobra.Command{
	Use:   "ratings <userId>",
	Short: "List a user's ratings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}

		list, err := newClient().RatingsForUser(cmd.Context(), uint(userID))
		if err != nil {
			return err
		}
		for _, r := range list {
			fmt.Printf("%s %d: %d\n", r.TitleKind, r.TitleID, r.Value)
		}
		return nil
	},
}

func init() {
	rateCmd.Flags().StringVar(&rateKind, "kind", "movies", "What to rate: movies or serials")
	rootCmd.AddCommand(rateCmd, ratingsCmd)
}
