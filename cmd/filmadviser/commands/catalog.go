package commands

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"filmadviser/internal/domain/catalog"

	"github.com/spf13/cobra"
)

var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "Browse the movie catalog",
}

var serialsCmd = &cobra.Command{
	Use:   "serials",
	Short: "Browse the serial catalog",
}

func listCmd(kind catalog.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List all %ss", kind),
		RunE: func(cmd *cobra.Command, args []string) error {
			titles, err := newClient().ListTitles(cmd.Context(), kind)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tYEAR\tGENRE\tRATING")
			for _, t := range titles {
				fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%.2f\n",
					t.ID, t.Title, t.ProductionYear, t.Genre, t.Rating)
			}
			return w.Flush()
		},
	}
}

func showCmd(kind catalog.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: fmt.Sprintf("Show one %s", kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}

			t, err := newClient().GetTitle(cmd.Context(), kind, uint(id))
			if err != nil {
				return err
			}

			fmt.Printf("%s (%d)\n", t.Title, t.ProductionYear)
			fmt.Printf("  Rating:     %.2f\n", t.Rating)
			fmt.Printf("  Duration:   %d min\n", t.Duration)
			fmt.Printf("  Country:    %s\n", t.Country)
			fmt.Printf("  Genre:      %s\n", t.Genre)
			fmt.Printf("  Director:   %s\n", t.Director)
			fmt.Printf("  Age rating: %d+\n", t.AgeRating)
			if t.MainRoles != "" {
				fmt.Printf("  Cast:       %s\n", t.MainRoles)
			}
			if t.Description != "" {
				fmt.Printf("\n%s\n", t.Description)
			}
			return nil
		},
	}
}

func init() {
	moviesCmd.AddCommand(listCmd(catalog.KindMovie), showCmd(catalog.KindMovie))
	serialsCmd.AddCommand(listCmd(catalog.KindSerial), showCmd(catalog.KindSerial))
	rootCmd.AddCommand(moviesCmd, serialsCmd)
}
