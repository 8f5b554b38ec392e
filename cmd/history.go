package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/user/crush-cli/db"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent cuts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		database, err := db.Open()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		cuts, err := db.SelectCuts(database, limit)
		if err != nil {
			return err
		}
		if len(cuts) == 0 {
			fmt.Println("No cuts recorded yet.")
			return nil
		}
		return printCuts(os.Stdout, cuts)
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete finished cuts from the history",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		n, err := db.DeleteFinishedCuts(database)
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d cut(s).\n", n)
		return nil
	},
}

// printCuts writes one row per cut: when, status, range, quality, size and
// either the output path or the failure reason.
func printCuts(out io.Writer, cuts []db.Cut) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tSTATUS\tRANGE\tQUALITY\tSIZE\tRESULT")
	for _, c := range cuts {
		size := "-"
		if c.Filesize > 0 {
			size = humanize.IBytes(uint64(c.Filesize))
		}
		result := c.OutputPath
		if c.ArchivePath != "" {
			result += " (+zip)"
		}
		if c.Status == db.StatusError || c.Status == db.StatusCancelled {
			result = truncate(c.Log, 60)
		}
		rng := c.Start + "-" + c.End
		if c.Entire && c.Status != db.StatusComplete {
			rng = "entire"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, humanize.Time(c.CreatedAt), c.Status, rng, c.Quality, size, result)
	}
	return w.Flush()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func init() {
	historyCmd.Flags().IntP("limit", "l", 20, "number of cuts to show")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
