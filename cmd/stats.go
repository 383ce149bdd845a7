package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newStatsCmd(opts *rootOptions) *cobra.Command {
	var flags selectionFlags

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show episode counts per season and the most frequent cast members",
		Long: `Prints the per-season episode counts under the rating and cast filters, scaled
against the busiest season of the unfiltered table, followed by the cast leaderboard.`,
		Example: `  episode-explorer stats
  episode-explorer stats --cast "Ice-T" --min-rating 7.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}
			sel, err := flags.selection(cmd, engine)
			if err != nil {
				return err
			}

			views := engine.Derive(sel)
			out := cmd.OutOrStdout()

			const barWidth = 30
			rows := make([][]string, 0, len(views.SeasonCounts))
			for _, sc := range views.SeasonCounts {
				n := 0
				if views.ChartMax > 0 {
					n = sc.Count * barWidth / views.ChartMax
				}
				rows = append(rows, []string{strconv.Itoa(sc.Season), strconv.Itoa(sc.Count), strings.Repeat("█", n)})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Season", "Episodes", fmt.Sprintf("0..%d", views.ChartMax)},
				rows,
				[]columnAlignment{alignRight, alignRight, alignLeft},
			))

			castRows := make([][]string, 0, len(views.TopCast))
			for i, name := range views.TopCast {
				castRows = append(castRows, []string{strconv.Itoa(i + 1), name})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Top Cast"},
				castRows,
				[]columnAlignment{alignRight, alignLeft},
			))
			return nil
		},
	}

	flags.register(cmd, false)

	return cmd
}
