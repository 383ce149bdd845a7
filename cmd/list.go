package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/episode-explorer/internal/browser"
	"github.com/spf13/cobra"
)

// selectionFlags mirror the dashboard controls on the command line
type selectionFlags struct {
	season    int
	search    string
	minRating float64
	maxRating float64
	cast      string
}

func (f *selectionFlags) register(cmd *cobra.Command, withSeason bool) {
	if withSeason {
		cmd.Flags().IntVarP(&f.season, "season", "s", 0, "Season to browse (default: first season)")
		cmd.Flags().StringVarP(&f.search, "search", "q", "", "Search title, description and cast across all seasons")
	}
	cmd.Flags().Float64Var(&f.minRating, "min-rating", 0, "Lowest rating to include (default: lowest observed)")
	cmd.Flags().Float64Var(&f.maxRating, "max-rating", 0, "Highest rating to include (default: highest observed)")
	cmd.Flags().StringVar(&f.cast, "cast", "", "Only episodes featuring this cast member")
}

// selection builds a selection from the flags that were set. Unset flags
// keep the defaults.
func (f *selectionFlags) selection(cmd *cobra.Command, engine *browser.Engine) (browser.Selection, error) {
	d := engine.Domain()
	sel := engine.DefaultSelection()

	if cmd.Flags().Changed("season") && !sel.SelectSeason(d, f.season) {
		return sel, fmt.Errorf("unknown season %d (available: %s)", f.season, joinInts(d.Seasons))
	}
	sel.SetSearch(f.search)

	if cmd.Flags().Changed("min-rating") || cmd.Flags().Changed("max-rating") {
		r := d.Ratings
		if cmd.Flags().Changed("min-rating") {
			r.Lo = f.minRating
		}
		if cmd.Flags().Changed("max-rating") {
			r.Hi = f.maxRating
		}
		if r.Lo > r.Hi {
			return sel, fmt.Errorf("--min-rating %.1f is above --max-rating %.1f", r.Lo, r.Hi)
		}
		sel.SetRating(d, r)
	}

	if f.cast != "" {
		sel.ToggleCast(f.cast)
	}
	return sel, nil
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var flags selectionFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the episodes matching a selection",
		Example: `  # Episodes of season 3
  episode-explorer list --season 3

  # Search every season, highly rated only
  episode-explorer list --search "serial" --min-rating 8

  # Season 1 episodes featuring a cast member, as JSON
  episode-explorer list --cast "Dann Florek" --json`,
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

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			}

			fmt.Fprintln(out, views.Header.Title)
			if views.Header.Detail != "" {
				fmt.Fprintln(out, views.Header.Detail)
			}

			rows := make([][]string, 0, len(views.Episodes))
			for _, ep := range views.Episodes {
				rating := "-"
				if ep.Rating != nil {
					rating = fmt.Sprintf("%.1f/10", *ep.Rating)
				}
				rows = append(rows, []string{ep.Code(), ep.Title, ep.AirDate, rating, strings.Join(ep.MainCast, ", ")})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Episode", "Title", "Air Date", "Rating", "Main Cast"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	flags.register(cmd, true)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print all views as JSON")

	return cmd
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
