package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/listenupapp/listenup-client/internal/client/search"
)

var (
	searchLimit int
	searchType  string
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search books, contributors and series",
	Long: `Search the library. While the server is reachable results come
from its fuzzy search; offline the local index answers with prefix
matches instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, cleanup, err := newApp(ctx, true)
		if err != nil {
			return err
		}
		defer cleanup()

		a.monitor.Probe(ctx)

		query := strings.Join(args, " ")
		token := a.sess.AccessToken

		var results *search.Results
		switch searchType {
		case "", "all":
			results, err = a.repo.Search(ctx, token, query, searchLimit)
		case "book", "books":
			results, err = a.repo.SearchBooks(ctx, token, query, searchLimit)
		case "contributor", "contributors":
			results, err = a.repo.SearchContributors(ctx, token, query, searchLimit)
		case "series":
			results, err = a.repo.SearchSeries(ctx, token, query, searchLimit)
		default:
			return fmt.Errorf("unknown search type %q (book, contributor or series)", searchType)
		}
		if err != nil {
			return err
		}

		if len(results.Items) == 0 {
			a.io.Println("No results.")
		}
		for _, item := range results.Items {
			if item.Subtitle != "" {
				a.io.Printf("%-12s  %s: %s  (%s)\n", item.Type, item.Name, item.Subtitle, item.ID)
			} else {
				a.io.Printf("%-12s  %s  (%s)\n", item.Type, item.Name, item.ID)
			}
		}
		if results.IsOfflineResult {
			a.io.Printf("(offline results, %s)\n", results.Elapsed.Round(time.Millisecond))
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "maximum number of results")
	searchCmd.Flags().StringVar(&searchType, "type", "", "restrict to book, contributor or series")
}
