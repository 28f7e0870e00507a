package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prefeitura-rio/app-research-agent/internal/models"
	"github.com/prefeitura-rio/app-research-agent/internal/utils"
)

// smokeQuery is searched when no query is given
const smokeQuery = "electron learning"

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search arXiv with a raw query",
	Long: `Search sends the query to arXiv as-is, without LLM rewriting. Field prefixes
such as ti:, au:, abs: and cat: are supported.

Without a query it runs a smoke search for "electron learning".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			query = smokeQuery
		}
		maxResults, _ := cmd.Flags().GetInt("max-results")
		asJSON, _ := cmd.Flags().GetBool("json")

		router, err := newRouter(cmd.Context())
		if err != nil {
			return err
		}

		results, err := router.Search(cmd.Context(), query, maxResults)
		if err != nil {
			return fmt.Errorf("%s: %w", models.ErrorCode(err), err)
		}
		return printResults(results, asJSON)
	},
}

func printResults(results []models.SearchResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "no papers found")
		return nil
	}
	fmt.Println(utils.FormatSearchResults(results))
	return nil
}

func init() {
	searchCmd.Flags().Int("max-results", models.DefaultPassthroughMaxResults, "number of papers to return (1-50)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
