package cmd

import (
	"context"
	"time"

	"newpunch-journalist/internal/headlines"
	"newpunch-journalist/internal/redisclient"
	"newpunch-journalist/internal/render"

	"github.com/spf13/cobra"
)

var (
	queryType    string
	queryCount   int
	querySortKey string
	queryFormat  string
)

// queryCmd prints the ranked headlines of one category.
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Print the top headlines of a category",
	Example: `  newpunch-journalist query --type polidicks --count 5 --sort views
  newpunch-journalist query --format yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		recs, err := newQueryService(cfg, newStore(cfg, rdb)).Top(ctx, headlines.Query{
			Type:    queryType,
			Count:   queryCount,
			SortKey: querySortKey,
		})
		if err != nil {
			return err
		}
		return render.Threads(cmd.OutOrStdout(), queryFormat, recs)
	},
}

func init() {
	queryCmd.Flags().StringVarP(&queryType, "type", "t", "sensationalist", "category: sensationalist or polidicks")
	queryCmd.Flags().IntVarP(&queryCount, "count", "n", headlines.DefaultCount, "number of headlines")
	queryCmd.Flags().StringVarP(&querySortKey, "sort", "s", "lastPostTime", "sort key: created, subscribers, views, replies, lastPostTime")
	queryCmd.Flags().StringVarP(&queryFormat, "format", "o", "table", "output format: table, json, yaml")
	rootCmd.AddCommand(queryCmd)
}
