package cmd

import (
	"context"
	"time"

	"newpunch-journalist/internal/model"
	"newpunch-journalist/internal/redisclient"
	"newpunch-journalist/internal/render"

	"github.com/spf13/cobra"
)

// redisCmd groups Redis-related subcommands.
var redisCmd = &cobra.Command{
	Use:   "redis",
	Short: "Inspect the Redis server holding the headline tables",
}

// tablesCmd shows where each category's table lives and how many threads it holds.
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the category tables with their record counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		store := newStore(cfg, rdb)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		stats := make([]render.TableStat, 0, len(model.Categories))
		for _, cat := range model.Categories {
			table := cfg.Category(cat).Table
			n, err := store.Count(ctx, table)
			if err != nil {
				return err
			}
			stats = append(stats, render.TableStat{Category: string(cat), Table: table, Key: store.Key(table), Records: n})
		}
		render.Tables(cmd.OutOrStdout(), stats)
		return nil
	},
}

func init() {
	redisCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(redisCmd)
}
