package cmd

import (
	"context"
	"errors"
	"fmt"

	"newpunch-journalist/internal/redisclient"

	"github.com/spf13/cobra"
)

var errRefreshFailed = errors.New("refresh failed; see log for details")

// refreshCmd runs a single refresh cycle for both categories.
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Scrape both listings once and replace their tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()

		refresher, err := newRefresher(cfg, newStore(cfg, rdb))
		if err != nil {
			return err
		}
		if !refresher.RunOnce(context.Background()) {
			return errRefreshFailed
		}
		fmt.Fprintln(cmd.OutOrStdout(), "refresh ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}
