package cmd

import (
	"context"
	"fmt"
	"time"

	"newpunch-journalist/internal/redisclient"

	"github.com/spf13/cobra"
)

var pingTimeout time.Duration

// pingCmd pings the configured Redis server and reports the round trip.
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Ping Redis and print the reply with its latency",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()

		start := time.Now()
		res, err := redisclient.Ping(context.Background(), rdb, pingTimeout)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s from %s in %s\n", res, cfg.Redis.Addr, time.Since(start).Round(time.Microsecond))
		return nil
	},
}

func init() {
	pingCmd.Flags().DurationVar(&pingTimeout, "timeout", 2*time.Second, "ping timeout")
	redisCmd.AddCommand(pingCmd)
}
