package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"newpunch-journalist/internal/redisclient"
	"newpunch-journalist/internal/voice"

	"github.com/spf13/cobra"
)

var voiceCount int

var voiceIntents = map[string]voice.Request{
	"launch":         {Type: voice.LaunchRequest},
	"sensationalist": {Type: voice.IntentRequest, Intent: voice.IntentGetSensationalist},
	"polidicks":      {Type: voice.IntentRequest, Intent: voice.IntentGetPolidicks},
	"help":           {Type: voice.IntentRequest, Intent: voice.IntentHelp},
	"stop":           {Type: voice.IntentRequest, Intent: voice.IntentStop},
}

// voiceCmd runs one voice request through the adapter and prints the answer.
var voiceCmd = &cobra.Command{
	Use:       "voice <launch|sensationalist|polidicks|help|stop>",
	Short:     "Simulate a voice request and print the spoken answer and card",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"launch", "sensationalist", "polidicks", "help", "stop"},
	RunE: func(cmd *cobra.Command, args []string) error {
		req, ok := voiceIntents[strings.ToLower(args[0])]
		if !ok {
			// pass unknown names through as raw intents
			req = voice.Request{Type: voice.IntentRequest, Intent: args[0]}
		}
		if voiceCount > 0 {
			req.Slots = map[string]string{voice.CountSlot: strconv.Itoa(voiceCount)}
		}

		cfg := GetConfig()
		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		adapter, err := newVoiceAdapter(cfg, newQueryService(cfg, newStore(cfg, rdb)))
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		resp := adapter.Handle(ctx, req)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Speech: %s\n", resp.Speech)
		if resp.Reprompt != "" {
			fmt.Fprintf(out, "Reprompt: %s\n", resp.Reprompt)
		}
		if resp.Card != nil {
			fmt.Fprintf(out, "\n[%s]\n%s", resp.Card.Title, resp.Card.Content)
		}
		if resp.ShouldEndSession {
			fmt.Fprintln(out, "(session ends)")
		}
		return nil
	},
}

func init() {
	voiceCmd.Flags().IntVarP(&voiceCount, "count", "n", 0, "spoken count slot value")
	rootCmd.AddCommand(voiceCmd)
}
