package cmd

import (
	"fmt"
	"os"

	"newpunch-journalist/internal/facepunch"
	"newpunch-journalist/internal/render"

	"github.com/spf13/cobra"
)

var debugParseFormat string

var debugParseCmd = &cobra.Command{
	Use:   "debug-parse <html_path>",
	Short: "Debug: extract threads from a saved listing page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		extractor, err := facepunch.NewExtractor(GetConfig().Facepunch.Host)
		if err != nil {
			return err
		}
		recs, err := extractor.Extract(body)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "page bytes: %d, threads: %d\n", len(body), len(recs))
		return render.Threads(cmd.OutOrStdout(), debugParseFormat, recs)
	},
}

func init() {
	debugParseCmd.Flags().StringVarP(&debugParseFormat, "format", "o", "table", "output format: table, json, yaml")
	rootCmd.AddCommand(debugParseCmd)
}
