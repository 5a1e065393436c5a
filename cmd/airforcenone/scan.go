package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/unklstewy/airforcenone/pkg/adsb"
	"github.com/unklstewy/airforcenone/pkg/classify"
)

var (
	scanSample int
	jsonOutput bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Poll the military feed once and list VIP aircraft",
	Long: `Fetches /v2/mil once, identifies known and VIP aircraft, and prints
them ranked by priority tier with a summary.

Examples:
  airforcenone scan
  airforcenone scan --sample 15
  airforcenone scan --json | jq '.aircraft[].icao'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOnce(cmd, adsb.Military())
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup HEX [HEX...]",
	Short: "Query specific aircraft by ICAO address",
	Long: `Fetches /v2/hex/{hex,...} for the given ICAO addresses and classifies
the result like scan.

Examples:
  airforcenone lookup ae01ce
  airforcenone lookup ae01ce adfdf8 43c6f0`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOnce(cmd, adsb.ByHex(args...))
	},
}

func init() {
	scanCmd.Flags().IntVar(&scanSample, "sample", 0, "Show this many raw tracks when nothing matches (overrides classify.sample_size)")
	for _, c := range []*cobra.Command{scanCmd, lookupCmd} {
		c.Flags().BoolVar(&jsonOutput, "json", false, "Print the report as JSON")
	}
}

func runOnce(cmd *cobra.Command, sel adsb.Selector) error {
	ctx := cmd.Context()

	var opts []classify.Option
	if cmd.Flags().Changed("sample") {
		opts = append(opts, classify.WithSampleSize(scanSample))
	}

	a, err := newApp(ctx, cfg, logger, opts...)
	if err != nil {
		return err
	}

	report := a.run(ctx, sel)
	return writeReport(cmd.OutOrStdout(), report, a.engine.Policy(), jsonOutput)
}

func writeReport(w io.Writer, report classify.Report, p classify.Policy, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	_, err := fmt.Fprintln(w, renderReport(report, p))
	return err
}
