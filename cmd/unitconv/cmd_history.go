package main

import (
	"fmt"
	"strconv"

	"unitconv/internal/history"

	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd shows recent conversions recorded by the form and the convert
// subcommand.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversions",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded conversions",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum entries to show")
	historyCmd.AddCommand(historyClearCmd)
}

func openHistory() (*history.Store, error) {
	if !cfg.History.Enabled {
		return nil, fmt.Errorf("history is disabled in the config")
	}
	return history.Open(cfg.History.DatabasePath, logger)
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no conversions recorded yet")
		return nil
	}

	p := cfg.Display.Precision
	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-12s %s %s = %s %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			e.Category,
			strconv.FormatFloat(e.Input, 'f', p, 64), e.FromUnit,
			strconv.FormatFloat(e.Result, 'f', p, 64), e.ToUnit)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
	return nil
}
