package main

import (
	"fmt"
	"strconv"

	"unitconv/internal/convert"
	"unitconv/internal/history"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var convertCategory string

// convertCmd performs a single conversion and prints the result at the
// configured precision.
var convertCmd = &cobra.Command{
	Use:   "convert <value> <from-unit> <to-unit>",
	Short: "Convert a value between two units",
	Long: `Converts a value and prints the result.

The category is inferred when the unit pair belongs to exactly one
category; pass --category to disambiguate. Unit and category names match
the output of 'unitconv units'.`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertCategory, "category", "c", "", "unit category (Length, Weight, Temperature)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[0], err)
	}
	from, to := args[1], args[2]

	category := convert.Category(convertCategory)
	if convertCategory == "" {
		inferred, ok := convert.InferCategory(from, to)
		if !ok {
			return fmt.Errorf("cannot infer a category for %s -> %s; pass --category", from, to)
		}
		category = inferred
	}

	result, err := convert.Convert(value, from, to, category)
	if err != nil {
		return err
	}

	p := cfg.Display.Precision
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n",
		strconv.FormatFloat(value, 'f', p, 64), from,
		strconv.FormatFloat(result, 'f', p, 64), to)

	recordConversion(string(category), from, to, value, result)
	return nil
}

// recordConversion appends to history when enabled. Failures are logged,
// never surfaced: the conversion already succeeded.
func recordConversion(category, from, to string, value, result float64) {
	if !cfg.History.Enabled {
		return
	}
	store, err := history.Open(cfg.History.DatabasePath, logger)
	if err != nil {
		logger.Warn("history unavailable", zap.Error(err))
		return
	}
	defer store.Close()

	if _, err := store.Record(category, from, to, value, result); err != nil {
		logger.Warn("failed to record conversion", zap.Error(err))
		return
	}
	if err := store.Prune(cfg.History.MaxEntries); err != nil {
		logger.Warn("failed to prune history", zap.Error(err))
	}
}
