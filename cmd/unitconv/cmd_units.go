package main

import (
	"fmt"
	"strings"

	"unitconv/internal/convert"

	"github.com/spf13/cobra"
)

// unitsCmd lists the known categories and their units, the same enumeration
// the interactive form uses to populate its selectors.
var unitsCmd = &cobra.Command{
	Use:   "units [category]",
	Short: "List unit categories and their units",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runUnits,
}

func runUnits(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		category := convert.Category(args[0])
		units := convert.Units(category)
		if units == nil {
			return fmt.Errorf("%w: %q (known: Length, Weight, Temperature)", convert.ErrUnknownCategory, args[0])
		}
		fmt.Fprintln(out, strings.Join(units, "\n"))
		return nil
	}

	for _, category := range convert.Categories() {
		base := ""
		if b := convert.BaseUnit(category); b != "" {
			base = fmt.Sprintf(" (base: %s)", b)
		}
		fmt.Fprintf(out, "%s%s\n", category, base)
		for _, u := range convert.Units(category) {
			fmt.Fprintf(out, "  %s\n", u)
		}
	}
	return nil
}
