package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cmdx-tool/cmdx/internal/platform"
)

var osCmd = &cobra.Command{
	Use:   "os",
	Short: "List all supported operating systems",
	RunE:  runOS,
}

func runOS(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Supported operating systems:")
	fmt.Fprintln(out)

	for _, o := range platform.AllOS() {
		var notes []string
		if o.IsUnixLike() {
			notes = append(notes, "Unix-like")
		}
		if o.IsBSD() {
			notes = append(notes, "BSD")
		}

		if len(notes) == 0 {
			fmt.Fprintf(out, "  %s\n", o)
		} else {
			fmt.Fprintf(out, "  %s (%s)\n", o, strings.Join(notes, ", "))
		}
	}
	return nil
}
