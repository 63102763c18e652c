package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmdx-tool/cmdx/internal/translate"
)

var (
	listFrom string
	listTo   string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all supported commands for a translation",
	Long: `List every command the rule table can translate for the given OS
pair, together with the translation it produces. Rules loaded with
--rules are included.

Examples:
  cmdx list --from windows --to linux
  cmdx list --from linux --to windows --rules my-rules.lua`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listFrom, "from", "f", "", "source operating system")
	listCmd.Flags().StringVarP(&listTo, "to", "t", "", "target operating system")
}

func runList(cmd *cobra.Command, args []string) error {
	from, err := resolveOSArg(listFrom, userConfig.Defaults.From, "from")
	if err != nil {
		return err
	}
	to, err := resolveOSArg(listTo, userConfig.Defaults.To, "to")
	if err != nil {
		return err
	}
	rules, err := loadRules()
	if err != nil {
		return err
	}

	commands := rules.Commands(from, to)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Available commands for %s -> %s:\n\n", from, to)

	if len(commands) == 0 {
		fmt.Fprintln(out, "  No specific command translations available.")
		fmt.Fprintln(out, "  (Unix-like OS commands may still work via passthrough)")
	} else {
		for _, c := range commands {
			result, err := translate.CommandWith(c, from, to, rules)
			if err != nil {
				continue
			}
			fmt.Fprintf(out, "  %s -> %s\n", c, result.Command)
		}
	}

	fmt.Fprintf(out, "\nTotal: %d commands\n", len(commands))
	return nil
}
