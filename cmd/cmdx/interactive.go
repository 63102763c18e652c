package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cmdx-tool/cmdx/internal/translate"
)

var (
	interactiveFrom string
	interactiveTo   string
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Interactive mode, continuously translate commands",
	Long: `Read commands from stdin and translate them one by one. Inside the
session 'swap' exchanges the source and target OS, 'help' lists the
session commands and 'exit' leaves.

Example:
  cmdx interactive --from windows --to linux`,
	RunE: runInteractive,
}

func init() {
	interactiveCmd.Flags().StringVarP(&interactiveFrom, "from", "f", "", "source operating system")
	interactiveCmd.Flags().StringVarP(&interactiveTo, "to", "t", "", "target operating system")
}

func runInteractive(cmd *cobra.Command, args []string) error {
	from, err := resolveOSArg(interactiveFrom, userConfig.Defaults.From, "from")
	if err != nil {
		return err
	}
	to, err := resolveOSArg(interactiveTo, userConfig.Defaults.To, "to")
	if err != nil {
		return err
	}
	rules, err := loadRules()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "cmdx Interactive Mode")
	fmt.Fprintf(out, "Translating from %s to %s\n", from, to)
	fmt.Fprintln(out, "Type 'exit' or 'quit' to exit, 'swap' to swap source/target OS")
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprintf(out, "[%s->%s] > ", from, to)
		if !scanner.Scan() {
			break
		}

		trimmed := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(trimmed) {
		case "":
			continue
		case "exit", "quit", "q":
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Goodbye!")
			return scanner.Err()
		case "swap":
			from, to = to, from
			fmt.Fprintf(out, "Swapped: now translating %s -> %s\n", from, to)
			continue
		case "help", "?":
			fmt.Fprintln(out, "Commands:")
			fmt.Fprintln(out, "  exit, quit, q - Exit interactive mode")
			fmt.Fprintln(out, "  swap         - Swap source and target OS")
			fmt.Fprintln(out, "  help, ?      - Show this help")
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Enter any shell command to translate it.")
			continue
		}

		result, err := translate.CompoundWith(trimmed, from, to, rules)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}

		fmt.Fprintf(out, "=> %s\n", result.Command)
		for _, warning := range result.Warnings {
			fmt.Fprintf(out, "   Note: %s\n", warning)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Goodbye!")
	return scanner.Err()
}
