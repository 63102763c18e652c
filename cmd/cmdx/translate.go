package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cmdx-tool/cmdx/internal/translate"
)

var (
	translateFrom    string
	translateTo      string
	translateVerbose bool
	translateJSON    bool
)

var translateCmd = &cobra.Command{
	Use:     "translate [command]",
	Aliases: []string{"t"},
	Short:   "Translate a command from one OS to another",
	Long: `Translate a shell command from one operating system's syntax to
another's. The command can be given as an argument or piped via stdin,
one command per line. Compound commands chained with &&, ||, ; or | are
translated segment by segment.

Examples:
  cmdx translate "dir /w" --from windows --to linux
  cmdx translate "copy a.txt b.txt && del a.txt" --from windows --to linux
  echo "ls -la" | cmdx translate --from linux --to windows`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranslate,
}

func init() {
	translateCmd.Flags().StringVarP(&translateFrom, "from", "f", "", "source operating system")
	translateCmd.Flags().StringVarP(&translateTo, "to", "t", "", "target operating system")
	translateCmd.Flags().BoolVarP(&translateVerbose, "verbose", "v", false, "show warnings and notes about the translation")
	translateCmd.Flags().BoolVar(&translateJSON, "json", false, "output as JSON")
}

// translateOutput is the JSON shape for one translated line.
type translateOutput struct {
	Original         string   `json:"original"`
	Translated       string   `json:"translated"`
	From             string   `json:"from"`
	To               string   `json:"to"`
	Warnings         []string `json:"warnings"`
	HadUnmappedFlags bool     `json:"had_unmapped_flags"`
}

type translateError struct {
	Error    string `json:"error"`
	Original string `json:"original"`
}

func runTranslate(cmd *cobra.Command, args []string) error {
	from, err := resolveOSArg(translateFrom, userConfig.Defaults.From, "from")
	if err != nil {
		return err
	}
	to, err := resolveOSArg(translateTo, userConfig.Defaults.To, "to")
	if err != nil {
		return err
	}
	rules, err := loadRules()
	if err != nil {
		return err
	}
	verbose := translateVerbose || userConfig.Output.Verbose
	asJSON := translateJSON || userConfig.Output.JSON

	var input string
	if len(args) > 0 {
		input = args[0]
	} else {
		data, err := readStdin(cmd)
		if err != nil {
			return err
		}
		input = data
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		result, err := translate.CompoundWith(trimmed, from, to, rules)
		if err != nil {
			if asJSON {
				printJSON(out, translateError{Error: err.Error(), Original: trimmed})
				continue
			}
			return err
		}

		if asJSON {
			warnings := result.Warnings
			if warnings == nil {
				warnings = []string{}
			}
			printJSON(out, translateOutput{
				Original:         result.Original,
				Translated:       result.Command,
				From:             from.String(),
				To:               to.String(),
				Warnings:         warnings,
				HadUnmappedFlags: result.HadUnmappedFlags,
			})
			continue
		}

		fmt.Fprintln(out, result.Command)
		if verbose {
			for _, warning := range result.Warnings {
				fmt.Fprintf(errOut, "  Note: %s\n", warning)
			}
		}
	}
	return nil
}

func readStdin(cmd *cobra.Command) (string, error) {
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.Join(lines, "\n"), nil
}

func printJSON(w io.Writer, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(w, string(data))
}
