package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmdx-tool/cmdx/internal/translate"
)

var (
	pathFrom    string
	pathTo      string
	pathVerbose bool
	pathJSON    bool
)

var pathCmd = &cobra.Command{
	Use:   "path <path>",
	Short: "Translate a filesystem path between OS conventions",
	Long: `Translate a filesystem path between operating system conventions:
drive letters become /mnt mount points and back, separators are swapped,
and home directories are mapped between /home, ~ and %USERPROFILE%.

When --from is omitted the path style is detected from the input.

Examples:
  cmdx path 'C:\Users\alice\file.txt' --from windows --to linux
  cmdx path /mnt/c/Windows --from linux --to windows
  cmdx path '~/projects' --to windows`,
	Args: cobra.ExactArgs(1),
	RunE: runPath,
}

func init() {
	pathCmd.Flags().StringVarP(&pathFrom, "from", "f", "", "source operating system (default: detect from the path)")
	pathCmd.Flags().StringVarP(&pathTo, "to", "t", "", "target operating system")
	pathCmd.Flags().BoolVarP(&pathVerbose, "verbose", "v", false, "show warnings about the translation")
	pathCmd.Flags().BoolVar(&pathJSON, "json", false, "output as JSON")
}

type pathOutput struct {
	Original        string   `json:"original"`
	Translated      string   `json:"translated"`
	From            string   `json:"from"`
	To              string   `json:"to"`
	DriveTranslated bool     `json:"drive_translated"`
	Warnings        []string `json:"warnings"`
}

func runPath(cmd *cobra.Command, args []string) error {
	to, err := resolveOSArg(pathTo, userConfig.Defaults.To, "to")
	if err != nil {
		return err
	}

	var result *translate.PathResult
	if pathFrom == "" {
		result, err = translate.PathAuto(args[0], to)
	} else {
		from, ferr := parseOSArg(pathFrom)
		if ferr != nil {
			return ferr
		}
		result, err = translate.Path(args[0], from, to)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if pathJSON || userConfig.Output.JSON {
		warnings := result.Warnings
		if warnings == nil {
			warnings = []string{}
		}
		printJSON(out, pathOutput{
			Original:        result.Original,
			Translated:      result.Path,
			From:            result.From.String(),
			To:              result.To.String(),
			DriveTranslated: result.DriveTranslated,
			Warnings:        warnings,
		})
		return nil
	}

	fmt.Fprintln(out, result.Path)
	if pathVerbose || userConfig.Output.Verbose {
		for _, warning := range result.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "  Note: %s\n", warning)
		}
	}
	return nil
}
