package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cmdx-tool/cmdx/internal/pkgmgr"
	"github.com/cmdx-tool/cmdx/internal/platform"
)

var (
	pkgFrom    string
	pkgTo      string
	pkgVerbose bool
	pkgJSON    bool
)

var pkgCmd = &cobra.Command{
	Use:   "pkg <command>",
	Short: "Translate a package manager invocation",
	Long: `Translate a package manager invocation from one manager's syntax
to another's. The source manager is detected from the command itself
unless --from is given. When --to is omitted the host's package manager
is detected and used as the target.

Examples:
  cmdx pkg "apt install -y vim" --to pacman
  cmdx pkg "pacman -Syu" --to apt
  cmdx pkg "sudo yum install nginx" --from yum --to apk`,
	Args: cobra.ExactArgs(1),
	RunE: runPkg,
}

func init() {
	pkgCmd.Flags().StringVarP(&pkgFrom, "from", "f", "", "source package manager (default: detect from the command)")
	pkgCmd.Flags().StringVarP(&pkgTo, "to", "t", "", "target package manager (default: detect from the host)")
	pkgCmd.Flags().BoolVarP(&pkgVerbose, "verbose", "v", false, "show warnings about the translation")
	pkgCmd.Flags().BoolVar(&pkgJSON, "json", false, "output as JSON")
}

type pkgOutput struct {
	Original     string   `json:"original"`
	Translated   string   `json:"translated"`
	From         string   `json:"from_pm"`
	To           string   `json:"to_pm"`
	Warnings     []string `json:"warnings"`
	RequiresSudo bool     `json:"requires_sudo"`
}

func runPkg(cmd *cobra.Command, args []string) error {
	to, err := resolveTargetManager()
	if err != nil {
		return err
	}

	var result *pkgmgr.Result
	if pkgFrom == "" {
		result, err = pkgmgr.TranslateAuto(args[0], to)
	} else {
		from, ok := platform.ParsePackageManager(pkgFrom)
		if !ok {
			return fmt.Errorf("unknown package manager %q (valid: %s)", pkgFrom, managerNames())
		}
		result, err = pkgmgr.Translate(args[0], from, to)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if pkgJSON || userConfig.Output.JSON {
		warnings := result.Warnings
		if warnings == nil {
			warnings = []string{}
		}
		printJSON(out, pkgOutput{
			Original:     result.Original,
			Translated:   result.Command,
			From:         result.From.String(),
			To:           result.To.String(),
			Warnings:     warnings,
			RequiresSudo: result.RequiresSudo,
		})
		return nil
	}

	fmt.Fprintln(out, result.Command)
	if pkgVerbose || userConfig.Output.Verbose {
		for _, warning := range result.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "  Note: %s\n", warning)
		}
	}
	return nil
}

func resolveTargetManager() (platform.PackageManager, error) {
	if pkgTo != "" {
		to, ok := platform.ParsePackageManager(pkgTo)
		if !ok {
			return "", fmt.Errorf("unknown package manager %q (valid: %s)", pkgTo, managerNames())
		}
		return to, nil
	}
	if userConfig.Defaults.PackageManager != "" {
		return userConfig.Defaults.PackageManager, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	to, err := platform.DetectPackageManager(ctx)
	if err != nil {
		return "", fmt.Errorf("detect host package manager: %w (pass --to explicitly)", err)
	}
	if to == platform.GenericPM {
		return "", fmt.Errorf("could not determine the host package manager, pass --to explicitly")
	}
	return to, nil
}

func managerNames() string {
	names := make([]string, 0, len(platform.AllPackageManagers()))
	for _, pm := range platform.AllPackageManagers() {
		names = append(names, pm.String())
	}
	return strings.Join(names, ", ")
}
