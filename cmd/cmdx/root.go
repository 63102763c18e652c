package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cmdx-tool/cmdx/internal/config"
	"github.com/cmdx-tool/cmdx/internal/platform"
	"github.com/cmdx-tool/cmdx/internal/ruleset"
)

var (
	rulesFile  string
	userConfig = &config.Config{}
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cmdx",
	Short: "Translate shell commands between operating systems",
	Long: `cmdx is a runtime command translator that converts shell commands
between different operating systems. It supports Windows, Linux, macOS,
FreeBSD, OpenBSD, NetBSD, Solaris, and more.

Examples:
  cmdx translate "dir /w" --from windows --to linux
  cmdx translate "ls -la" --from linux --to windows
  echo "dir" | cmdx translate --from windows --to linux
  cmdx path 'C:\Users\alice' --from windows --to linux
  cmdx pkg "apt install -y vim" --to pacman`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		cfg, err := config.Load(ctx, config.Path())
		if err != nil {
			return err
		}
		userConfig = cfg
		return nil
	},
}

// Execute executes the root command
func Execute() error {
	rootCmd.Version = Version
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rulesFile, "rules", "", "Lua rule file overlaying the built-in translation table")

	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(pkgCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(osCmd)
	rootCmd.AddCommand(interactiveCmd)
}

// loadRules returns the built-in rule set, overlaid with the --rules file
// or the configured rule file. The overlay script sees the host platform.
func loadRules() (*ruleset.Set, error) {
	path := rulesFile
	if path == "" {
		path = userConfig.Rules
	}
	if path == "" {
		return ruleset.Builtin(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hostOS := platform.DetectOS()
	distro, err := platform.DetectDistro(ctx)
	if err != nil {
		distro = platform.GenericLinux
	}

	set, err := ruleset.LoadFile(path, hostOS, distro)
	if err != nil {
		return nil, fmt.Errorf("load rules %s: %w", path, err)
	}
	return set, nil
}

// resolveOSArg resolves an OS endpoint from the flag value, falling back to
// the configured default.
func resolveOSArg(flagValue string, fallback platform.OS, flagName string) (platform.OS, error) {
	if flagValue != "" {
		return parseOSArg(flagValue)
	}
	if fallback != "" {
		return fallback, nil
	}
	return platform.UnknownOS, fmt.Errorf("--%s is required (or set defaults.%s in %s)", flagName, flagName, config.Path())
}

// parseOSArg resolves an OS name flag value, listing the accepted names on
// failure.
func parseOSArg(name string) (platform.OS, error) {
	os, ok := platform.ParseOS(name)
	if !ok {
		valid := make([]string, 0, len(platform.AllOS()))
		for _, o := range platform.AllOS() {
			valid = append(valid, strings.ToLower(o.String()))
		}
		return platform.UnknownOS, fmt.Errorf("unknown operating system %q (valid: %s)", name, strings.Join(valid, ", "))
	}
	return os, nil
}
