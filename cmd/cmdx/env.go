package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmdx-tool/cmdx/internal/translate"
)

var (
	envFrom string
	envTo   string
)

var envCmd = &cobra.Command{
	Use:   "env <text>",
	Short: "Translate environment variable references in a string",
	Long: `Rewrite environment variable references between %VAR% and $VAR
syntax, mapping well-known names across platforms: %USERPROFILE% becomes
$HOME, $XDG_CONFIG_HOME becomes %APPDATA%, and so on. Unknown variable
names keep their name and only change syntax.

Examples:
  cmdx env 'echo %USERPROFILE%' --from windows --to linux
  cmdx env 'cd $HOME/projects' --from linux --to windows`,
	Args: cobra.ExactArgs(1),
	RunE: runEnv,
}

func init() {
	envCmd.Flags().StringVarP(&envFrom, "from", "f", "", "source operating system")
	envCmd.Flags().StringVarP(&envTo, "to", "t", "", "target operating system")
}

func runEnv(cmd *cobra.Command, args []string) error {
	from, err := resolveOSArg(envFrom, userConfig.Defaults.From, "from")
	if err != nil {
		return err
	}
	to, err := resolveOSArg(envTo, userConfig.Defaults.To, "to")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), translate.EnvVars(args[0], from, to))
	return nil
}
