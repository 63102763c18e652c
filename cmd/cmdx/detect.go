package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cmdx-tool/cmdx/internal/platform"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect the current operating system",
	RunE:  runDetect,
}

func runDetect(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	host := platform.DetectOS()
	fmt.Fprintf(out, "Detected OS: %s\n", host)
	fmt.Fprintf(out, "Unix-like: %t\n", host.IsUnixLike())
	fmt.Fprintf(out, "BSD-based: %t\n", host.IsBSD())

	if host != platform.Linux {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	distro, err := platform.DetectDistro(ctx)
	if err != nil {
		return fmt.Errorf("detect distribution: %w", err)
	}
	fmt.Fprintf(out, "Distribution: %s\n", distro)
	fmt.Fprintf(out, "Package manager: %s\n", distro.PackageManager())
	return nil
}
