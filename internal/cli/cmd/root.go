// Package cmd provides Cobra CLI commands for switchscan.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/switchscan/internal/cli"
	"github.com/bnema/switchscan/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "switchscan",
		Short: "Switch-access scanning for keyboard-free desktops",
		Long: `Switchscan - move through a desktop with one, two or three switches.

Switchscan turns select/next/previous switch presses into navigation over an
accessibility tree: groups are entered and left, actions are offered in a
menu, text fields get caret and selection commands, and a point scan sweeps
the screen for anything the tree does not expose.

Use 'switchscan run --tree desktop.yaml' to drive a simulated desktop from the
terminal, or explore the subcommands to inspect trees, configuration and
recorded errors.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				ConfigFile: configFile,
				// The simulator owns the terminal.
				Quiet: cmd.Name() == "run",
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"config file (default $XDG_CONFIG_HOME/switchscan/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
