package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/switchscan/internal/cli/styles"
	"github.com/bnema/switchscan/internal/infrastructure/config"
)

var configSchemaOutput string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View the effective preferences and generate the config JSON schema.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective preferences",
	Long: `Print every preference after defaults, the config file and SWITCHSCAN_*
environment overrides have been applied.`,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the config JSON schema",
	Long: `Generate a JSON schema for config.toml. Editors with TOML schema support
can use it for completion and validation.

Without --output the schema is printed to stdout.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().StringVarP(&configSchemaOutput, "output", "o", "", "write the schema to this file")
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Println(renderer.RenderConfig(app.Manager.ConfigFile(), app.Config))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	if configSchemaOutput == "" {
		data, err := config.GenerateSchema()
		if err != nil {
			fmt.Println(renderer.RenderError(err))
			return nil
		}
		fmt.Println(string(data))
		return nil
	}

	if err := config.WriteSchemaFile(configSchemaOutput); err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Println(renderer.RenderSchemaWritten(configSchemaOutput))
	return nil
}
