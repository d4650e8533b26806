package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/switchscan/internal/cli/styles"
	"github.com/bnema/switchscan/internal/infrastructure/persistence/sqlite"
)

var errorsLimit int

var errorsCmd = &cobra.Command{
	Use:   "errors",
	Short: "List recorded navigation errors",
	Long: `List the most recent entries of the error journal, newest first, with a
count per error type.

Examples:
  switchscan errors
  switchscan errors --limit 10`,
	RunE: runErrors,
}

func init() {
	rootCmd.AddCommand(errorsCmd)
	errorsCmd.Flags().IntVarP(&errorsLimit, "limit", "n", sqlite.DefaultRecentLimit, "number of entries to show")
}

func runErrors(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	renderer := styles.NewErrorsCLIRenderer(app.Theme)

	journal, closeJournal, err := app.OpenJournal(ctx)
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	defer func() { _ = closeJournal() }()

	records, err := journal.Recent(ctx, errorsLimit)
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	fmt.Println(renderer.RenderRecords(app.Config.Journal.Path, records))
	return nil
}
