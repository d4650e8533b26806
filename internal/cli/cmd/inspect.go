package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	coreapp "github.com/bnema/switchscan/internal/app"
	"github.com/bnema/switchscan/internal/application/port"
	"github.com/bnema/switchscan/internal/classify"
	"github.com/bnema/switchscan/internal/cli/styles"
	"github.com/bnema/switchscan/internal/infrastructure/config"
	"github.com/bnema/switchscan/internal/infrastructure/memtree"
	"github.com/bnema/switchscan/internal/ui/mainloop"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <tree.yaml>",
	Short: "Show how a desktop tree is split into groups",
	Long: `Load a desktop tree snapshot and print the group decomposition the
navigator builds from it, followed by the classification of every node.

In the group listing '*' marks the current group and '>' the focused item
right after start.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	spec, err := memtree.LoadFile(args[0])
	if err != nil {
		return err
	}
	loop := mainloop.New()
	host, err := memtree.New(spec, loop.Post)
	if err != nil {
		return fmt.Errorf("build tree: %w", err)
	}

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()
	defer func() {
		loop.Stop()
		<-done
	}()

	var groups string
	var initErr error
	ran := loop.Call(func() {
		core, err := coreapp.New(ctx, coreapp.Deps{
			Tree:      host,
			Editor:    host,
			Surface:   host,
			Prefs:     config.NewPreferences(app.Manager, loop.Post),
			Scheduler: loop,
		})
		if err != nil {
			initErr = err
			return
		}
		defer core.Close(ctx)
		if initErr = core.Start(ctx); initErr != nil {
			return
		}
		groups = core.Navigator.TreeForDebugging()
	})
	if !ran {
		return errors.New("inspect interrupted")
	}
	if initErr != nil {
		return initErr
	}

	renderer := styles.NewInspectRenderer(app.Theme)
	fmt.Println(renderer.Render(args[0], groups, classifyTree(host.Desktop())))
	return nil
}

// classifyTree walks the tree depth first, classifying each node within its
// parent's scope.
func classifyTree(desktop port.Node) []styles.NodeClass {
	cache := classify.NewCache()
	var out []styles.NodeClass

	var walk func(n, scope port.Node, depth int)
	walk = func(n, scope port.Node, depth int) {
		label := fmt.Sprintf("%s#%s", n.Role(), n.ID())
		if name := n.Name(); name != "" {
			label = fmt.Sprintf("%s %q", label, name)
		}
		out = append(out, styles.NodeClass{
			Depth:       depth,
			Label:       label,
			Actionable:  classify.IsActionable(n, cache),
			Group:       classify.IsGroup(n, scope, cache),
			Interesting: classify.IsInteresting(n, scope, cache),
			Visible:     classify.IsVisible(n),
		})
		for _, c := range n.Children() {
			walk(c, n, depth+1)
		}
	}
	walk(desktop, nil, 0)
	return out
}
