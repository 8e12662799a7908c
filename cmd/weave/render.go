package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/weave/pkg/demo"
	"github.com/vango-dev/weave/pkg/dom"
	"github.com/vango-dev/weave/pkg/node"
)

func demosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demos",
		Short: "List the bundled demos",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range demo.Names() {
				d, err := demo.New(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\n", d.Name(), d.Description())
			}
			return w.Flush()
		},
	}
}

func renderCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render [demo]",
		Short: "Print a demo's initial markup",
		Long: `Mount a demo into an empty document and print its markup.

Without an argument the demo from weave.json is rendered.

Examples:
  weave render
  weave render fruits
  weave render todo -o todo.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			name := cfg.Demo
			if len(args) == 1 {
				name = args[0]
			}
			markup, err := renderDemo(cmd.Context(), name, node.WithLogger(cfg.NewLogger(os.Stderr)))
			if err != nil {
				return err
			}
			if out == "" {
				_, err = io.WriteString(cmd.OutOrStdout(), markup+"\n")
				return err
			}
			if err := os.WriteFile(out, []byte(markup), 0644); err != nil {
				return err
			}
			success("Wrote %s", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write markup to a file instead of stdout")

	return cmd
}

// renderDemo mounts the named demo, returns its markup and unmounts it.
func renderDemo(ctx context.Context, name string, opts ...node.Option) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	d, err := demo.New(name)
	if err != nil {
		return "", err
	}
	doc := dom.NewDocument()
	tree := node.Root(doc, doc.CreateElement("main"), opts...)
	if err := tree.ChildrenContext(ctx, d.Build()); err != nil {
		return "", err
	}
	defer tree.Unmount()
	return tree.HTML()
}
