package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/weave/pkg/dom"
	"github.com/vango-dev/weave/pkg/node"
	"github.com/vango-dev/weave/pkg/script"
)

func playCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play <script.yaml>",
		Short: "Play a scripted session against a demo",
		Long: `Mount the script's demo, run its steps and print every snapshot.

Example script:

  demo: counter
  steps:
    - click: button
      nth: 1
    - expect: "count: 1"
    - snapshot: true`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			logger := cfg.NewLogger(os.Stderr)
			doc := dom.NewDocument(dom.WithLogger(logger))
			tree, err := script.Run(ctx, doc, doc.CreateElement("main"), s, cmd.OutOrStdout(), node.WithLogger(logger))
			if tree != nil {
				defer tree.Unmount()
			}
			if err != nil {
				return err
			}
			success("Played %d steps against %s", len(s.Steps), s.Demo)
			return nil
		},
	}
	return cmd
}
