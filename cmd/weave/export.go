package main

import (
	"bytes"
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/weave/pkg/dom"
	"github.com/vango-dev/weave/pkg/export"
	"github.com/vango-dev/weave/pkg/node"
	"github.com/vango-dev/weave/pkg/script"
)

func exportCmd() *cobra.Command {
	var (
		key        string
		scriptPath string
	)

	cmd := &cobra.Command{
		Use:   "export [demo]",
		Short: "Publish a rendered snapshot",
		Long: `Render a demo, or play a script, and publish the result.

Snapshots go to the export directory from weave.json, or to S3 when an
export bucket is configured. S3 credentials are read from
AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY.

Examples:
  weave export counter
  weave export --script play.yaml --key fruits-session.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			logger := cfg.NewLogger(os.Stderr)

			var body []byte
			if scriptPath != "" {
				s, err := script.Load(scriptPath)
				if err != nil {
					return err
				}
				var buf bytes.Buffer
				doc := dom.NewDocument(dom.WithLogger(logger))
				tree, err := script.Run(ctx, doc, doc.CreateElement("main"), s, &buf, node.WithLogger(logger))
				if tree != nil {
					defer tree.Unmount()
				}
				if err != nil {
					return err
				}
				body = buf.Bytes()
				if key == "" {
					key = s.Demo + ".txt"
				}
			} else {
				name := cfg.Demo
				if len(args) == 1 {
					name = args[0]
				}
				markup, err := renderDemo(ctx, name, node.WithLogger(logger))
				if err != nil {
					return err
				}
				body = []byte(markup)
				if key == "" {
					key = name + ".html"
				}
			}

			pub, err := export.FromConfig(ctx, cfg)
			if err != nil {
				return err
			}
			if err := pub.Publish(ctx, key, body); err != nil {
				return err
			}
			success("Published %s", pub.Location(key))
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "Object key (default <demo>.html or <demo>.txt)")
	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "Play this script and publish its snapshots")

	return cmd
}
