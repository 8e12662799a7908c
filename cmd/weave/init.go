package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/weave/internal/config"
)

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default weave.json",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if config.Exists(dir) && !force {
				warn("%s already exists, use --force to overwrite", filepath.Join(dir, config.ConfigFileName))
				return nil
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
			cfg := config.NewAt(filepath.Join(dir, config.ConfigFileName))
			if err := cfg.Save(); err != nil {
				return err
			}
			success("Wrote %s", cfg.Path())
			info("File exports go to %s", cfg.ExportPath())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing weave.json")

	return cmd
}
