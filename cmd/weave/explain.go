package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	werrors "github.com/vango-dev/weave/internal/errors"
)

func explainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain [code]",
		Short: "Describe error codes",
		Long: `Without an argument, list every error code. With a code, print its
category, message and explanation.

Examples:
  weave explain
  weave explain E204`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				for _, code := range werrors.GetAllCodes() {
					tmpl, _ := werrors.GetTemplate(code)
					fmt.Fprintf(w, "%s\t%s\t%s\n", code, tmpl.Category, tmpl.Message)
				}
				return w.Flush()
			}

			code := strings.ToUpper(args[0])
			tmpl, ok := werrors.GetTemplate(code)
			if !ok {
				return fmt.Errorf("unknown error code %q", args[0])
			}
			fmt.Fprintf(out, "%s: %s (%s)\n\n  %s\n", code, tmpl.Message, tmpl.Category, tmpl.Detail)
			return nil
		},
	}
}
