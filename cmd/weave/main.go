package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/weave/internal/config"
	werrors "github.com/vango-dev/weave/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	// errorFormat selects how a failed command reports its error.
	errorFormat = werrors.OutputText

	noColor bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		werrors.Report(os.Stderr, err, errorFormat, "E146")
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "weave",
		Short: "Fine-grained reactive HTML rendering",
		Long: `weave renders reactive node trees into an HTML document and keeps
them in sync as their values change.

The CLI drives the bundled demos:

  • render a demo's markup
  • play a scripted session against a demo
  • serve a demo live over WebSocket
  • export rendered snapshots to a directory or S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			werrors.SetColors(!noColor && os.Getenv("NO_COLOR") == "")
		},
	}

	root.PersistentFlags().StringVar(&errorFormat, "errors", werrors.OutputText,
		"Error output format: text, compact or json")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored error output")

	root.AddCommand(
		demosCmd(),
		renderCmd(),
		playCmd(),
		serveCmd(),
		exportCmd(),
		initCmd(),
		explainCmd(),
		versionCmd(),
	)
	return root
}

// loadConfig loads the nearest weave.json, or defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
