// Package main provides the lcd command line tool for screen descriptions.
//
// Usage:
//
//	lcd render [screen.toml...]   Render screens to PNG files
//	lcd replay screen.toml        Replay a scripted event stream
//	lcd check [screen.toml...]    Validate screens and print their layout
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/grindlemire/go-lcd/internal/debug"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	Verbose bool
	LogFile string
}

func main() {
	if err := fang.Execute(context.Background(), rootCmd(),
		fang.WithVersion(version),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, "error:", err)
		}),
	); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:   "lcd",
		Short: "Lay out and render screens for small bitmap displays",
		Long: `lcd loads TOML screen descriptions, lays them out for the display they
target and renders them the way a device would.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flags.LogFile != "" {
				return debug.Init(flags.LogFile)
			}
			if flags.Verbose {
				debug.SetOutput(cmd.ErrOrStderr(), slog.LevelDebug, false)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return debug.Close()
		},
	}

	root.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log layout and redraw decisions to stderr")
	root.PersistentFlags().StringVar(&flags.LogFile, "log", "", "Write debug logs to a file instead")

	root.AddCommand(renderCmd(), replayCmd(), checkCmd())
	return root
}
