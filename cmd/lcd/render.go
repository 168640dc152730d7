package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/grindlemire/go-lcd/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type renderFlags struct {
	OutDir string
	Jobs   int
}

func renderCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [flags] screen.toml...",
		Short: "Render screens to PNG files",
		Long: `Render lays out each screen for its display and writes the first frame
as <name>.png in the output directory. Screens are rendered in parallel.`,
		Example: `  # Render one screen into the current directory
  lcd render menu.toml

  # Render a set of screens into frames/
  lcd render -o frames screens/*.toml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := runRender(cmd.Context(), args, flags)
			for _, path := range written {
				if path != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
				}
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&flags.OutDir, "out", "o", ".", "Directory for the PNG files")
	cmd.Flags().IntVarP(&flags.Jobs, "jobs", "j", runtime.NumCPU(), "Screens rendered at once")

	return cmd
}

// runRender renders every screen and returns the written paths in argument
// order. Paths of screens that failed are empty.
func runRender(ctx context.Context, paths []string, flags renderFlags) ([]string, error) {
	if flags.Jobs < 1 {
		return nil, errors.Errorf("jobs must be at least 1, got %d", flags.Jobs)
	}

	written := make([]string, len(paths))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(flags.Jobs)
	for i, path := range paths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := renderScreen(path, flags.OutDir)
			if err != nil {
				return err
			}
			written[i] = out
			return nil
		})
	}
	return written, eg.Wait()
}

// renderScreen activates path on its own canvas and saves the frame.
// Each screen gets its own view, so screens never share layout state.
func renderScreen(path, outDir string) (string, error) {
	s, err := openScreen(path, config.Hooks{})
	if err != nil {
		return "", err
	}
	s.view.Activate()
	defer s.view.Teardown()

	out := framePath(outDir, path)
	if err := s.writePNG(out); err != nil {
		return "", err
	}
	return out, nil
}
