package main

import (
	"fmt"
	"io"

	"github.com/grindlemire/go-lcd/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check screen.toml...",
		Short: "Validate screens and print their layout",
		Long: `Check loads each screen, lays it out for its display and prints every
node with its measured size and arranged rectangle.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}
}

// runCheck reports every bad screen before failing.
func runCheck(out, errOut io.Writer, paths []string) error {
	var errorCount int
	for _, path := range paths {
		if err := checkScreen(out, path); err != nil {
			fmt.Fprintf(errOut, "%s: %v\n", path, err)
			errorCount++
		}
	}
	if errorCount > 0 {
		return errors.Errorf("%d screen(s) had errors", errorCount)
	}
	return nil
}

func checkScreen(out io.Writer, path string) error {
	s, err := openScreen(path, config.Hooks{})
	if err != nil {
		return err
	}
	s.view.Activate()
	defer s.view.Teardown()

	u := s.host.UsableRect()
	fmt.Fprintf(out, "%s: display=%dx%d usable=(%d,%d %dx%d)\n",
		path, s.config.Display.Width, s.config.Display.Height, u.X, u.Y, u.Width, u.Height)
	return s.view.Tree().Dump(out)
}
