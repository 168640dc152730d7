package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/grindlemire/go-lcd"
	"github.com/grindlemire/go-lcd/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type replayFlags struct {
	Script string
	Out    string
	Frames string
}

func replayCmd() *cobra.Command {
	var flags replayFlags

	cmd := &cobra.Command{
		Use:   "replay [flags] screen.toml",
		Short: "Replay a scripted event stream against a screen",
		Long: `Replay activates a screen, feeds it the events of a script one at a time
and prints what each event did and how much of the screen it redrew.`,
		Example: `  # Step through a menu and save the last frame
  lcd replay menu.toml --script nav.txt -o last.png

  # Save a frame after every event
  lcd replay menu.toml --script nav.txt --frames frames/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.Script == "" {
				return errors.New("--script is required")
			}
			return runReplay(cmd.OutOrStdout(), args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.Script, "script", "s", "", "Event script to replay")
	cmd.Flags().StringVarP(&flags.Out, "out", "o", "", "Write the final frame to this PNG file")
	cmd.Flags().StringVar(&flags.Frames, "frames", "", "Write a PNG per step into this directory")

	return cmd
}

func runReplay(out io.Writer, path string, flags replayFlags) error {
	f, err := os.Open(flags.Script)
	if err != nil {
		return errors.Wrap(err, "opening script")
	}
	steps, err := parseScript(f, time.Time{})
	f.Close()
	if err != nil {
		return errors.Wrap(err, flags.Script)
	}

	s, err := openScreen(path, config.Hooks{
		OnPress: func(n *lcd.Node) {
			fmt.Fprintf(out, "  pressed %s\n", n)
		},
		OnLongPress: func(n *lcd.Node) {
			fmt.Fprintf(out, "  long pressed %s\n", n)
		},
		OnChange: func(n *lcd.Node, v int) {
			fmt.Fprintf(out, "  %s = %d\n", n, v)
		},
	})
	if err != nil {
		return err
	}
	s.view.Activate()
	defer s.view.Teardown()

	for i, st := range steps {
		handled := s.view.Handle(st.Event)
		stats := s.view.Stats()
		switch {
		case !handled:
			fmt.Fprintf(out, "%3d %-16s ignored\n", st.Line, st.Text)
		case !s.config.Render.Lazy:
			fmt.Fprintf(out, "%3d %-16s redrawn\n", st.Line, st.Text)
		default:
			fmt.Fprintf(out, "%3d %-16s drawn=%d cleared=%d skipped=%d\n",
				st.Line, st.Text, stats.Drawn, stats.Cleared, stats.Skipped)
		}
		if flags.Frames != "" {
			if err := s.writePNG(filepath.Join(flags.Frames, fmt.Sprintf("step%03d.png", i+1))); err != nil {
				return err
			}
		}
	}

	if flags.Out != "" {
		return s.writePNG(flags.Out)
	}
	return nil
}
