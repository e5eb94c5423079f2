package main

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/compactbar/internal/config"
	"github.com/ruminaider/compactbar/internal/host"
	"github.com/ruminaider/compactbar/internal/plugin"
	"github.com/spf13/cobra"
	"pkt.systems/pslog"
)

type previewOptions struct {
	Tabs    int
	Active  int // 1-based
	Mode    string
	Session string
	Width   int
	Plain   bool
}

var previewOpts = previewOptions{Tabs: 3, Active: 1, Mode: "normal", Session: "main"}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print one rendered frame of the bar",
	Long:  "Feed a synthetic session to the plugin and print the frame it renders.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		line, err := renderPreview(appConfig, previewOpts, pslog.Ctx(cmd.Context()))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
		return nil
	},
}

func init() {
	previewCmd.Flags().IntVar(&previewOpts.Tabs, "tabs", previewOpts.Tabs, "Number of tabs")
	previewCmd.Flags().IntVar(&previewOpts.Active, "active", previewOpts.Active, "Active tab position (1-based)")
	previewCmd.Flags().StringVar(&previewOpts.Mode, "mode", previewOpts.Mode, "Input mode")
	previewCmd.Flags().StringVar(&previewOpts.Session, "session", previewOpts.Session, "Session name")
	previewCmd.Flags().IntVar(&previewOpts.Width, "width", 0, "Pad or truncate to this many columns (0 keeps the natural width)")
	previewCmd.Flags().BoolVar(&previewOpts.Plain, "plain", false, "Strip colors from the output")
}

// renderPreview drives a plugin through a granted startup and returns the
// frame it renders for the requested session.
func renderPreview(cfg config.Config, opts previewOptions, logger pslog.Logger) (string, error) {
	if opts.Tabs < 1 {
		return "", fmt.Errorf("--tabs must be at least 1, got %d", opts.Tabs)
	}
	if opts.Active < 1 || opts.Active > opts.Tabs {
		return "", fmt.Errorf("--active must be between 1 and %d, got %d", opts.Tabs, opts.Active)
	}
	mode, err := host.ParseInputMode(opts.Mode)
	if err != nil {
		return "", err
	}

	tabs := make([]host.TabInfo, opts.Tabs)
	for i := range tabs {
		tabs[i] = host.TabInfo{
			Position: i,
			Name:     fmt.Sprintf("Tab #%d", i+1),
			Active:   i == opts.Active-1,
		}
	}

	p := plugin.New(&host.Recorder{}, logger)
	p.Configure(cfg)
	if err := p.Load(nil); err != nil {
		return "", err
	}
	p.Update(host.Granted)
	p.Update(host.ModeUpdate{Mode: host.ModeInfo{Mode: mode, SessionName: opts.Session}})
	p.Update(host.TabUpdate{Tabs: tabs})

	line := p.Render(1, opts.Width)
	if opts.Plain {
		line = ansi.Strip(line)
	}
	return line, nil
}
