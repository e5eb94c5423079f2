package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/compactbar/internal/config"
	"github.com/ruminaider/compactbar/internal/host"
	"github.com/ruminaider/compactbar/internal/plugin"
	"github.com/spf13/cobra"
	"pkt.systems/pslog"
)

type replayOptions struct {
	Grant bool
	Width int
	Plain bool
}

var replayOpts replayOptions

var replayCmd = &cobra.Command{
	Use:   "replay [file|-]",
	Short: "Feed a recorded event stream to the plugin",
	Long: "Read host events as JSON lines and feed them to the plugin. Host commands are " +
		"written to stdout as JSON lines, followed by a {\"frame\": ...} line after every " +
		"event that needs a redraw.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening event stream: %w", err)
			}
			defer f.Close()
			in = f
		}
		return runReplay(cmd.Context(), in, cmd.OutOrStdout(), appConfig, replayOpts)
	},
}

func init() {
	replayCmd.Flags().BoolVar(&replayOpts.Grant, "grant", false, "Grant permissions before the first event")
	replayCmd.Flags().IntVar(&replayOpts.Width, "width", 0, "Pad or truncate frames to this many columns")
	replayCmd.Flags().BoolVar(&replayOpts.Plain, "plain", false, "Strip colors from frames")
}

type frameLine struct {
	Frame string `json:"frame"`
}

// runReplay feeds every event in r to a fresh plugin whose host writes to w.
// Blank lines and lines starting with '#' are skipped.
func runReplay(ctx context.Context, r io.Reader, w io.Writer, cfg config.Config, opts replayOptions) error {
	logger := pslog.Ctx(ctx)
	h := host.NewJSONHost(w)
	p := plugin.New(h, logger)
	p.Configure(cfg)
	if err := p.Load(nil); err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	feed := func(ev host.Event) error {
		if !p.Update(ev) {
			return nil
		}
		line := p.Render(1, opts.Width)
		if opts.Plain {
			line = ansi.Strip(line)
		}
		if err := enc.Encode(frameLine{Frame: line}); err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}
		return nil
	}

	if opts.Grant {
		if err := feed(host.Granted); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 || data[0] == '#' {
			continue
		}
		ev, err := host.DecodeEvent(data)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := feed(ev); err != nil {
			return err
		}
		if err := h.Err(); err != nil {
			return fmt.Errorf("writing host command: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading event stream: %w", err)
	}
	logger.With("events", lineNo, "state", p.State()).Debug("replay finished")
	return h.Err()
}
