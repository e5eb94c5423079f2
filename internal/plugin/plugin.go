// Package plugin is the tab bar's event loop. It gates host events behind the
// permission request, replays what arrived early once permission is granted,
// and turns pointer input into tab switches.
package plugin

import (
	"context"
	"fmt"
	"slices"

	"github.com/ruminaider/compactbar/internal/config"
	"github.com/ruminaider/compactbar/internal/dirty"
	"github.com/ruminaider/compactbar/internal/frame"
	"github.com/ruminaider/compactbar/internal/host"
	"github.com/ruminaider/compactbar/internal/renderer"
	"pkt.systems/pslog"
)

// State is the permission state of a plugin instance.
type State int

const (
	// AwaitingPermission buffers every event until the host answers the
	// permission request.
	AwaitingPermission State = iota
	// Active dispatches events as they arrive.
	Active
	// Closed ignores everything; permission was denied.
	Closed
)

func (s State) String() string {
	switch s {
	case AwaitingPermission:
		return "awaiting-permission"
	case Active:
		return "active"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Permissions are requested at load time. ChangeApplicationState is needed
// to switch tabs and to stop the bar from being selectable.
var Permissions = []host.PermissionType{
	host.ChangeApplicationState,
	host.ReadApplicationState,
}

// Subscriptions are the event kinds the bar listens to.
var Subscriptions = []host.EventType{
	host.EventModeUpdate,
	host.EventMouse,
	host.EventPermissionRequestResult,
	host.EventTabUpdate,
}

// Plugin is one tab bar instance. It is driven by a single host goroutine and
// is not safe for concurrent use.
type Plugin struct {
	host     host.Host
	log      pslog.Logger
	cfg      config.Config
	styles   frame.Styles
	state    State
	queue    []host.Event
	renderer *renderer.Renderer
}

// New creates a plugin that sends its commands to h. A nil logger uses the
// logger from the background context.
func New(h host.Host, logger pslog.Logger) *Plugin {
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}
	cfg := config.Default()
	return &Plugin{
		host:     h,
		log:      logger,
		cfg:      cfg,
		styles:   frame.NewStyles(cfg.Theme),
		renderer: renderer.New(),
	}
}

// Configure replaces the configuration used for painting.
func (p *Plugin) Configure(cfg config.Config) {
	p.cfg = cfg
	p.styles = frame.NewStyles(cfg.Theme)
}

// Load applies the host's configuration map, requests permissions and
// subscribes to events. A plugin that is already active (reloaded after a
// grant) redoes the granted side effect right away.
func (p *Plugin) Load(settings map[string]string) error {
	cfg, err := config.FromMap(p.cfg, settings)
	if err != nil {
		return fmt.Errorf("loading plugin configuration: %w", err)
	}
	p.Configure(cfg)

	p.host.RequestPermission(Permissions...)
	p.host.Subscribe(Subscriptions...)

	if p.state == Active {
		p.onPermissionsGranted()
	}
	return nil
}

// Update handles one host event and reports whether the bar must be redrawn.
func (p *Plugin) Update(ev host.Event) bool {
	flag, err := p.handle(ev)
	if err != nil {
		p.log.With("event", ev.Type(), "err", err).Error("event handling failed")
	}
	return dirty.Redraw(flag, err)
}

// Render paints the current state. It is recomputed on every call.
func (p *Plugin) Render(rows, cols int) string {
	if rows <= 0 {
		return ""
	}
	v := p.renderer.View()
	return frame.Frame{
		Mode:      v.Mode,
		ActiveTab: v.ActiveTabIdx,
		Segments:  v.Segments,
		Styles:    p.styles,
		ShowMode:  p.cfg.ShowMode,
	}.Render(cols)
}

// State returns the current permission state.
func (p *Plugin) State() State { return p.state }

// Queued returns the number of events waiting for permission.
func (p *Plugin) Queued() int { return len(p.queue) }

// View exposes the state a frame is built from.
func (p *Plugin) View() renderer.View { return p.renderer.View() }

func (p *Plugin) handle(ev host.Event) (dirty.Flag, error) {
	switch p.state {
	case Closed:
		p.log.With("event", ev.Type()).Trace("plugin closed, event ignored")
		return dirty.Clean, nil
	case AwaitingPermission:
		if res, ok := ev.(host.PermissionRequestResult); ok {
			if res.Status == host.PermissionGranted {
				p.state = Active
				p.onPermissionsGranted()
				return p.drain()
			}
			p.deny()
			return dirty.Clean, nil
		}
		p.queue = append(p.queue, ev)
		p.log.With("event", ev.Type(), "queued", len(p.queue)).Debug("event buffered until permission")
		return dirty.Clean, nil
	default:
		return p.dispatch(ev)
	}
}

func (p *Plugin) onPermissionsGranted() {
	p.log.Debug("permissions granted")
	p.host.SetSelectable(false)
}

func (p *Plugin) deny() {
	p.log.With("discarded", len(p.queue)).Warn("permissions denied, closing")
	p.state = Closed
	p.queue = nil
	p.host.CloseSelf()
}

// drain replays the buffered events in arrival order. On error the remaining
// events are dropped.
func (p *Plugin) drain() (dirty.Flag, error) {
	queue := p.queue
	p.queue = nil
	if len(queue) > 0 {
		p.log.With("events", len(queue)).Debug("replaying buffered events")
	}
	return dirty.Consume(slices.Values(queue), p.dispatch)
}

func (p *Plugin) dispatch(ev host.Event) (dirty.Flag, error) {
	switch ev := ev.(type) {
	case host.PermissionRequestResult:
		if ev.Status == host.PermissionGranted {
			p.log.Warn("permissions granted twice, ignoring")
			return dirty.Clean, nil
		}
		p.deny()
		return dirty.Clean, nil
	case host.ModeUpdate:
		return p.renderer.UpdateMode(ev.Mode), nil
	case host.TabUpdate:
		active := slices.IndexFunc(ev.Tabs, func(t host.TabInfo) bool { return t.Active })
		if active < 0 {
			p.log.With("tabs", len(ev.Tabs)).Warn("no active tab found in tab update")
			return dirty.Clean, nil
		}
		return p.renderer.UpdateTabs(active, ev.Tabs), nil
	case host.Mouse:
		p.handleMouse(ev)
		// The host follows a switch with a TabUpdate, which drives the redraw.
		return dirty.Clean, nil
	default:
		p.log.With("event", ev.Type()).Warn("unexpected event")
		return dirty.Clean, nil
	}
}

func (p *Plugin) handleMouse(ev host.Mouse) {
	switch ev.Action {
	case host.MouseLeftClick:
		if idx, ok := p.renderer.TargetTab(ev.Column); ok {
			p.switchTab(idx)
		}
	case host.MouseScrollUp:
		p.switchTab(p.renderer.NextTabIdx())
	case host.MouseScrollDown:
		p.switchTab(p.renderer.PrevTabIdx())
	}
}

// switchTab asks the host to focus the tab at the 0-based idx. Targets
// outside the tab list are dropped.
func (p *Plugin) switchTab(idx int) {
	if idx < 0 || idx >= p.renderer.TabCount() {
		p.log.With("target", idx, "tabs", p.renderer.TabCount()).Debug("tab switch out of range")
		return
	}
	p.host.SwitchTabTo(uint32(idx + 1))
}
