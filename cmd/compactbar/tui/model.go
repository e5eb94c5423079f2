package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/compactbar/internal/config"
	"github.com/ruminaider/compactbar/internal/host"
	"github.com/ruminaider/compactbar/internal/plugin"
	"pkt.systems/pslog"
)

// Model is the root bubbletea model of the demo: a fake multiplexer hosting
// one tab bar plugin on its first row.
type Model struct {
	plugin    *plugin.Plugin
	emu       *emulator
	session   *Session
	grant     bool
	bar       string
	redraws   int
	log       viewport.Model
	statusBar StatusBar

	width, height int
	ready         bool // set after first WindowSizeMsg
	quitting      bool
}

// NewModel builds the demo. grant is the answer the emulated host gives to the
// plugin's permission request.
func NewModel(cfg config.Config, grant bool, logger pslog.Logger) (Model, error) {
	session := NewSession("demo", []string{"edit", "build", "logs"})
	emu := newEmulator(&session)
	p := plugin.New(emu, logger)
	p.Configure(cfg)
	if err := p.Load(nil); err != nil {
		return Model{}, err
	}
	return Model{
		plugin:    p,
		emu:       emu,
		session:   &session,
		grant:     grant,
		log:       viewport.New(80, 10),
		statusBar: NewStatusBar(),
	}, nil
}

// Init sends the startup events. Mode and tabs arrive before the permission
// answer, so the plugin buffers them first.
func (m Model) Init() tea.Cmd {
	status := host.Denied
	if m.grant {
		status = host.Granted
	}
	return deliver(m.session.ModeUpdate(), m.session.TabUpdate(), status)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.distributeSize()
		m.repaint()
		return m, nil

	case HostEventMsg:
		return m.feed(msg.Event)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "n":
			m.session.AddTab("")
			return m, deliver(m.session.TabUpdate())
		case "x":
			if m.session.CloseActive() {
				return m, deliver(m.session.TabUpdate())
			}
		case "tab":
			m.session.CycleNext()
			return m, deliver(m.session.TabUpdate())
		case "shift+tab":
			m.session.CyclePrev()
			return m, deliver(m.session.TabUpdate())
		case "m":
			m.session.NextMode()
			return m, deliver(m.session.ModeUpdate())
		case "l":
			m.session.ToggleLocked()
			return m, deliver(m.session.ModeUpdate())
		case "U":
			return m, deliver(host.Unknown{Kind: "SessionUpdate"})
		}

	case tea.MouseMsg:
		if ev, ok := barEvent(msg); ok {
			return m, deliver(ev)
		}
		var cmd tea.Cmd
		m.log, cmd = m.log.Update(msg)
		return m, cmd
	}
	return m, nil
}

// barEvent translates a terminal mouse event on the bar row into a host
// mouse event.
func barEvent(msg tea.MouseMsg) (host.Mouse, bool) {
	if msg.Y != 0 || msg.Action != tea.MouseActionPress {
		return host.Mouse{}, false
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		return host.Click(msg.Y, msg.X), true
	case tea.MouseButtonRight:
		return host.Mouse{Action: host.MouseRightClick, Line: msg.Y, Column: msg.X}, true
	case tea.MouseButtonWheelUp:
		return host.Mouse{Action: host.MouseScrollUp, Lines: 1}, true
	case tea.MouseButtonWheelDown:
		return host.Mouse{Action: host.MouseScrollDown, Lines: 1}, true
	}
	return host.Mouse{}, false
}

// feed hands one event to the plugin, repaints when it asks for it, and
// schedules whatever the host sends back.
func (m Model) feed(ev host.Event) (tea.Model, tea.Cmd) {
	m.emu.logEvent(ev)
	redraw := m.plugin.Update(ev)
	m.emu.logRedraw(redraw)
	if redraw {
		m.redraws++
		m.repaint()
	}
	m.syncLog()
	m.statusBar.Update(m.plugin.State().String(), m.session.ActiveTab(), m.session.Len(), m.redraws)
	return m, deliver(m.emu.takeOutbox()...)
}

func (m *Model) repaint() {
	m.bar = m.plugin.Render(1, m.width)
}

func (m *Model) syncLog() {
	m.log.SetContent(strings.Join(m.emu.lines, "\n"))
	m.log.GotoBottom()
}

func (m *Model) distributeSize() {
	m.statusBar.SetWidth(m.width)
	m.log.Width = m.width
	// bar, separator, header and status bar take one line each
	m.log.Height = max(m.height-4, 1)
	m.syncLog()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	if m.emu.closed {
		b.WriteString(ClosedBarStyle.Width(m.width).Render("plugin closed: permissions denied"))
	} else {
		b.WriteString(m.bar)
	}
	b.WriteString("\n")
	b.WriteString(SeparatorStyle.Render(strings.Repeat("─", m.width)))
	b.WriteString("\n")
	b.WriteString(HeaderStyle.Render("Host log"))
	b.WriteString("\n")
	b.WriteString(m.log.View())
	b.WriteString("\n")
	b.WriteString(m.statusBar.View())
	return b.String()
}
