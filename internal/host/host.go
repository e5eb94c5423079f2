// Package host models the terminal multiplexer that loads the tab bar: the
// events it delivers and the commands it accepts.
package host

// Host receives the plugin's outbound commands. Every command is
// fire-and-forget; the host reports consequences as later events.
type Host interface {
	RequestPermission(perms ...PermissionType)
	Subscribe(events ...EventType)
	SetSelectable(selectable bool)
	CloseSelf()
	// SwitchTabTo focuses the tab at the 1-based position.
	SwitchTabTo(position uint32)
}

// CommandKind identifies an outbound host command.
type CommandKind string

const (
	CmdRequestPermission CommandKind = "RequestPermission"
	CmdSubscribe         CommandKind = "Subscribe"
	CmdSetSelectable     CommandKind = "SetSelectable"
	CmdCloseSelf         CommandKind = "CloseSelf"
	CmdSwitchTabTo       CommandKind = "SwitchTabTo"
)

// Command is a recorded host command.
type Command struct {
	Kind        CommandKind      `json:"command"`
	Permissions []PermissionType `json:"permissions,omitempty"`
	Events      []EventType      `json:"events,omitempty"`
	Selectable  *bool            `json:"selectable,omitempty"`
	Position    uint32           `json:"position,omitempty"`
}

// Recorder is a Host that keeps every command in memory.
type Recorder struct {
	Commands []Command
}

var _ Host = (*Recorder)(nil)

func (r *Recorder) RequestPermission(perms ...PermissionType) {
	r.Commands = append(r.Commands, Command{Kind: CmdRequestPermission, Permissions: perms})
}

func (r *Recorder) Subscribe(events ...EventType) {
	r.Commands = append(r.Commands, Command{Kind: CmdSubscribe, Events: events})
}

func (r *Recorder) SetSelectable(selectable bool) {
	r.Commands = append(r.Commands, Command{Kind: CmdSetSelectable, Selectable: &selectable})
}

func (r *Recorder) CloseSelf() {
	r.Commands = append(r.Commands, Command{Kind: CmdCloseSelf})
}

func (r *Recorder) SwitchTabTo(position uint32) {
	r.Commands = append(r.Commands, Command{Kind: CmdSwitchTabTo, Position: position})
}

// Count returns how many commands of the given kind were recorded.
func (r *Recorder) Count(kind CommandKind) int {
	n := 0
	for _, c := range r.Commands {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// SwitchTargets returns the positions of every SwitchTabTo command in order.
func (r *Recorder) SwitchTargets() []uint32 {
	var out []uint32
	for _, c := range r.Commands {
		if c.Kind == CmdSwitchTabTo {
			out = append(out, c.Position)
		}
	}
	return out
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.Commands = nil
}
