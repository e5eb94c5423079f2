package host

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMissingType is returned when an encoded event has no "type" field.
var ErrMissingType = errors.New("event has no type")

// wireEvent is the JSON form of an Event, one object per line:
//
//	{"type":"ModeUpdate","mode":"locked"}
//	{"type":"TabUpdate","tabs":[{"position":0,"active":true}]}
//	{"type":"Mouse","action":"LeftClick","column":2}
//	{"type":"PermissionRequestResult","status":"granted"}
type wireEvent struct {
	Type    EventType `json:"type"`
	Mode    string    `json:"mode,omitempty"`
	Session string    `json:"session,omitempty"`
	Tabs    []TabInfo `json:"tabs,omitempty"`
	Action  string    `json:"action,omitempty"`
	Line    int       `json:"line,omitempty"`
	Column  int       `json:"column,omitempty"`
	Lines   int       `json:"lines,omitempty"`
	Status  string    `json:"status,omitempty"`
}

// DecodeEvent parses one JSON-encoded event. Types other than the four the
// plugin subscribes to decode as Unknown.
func DecodeEvent(data []byte) (Event, error) {
	var w wireEvent
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decoding event: %w", err)
	}
	switch w.Type {
	case "":
		return nil, ErrMissingType
	case EventModeUpdate:
		mode, err := ParseInputMode(w.Mode)
		if err != nil {
			return nil, fmt.Errorf("decoding mode update: %w", err)
		}
		return ModeUpdate{Mode: ModeInfo{Mode: mode, SessionName: w.Session}}, nil
	case EventTabUpdate:
		return TabUpdate{Tabs: w.Tabs}, nil
	case EventMouse:
		action, err := ParseMouseAction(w.Action)
		if err != nil {
			return nil, fmt.Errorf("decoding mouse event: %w", err)
		}
		return Mouse{Action: action, Line: w.Line, Column: w.Column, Lines: w.Lines}, nil
	case EventPermissionRequestResult:
		status, err := ParsePermissionStatus(w.Status)
		if err != nil {
			return nil, fmt.Errorf("decoding permission result: %w", err)
		}
		return PermissionRequestResult{Status: status}, nil
	default:
		return Unknown{Kind: w.Type}, nil
	}
}

// EncodeEvent is the inverse of DecodeEvent.
func EncodeEvent(ev Event) ([]byte, error) {
	w := wireEvent{Type: ev.Type()}
	switch e := ev.(type) {
	case ModeUpdate:
		w.Mode = e.Mode.Mode.String()
		w.Session = e.Mode.SessionName
	case TabUpdate:
		w.Tabs = e.Tabs
	case Mouse:
		w.Action = e.Action.String()
		w.Line, w.Column, w.Lines = e.Line, e.Column, e.Lines
	case PermissionRequestResult:
		w.Status = e.Status.String()
	case Unknown:
	}
	return json.Marshal(w)
}

// JSONHost writes each command as a JSON line. Write errors are sticky and
// reported by Err.
type JSONHost struct {
	enc *json.Encoder
	err error
}

var _ Host = (*JSONHost)(nil)

// NewJSONHost returns a Host that encodes commands to w.
func NewJSONHost(w io.Writer) *JSONHost {
	return &JSONHost{enc: json.NewEncoder(w)}
}

func (h *JSONHost) emit(c Command) {
	if h.err != nil {
		return
	}
	if err := h.enc.Encode(c); err != nil {
		h.err = fmt.Errorf("writing %s command: %w", c.Kind, err)
	}
}

// Err returns the first write error, if any.
func (h *JSONHost) Err() error { return h.err }

func (h *JSONHost) RequestPermission(perms ...PermissionType) {
	h.emit(Command{Kind: CmdRequestPermission, Permissions: perms})
}

func (h *JSONHost) Subscribe(events ...EventType) {
	h.emit(Command{Kind: CmdSubscribe, Events: events})
}

func (h *JSONHost) SetSelectable(selectable bool) {
	h.emit(Command{Kind: CmdSetSelectable, Selectable: &selectable})
}

func (h *JSONHost) CloseSelf() {
	h.emit(Command{Kind: CmdCloseSelf})
}

func (h *JSONHost) SwitchTabTo(position uint32) {
	h.emit(Command{Kind: CmdSwitchTabTo, Position: position})
}
