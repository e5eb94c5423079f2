package host

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputModeLabels(t *testing.T) {
	assert.Len(t, AllModes, 14)
	assert.Equal(t, "NORMAL", ModeNormal.String())
	assert.Equal(t, "ENTER SEARCH", ModeEnterSearch.String())
	assert.Equal(t, "RENAME PANE", ModeRenamePane.String())
	assert.Equal(t, "TMUX", ModeTmux.String())
}

func TestParseInputMode(t *testing.T) {
	tests := []struct {
		in   string
		want InputMode
	}{
		{"normal", ModeNormal},
		{"LOCKED", ModeLocked},
		{"enter_search", ModeEnterSearch},
		{"rename-tab", ModeRenameTab},
		{"RENAME PANE", ModeRenamePane},
		{"renamepane", ModeRenamePane},
		{" tmux ", ModeTmux},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseInputMode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseInputMode("insert")
	assert.Error(t, err)
}

func TestParseMouseAction(t *testing.T) {
	a, err := ParseMouseAction("scroll_up")
	require.NoError(t, err)
	assert.Equal(t, MouseScrollUp, a)

	a, err = ParseMouseAction("LeftClick")
	require.NoError(t, err)
	assert.Equal(t, MouseLeftClick, a)

	_, err = ParseMouseAction("doubleclick")
	assert.Error(t, err)
	assert.Equal(t, "MouseAction(42)", MouseAction(42).String())
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.RequestPermission(ReadApplicationState, ChangeApplicationState)
	r.Subscribe(EventTabUpdate)
	r.SetSelectable(false)
	r.SwitchTabTo(3)
	r.SwitchTabTo(1)

	assert.Equal(t, 1, r.Count(CmdRequestPermission))
	assert.Equal(t, 2, r.Count(CmdSwitchTabTo))
	assert.Equal(t, 0, r.Count(CmdCloseSelf))
	assert.Equal(t, []uint32{3, 1}, r.SwitchTargets())
	require.NotNil(t, r.Commands[2].Selectable)
	assert.False(t, *r.Commands[2].Selectable)

	r.Reset()
	assert.Empty(t, r.Commands)
	assert.Nil(t, r.SwitchTargets())
}

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Event
	}{
		{
			name: "mode",
			in:   `{"type":"ModeUpdate","mode":"enter search","session":"work"}`,
			want: ModeUpdate{Mode: ModeInfo{Mode: ModeEnterSearch, SessionName: "work"}},
		},
		{
			name: "tabs",
			in:   `{"type":"TabUpdate","tabs":[{"position":0,"name":"a"},{"position":1,"active":true,"is_fullscreen_active":true}]}`,
			want: TabUpdate{Tabs: []TabInfo{
				{Position: 0, Name: "a"},
				{Position: 1, Active: true, IsFullscreenActive: true},
			}},
		},
		{
			name: "click",
			in:   `{"type":"Mouse","action":"LeftClick","line":0,"column":4}`,
			want: Click(0, 4),
		},
		{
			name: "scroll",
			in:   `{"type":"Mouse","action":"ScrollDown","lines":3}`,
			want: Mouse{Action: MouseScrollDown, Lines: 3},
		},
		{
			name: "granted",
			in:   `{"type":"PermissionRequestResult","status":"Granted"}`,
			want: Granted,
		},
		{
			name: "unknown kind",
			in:   `{"type":"SessionUpdate"}`,
			want: Unknown{Kind: "SessionUpdate"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeEvent([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeEventErrors(t *testing.T) {
	_, err := DecodeEvent([]byte(`{"mode":"normal"}`))
	assert.ErrorIs(t, err, ErrMissingType)

	_, err = DecodeEvent([]byte(`not json`))
	assert.Error(t, err)

	_, err = DecodeEvent([]byte(`{"type":"ModeUpdate","mode":"insert"}`))
	assert.ErrorContains(t, err, "mode update")

	_, err = DecodeEvent([]byte(`{"type":"PermissionRequestResult","status":"maybe"}`))
	assert.ErrorContains(t, err, "permission result")
}

func TestEncodeEventDecodes(t *testing.T) {
	ev := ModeUpdate{Mode: ModeInfo{Mode: ModeRenameTab, SessionName: "s"}}
	data, err := EncodeEvent(ev)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"ModeUpdate","mode":"RENAME TAB","session":"s"}`, string(data))

	back, err := DecodeEvent(data)
	require.NoError(t, err)
	assert.Equal(t, ev, back)
}

func TestJSONHost(t *testing.T) {
	var buf bytes.Buffer
	h := NewJSONHost(&buf)
	h.RequestPermission(ReadApplicationState)
	h.SetSelectable(false)
	h.SwitchTabTo(2)
	h.CloseSelf()
	require.NoError(t, h.Err())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 4)
	assert.JSONEq(t, `{"command":"RequestPermission","permissions":["ReadApplicationState"]}`, string(lines[0]))
	assert.JSONEq(t, `{"command":"SetSelectable","selectable":false}`, string(lines[1]))
	assert.JSONEq(t, `{"command":"SwitchTabTo","position":2}`, string(lines[2]))
	assert.JSONEq(t, `{"command":"CloseSelf"}`, string(lines[3]))
}

type failingWriter struct{ writes int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("disk full")
}

func TestJSONHostStickyError(t *testing.T) {
	w := &failingWriter{}
	h := NewJSONHost(w)
	h.Subscribe(EventMouse)
	h.CloseSelf()

	assert.ErrorContains(t, h.Err(), "writing Subscribe command")
	assert.Equal(t, 1, w.writes, "writes stop after the first failure")
}
