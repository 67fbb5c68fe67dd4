package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/clipbridge/internal/actions"
	"github.com/muurk/clipbridge/internal/app"
	"github.com/muurk/clipbridge/internal/qr"
	"github.com/muurk/clipbridge/internal/store"
)

type fakeClipboard struct {
	written []string
	err     error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.written = append(f.written, text)
	return nil
}

type testEnv struct {
	store  *store.Memory
	clip   *fakeClipboard
	opened []string
	dir    string
}

func newTestModel(t *testing.T, text string) (Model, *testEnv) {
	t.Helper()

	env := &testEnv{
		store: store.NewMemory(text),
		clip:  &fakeClipboard{},
		dir:   t.TempDir(),
	}
	acts := Actions{
		Copier:     &actions.Copier{Clipboard: env.clip},
		Downloader: actions.NewDownloader(env.dir),
		Messenger: &actions.Messenger{Open: func(u string) error {
			env.opened = append(env.opened, u)
			return nil
		}},
	}

	m := NewModel(app.NewState(env.store), "https://example.com/join", acts)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, env
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

type scheduledMsg struct {
	d   time.Duration
	msg tea.Msg
}

// captureSchedule records scheduled messages instead of starting timers.
func captureSchedule(t *testing.T) *[]scheduledMsg {
	t.Helper()
	var got []scheduledMsg
	orig := schedule
	schedule = func(d time.Duration, msg tea.Msg) tea.Cmd {
		got = append(got, scheduledMsg{d: d, msg: msg})
		return nil
	}
	t.Cleanup(func() { schedule = orig })
	return &got
}

func TestInitialMode(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   app.Mode
	}{
		{name: "empty document starts at connect", stored: "", want: app.ModeConnect},
		{name: "stored document starts in editor", stored: "hello", want: app.ModeEditor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, tt.stored)
			if got := m.State().Mode(); got != tt.want {
				t.Errorf("Mode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConnectTransitions(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
	}{
		{name: "start editing", key: keyOf(tea.KeyEnter)},
		{name: "skip", key: runes("s")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, env := newTestModel(t, "")
			m = send(t, m, tt.key)

			if m.State().Mode() != app.ModeEditor {
				t.Errorf("Mode() = %v, want editor", m.State().Mode())
			}
			if env.store.Saves() != 0 {
				t.Errorf("document saved %d times, want 0", env.store.Saves())
			}
		})
	}
}

func TestConnectQuit(t *testing.T) {
	m, _ := newTestModel(t, "")

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("cmd() = %T, want tea.QuitMsg", cmd())
	}
}

func TestCtrlCQuitsEverywhere(t *testing.T) {
	for _, stored := range []string{"", "hello"} {
		m, _ := newTestModel(t, stored)
		_, cmd := m.Update(keyOf(tea.KeyCtrlC))
		if cmd == nil {
			t.Fatalf("stored %q: expected a quit command", stored)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("stored %q: cmd() = %T, want tea.QuitMsg", stored, cmd())
		}
	}
}

func TestReconnectKeepsDocument(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{name: "ctrl+b", msg: keyOf(tea.KeyCtrlB)},
		{name: "brand click", msg: click(4, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, env := newTestModel(t, "hello")
			m = send(t, m, tt.msg)

			if m.State().Mode() != app.ModeConnect {
				t.Errorf("Mode() = %v, want connect", m.State().Mode())
			}
			if m.State().Text() != "hello" {
				t.Errorf("Text() = %q, want hello", m.State().Text())
			}
			if env.store.Saves() != 0 {
				t.Errorf("document saved %d times, want 0", env.store.Saves())
			}
		})
	}
}

func TestClickBelowHeaderStaysInEditor(t *testing.T) {
	m, _ := newTestModel(t, "hello")
	m = send(t, m, click(4, HeaderLines+2))

	if m.State().Mode() != app.ModeEditor {
		t.Errorf("Mode() = %v, want editor", m.State().Mode())
	}
}

func TestPanelsOpenAndClose(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		open   tea.Msg
		close  tea.Msg
		isOpen func(*app.State) bool
	}{
		{name: "transfer closed by esc", stored: "hello", open: keyOf(tea.KeyCtrlT), close: keyOf(tea.KeyEsc), isOpen: (*app.State).TransferOpen},
		{name: "transfer closed by enter", stored: "hello", open: keyOf(tea.KeyCtrlT), close: keyOf(tea.KeyEnter), isOpen: (*app.State).TransferOpen},
		{name: "transfer closed by click", stored: "hello", open: keyOf(tea.KeyCtrlT), close: click(0, 0), isOpen: (*app.State).TransferOpen},
		{name: "help from editor", stored: "hello", open: keyOf(tea.KeyF1), close: runes("x"), isOpen: (*app.State).HelpOpen},
		{name: "help from connect", stored: "", open: runes("?"), close: keyOf(tea.KeyEsc), isOpen: (*app.State).HelpOpen},
		{name: "help closed by click", stored: "", open: keyOf(tea.KeyF1), close: click(10, 10), isOpen: (*app.State).HelpOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, env := newTestModel(t, tt.stored)
			mode := m.State().Mode()

			m = send(t, m, tt.open)
			if !tt.isOpen(m.State()) {
				t.Fatal("panel did not open")
			}

			m = send(t, m, tt.close)
			if tt.isOpen(m.State()) {
				t.Fatal("panel did not close")
			}

			if m.State().Text() != tt.stored {
				t.Errorf("Text() = %q, want %q", m.State().Text(), tt.stored)
			}
			if m.State().Mode() != mode {
				t.Errorf("Mode() = %v, want %v", m.State().Mode(), mode)
			}
			if env.store.Saves() != 0 {
				t.Errorf("document saved %d times, want 0", env.store.Saves())
			}
		})
	}
}

func TestOpenPanelSwallowsEditorKeys(t *testing.T) {
	m, _ := newTestModel(t, "hello")
	m = send(t, m, keyOf(tea.KeyCtrlT), runes("a"))

	if m.State().Text() != "hello" {
		t.Errorf("Text() = %q, want hello", m.State().Text())
	}
	if !m.State().TransferOpen() {
		t.Error("plain key should not close the transfer panel")
	}
}

func TestTypingPersists(t *testing.T) {
	m, env := newTestModel(t, "")
	m = send(t, m, runes("s"), runes("h"), runes("i"))

	if m.State().Text() != "hi" {
		t.Errorf("Text() = %q, want hi", m.State().Text())
	}
	if env.store.Load() != "hi" {
		t.Errorf("stored = %q, want hi", env.store.Load())
	}
}

func TestEditorKeepsDocumentBytes(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "tab and CRLF", text: "\tx\r\ny"},
		{name: "indented code", text: "func main() {\n\tfmt.Println(\"hi\")\n}"},
		{name: "windows line ending", text: "windows\r\nline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, env := newTestModel(t, tt.text)

			// Non-key traffic, then leave and re-enter the editor
			m = send(t, m, struct{}{}, tea.WindowSizeMsg{Width: 80, Height: 30})
			m = send(t, m, keyOf(tea.KeyCtrlB), runes("s"), struct{}{})

			if m.State().Mode() != app.ModeEditor {
				t.Fatalf("Mode() = %v, want editor", m.State().Mode())
			}
			if m.State().Text() != tt.text {
				t.Errorf("Text() = %q, want %q", m.State().Text(), tt.text)
			}
			if env.store.Saves() != 0 {
				t.Errorf("document saved %d times, want 0", env.store.Saves())
			}
			if env.store.Load() != tt.text {
				t.Errorf("stored = %q, want %q", env.store.Load(), tt.text)
			}

			m = send(t, m, keyOf(tea.KeyCtrlD))
			data, err := os.ReadFile(filepath.Join(env.dir, actions.DownloadFileName))
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tt.text {
				t.Errorf("downloaded %q, want %q", data, tt.text)
			}
		})
	}
}

func TestEmptyDocumentDisablesActions(t *testing.T) {
	m, env := newTestModel(t, "")
	m = send(t, m, runes("s"))

	m = send(t, m,
		keyOf(tea.KeyCtrlY),
		keyOf(tea.KeyCtrlS),
		keyOf(tea.KeyCtrlX),
		keyOf(tea.KeyCtrlT),
	)

	if len(env.clip.written) != 0 {
		t.Errorf("clipboard written %v, want nothing", env.clip.written)
	}
	if len(env.opened) != 0 {
		t.Errorf("opened %v, want nothing", env.opened)
	}
	if m.Editor.ConfirmingClear() {
		t.Error("clear confirmation shown for an empty document")
	}
	if m.State().TransferOpen() {
		t.Error("transfer panel opened for an empty document")
	}
}

func TestCopiedIndicator(t *testing.T) {
	got := captureSchedule(t)
	m, env := newTestModel(t, "hello")

	// t=0
	m = send(t, m, keyOf(tea.KeyCtrlY))
	if !m.Editor.Copied() {
		t.Fatal("Copied() = false right after copy")
	}
	if len(env.clip.written) != 1 || env.clip.written[0] != "hello" {
		t.Fatalf("clipboard = %v, want [hello]", env.clip.written)
	}
	if len(*got) != 1 || (*got)[0].d != 2*time.Second {
		t.Fatalf("scheduled = %v, want one 2s reset", *got)
	}

	// t=1000ms: copy again restarts the window
	m = send(t, m, keyOf(tea.KeyCtrlY))
	if len(*got) != 2 {
		t.Fatalf("scheduled %d resets, want 2", len(*got))
	}

	// t=2000ms: first reset is stale
	m = send(t, m, (*got)[0].msg)
	if !m.Editor.Copied() {
		t.Error("Copied() = false at 2000ms after a restart at 1000ms")
	}

	// t=3000ms
	m = send(t, m, (*got)[1].msg)
	if m.Editor.Copied() {
		t.Error("Copied() = true after the restarted window elapsed")
	}
}

func TestCopiedIndicatorExpires(t *testing.T) {
	got := captureSchedule(t)
	m, _ := newTestModel(t, "hello")

	m = send(t, m, keyOf(tea.KeyCtrlY))
	if !strings.Contains(m.Editor.View(), "Copied!") {
		t.Error("editor view missing Copied! indicator")
	}

	m = send(t, m, (*got)[0].msg)
	if m.Editor.Copied() {
		t.Error("Copied() = true after 2000ms")
	}
	if strings.Contains(m.Editor.View(), "Copied!") {
		t.Error("editor view still shows Copied!")
	}
}

func TestLeavingEditorCancelsIndicator(t *testing.T) {
	got := captureSchedule(t)
	m, _ := newTestModel(t, "hello")

	m = send(t, m, keyOf(tea.KeyCtrlY), keyOf(tea.KeyCtrlB))
	if m.Editor.Copied() {
		t.Error("Copied() = true after leaving the editor")
	}

	// The pending reset arrives late and back in the editor
	m = send(t, m, runes("s"), (*got)[0].msg)
	if m.Editor.Copied() {
		t.Error("Copied() = true after returning to the editor")
	}
}

func TestCopyFailureShowsStatus(t *testing.T) {
	captureSchedule(t)
	m, env := newTestModel(t, "hello")
	env.clip.err = errors.New("no clipboard utility")

	m = send(t, m, keyOf(tea.KeyCtrlY))
	if m.Editor.Copied() {
		t.Error("Copied() = true after a failed copy")
	}
	if !strings.Contains(m.Editor.Status(), "Copy failed") {
		t.Errorf("Status() = %q, want a copy failure", m.Editor.Status())
	}
	if m.State().Text() != "hello" {
		t.Errorf("Text() = %q, want hello", m.State().Text())
	}
}

func TestClearConfirmation(t *testing.T) {
	tests := []struct {
		name   string
		answer tea.KeyMsg
		want   string
	}{
		{name: "confirm", answer: runes("y"), want: ""},
		{name: "confirm upper", answer: runes("Y"), want: ""},
		{name: "decline", answer: runes("n"), want: "hello"},
		{name: "escape declines", answer: keyOf(tea.KeyEsc), want: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, env := newTestModel(t, "hello")

			m = send(t, m, keyOf(tea.KeyCtrlX))
			if !m.Editor.ConfirmingClear() {
				t.Fatal("clear confirmation not shown")
			}
			if !strings.Contains(m.View(), ClearConfirmPrompt) {
				t.Error("view missing confirmation prompt")
			}

			m = send(t, m, tt.answer)
			if m.Editor.ConfirmingClear() {
				t.Error("confirmation still shown after answering")
			}
			if m.State().Text() != tt.want {
				t.Errorf("Text() = %q, want %q", m.State().Text(), tt.want)
			}
			if env.store.Load() != tt.want {
				t.Errorf("stored = %q, want %q", env.store.Load(), tt.want)
			}
		})
	}
}

func TestDownload(t *testing.T) {
	m, env := newTestModel(t, "meeting notes")

	m = send(t, m, keyOf(tea.KeyCtrlD))

	path := filepath.Join(env.dir, actions.DownloadFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "meeting notes" {
		t.Errorf("file content = %q, want %q", data, "meeting notes")
	}
	if !strings.Contains(m.Editor.Status(), path) {
		t.Errorf("Status() = %q, want it to name %s", m.Editor.Status(), path)
	}
}

func TestSendBoundary(t *testing.T) {
	tests := []struct {
		name      string
		length    int
		wantAlert bool
	}{
		{name: "at limit", length: 2000, wantAlert: false},
		{name: "over limit", length: 2001, wantAlert: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := strings.Repeat("a", tt.length)
			m, env := newTestModel(t, text)

			m = send(t, m, keyOf(tea.KeyCtrlS))

			if got := m.Editor.Alert() != ""; got != tt.wantAlert {
				t.Fatalf("alert shown = %v, want %v", got, tt.wantAlert)
			}
			if tt.wantAlert {
				if len(env.opened) != 0 {
					t.Errorf("composer opened for oversize text: %v", env.opened)
				}
				if !strings.Contains(m.Editor.Alert(), "內容過長") {
					t.Errorf("alert %q missing Chinese warning", m.Editor.Alert())
				}

				// Any key dismisses without touching the Document
				m = send(t, m, runes("z"))
				if m.Editor.Alert() != "" {
					t.Error("alert not dismissed")
				}
				if m.State().Text() != text {
					t.Error("dismissing the alert changed the document")
				}
				return
			}

			if len(env.opened) != 1 || !strings.HasPrefix(env.opened[0], "sms:?body=") {
				t.Errorf("opened = %v, want one sms: link", env.opened)
			}
		})
	}
}

func TestTransferPanelBoundary(t *testing.T) {
	tests := []struct {
		name         string
		length       int
		wantOversize bool
	}{
		{name: "at limit", length: 2000, wantOversize: false},
		{name: "over limit", length: 2001, wantOversize: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, strings.Repeat("a", tt.length))
			m = send(t, m, keyOf(tea.KeyCtrlT))

			if m.Transfer.Oversize() != tt.wantOversize {
				t.Errorf("Oversize() = %v, want %v", m.Transfer.Oversize(), tt.wantOversize)
			}
			if tt.wantOversize {
				if m.Transfer.Code() != nil {
					t.Error("oversize document should not be encoded")
				}
				if !strings.Contains(m.Transfer.View(), TooLongTitle) {
					t.Error("panel missing too-long notice")
				}
				return
			}
			if m.Transfer.Code() == nil {
				t.Fatal("Code() = nil for a document at the limit")
			}
			if got := m.Transfer.Code().Data(); got != m.State().Text() {
				t.Error("transfer code does not carry the document")
			}
		})
	}
}

func TestTransferPanelMultibyteOverCapacity(t *testing.T) {
	m, _ := newTestModel(t, strings.Repeat("字", qr.MaxPayload))
	m = send(t, m, keyOf(tea.KeyCtrlT))

	if !m.Transfer.Oversize() {
		t.Error("Oversize() = false for text the encoder cannot hold")
	}
	if m.Transfer.Code() != nil {
		t.Error("Code() should be nil")
	}
	view := m.Transfer.View()
	for _, want := range []string{TooLongTitle, TooLongTip} {
		if !strings.Contains(view, want) {
			t.Errorf("panel missing %q", want)
		}
	}
}

func TestTransferPanelFollowsDocument(t *testing.T) {
	m, _ := newTestModel(t, "first")

	m = send(t, m, keyOf(tea.KeyCtrlT), keyOf(tea.KeyEsc))
	m = send(t, m, runes("!"), keyOf(tea.KeyCtrlT))

	if got := m.Transfer.Code().Data(); got != m.State().Text() {
		t.Errorf("Code().Data() = %q, want %q", got, m.State().Text())
	}
}

func TestView(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		msgs   []tea.Msg
		want   []string
	}{
		{
			name:   "connect",
			stored: "",
			want:   []string{AppName, "Establish Connection", "Skip this step", "https://example.com/join"},
		},
		{
			name:   "editor",
			stored: "hello",
			want:   []string{AppName, "Workspace", "5 chars", "Transfer Data"},
		},
		{
			name:   "help",
			stored: "hello",
			msgs:   []tea.Msg{keyOf(tea.KeyF1)},
			want:   []string{"Usage Guide", "中文指南", "Close / 關閉"},
		},
		{
			name:   "narrow terminal",
			stored: "hello",
			msgs:   []tea.Msg{tea.WindowSizeMsg{Width: 40, Height: 20}},
			want:   []string{"Terminal too narrow"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, tt.stored)
			m = send(t, m, tt.msgs...)

			view := m.View()
			for _, want := range tt.want {
				if !strings.Contains(view, want) {
					t.Errorf("view missing %q", want)
				}
			}
		})
	}
}
