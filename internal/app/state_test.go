package app

import (
	"strings"
	"testing"

	"github.com/muurk/clipbridge/internal/qr"
	"github.com/muurk/clipbridge/internal/store"
)

func TestNewStateModeInitialization(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   Mode
	}{
		{name: "fresh device", stored: "", want: ModeConnect},
		{name: "existing document", stored: "hello", want: ModeEditor},
		{name: "whitespace only document", stored: " ", want: ModeEditor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewState(store.NewMemory(tt.stored))
			if st.Mode() != tt.want {
				t.Errorf("Mode() = %v, want %v", st.Mode(), tt.want)
			}
			if st.Text() != tt.stored {
				t.Errorf("Text() = %q, want %q", st.Text(), tt.stored)
			}
		})
	}
}

func TestNewStateFromDisk(t *testing.T) {
	dir := t.TempDir()
	disk, err := store.OpenDisk(dir)
	if err != nil {
		t.Fatal(err)
	}

	st := NewState(disk)
	if st.Mode() != ModeConnect {
		t.Fatalf("fresh disk store should start in Connect, got %v", st.Mode())
	}
	st.SetText("persist me")

	reopened, err := store.OpenDisk(dir)
	if err != nil {
		t.Fatal(err)
	}
	again := NewState(reopened)
	if again.Text() != "persist me" {
		t.Errorf("Text() after reload = %q", again.Text())
	}
	if again.Mode() != ModeEditor {
		t.Errorf("Mode() after reload = %v, want editor", again.Mode())
	}
}

func TestSetTextPersistsEveryChange(t *testing.T) {
	mem := store.NewMemory("")
	st := NewState(mem)

	for _, s := range []string{"h", "he", "hel", "hell", "hello"} {
		st.SetText(s)
	}

	if mem.Saves() != 5 {
		t.Errorf("Saves() = %d, want 5 (no debouncing)", mem.Saves())
	}
	if mem.Load() != "hello" {
		t.Errorf("stored = %q, want hello", mem.Load())
	}

	st.SetText("hello")
	if mem.Saves() != 5 {
		t.Error("setting the same text should not write again")
	}
}

func TestClear(t *testing.T) {
	mem := store.NewMemory("hello")
	st := NewState(mem)

	st.Clear()

	if st.Text() != "" || !st.IsEmpty() {
		t.Errorf("Text() = %q, want empty", st.Text())
	}
	if mem.Load() != "" {
		t.Errorf("stored = %q, clear should be persisted", mem.Load())
	}
	if st.Mode() != ModeEditor {
		t.Error("clearing should not change mode")
	}
}

func TestSetModeLeavesDocument(t *testing.T) {
	st := NewState(store.NewMemory("hello"))

	st.SetMode(ModeConnect)
	if st.Mode() != ModeConnect {
		t.Errorf("Mode() = %v, want connect", st.Mode())
	}
	st.SetMode(ModeEditor)

	if st.Text() != "hello" {
		t.Errorf("Text() = %q, mode changes must not touch the document", st.Text())
	}
}

func TestPanelsAreIdempotent(t *testing.T) {
	st := NewState(store.NewMemory("hello"))
	beforeText, beforeMode := st.Text(), st.Mode()

	st.OpenTransfer()
	if !st.TransferOpen() {
		t.Error("transfer panel should be open")
	}
	st.CloseTransfer()

	st.OpenHelp()
	if !st.HelpOpen() {
		t.Error("help panel should be open")
	}
	st.CloseHelp()

	if st.TransferOpen() || st.HelpOpen() {
		t.Error("panels should be closed")
	}
	if st.Text() != beforeText || st.Mode() != beforeMode {
		t.Error("open/close should leave Document and Mode unchanged")
	}
}

func TestLengthAndFits(t *testing.T) {
	st := NewState(store.NewMemory(""))

	st.SetText(strings.Repeat("字", qr.MaxPayload))
	if st.Len() != qr.MaxPayload {
		t.Errorf("Len() = %d, want %d", st.Len(), qr.MaxPayload)
	}
	if !st.FitsCode() {
		t.Error("document at the limit should fit")
	}

	st.SetText(st.Text() + "!")
	if st.FitsCode() {
		t.Error("document over the limit should not fit")
	}
}

func TestModeString(t *testing.T) {
	if ModeConnect.String() != "connect" || ModeEditor.String() != "editor" {
		t.Error("unexpected mode names")
	}
	if Mode(7).String() != "Mode(7)" {
		t.Errorf("unknown mode = %q", Mode(7).String())
	}
}
