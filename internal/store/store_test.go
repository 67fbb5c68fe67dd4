package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty", content: ""},
		{name: "ascii", content: "meeting notes"},
		{name: "multiline", content: "line one\nline two\r\nline three\n"},
		{name: "unicode", content: "內容過長 🚀 naïve"},
		{name: "large", content: strings.Repeat("x", 10000)},
		{name: "binary-ish", content: "\x00\x01\xff tab\tend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()

			s, err := OpenDisk(dir)
			if err != nil {
				t.Fatalf("OpenDisk() error = %v", err)
			}
			s.Save(tt.content)

			// Fresh store over the same directory simulates a reload
			reloaded, err := OpenDisk(dir)
			if err != nil {
				t.Fatalf("OpenDisk() error = %v", err)
			}
			if got := reloaded.Load(); got != tt.content {
				t.Errorf("Load() = %q, want %q", got, tt.content)
			}
		})
	}
}

func TestDiskLoadWithoutDocument(t *testing.T) {
	s, err := OpenDisk(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDisk() error = %v", err)
	}

	content, ok, err := s.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if ok {
		t.Error("Read() should report no document on a fresh store")
	}
	if content != "" {
		t.Errorf("Read() = %q, want empty", content)
	}
	if got := s.Load(); got != "" {
		t.Errorf("Load() = %q, want empty", got)
	}
}

func TestDiskSaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenDisk(dir)
	if err != nil {
		t.Fatalf("OpenDisk() error = %v", err)
	}

	s.Save("first")
	s.Save("second, longer value")
	s.Save("third")

	data, err := os.ReadFile(filepath.Join(dir, DocumentKey))
	if err != nil {
		t.Fatalf("document file should exist under its key: %v", err)
	}
	if string(data) != "third" {
		t.Errorf("file content = %q, want %q", data, "third")
	}
}

func TestDiskClearedDocumentStaysEmpty(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenDisk(dir)
	if err != nil {
		t.Fatalf("OpenDisk() error = %v", err)
	}

	s.Save("hello")
	s.Save("")

	reloaded, err := OpenDisk(dir)
	if err != nil {
		t.Fatalf("OpenDisk() error = %v", err)
	}
	if got := reloaded.Load(); got != "" {
		t.Errorf("Load() after clear = %q, want empty", got)
	}
}

func TestOpenDiskRejectsEmptyDir(t *testing.T) {
	if _, err := OpenDisk(""); err == nil {
		t.Error("OpenDisk(\"\") should fail")
	}
}

func TestMemory(t *testing.T) {
	s := NewMemory("seed")
	if got := s.Load(); got != "seed" {
		t.Errorf("Load() = %q, want seed", got)
	}

	s.Save("a")
	s.Save("ab")
	if got := s.Load(); got != "ab" {
		t.Errorf("Load() = %q, want ab", got)
	}
	if s.Saves() != 2 {
		t.Errorf("Saves() = %d, want 2", s.Saves())
	}
}

var (
	_ Store = (*Disk)(nil)
	_ Store = (*Memory)(nil)
)
