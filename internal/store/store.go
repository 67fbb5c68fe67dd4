package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"

	"github.com/muurk/clipbridge/internal/logging"
)

// DocumentKey is the only key clipbridge stores.
const DocumentKey = "simple_clipboard_text"

// Store is the Persistent Text Store contract.
type Store interface {
	// Load returns the previously saved Document, or "" if there is none
	// or storage is unavailable.
	Load() string
	// Save overwrites the stored Document. Failures are logged, not returned.
	Save(content string)
}

// Disk is a Store backed by diskv.
type Disk struct {
	d        *diskv.Diskv
	basePath string
}

// flatTransform keeps every key directly under the base path.
func flatTransform(string) []string { return []string{} }

// OpenDisk creates a disk-backed store rooted at dir, creating it if needed.
func OpenDisk(dir string) (*Disk, error) {
	if dir == "" {
		return nil, fmt.Errorf("store directory must not be empty")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	return &Disk{
		d: diskv.New(diskv.Options{
			BasePath:     dir,
			TempDir:      filepath.Join(dir, ".tmp"),
			Transform:    flatTransform,
			CacheSizeMax: 1024 * 1024, // 1MB
			FilePerm:     0600,
			PathPerm:     0700,
		}),
		basePath: dir,
	}, nil
}

// BasePath returns the directory the store writes to.
func (s *Disk) BasePath() string {
	return s.basePath
}

// Read returns the stored Document and reports whether one exists.
func (s *Disk) Read() (string, bool, error) {
	if !s.d.Has(DocumentKey) {
		return "", false, nil
	}
	val, err := s.d.Read(DocumentKey)
	if err != nil {
		return "", false, fmt.Errorf("failed to read document: %w", err)
	}
	return string(val), true, nil
}

// Write overwrites the stored Document.
func (s *Disk) Write(content string) error {
	if err := s.d.Write(DocumentKey, []byte(content)); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// Load implements Store.
func (s *Disk) Load() string {
	content, _, err := s.Read()
	if err != nil {
		logging.LogBestEffort("storage", err, zap.String("path", s.basePath))
		return ""
	}
	return content
}

// Save implements Store.
func (s *Disk) Save(content string) {
	err := s.Write(content)
	logging.LogBestEffort("storage", err,
		zap.String("path", s.basePath),
		zap.Int("bytes", len(content)),
	)
}

// Memory is a process-local Store.
type Memory struct {
	mu      sync.Mutex
	content string
	saves   int
}

// NewMemory creates a Memory store preloaded with content.
func NewMemory(content string) *Memory {
	return &Memory{content: content}
}

// Load implements Store.
func (s *Memory) Load() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content
}

// Save implements Store.
func (s *Memory) Save(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = content
	s.saves++
}

// Saves returns how many times Save has been called.
func (s *Memory) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
