package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

// entryFileExtension is the file extension used for stored entries.
const entryFileExtension = ".json"

type notFoundError struct{}

func (notFoundError) Error() string { return "storage entry not found" }

// Is lets callers test for a missing key with errors.Is(err, fs.ErrNotExist).
func (notFoundError) Is(target error) bool { return target == fs.ErrNotExist }

// Common storage errors.
var (
	ErrNotFound    error = notFoundError{}
	ErrInvalidKey        = errors.New("storage key cannot be empty")
	ErrInvalidData       = errors.New("storage value must be a JSON document")
	ErrCorrupt           = errors.New("storage entry corrupted")
)

// FileStore is a file-backed key-value store. Safe for concurrent use.
type FileStore struct {
	directory string
	mu        sync.RWMutex
}

// NewFileStore creates a store rooted at directory, creating it if needed.
func NewFileStore(directory string) (*FileStore, error) {
	if strings.TrimSpace(directory) == "" {
		return nil, errors.New("storage directory cannot be empty")
	}

	if err := os.MkdirAll(directory, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &FileStore{directory: directory}, nil
}

// Get returns the value stored under key. A missing key yields ErrNotFound;
// an unreadable envelope yields an error wrapping ErrCorrupt.
func (s *FileStore) Get(key string) ([]byte, error) {
	entry, err := s.GetEntry(key)
	if err != nil {
		return nil, err
	}
	return entry.Data, nil
}

// GetEntry returns the full envelope stored under key.
func (s *FileStore) GetEntry(key string) (*Entry, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.keyToFilePath(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}

	var entry Entry
	if unmarshalErr := json.Unmarshal(data, &entry); unmarshalErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, unmarshalErr)
	}
	return &entry, nil
}

// Set stores data under key, replacing any previous value atomically.
func (s *FileStore) Set(key string, data []byte) error {
	if key == "" {
		return ErrInvalidKey
	}
	if !json.Valid(data) {
		return ErrInvalidData
	}

	entryData, err := json.MarshalIndent(NewEntry(key, data), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal storage entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	filePath := s.keyToFilePath(key)
	tempPath := filePath + ".tmp"
	if writeErr := os.WriteFile(tempPath, entryData, 0o600); writeErr != nil {
		return fmt.Errorf("failed to write storage file: %w", writeErr)
	}

	if renameErr := os.Rename(tempPath, filePath); renameErr != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename storage file: %w", renameErr)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *FileStore) Delete(key string) error {
	if key == "" {
		return ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.keyToFilePath(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete storage file: %w", err)
	}
	return nil
}

// Directory returns the store directory.
func (s *FileStore) Directory() string {
	return s.directory
}

// Path returns the file backing key.
func (s *FileStore) Path(key string) string {
	return s.keyToFilePath(key)
}

// keyToFilePath sanitizes key for filesystem safety.
func (s *FileStore) keyToFilePath(key string) string {
	safeKey := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "..", "_").Replace(key)
	return filepath.Join(s.directory, safeKey+entryFileExtension)
}
