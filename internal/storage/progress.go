package storage

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vovakirdan/brick-breaker/internal/core"
)

var (
	// ErrNoProgress means the progress record does not exist yet.
	ErrNoProgress = errors.New("storage: no progress record")

	// ErrMalformedProgress means the record is not two numeric lines.
	ErrMalformedProgress = errors.New("storage: malformed progress record")
)

// FileStore keeps a single player's progress in a two-line text file:
// the level on the first line and the max score on the second.
type FileStore struct {
	path string
}

// NewFileStore returns a store for the record at path. A leading ~ is
// expanded to the home directory.
func NewFileStore(path string) (*FileStore, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: expanded}, nil
}

// Path returns the expanded file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the progress record.
func (f *FileStore) Load() (core.Progress, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return core.Progress{}, fmt.Errorf("%w: %s", ErrNoProgress, f.path)
	}
	if err != nil {
		return core.Progress{}, fmt.Errorf("storage: cannot read progress: %w", err)
	}

	p, err := ParseProgress(string(data))
	if err != nil {
		return core.Progress{}, fmt.Errorf("%s: %w", f.path, err)
	}
	return p, nil
}

// SaveProgress overwrites the record.
func (f *FileStore) SaveProgress(p core.Progress) error {
	if err := EnsureDir(f.path); err != nil {
		return err
	}
	if err := os.WriteFile(f.path, []byte(FormatProgress(p)), 0o644); err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}
	return nil
}

// FormatProgress renders a record as "level\nmax_score".
func FormatProgress(p core.Progress) string {
	return fmt.Sprintf("%d\n%d", p.Level, p.MaxScore)
}

// ParseProgress reads a record written by FormatProgress. A single trailing
// newline is tolerated; anything else must be exactly two integers.
func ParseProgress(s string) (core.Progress, error) {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	if len(lines) != 2 {
		return core.Progress{}, fmt.Errorf("%w: expected 2 lines, got %d", ErrMalformedProgress, len(lines))
	}

	level, err := strconv.ParseInt(strings.TrimSpace(lines[0]), 10, 32)
	if err != nil {
		return core.Progress{}, fmt.Errorf("%w: level: %w", ErrMalformedProgress, err)
	}
	maxScore, err := strconv.Atoi(strings.TrimSpace(lines[1]))
	if err != nil {
		return core.Progress{}, fmt.Errorf("%w: max score: %w", ErrMalformedProgress, err)
	}
	if maxScore < 0 {
		return core.Progress{}, fmt.Errorf("%w: negative max score %d", ErrMalformedProgress, maxScore)
	}

	return core.Progress{Level: int32(level), MaxScore: maxScore}, nil
}
