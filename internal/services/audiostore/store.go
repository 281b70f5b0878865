// Package audiostore keeps episode audio on the local filesystem, one file
// per episode id under a configured base directory.
package audiostore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrAudioNotFound is returned when no audio file exists for the episode
var ErrAudioNotFound = errors.New("audio file not found")

// Store reads and writes per-episode audio files
type Store struct {
	basePath string
}

// NewStore creates a store rooted at basePath, creating it when missing
func NewStore(basePath string) (*Store, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("creating audio directory: %w", err)
	}
	return &Store{basePath: basePath}, nil
}

// Save writes the audio body for one episode, replacing any existing file
func (s *Store) Save(ctx context.Context, episodeID uint, data io.Reader) error {
	fullPath := s.path(episodeID)

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("creating audio file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, data); err != nil {
		os.Remove(fullPath)
		return fmt.Errorf("writing audio file: %w", err)
	}
	return nil
}

// Open returns the audio body for one episode along with its size
func (s *Store) Open(ctx context.Context, episodeID uint) (io.ReadCloser, int64, error) {
	fullPath := s.path(episodeID)

	info, err := os.Stat(fullPath)
	if os.IsNotExist(err) {
		return nil, 0, ErrAudioNotFound
	}
	if err != nil {
		return nil, 0, fmt.Errorf("stat audio file: %w", err)
	}

	file, err := os.Open(fullPath)
	if err != nil {
		return nil, 0, fmt.Errorf("opening audio file: %w", err)
	}
	return file, info.Size(), nil
}

// Delete removes the audio file for one episode, tolerating a missing file
func (s *Store) Delete(ctx context.Context, episodeID uint) error {
	if err := os.Remove(s.path(episodeID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting audio file: %w", err)
	}
	return nil
}

// Exists reports whether an audio file is stored for the episode
func (s *Store) Exists(ctx context.Context, episodeID uint) (bool, error) {
	_, err := os.Stat(s.path(episodeID))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat audio file: %w", err)
	}
	return true, nil
}

func (s *Store) path(episodeID uint) string {
	return filepath.Join(s.basePath, fmt.Sprintf("%d.mp3", episodeID))
}
