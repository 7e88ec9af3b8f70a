// Copyright 2026 The Fillprobe Authors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Storage is the filesystem surface the probe drives. The production
// implementation is [DirStorage]; tests substitute failing
// implementations to exercise the exhaustion and fatal paths without
// filling a real device.
type Storage interface {
	// WriteChunk writes data to the named chunk file, fully replacing
	// any existing file of that name.
	WriteChunk(name string, data []byte) error

	// OpenChunk opens the named chunk file for reading.
	OpenChunk(name string) (io.ReadCloser, error)

	// RemoveChunk deletes the named chunk file if it exists.
	RemoveChunk(name string) error

	// AvailableBytes reports the space currently available to
	// unprivileged writes on the underlying filesystem.
	AvailableBytes() (uint64, error)
}

// DirStorage stores chunk files directly inside a target directory.
type DirStorage struct {
	dir string
}

// NewDirStorage returns storage rooted at dir. The directory must
// already exist and be accessible — the probe never creates it, because
// measuring a directory the user did not intend to fill would be a
// destructive surprise.
func NewDirStorage(dir string) (*DirStorage, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("target directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("target %s is not a directory", dir)
	}
	return &DirStorage{dir: dir}, nil
}

// Dir returns the target directory path.
func (s *DirStorage) Dir() string {
	return s.dir
}

func (s *DirStorage) WriteChunk(name string, data []byte) error {
	return os.WriteFile(filepath.Join(s.dir, name), data, 0o644)
}

func (s *DirStorage) OpenChunk(name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.dir, name))
}

func (s *DirStorage) RemoveChunk(name string) error {
	err := os.Remove(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *DirStorage) AvailableBytes() (uint64, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(s.dir, &stat); err != nil {
		return 0, fmt.Errorf("statfs %s: %w", s.dir, err)
	}
	return uint64(stat.Bavail) * uint64(stat.Bsize), nil
}

// IsExhausted reports whether err is the operating system's signal
// that storage refused a write for lack of space. Disk quota
// exhaustion counts: from the probe's point of view the device is full
// either way.
func IsExhausted(err error) bool {
	return errors.Is(err, unix.ENOSPC) || errors.Is(err, unix.EDQUOT)
}
