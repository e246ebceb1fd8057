package core

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests.
// Parent directories of every file are created implicitly.
type MockFileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]bool
	stats []string
	reads []string
}

// NewMockFileSystem returns an empty in-memory filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// SetFile stores data at path and registers all its parent directories.
func (m *MockFileSystem) SetFile(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.files[path] = data
	m.addParents(path)
}

// SetDir registers an (empty) directory and its parents.
func (m *MockFileSystem) SetDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.dirs[path] = true
	m.addParents(path)
}

// GetFile returns the stored content of path.
func (m *MockFileSystem) GetFile(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[filepath.Clean(path)]
	return data, ok
}

// StatCalls returns every path passed to Stat, in call order.
func (m *MockFileSystem) StatCalls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.stats)
}

// ReadCalls returns every path passed to ReadFile or ReadDir, in call order.
func (m *MockFileSystem) ReadCalls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.reads)
}

// ResetCalls forgets the recorded Stat/ReadFile/ReadDir calls.
func (m *MockFileSystem) ResetCalls() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats = nil
	m.reads = nil
}

func (m *MockFileSystem) addParents(path string) {
	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		m.dirs[dir] = true
		if filepath.Dir(dir) == dir {
			return
		}
	}
}

func (m *MockFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads = append(m.reads, path)
	data, ok := m.files[filepath.Clean(path)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return data, nil
}

func (m *MockFileSystem) Stat(ctx context.Context, path string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats = append(m.stats, path)
	clean := filepath.Clean(path)
	if data, ok := m.files[clean]; ok {
		return &mockFileInfo{name: filepath.Base(clean), size: int64(len(data))}, nil
	}
	if m.dirs[clean] {
		return &mockFileInfo{name: filepath.Base(clean), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

// ReadDir lists the direct children of path sorted by name.
func (m *MockFileSystem) ReadDir(ctx context.Context, path string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads = append(m.reads, path)
	clean := filepath.Clean(path)
	if !m.dirs[clean] {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: fs.ErrNotExist}
	}

	var entries []os.DirEntry
	for p, data := range m.files {
		if filepath.Dir(p) == clean {
			entries = append(entries, fs.FileInfoToDirEntry(&mockFileInfo{name: filepath.Base(p), size: int64(len(data))}))
		}
	}
	for p := range m.dirs {
		if p != clean && filepath.Dir(p) == clean {
			entries = append(entries, fs.FileInfoToDirEntry(&mockFileInfo{name: filepath.Base(p), dir: true}))
		}
	}
	slices.SortFunc(entries, func(a, b os.DirEntry) int {
		switch {
		case a.Name() < b.Name():
			return -1
		case a.Name() > b.Name():
			return 1
		default:
			return 0
		}
	})
	return entries, nil
}

type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (i *mockFileInfo) Name() string { return i.name }
func (i *mockFileInfo) Size() int64  { return i.size }
func (i *mockFileInfo) Mode() os.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (i *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i *mockFileInfo) IsDir() bool        { return i.dir }
func (i *mockFileInfo) Sys() any           { return nil }
