package core

import (
	"context"
	"os"
)

// FileSystem abstracts the read-only file operations used by discovery.
// Every method honors context cancellation before touching the disk.
type FileSystem interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	Stat(ctx context.Context, path string) (os.FileInfo, error)
	ReadDir(ctx context.Context, path string) ([]os.DirEntry, error)
}

// OSFileSystem is the production FileSystem backed by the os package.
type OSFileSystem struct{}

// NewOSFileSystem returns a FileSystem that reads from the real disk.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (o *OSFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (o *OSFileSystem) Stat(ctx context.Context, path string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Stat(path)
}

func (o *OSFileSystem) ReadDir(ctx context.Context, path string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadDir(path)
}

// Exists reports whether path can be stat'ed. Any error counts as absent.
func Exists(ctx context.Context, fsys FileSystem, path string) bool {
	_, err := fsys.Stat(ctx, path)
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(ctx context.Context, fsys FileSystem, path string) bool {
	info, err := fsys.Stat(ctx, path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path exists and is not a directory.
func IsFile(ctx context.Context, fsys FileSystem, path string) bool {
	info, err := fsys.Stat(ctx, path)
	return err == nil && !info.IsDir()
}
