// Package enum discovers the Swift source files a lint run covers.
package enum

import (
	"context"
)

// Source yields the files to lint from some root.
type Source interface {
	// Enumerate reads every eligible file and invokes the callback
	// with its path and content. Callbacks may run concurrently; the
	// first callback error aborts the enumeration.
	Enumerate(ctx context.Context, callback func(path string, content []byte) error) error
}

// Config for enumeration.
type Config struct {
	// Root is the file or directory to enumerate.
	Root string

	// IncludeHidden includes hidden files and directories.
	IncludeHidden bool

	// MaxFileSize is the maximum file size to lint (0 = no limit).
	MaxFileSize int64

	// FollowSymlinks follows symbolic links.
	FollowSymlinks bool

	// Select filters paths relative to Root (forward slashes). A nil
	// Select keeps everything.
	Select func(relPath string) bool
}
