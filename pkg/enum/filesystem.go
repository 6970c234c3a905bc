package enum

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"
)

// swiftExtension is the only file extension a lint run considers when
// walking a directory. Files named explicitly bypass this filter.
const swiftExtension = ".swift"

// FilesystemSource enumerates Swift files under a directory root, or a
// single file when Root is one.
type FilesystemSource struct {
	config Config
}

// NewFilesystemSource creates a filesystem source.
func NewFilesystemSource(config Config) *FilesystemSource {
	return &FilesystemSource{config: config}
}

// Enumerate walks the root and yields file contents.
// Phase 1: walk the directory tree and collect eligible paths (fast,
// sequential). Phase 2: read files and invoke the callback in parallel.
func (s *FilesystemSource) Enumerate(ctx context.Context, callback func(path string, content []byte) error) error {
	info, err := os.Stat(s.config.Root)
	if err != nil {
		return fmt.Errorf("stat %s: %w", s.config.Root, err)
	}

	// An explicitly named file is linted as-is, extension or not.
	if !info.IsDir() {
		return s.processFile(ctx, s.config.Root, callback)
	}

	// Honor .gitignore at the root if present.
	var ignore *gitignore.GitIgnore
	gitignorePath := filepath.Join(s.config.Root, ".gitignore")
	if _, err := os.Stat(gitignorePath); err == nil {
		ignore, _ = gitignore.CompileIgnoreFile(gitignorePath)
	}

	// Phase 1: walk and collect eligible file paths.
	var files []string
	err = filepath.Walk(s.config.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if info.IsDir() {
			if !s.config.IncludeHidden && isHidden(info.Name()) && path != s.config.Root {
				return filepath.SkipDir
			}
			return nil
		}

		if info.Mode()&os.ModeSymlink != 0 && !s.config.FollowSymlinks {
			return nil
		}

		if !s.config.IncludeHidden && isHidden(info.Name()) {
			return nil
		}

		if !strings.EqualFold(filepath.Ext(path), swiftExtension) {
			return nil
		}

		if s.config.MaxFileSize > 0 && info.Size() > s.config.MaxFileSize {
			return nil
		}

		relPath, err := filepath.Rel(s.config.Root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if ignore != nil && ignore.MatchesPath(relPath) {
			return nil
		}

		if s.config.Select != nil && !s.config.Select(relPath) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return err
	}

	// Phase 2: read and process files in parallel.
	numReaders := runtime.NumCPU()
	if numReaders < 1 {
		numReaders = 1
	}

	origCtx := ctx
	g, ctx := errgroup.WithContext(ctx)
	pathsCh := make(chan string, numReaders*2)

	g.Go(func() error {
		defer close(pathsCh)
		for _, path := range files {
			select {
			case pathsCh <- path:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < numReaders; i++ {
		g.Go(func() error {
			for path := range pathsCh {
				if err := s.processFile(ctx, path, callback); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	// If the caller's context was cancelled but all goroutines finished
	// before noticing, propagate the cancellation.
	if origCtx.Err() != nil {
		return origCtx.Err()
	}
	return nil
}

// processFile reads a single file and invokes the callback.
func (s *FilesystemSource) processFile(ctx context.Context, path string, callback func(path string, content []byte) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file %s: %w", path, err)
	}

	if isBinary(content) {
		return nil
	}

	return callback(path, content)
}

// isHidden checks if a filename is hidden (starts with .).
// The special entries "." and ".." are NOT considered hidden.
func isHidden(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}

// isBinary detects binary content by checking the first 8KB for null
// bytes. A .swift path containing binary data is skipped, not failed.
func isBinary(content []byte) bool {
	checkSize := len(content)
	if checkSize > 8192 {
		checkSize = 8192
	}
	return bytes.IndexByte(content[:checkSize], 0) != -1
}
