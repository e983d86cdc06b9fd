package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/go-upnode/internal/config"
	"github.com/MKhiriev/go-upnode/internal/logger"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// uploadFileStorage is the local file-system implementation of
// [UploadStorage]. Every file operation goes through an [os.Root], so
// symbolic links may not lead outside the upload root.
type uploadFileStorage struct {
	dir string
	// realDir is dir with symlinks evaluated.
	realDir string
	root    *os.Root

	logger *logger.Logger
}

// NewUploadStorage constructs an [UploadStorage] rooted at cfg.UploadsDir.
// The root is made absolute and created if it does not exist yet.
func NewUploadStorage(cfg config.Files, logger *logger.Logger) (UploadStorage, error) {
	if cfg.UploadsDir == "" {
		return nil, fmt.Errorf("%w: empty upload root", ErrCreatingDirectory)
	}

	dir, err := filepath.Abs(cfg.UploadsDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreatingDirectory, err)
	}
	dir = filepath.Clean(dir)

	if err = os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("%w: upload root %s: %w", ErrCreatingDirectory, dir, err)
	}

	realDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: upload root %s: %w", ErrCreatingDirectory, dir, err)
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: upload root %s: %w", ErrCreatingDirectory, dir, err)
	}

	logger.Info().Str("root", dir).Msg("upload storage created")

	return &uploadFileStorage{
		dir:     dir,
		realDir: realDir,
		root:    root,
		logger:  logger,
	}, nil
}

func (s *uploadFileStorage) Root() string {
	return s.dir
}

func (s *uploadFileStorage) Resolve(pathname string) (string, error) {
	absPath := filepath.Join(s.dir, filepath.FromSlash(pathname))
	if _, err := s.confine(absPath); err != nil {
		return "", err
	}

	return absPath, nil
}

func (s *uploadFileStorage) Relative(absPath string) (string, error) {
	rel, err := filepath.Rel(s.dir, absPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPathOutsideRoot, err)
	}
	if isOutside(rel) {
		return "", fmt.Errorf("%w: %s", ErrPathOutsideRoot, absPath)
	}

	return filepath.ToSlash(rel), nil
}

func (s *uploadFileStorage) Stat(ctx context.Context, absPath string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name, err := s.confine(absPath)
	if err != nil {
		return nil, err
	}

	info, err := s.root.Stat(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, s.display(absPath))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	return info, nil
}

func (s *uploadFileStorage) ReadFile(ctx context.Context, absPath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name, err := s.confine(absPath)
	if err != nil {
		return nil, err
	}

	content, err := s.root.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	return content, nil
}

func (s *uploadFileStorage) ReadDir(ctx context.Context, absPath string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name, err := s.confine(absPath)
	if err != nil {
		return nil, err
	}

	dir, err := s.root.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingDirectory, err)
	}
	defer dir.Close()

	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingDirectory, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	slices.Sort(names)

	return names, nil
}

// EnsureDirectory stats the target first and only then falls back to
// MkdirAll, which creates the missing segments root-most first and treats
// a segment created concurrently by another request as success.
func (s *uploadFileStorage) EnsureDirectory(ctx context.Context, absPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name, err := s.confine(absPath)
	if err != nil {
		return err
	}

	info, err := s.root.Stat(name)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("%w: %s is not a directory", ErrCreatingDirectory, s.display(absPath))
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrCreatingDirectory, err)
	}

	if err = s.root.MkdirAll(name, dirPerm); err != nil {
		return fmt.Errorf("%w: %w", ErrCreatingDirectory, err)
	}

	s.logger.Debug().Str("dir", s.display(absPath)).Msg("directory created")
	return nil
}

func (s *uploadFileStorage) Create(absPath string) (io.WriteCloser, error) {
	name, err := s.confine(absPath)
	if err != nil {
		return nil, err
	}

	file, err := s.root.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreatingFile, err)
	}

	return file, nil
}

func (s *uploadFileStorage) Close() error {
	return s.root.Close()
}

// confine returns the root-relative name of absPath. It fails with
// ErrPathOutsideRoot when absPath lies outside the root lexically or when
// its deepest existing ancestor resolves, through symlinks, outside it.
func (s *uploadFileStorage) confine(absPath string) (string, error) {
	rel, err := s.Relative(absPath)
	if err != nil {
		return "", err
	}

	existing := absPath
	for {
		resolved, evalErr := filepath.EvalSymlinks(existing)
		if evalErr == nil {
			resolvedRel, relErr := filepath.Rel(s.realDir, resolved)
			if relErr != nil || isOutside(resolvedRel) {
				return "", fmt.Errorf("%w: %s", ErrPathOutsideRoot, s.display(absPath))
			}
			break
		}

		parent := filepath.Dir(existing)
		if parent == existing || parent == s.dir {
			break
		}
		existing = parent
	}

	return filepath.FromSlash(rel), nil
}

// display renders absPath relative to the root so error messages never
// disclose the server's directory layout.
func (s *uploadFileStorage) display(absPath string) string {
	rel, err := s.Relative(absPath)
	if err != nil {
		return absPath
	}
	if rel == "." {
		return "/"
	}
	return "/" + rel
}

func isOutside(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel)
}
