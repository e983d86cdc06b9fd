package service

import (
	"context"
	"fmt"
	"path"

	"github.com/MKhiriev/go-upnode/internal/logger"
	"github.com/MKhiriev/go-upnode/internal/store"
	"github.com/MKhiriev/go-upnode/internal/utils"
	"github.com/MKhiriev/go-upnode/models"
)

type fileService struct {
	storage store.UploadStorage

	logger *logger.Logger
}

func NewFileService(storage store.UploadStorage, logger *logger.Logger) FileService {
	return &fileService{
		storage: storage,
		logger:  logger,
	}
}

// Lookup serves whole files from memory. Large files are read in one go and
// there is no range support.
func (f *fileService) Lookup(ctx context.Context, requestPath string) (models.ServedFile, error) {
	target := utils.ResolveRequestPath(requestPath)
	served := models.ServedFile{Pathname: target.Pathname}

	absPath, err := f.storage.Resolve(target.Pathname)
	if err != nil {
		return served, err
	}

	info, err := f.storage.Stat(ctx, absPath)
	if err != nil {
		return served, err
	}

	if info.IsDir() {
		entries, err := f.storage.ReadDir(ctx, absPath)
		if err != nil {
			return served, err
		}
		served.IsDir = true
		served.Entries = entries
		return served, nil
	}

	// A trailing slash names a directory, which a regular file is not.
	if target.IsDirectory() {
		served.Pathname = target.Pathname + "/"
		return served, fmt.Errorf("%w: %s", store.ErrFileNotFound, served.Pathname)
	}

	content, err := f.storage.ReadFile(ctx, absPath)
	if err != nil {
		return served, err
	}
	served.Content = content
	served.MimeType = utils.ClassifyMimeType(path.Base(target.Pathname))

	return served, nil
}
