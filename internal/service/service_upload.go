package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-upnode/internal/config"
	"github.com/MKhiriev/go-upnode/internal/formdata"
	"github.com/MKhiriev/go-upnode/internal/logger"
	"github.com/MKhiriev/go-upnode/internal/store"
	"github.com/MKhiriev/go-upnode/internal/utils"
	"github.com/MKhiriev/go-upnode/internal/validators"
	"github.com/MKhiriev/go-upnode/models"
)

type uploadService struct {
	storage       store.UploadStorage
	whitelist     validators.MimeTypeValidator
	maxFieldsSize int64
	observer      UploadObserver

	logger *logger.Logger
}

// NewUploadService builds the upload pipeline. A nil observer discards
// progress notifications.
func NewUploadService(storage store.UploadStorage, cfg config.Upload, observer UploadObserver, logger *logger.Logger) UploadService {
	if observer == nil {
		observer = nopObserver{}
	}

	whitelist := validators.NewMimeTypeWhitelist(cfg.MimeTypeWhitelist)
	if whitelist.IsRestricted() {
		logger.Info().Strs("mime_types", cfg.MimeTypeWhitelist).Msg("mime type whitelist enabled")
	}

	return &uploadService{
		storage:       storage,
		whitelist:     whitelist,
		maxFieldsSize: cfg.MaxFieldsSize,
		observer:      observer,
		logger:        logger,
	}
}

func (u *uploadService) Ingest(ctx context.Context, req models.UploadRequest) (models.UploadResult, error) {
	session := newUploadSession(ctx, u, utils.ResolveRequestPath(req.Path))

	if req.Body == nil {
		session.fail(ErrNoRequestBody)
		u.observer.Done(ErrNoRequestBody)
		return session.result(), ErrNoRequestBody
	}

	decoder, err := formdata.NewDecoder(req.ContentType, req.Body, req.ContentLength,
		formdata.WithMaxFieldsSize(u.maxFieldsSize))
	if err != nil {
		session.fail(err)
		u.observer.Done(err)
		return session.result(), err
	}

	err = decoder.Decode(ctx, u.storage, session.handle)
	u.observer.Done(err)

	return session.result(), err
}

type sessionState int

const (
	sessionReceiving sessionState = iota
	sessionFinished
	sessionErrored
)

// uploadSession accumulates the decoder events of one request. It is owned by
// the request goroutine.
type uploadSession struct {
	ctx     context.Context
	service *uploadService
	target  models.ResolvedTarget

	state  sessionState
	err    error
	fields map[string]string
	files  []models.FileRecord

	// directory is the absolute destination directory, set once it exists.
	directory string

	logger *logger.Logger
}

func newUploadSession(ctx context.Context, service *uploadService, target models.ResolvedTarget) *uploadSession {
	return &uploadSession{
		ctx:     ctx,
		service: service,
		target:  target,
		state:   sessionReceiving,
		fields:  make(map[string]string),
		files:   make([]models.FileRecord, 0),
		logger:  logger.FromContextOrDefault(ctx, service.logger),
	}
}

func (s *uploadSession) handle(event formdata.Event) error {
	switch e := event.(type) {
	case formdata.FieldEvent:
		s.fields[e.Name] = e.Value
	case *formdata.FileBeginEvent:
		return s.beginFile(e)
	case formdata.ProgressEvent:
		s.service.observer.Progress(e.Percent(), e.Received, e.Expected)
	case formdata.FileEvent:
		s.finishFile(e)
	case formdata.ErrorEvent:
		s.fail(e.Err)
	case formdata.EndEvent:
		s.state = sessionFinished
	}

	return nil
}

func (s *uploadSession) beginFile(e *formdata.FileBeginEvent) error {
	mimeType := utils.ClassifyMimeType(e.FileName)
	if err := s.service.whitelist.Validate(s.ctx, mimeType); err != nil {
		s.logger.Warn().Err(err).Str("file", e.FileName).Msg("ignoring uploaded file")
		s.service.observer.FileRejected(e.FileName, mimeType)
		e.Discard = true
		return nil
	}

	if err := s.ensureDirectory(); err != nil {
		return err
	}

	name := s.target.Filename
	if name == "" {
		name = e.FileName
	}
	e.Destination = filepath.Join(s.directory, name)

	s.service.observer.FileBegin(s.pathname(e.Destination))
	return nil
}

func (s *uploadSession) ensureDirectory() error {
	if s.directory != "" {
		return nil
	}

	dir, err := s.service.storage.Resolve(s.target.Directory)
	if err != nil {
		return err
	}
	if err = s.service.storage.EnsureDirectory(s.ctx, dir); err != nil {
		return err
	}

	s.directory = dir
	return nil
}

func (s *uploadSession) finishFile(e formdata.FileEvent) {
	if e.Discarded {
		return
	}

	s.files = append(s.files, models.FileRecord{
		Name:             e.FileName,
		Size:             e.Size,
		Pathname:         s.relative(e.Path),
		LastModifiedDate: e.LastModified,
		MimeType:         utils.ClassifyMimeType(e.FileName),
	})
}

func (s *uploadSession) fail(err error) {
	s.state = sessionErrored
	s.err = err
}

// result keeps the files written before a failure, so an errored summary
// still names everything left on disk.
func (s *uploadSession) result() models.UploadResult {
	result := models.NewUploadResult()
	result.Files = s.files
	result.Fields = s.fields
	result.NumberOfFiles = len(s.files)

	if s.state == sessionErrored {
		result.Errors = true
		result.Error = s.err.Error()
	}

	return result
}

func (s *uploadSession) relative(absPath string) string {
	rel, err := s.service.storage.Relative(absPath)
	if err != nil {
		return absPath
	}
	return rel
}

func (s *uploadSession) pathname(absPath string) string {
	return fmt.Sprintf("/%s", s.relative(absPath))
}

type nopObserver struct{}

func (nopObserver) FileBegin(string)               {}
func (nopObserver) Progress(float64, int64, int64) {}
func (nopObserver) FileRejected(string, string)    {}
func (nopObserver) Done(error)                     {}
