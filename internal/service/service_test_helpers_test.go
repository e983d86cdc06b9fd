package service

import (
	"bytes"
	"io"
	"mime/multipart"
	"sync"
	"testing"

	"github.com/MKhiriev/go-upnode/internal/config"
	"github.com/MKhiriev/go-upnode/internal/logger"
	"github.com/MKhiriev/go-upnode/internal/store"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) store.UploadStorage {
	t.Helper()
	storage, err := store.NewUploadStorage(config.Files{UploadsDir: t.TempDir()}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })
	return storage
}

type testPart struct {
	field    string
	fileName string
	content  string
}

func buildMultipart(t *testing.T, parts ...testPart) (string, []byte) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, p := range parts {
		var (
			pw  io.Writer
			err error
		)
		if p.fileName != "" {
			pw, err = w.CreateFormFile(p.field, p.fileName)
		} else {
			pw, err = w.CreateFormField(p.field)
		}
		require.NoError(t, err)
		_, err = io.WriteString(pw, p.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return w.FormDataContentType(), body.Bytes()
}

// recordingObserver is a hand-written UploadObserver capturing every call.
type recordingObserver struct {
	mu       sync.Mutex
	begun    []string
	progress []float64
	rejected []string
	done     []error
}

func (o *recordingObserver) FileBegin(pathname string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.begun = append(o.begun, pathname)
}

func (o *recordingObserver) Progress(percent float64, _, _ int64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.progress = append(o.progress, percent)
}

func (o *recordingObserver) FileRejected(fileName, _ string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.rejected = append(o.rejected, fileName)
}

func (o *recordingObserver) Done(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.done = append(o.done, err)
}
