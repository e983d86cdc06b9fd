package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-upnode/internal/store"
	"github.com/MKhiriev/go-upnode/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_ServeFile(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		served     models.ServedFile
		err        error
		wantStatus int
		wantType   string
		wantBody   string
		wantNoBody bool
	}{
		{
			name:       "file",
			method:     http.MethodGet,
			path:       "/docs/a.txt",
			served:     models.ServedFile{Pathname: "/docs/a.txt", Content: []byte("alpha"), MimeType: "text/plain"},
			wantStatus: http.StatusOK,
			wantType:   "text/plain",
			wantBody:   "alpha",
		},
		{
			name:       "head has no body",
			method:     http.MethodHead,
			path:       "/docs/a.txt",
			served:     models.ServedFile{Pathname: "/docs/a.txt", Content: []byte("alpha"), MimeType: "text/plain"},
			wantStatus: http.StatusOK,
			wantType:   "text/plain",
			wantNoBody: true,
		},
		{
			name:       "directory listing keeps 404",
			method:     http.MethodGet,
			path:       "/docs/",
			served:     models.ServedFile{Pathname: "/docs", IsDir: true, Entries: []string{"a.txt", "b"}},
			wantStatus: http.StatusNotFound,
			wantType:   "application/json",
			wantBody:   `["a.txt","b"]`,
		},
		{
			name:       "empty directory",
			method:     http.MethodGet,
			path:       "/empty/",
			served:     models.ServedFile{Pathname: "/empty", IsDir: true, Entries: []string{}},
			wantStatus: http.StatusNotFound,
			wantType:   "application/json",
			wantBody:   `[]`,
		},
		{
			name:       "missing",
			method:     http.MethodGet,
			path:       "/nope.txt",
			served:     models.ServedFile{Pathname: "/nope.txt"},
			err:        fmt.Errorf("%w: /nope.txt", store.ErrFileNotFound),
			wantStatus: http.StatusNotFound,
			wantType:   "text/plain",
			wantBody:   "404 Not Found\n/nope.txt does not exist.",
		},
		{
			name:       "read failure",
			method:     http.MethodGet,
			path:       "/locked.txt",
			served:     models.ServedFile{Pathname: "/locked.txt"},
			err:        fmt.Errorf("%w: permission denied", store.ErrReadingFile),
			wantStatus: http.StatusInternalServerError,
			wantType:   "text/plain",
			wantBody:   "error reading file: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, fileService, _ := newMockedHandler(t)
			fileService.EXPECT().Lookup(gomock.Any(), tt.path).Return(tt.served, tt.err)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			h.Init().ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantType, rr.Header().Get("Content-Type"))
			if tt.wantNoBody {
				return
			}
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestHandler_Favicon(t *testing.T) {
	h, _, _ := newMockedHandler(t)

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.Init().ServeHTTP(rr, httptest.NewRequest(method, "/favicon.ico", nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "image/x-icon", rr.Header().Get("Content-Type"))
			assert.Zero(t, rr.Body.Len())
		})
	}
}
