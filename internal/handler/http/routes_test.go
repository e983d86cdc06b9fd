package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-upnode/internal/config"
	"github.com/MKhiriev/go-upnode/internal/logger"
	"github.com/MKhiriev/go-upnode/internal/service"
	"github.com/MKhiriev/go-upnode/internal/store"
	"github.com/MKhiriev/go-upnode/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer runs the full router over a temporary upload root.
func newTestServer(t *testing.T, whitelist ...string) (*httptest.Server, string) {
	t.Helper()

	root := t.TempDir()
	cfg := config.StructuredConfig{
		Storage: config.Storage{Files: config.Files{UploadsDir: root}},
		Upload:  config.Upload{MimeTypeWhitelist: whitelist},
	}

	storages, err := store.NewStorages(cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services := service.NewServices(storages, cfg, nil, logger.Nop())
	server := httptest.NewServer(NewHandler(services, logger.Nop()).Init())
	t.Cleanup(server.Close)

	return server, root
}

type uploadFile struct {
	name    string
	content string
}

func postFiles(t *testing.T, url string, files ...uploadFile) models.UploadResult {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := w.CreateFormFile("file", f.name)
		require.NoError(t, err)
		_, err = io.WriteString(part, f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	resp, err := http.Post(url, w.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.UploadResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestRouter_GetExistingFile(t *testing.T) {
	server, root := newTestServer(t)
	content := []byte{0x89, 'P', 'N', 'G', 0, 1, 2}
	require.NoError(t, os.WriteFile(filepath.Join(root, "pic.png"), content, 0o644))

	resp, body := get(t, server.URL+"/pic.png")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Equal(t, content, body)
	assert.NotEmpty(t, resp.Header.Get(traceIDHeader))
}

func TestRouter_GetMissingFile(t *testing.T) {
	server, root := newTestServer(t)

	resp, body := get(t, server.URL+"/docs/missing.txt")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "404 Not Found\n/docs/missing.txt does not exist.", string(body))
	assert.NotContains(t, string(body), root)
}

func TestRouter_TrailingSlashOnFile(t *testing.T) {
	server, root := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("hello"), 0o644))

	resp, body := get(t, server.URL+"/a.txt/")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "404 Not Found\n/a.txt/ does not exist.", string(body))
}

func TestRouter_DirectoryListing(t *testing.T) {
	server, root := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), nil, 0o644))

	resp, body := get(t, server.URL+"/")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.JSONEq(t, `["a.txt","b.txt"]`, string(body))
}

func TestRouter_SymlinkOutsideRoot(t *testing.T) {
	server, root := newTestServer(t)

	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, "secret.txt"), []byte("SECRET"), 0o644))
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "link")))

	resp, body := get(t, server.URL+"/link/secret.txt")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotContains(t, string(body), "SECRET")

	result := postFiles(t, server.URL+"/link/", uploadFile{name: "w.txt", content: "written"})
	assert.True(t, result.Errors)
	assert.Zero(t, result.NumberOfFiles)
	assert.NoFileExists(t, filepath.Join(outside, "w.txt"))
}

func TestRouter_UploadManyFiles(t *testing.T) {
	server, root := newTestServer(t)

	files := []uploadFile{
		{name: "one.txt", content: "1"},
		{name: "two.json", content: `{"n":2}`},
		{name: "three.bin", content: strings.Repeat("3", 100_000)},
	}
	result := postFiles(t, server.URL+"/", files...)

	assert.False(t, result.Errors)
	require.Equal(t, len(files), result.NumberOfFiles)
	for i, f := range files {
		assert.Equal(t, f.name, result.Files[i].Name)
		info, err := os.Stat(filepath.Join(root, f.name))
		require.NoError(t, err)
		assert.Equal(t, int64(len(f.content)), info.Size())
		assert.Equal(t, info.Size(), result.Files[i].Size)
	}
}

func TestRouter_UploadWhitelist(t *testing.T) {
	server, root := newTestServer(t, "image/png")

	result := postFiles(t, server.URL+"/",
		uploadFile{name: "pic.png", content: "png"},
		uploadFile{name: "notes.txt", content: "text"},
	)

	require.Equal(t, 1, result.NumberOfFiles)
	assert.Equal(t, "pic.png", result.Files[0].Name)
	assert.Equal(t, "image/png", result.Files[0].MimeType)
	assert.NoFileExists(t, filepath.Join(root, "notes.txt"))
}

func TestRouter_UploadCreatesDirectories(t *testing.T) {
	server, root := newTestServer(t)

	first := postFiles(t, server.URL+"/subdir/nested/", uploadFile{name: "a.txt", content: "a"})
	second := postFiles(t, server.URL+"/subdir/nested/", uploadFile{name: "b.txt", content: "b"})

	assert.False(t, first.Errors)
	assert.False(t, second.Errors)
	assert.FileExists(t, filepath.Join(root, "subdir", "nested", "a.txt"))
	assert.FileExists(t, filepath.Join(root, "subdir", "nested", "b.txt"))
}

func TestRouter_RoundTrip(t *testing.T) {
	server, _ := newTestServer(t)
	content := "round trip content\n"

	result := postFiles(t, server.URL+"/docs/", uploadFile{name: "a.txt", content: content})
	require.Equal(t, 1, result.NumberOfFiles)
	assert.Equal(t, "docs/a.txt", result.Files[0].Pathname)

	resp, body := get(t, server.URL+"/docs/a.txt")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, content, string(body))
}

func TestRouter_MalformedUpload(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Post(server.URL+"/", "multipart/form-data; boundary=nope", strings.NewReader("definitely not multipart"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.UploadResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Errors)
	assert.NotEmpty(t, result.Error)
	assert.Zero(t, result.NumberOfFiles)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	server, _ := newTestServer(t)

	for _, method := range []string{http.MethodPut, http.MethodDelete, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			req, err := http.NewRequest(method, server.URL+"/a.txt", nil)
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
			assert.Equal(t, "GET, HEAD, POST", resp.Header.Get("Allow"))
		})
	}
}

func TestRouter_Head(t *testing.T) {
	server, root := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("alpha"), 0o644))

	resp, err := http.Head(server.URL + "/a.txt")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
}

func TestRouter_CompressesText(t *testing.T) {
	server, root := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "big.txt"), []byte(strings.Repeat("compress me ", 500)), 0o644))

	resp, body := get(t, server.URL+"/big.txt")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, resp.Uncompressed, "transport should have decompressed a gzip response")
	assert.Equal(t, strings.Repeat("compress me ", 500), string(body))
}
