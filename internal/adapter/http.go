package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-upnode/internal/config"
	"github.com/MKhiriev/go-upnode/internal/logger"
	"github.com/MKhiriev/go-upnode/internal/utils"
	"github.com/MKhiriev/go-upnode/models"
)

const uploadFieldName = "file"

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// It normalises and validates cfg.ServerURL and configures the underlying
// client with the resolved base URL and request timeout.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidServerURL, err)
	}

	client := utils.NewHTTPClient(utils.NewTraceIDGenerator())
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// escapePath turns a remote path into an escaped, rooted URL path. A trailing
// slash is significant to the server and is kept.
func escapePath(remotePath string) string {
	cleaned := path.Join("/", remotePath)
	if strings.HasSuffix(remotePath, "/") && cleaned != "/" {
		cleaned += "/"
	}
	return (&url.URL{Path: cleaned}).EscapedPath()
}

func (h *httpServerAdapter) Push(ctx context.Context, remotePath string, fields map[string]string, paths ...string) (models.UploadResult, error) {
	if len(paths) == 0 {
		return models.UploadResult{}, ErrNoFilesToPush
	}

	req := h.client.R().SetContext(ctx)
	for _, p := range paths {
		file, err := os.Open(p)
		if err != nil {
			return models.UploadResult{}, fmt.Errorf("open %s: %w", p, err)
		}
		defer file.Close()

		req.SetFileReader(uploadFieldName, filepath.Base(p), file)
	}
	if len(fields) > 0 {
		req.SetMultipartFormData(fields)
	}

	var result models.UploadResult
	resp, err := req.SetResult(&result).Post(escapePath(remotePath))
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("push request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResult{}, err
	}

	h.logger.Debug().
		Str("remote_path", remotePath).
		Int("files", result.NumberOfFiles).
		Msg("push finished")

	if result.Errors {
		return result, fmt.Errorf("%w: %s", ErrUploadFailed, result.Error)
	}
	return result, nil
}

func (h *httpServerAdapter) Pull(ctx context.Context, remotePath string) (models.ServedFile, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(escapePath(remotePath))
	if err != nil {
		return models.ServedFile{}, fmt.Errorf("pull request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServedFile{}, err
	}

	return models.ServedFile{
		Pathname: path.Join("/", remotePath),
		Content:  resp.Body(),
		MimeType: resp.Header().Get("Content-Type"),
	}, nil
}

// List accepts the server's 404 + JSON answer for directories. A 404 with
// any other content type means the path does not exist.
func (h *httpServerAdapter) List(ctx context.Context, remoteDir string) ([]string, error) {
	dir := remoteDir
	if !strings.HasSuffix(dir, "/") {
		dir += "/"
	}

	resp, err := h.client.R().
		SetContext(ctx).
		Get(escapePath(dir))
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}

	isJSON := strings.HasPrefix(resp.Header().Get("Content-Type"), "application/json")
	switch {
	case resp.StatusCode() == http.StatusNotFound && isJSON:
		var entries []string
		if err = json.Unmarshal(resp.Body(), &entries); err != nil {
			return nil, fmt.Errorf("decode directory listing: %w", err)
		}
		return entries, nil
	case resp.StatusCode() == http.StatusOK:
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, remoteDir)
	default:
		if err = mapHTTPError(resp); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected response %d", resp.StatusCode())
	}
}
