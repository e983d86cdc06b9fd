package progress

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-upnode/internal/service"
	"github.com/stretchr/testify/assert"
)

var (
	_ service.UploadObserver = (*Console)(nil)
	_ service.UploadObserver = Nop{}
)

func TestConsole_Lifecycle(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.FileBegin("/docs/a.txt")
	c.Progress(50, 50, 100)
	c.Done(nil)

	out := buf.String()
	assert.Contains(t, out, "File:")
	assert.Contains(t, out, "/docs/a.txt\n")
	assert.Contains(t, out, "Uploading: ")
	assert.Contains(t, out, "50.00%")
	assert.True(t, strings.HasSuffix(out, "Uploading: [DONE]\n"))
}

func TestConsole_TwoDecimalPercent(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{percent: 33.33, want: " 33.33%"},
		{percent: 0.5, want: " 0.50%"},
		{percent: 100, want: " 100.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			var buf bytes.Buffer
			NewConsole(&buf).Progress(tt.percent, 1, 1)

			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestConsole_UnknownLength(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).Progress(-1, 1234, -1)

	assert.Contains(t, buf.String(), "Uploading: 1234 bytes")
}

func TestConsole_FileRejected(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).FileRejected("notes.txt", "text/plain")

	assert.Contains(t, buf.String(),
		"Ignoring uploaded file 'notes.txt' of type 'text/plain', the file's mime type is not white listed.")
}

func TestConsole_DoneWithError(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).Done(errors.New("boom"))

	assert.Contains(t, buf.String(), "[FAILED]")
	assert.Contains(t, buf.String(), "boom")
}

func TestConsole_ConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.FileBegin("/x")
			c.Done(nil)
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, strings.Count(buf.String(), "Uploading: [DONE]\n"))
}
