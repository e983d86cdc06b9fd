// Package progress renders upload progress reported by the upload service.
//
// [Console] draws an in-place progress bar on a terminal writer; [Nop]
// discards every notification.
package progress

import (
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-upnode/internal/app"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const clearLine = "\r\033[2K"

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	warnStyle  = lipgloss.NewStyle().Faint(true)
	failStyle  = lipgloss.NewStyle().Bold(true)
)

// Console writes human-readable progress to a terminal. Lines of concurrent
// uploads may interleave but single writes never tear.
type Console struct {
	mu  sync.Mutex
	out io.Writer
	bar progress.Model
}

const percentFormat = " %.2f%%"

// NewConsole returns a Console writing to out.
func NewConsole(out io.Writer) *Console {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
	bar.PercentFormat = percentFormat

	return &Console{
		out: out,
		bar: bar,
	}
}

func (c *Console) FileBegin(pathname string) {
	c.write(fmt.Sprintf("%s%s %s\n", clearLine, labelStyle.Render("File:"), pathname))
}

// Progress redraws the bar. An unknown body length shows the byte count.
func (c *Console) Progress(percent float64, received, _ int64) {
	if percent < 0 {
		c.write(fmt.Sprintf("%sUploading: %d bytes", clearLine, received))
		return
	}

	c.write(clearLine + "Uploading: " + c.bar.ViewAs(percent/100))
}

func (c *Console) FileRejected(fileName, mimeType string) {
	msg := fmt.Sprintf(app.MsgMimeTypeRejected, fileName, mimeType)
	c.write(clearLine + warnStyle.Render(msg) + "\n")
}

func (c *Console) Done(err error) {
	if err != nil {
		c.write(fmt.Sprintf("%s%s %v\n", clearLine, failStyle.Render(app.MsgUploadFailed), err))
		return
	}

	c.write(clearLine + app.MsgUploadDone + "\n")
}

func (c *Console) write(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, _ = io.WriteString(c.out, s)
}

// Nop ignores all notifications.
type Nop struct{}

func (Nop) FileBegin(string)               {}
func (Nop) Progress(float64, int64, int64) {}
func (Nop) FileRejected(string, string)    {}
func (Nop) Done(error)                     {}
