package formdata

import (
	"io"
	"math"
	"time"
)

// Event is one step of a multipart decode. The concrete types are
// FieldEvent, *FileBeginEvent, ProgressEvent, FileEvent, ErrorEvent and
// EndEvent.
type Event interface {
	event()
}

// HandlerFunc consumes decoder events in arrival order. Returning a non-nil
// error aborts decoding with an ErrorEvent carrying that error. The value
// returned for a terminal event is ignored.
type HandlerFunc func(Event) error

// FileSink opens destinations chosen by the handler for file parts.
type FileSink interface {
	Create(path string) (io.WriteCloser, error)
}

// FieldEvent carries a complete non-file field.
type FieldEvent struct {
	Name  string
	Value string
}

// FileBeginEvent announces a file part. The handler either sets Destination
// to the path the content is written to, or sets Discard to drain the part
// without writing it anywhere.
type FileBeginEvent struct {
	FieldName   string
	FileName    string
	ContentType string

	Destination string
	Discard     bool
}

// ProgressEvent reports how many body bytes have been consumed so far.
// Expected is the declared body length, or a non-positive value when the
// length is unknown.
type ProgressEvent struct {
	Received int64
	Expected int64
}

// Percent returns Received/Expected as a percentage rounded to two decimals,
// capped at 100. It returns -1 when the body length is unknown.
func (e ProgressEvent) Percent() float64 {
	if e.Expected <= 0 {
		return -1
	}

	percent := float64(e.Received) / float64(e.Expected) * 100
	percent = math.Round(percent*100) / 100

	return math.Min(percent, 100)
}

// FileEvent reports a finished file part.
type FileEvent struct {
	FieldName    string
	FileName     string
	ContentType  string
	Path         string
	Size         int64
	LastModified time.Time

	// Discarded is set when the handler chose to drop the part; Path is
	// empty in that case.
	Discarded bool
}

// ErrorEvent terminates a decode that failed.
type ErrorEvent struct {
	Err error
}

// EndEvent terminates a decode that consumed the whole body.
type EndEvent struct{}

func (FieldEvent) event()      {}
func (*FileBeginEvent) event() {}
func (ProgressEvent) event()   {}
func (FileEvent) event()       {}
func (ErrorEvent) event()      {}
func (EndEvent) event()        {}
