package formdata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"time"
)

const (
	// DefaultMaxFieldsSize bounds the total size of non-file fields.
	DefaultMaxFieldsSize int64 = 2 << 20

	chunkSize = 32 << 10
)

// Option configures a Decoder.
type Option func(*Decoder)

// WithMaxFieldsSize overrides DefaultMaxFieldsSize. Non-positive values keep
// the default.
func WithMaxFieldsSize(size int64) Option {
	return func(d *Decoder) {
		if size > 0 {
			d.maxFieldsSize = size
		}
	}
}

// Decoder decodes a single multipart/form-data body. It is not safe for
// concurrent use and must not be reused after Decode returns.
type Decoder struct {
	reader   *multipart.Reader
	body     *countingReader
	expected int64

	maxFieldsSize int64
	fieldsSize    int64
}

// NewDecoder validates contentType and prepares a decoder over body.
// contentLength is the declared body length used for progress reporting;
// pass -1 when it is unknown.
func NewDecoder(contentType string, body io.Reader, contentLength int64, opts ...Option) (*Decoder, error) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return nil, fmt.Errorf("%w: %q", ErrNotMultipart, contentType)
	}

	boundary := params["boundary"]
	if boundary == "" {
		return nil, ErrMissingBoundary
	}

	counter := &countingReader{r: body}
	d := &Decoder{
		reader:        multipart.NewReader(counter, boundary),
		body:          counter,
		expected:      contentLength,
		maxFieldsSize: DefaultMaxFieldsSize,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// Decode reads the body to completion, delivering events to handle and
// writing accepted file parts through sink. It emits exactly one terminal
// event and returns the error carried by the ErrorEvent, if any.
func (d *Decoder) Decode(ctx context.Context, sink FileSink, handle HandlerFunc) error {
	if err := d.decode(ctx, sink, handle); err != nil {
		_ = handle(ErrorEvent{Err: err})
		return err
	}

	_ = handle(EndEvent{})
	return nil
}

func (d *Decoder) decode(ctx context.Context, sink FileSink, handle HandlerFunc) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		part, err := d.reader.NextPart()
		// NextPart wraps unexpected EOFs, so only the bare value marks the end.
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedBody, err)
		}

		if part.FileName() == "" {
			err = d.decodeField(part, handle)
		} else {
			err = d.decodeFile(ctx, part, sink, handle)
		}
		_ = part.Close()

		if err != nil {
			return err
		}
	}
}

func (d *Decoder) decodeField(part *multipart.Part, handle HandlerFunc) error {
	remaining := d.maxFieldsSize - d.fieldsSize

	value, err := io.ReadAll(io.LimitReader(part, remaining+1))
	if err != nil {
		return fmt.Errorf("%w: field %q: %w", ErrMalformedBody, part.FormName(), err)
	}
	if int64(len(value)) > remaining {
		return fmt.Errorf("%w: limit is %d bytes", ErrFieldTooLarge, d.maxFieldsSize)
	}
	d.fieldsSize += int64(len(value))

	return handle(FieldEvent{Name: part.FormName(), Value: string(value)})
}

func (d *Decoder) decodeFile(ctx context.Context, part *multipart.Part, sink FileSink, handle HandlerFunc) error {
	fileName := part.FileName()
	switch fileName {
	case ".", "..", "/", "\\":
		return fmt.Errorf("%w: %q", ErrInvalidFileName, fileName)
	}

	begin := &FileBeginEvent{
		FieldName:   part.FormName(),
		FileName:    fileName,
		ContentType: part.Header.Get("Content-Type"),
	}
	if err := handle(begin); err != nil {
		return err
	}

	done := FileEvent{
		FieldName:   begin.FieldName,
		FileName:    begin.FileName,
		ContentType: begin.ContentType,
		Discarded:   begin.Discard,
	}

	if begin.Discard {
		size, err := d.copyChunks(ctx, io.Discard, part, handle)
		if err != nil {
			return err
		}
		done.Size = size
		done.LastModified = time.Now()
		return handle(done)
	}

	if begin.Destination == "" {
		return fmt.Errorf("%w: %q", ErrNoDestination, fileName)
	}

	dst, err := sink.Create(begin.Destination)
	if err != nil {
		return err
	}

	size, err := d.copyChunks(ctx, dst, part, handle)
	closeErr := dst.Close()
	if err = errors.Join(err, closeErr); err != nil {
		return err
	}

	done.Path = begin.Destination
	done.Size = size
	done.LastModified = time.Now()

	return handle(done)
}

// copyChunks streams src into dst one chunk at a time, reporting progress
// after every chunk and checking ctx between chunks.
func (d *Decoder) copyChunks(ctx context.Context, dst io.Writer, src io.Reader, handle HandlerFunc) (int64, error) {
	buf := make([]byte, chunkSize)

	var written int64
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		n, readErr := src.Read(buf)
		if n > 0 {
			if _, err := dst.Write(buf[:n]); err != nil {
				return written, err
			}
			written += int64(n)

			progress := ProgressEvent{Received: d.body.n, Expected: d.expected}
			if err := handle(progress); err != nil {
				return written, err
			}
		}

		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, fmt.Errorf("%w: %w", ErrMalformedBody, readErr)
		}
	}
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
