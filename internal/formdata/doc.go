// Package formdata implements a streaming, push-based decoder for
// multipart/form-data request bodies.
//
// A [Decoder] reads the body in a single pass and reports what it finds as a
// sequence of typed events delivered to one [HandlerFunc]:
//
//	FieldEvent      a complete non-file form field
//	*FileBeginEvent a file part starts; the handler picks its destination
//	ProgressEvent   more body bytes were consumed
//	FileEvent       a file part was fully written (or discarded)
//	ErrorEvent      decoding failed; terminal
//	EndEvent        the body was fully decoded; terminal
//
// Exactly one terminal event is emitted per call to [Decoder.Decode].
// File content is streamed to a [FileSink] in fixed-size chunks and never
// buffered in memory as a whole.
package formdata
