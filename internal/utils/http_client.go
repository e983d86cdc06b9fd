package utils

import (
	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the request trace id between client and server.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Every outgoing request is stamped with a fresh X-Trace-ID unless the
// caller already set one, so client and server log lines can be correlated.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.NewTraceIDGenerator())
//	resp, err := client.R().Get("http://localhost:8080/docs/a.txt")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent HTTPClient with its own connection
// pool. traceIDs may be nil, in which case no trace header is added.
func NewHTTPClient(traceIDs *TraceIDGenerator) *HTTPClient {
	client := resty.New()

	if traceIDs != nil {
		client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if req.Header.Get(TraceIDHeader) == "" {
				req.SetHeader(TraceIDHeader, traceIDs.Generate())
			}
			return nil
		})
	}

	return &HTTPClient{Client: client}
}
