package models

// UploadResult is the JSON summary sent once per upload request.
type UploadResult struct {
	// Errors is true when decoding stopped on a failure.
	Errors bool `json:"errors"`

	// Error carries the failure description when Errors is true.
	Error string `json:"error,omitempty"`

	// NumberOfFiles always equals len(Files).
	NumberOfFiles int `json:"numberOfFiles"`

	// Files lists accepted files in arrival order.
	Files []FileRecord `json:"files"`

	// Fields holds non-file form values; a repeated name keeps the last value.
	Fields map[string]string `json:"fields"`
}

// NewUploadResult returns an empty, successful result with non-nil
// collections so that they encode as [] and {}.
func NewUploadResult() UploadResult {
	return UploadResult{
		Files:  make([]FileRecord, 0),
		Fields: make(map[string]string),
	}
}
