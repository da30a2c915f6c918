package api

import "github.com/preyasha/autofill/internal/locate"

// ExtractRequest is the raw-text extraction request body.
type ExtractRequest struct {
	DocumentText string `json:"document_text"`
	Field        string `json:"field"`
}

// ExtractResponse is the result of one field extraction. Value is null when
// the field is absent; Location is null when the value is absent or could
// not be anchored, in which case Warning carries the degradation marker.
type ExtractResponse struct {
	Field    string         `json:"field"`
	Value    *string        `json:"value"`
	Location *locate.Record `json:"location"`
	Warning  string         `json:"warning,omitempty"`
}

// FileExtractResponse is ExtractResponse plus the source filename.
type FileExtractResponse struct {
	Filename string `json:"filename"`
	ExtractResponse
}

// BulkFieldResult is one field's outcome in a bulk run. Document names the
// file the value was found in when several were uploaded.
type BulkFieldResult struct {
	ExtractResponse
	Document string `json:"document,omitempty"`
}

// BulkExtractResponse is the bulk extraction response.
type BulkExtractResponse struct {
	BulkID  string            `json:"bulk_id"`
	Results []BulkFieldResult `json:"results"`
}
