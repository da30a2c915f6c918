package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/preyasha/autofill/internal/docindex"
	"github.com/preyasha/autofill/internal/extract"
	"github.com/preyasha/autofill/internal/loader"
	"github.com/preyasha/autofill/internal/pipeline"
)

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Field) == "" {
		jsonError(w, "field is required", http.StatusBadRequest)
		return
	}

	// Raw text carries no format-native position: line numbers and sections
	// are still assigned, page and paragraph stay null.
	fragments := []docindex.Fragment{{Text: req.DocumentText}}

	res, err := s.pipeline.Run(r.Context(), fragments, req.Field)
	if err != nil {
		s.writePipelineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toExtractResponse(res))
}

func (s *Server) handleExtractFile(w http.ResponseWriter, r *http.Request) {
	// Limit total request size, with extra headroom for form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	field := r.FormValue("field")
	if strings.TrimSpace(field) == "" {
		jsonError(w, "field is required", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	fragments, status, err := s.loadUpload(file, filename)
	if err != nil {
		jsonError(w, err.Error(), status)
		return
	}

	res, err := s.pipeline.Run(r.Context(), fragments, field)
	if err != nil {
		s.writePipelineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, FileExtractResponse{
		Filename:        filename,
		ExtractResponse: toExtractResponse(res),
	})
}

func (s *Server) handleExtractFileBulk(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*10+10*1024*1024)

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	var fields []string
	if err := json.Unmarshal([]byte(r.FormValue("fields")), &fields); err != nil || len(fields) == 0 {
		jsonError(w, "fields must be a non-empty JSON-encoded list of field names", http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	// Each file gets its own index so page and paragraph numbering stay
	// per-document. Fields are answered from the first file that yields a
	// value, in upload order.
	var docs []pipeline.Document
	for _, fh := range files {
		filename := sanitizeFilename(fh.Filename)

		f, err := fh.Open()
		if err != nil {
			jsonError(w, fmt.Sprintf("%s: failed to open file", filename), http.StatusBadRequest)
			return
		}
		fragments, status, err := s.loadUpload(f, filename)
		f.Close()
		if err != nil {
			jsonError(w, fmt.Sprintf("%s: %s", filename, err), status)
			return
		}

		idx, err := s.pipeline.Index(fragments)
		if err != nil {
			if errors.Is(err, docindex.ErrEmptyDocument) {
				// A blank document is skipped, not fatal for the batch.
				s.log.Warn("skipping empty document", "filename", filename)
				continue
			}
			s.writePipelineError(w, err)
			return
		}
		docs = append(docs, pipeline.Document{Name: filename, Index: idx})
	}
	if len(docs) == 0 {
		jsonError(w, "no usable text in any uploaded file", http.StatusBadRequest)
		return
	}

	bulkID := uuid.NewString()
	log := s.log.With("bulk_id", bulkID)
	log.Info("bulk extraction", "files", len(docs), "fields", len(fields))

	results := s.pipeline.RunBulk(r.Context(), docs, fields, s.cfg.MaxConcurrentExtract)

	resp := BulkExtractResponse{BulkID: bulkID, Results: make([]BulkFieldResult, len(results))}
	for i, res := range results {
		resp.Results[i] = BulkFieldResult{
			ExtractResponse: toExtractResponse(res.Result),
			Document:        res.Document,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// loadUpload reads an uploaded file and runs the format loader for it.
// The returned status is only meaningful when err is non-nil.
func (s *Server) loadUpload(f multipart.File, filename string) ([]docindex.Fragment, int, error) {
	if !loader.IsSupportedExtension(filename) {
		return nil, http.StatusBadRequest, fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}

	data, err := io.ReadAll(io.LimitReader(f, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return nil, http.StatusInternalServerError, fmt.Errorf("failed to read file")
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return nil, http.StatusRequestEntityTooLarge, fmt.Errorf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes)
	}

	l, err := loader.ForFile(filename)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	if pl, ok := l.(*loader.PDFLoader); ok {
		pl.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
	}

	fragments, err := l.Load(bytes.NewReader(data), filename)
	if err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf("parse failed: %w", err)
	}
	return fragments, 0, nil
}

func toExtractResponse(res pipeline.Result) ExtractResponse {
	return ExtractResponse{
		Field:    res.Field,
		Value:    res.Value,
		Location: res.Location,
		Warning:  res.Warning,
	}
}

func (s *Server) writePipelineError(w http.ResponseWriter, err error) {
	var unavail *extract.UnavailableError
	switch {
	case errors.Is(err, docindex.ErrEmptyDocument):
		jsonError(w, "document contains no usable text", http.StatusBadRequest)
	case errors.As(err, &unavail):
		s.log.Error("extraction backend unavailable", "backend", unavail.Backend, "error", unavail.Err)
		jsonError(w, "extraction backend unavailable", http.StatusBadGateway)
	default:
		s.log.Error("extraction failed", "error", err)
		jsonError(w, "extraction failed", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
