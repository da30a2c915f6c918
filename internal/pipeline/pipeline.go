// Package pipeline sequences one extraction request: index the document,
// call the value extractor, resolve the value's location, assemble the
// result. The value is the primary deliverable; a failed resolution
// degrades to a null location instead of failing the request.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/preyasha/autofill/internal/docindex"
	"github.com/preyasha/autofill/internal/extract"
	"github.com/preyasha/autofill/internal/locate"
	"github.com/preyasha/autofill/internal/metrics"
)

// Warning markers attached to degraded results.
const (
	WarningValueNotLocated  = "value_not_located"
	WarningExtractionFailed = "extraction_failed"
)

// Result is the assembled outcome of one field extraction. Value is nil
// when the extractor reports the field absent; Location is nil whenever
// the value is nil or could not be anchored.
type Result struct {
	Field    string
	Value    *string
	Location *locate.Record
	Warning  string
}

// Document pairs a name with its built index for bulk runs.
type Document struct {
	Name  string
	Index *docindex.DocumentIndex
}

// BulkResult is a Result plus the document the value was found in.
type BulkResult struct {
	Result
	Document string
}

// Pipeline owns the extraction sequence. It holds no per-request state;
// every request gets its own immutable DocumentIndex.
type Pipeline struct {
	extractor extract.Extractor
	resolver  *locate.Resolver
	idxCfg    docindex.Config
	log       *slog.Logger
}

func New(extractor extract.Extractor, idxCfg docindex.Config, locCfg locate.Config, log *slog.Logger) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		resolver:  locate.NewResolver(locCfg),
		idxCfg:    idxCfg,
		log:       log,
	}
}

// Index builds the document index for a fragment sequence.
func (p *Pipeline) Index(fragments []docindex.Fragment) (*docindex.DocumentIndex, error) {
	return docindex.Build(fragments, p.idxCfg)
}

// Run executes the full pipeline for one field against loader output.
func (p *Pipeline) Run(ctx context.Context, fragments []docindex.Fragment, field string) (Result, error) {
	idx, err := p.Index(fragments)
	if err != nil {
		return Result{}, err
	}
	return p.RunIndexed(ctx, idx, field)
}

// RunIndexed extracts and resolves a single field against a prebuilt index.
// Resolution only runs after a successful extractor return, so an abandoned
// or failed call never reaches the resolver.
func (p *Pipeline) RunIndexed(ctx context.Context, idx *docindex.DocumentIndex, field string) (Result, error) {
	value, err := p.extractor.ExtractField(ctx, idx.FullText, field)
	if err != nil {
		metrics.ExtractionsTotal.WithLabelValues("error").Inc()
		return Result{}, err
	}

	res := Result{Field: field}
	if value == nil {
		metrics.ExtractionsTotal.WithLabelValues("field_not_found").Inc()
		return res, nil
	}
	res.Value = value

	rec, strategy, err := p.resolver.Resolve(*value, idx)
	if err != nil {
		if errors.Is(err, locate.ErrValueNotLocated) {
			p.log.Warn("extracted value not located", "field", field)
			metrics.ExtractionsTotal.WithLabelValues("value_not_located").Inc()
			res.Warning = WarningValueNotLocated
			return res, nil
		}
		return Result{}, err
	}

	metrics.ExtractionsTotal.WithLabelValues("located").Inc()
	metrics.ResolutionsTotal.WithLabelValues(strategy).Inc()
	res.Location = &rec
	return res, nil
}

// RunBulk resolves several fields against a sequence of documents with
// bounded concurrency. For each field, documents are consulted in order
// and the first that yields a value wins. Extractor failures degrade that
// field to a warning instead of failing the whole run.
func (p *Pipeline) RunBulk(ctx context.Context, docs []Document, fields []string, maxConcurrent int) []BulkResult {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	results := make([]BulkResult, len(fields))
	sem := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup

	for i, field := range fields {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, field string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = p.runBulkField(ctx, docs, field)
		}(i, field)
	}
	wg.Wait()
	return results
}

func (p *Pipeline) runBulkField(ctx context.Context, docs []Document, field string) BulkResult {
	for _, doc := range docs {
		res, err := p.RunIndexed(ctx, doc.Index, field)
		if err != nil {
			p.log.Error("bulk extraction failed", "field", field, "document", doc.Name, "error", err)
			return BulkResult{Result: Result{Field: field, Warning: WarningExtractionFailed}}
		}
		if res.Value != nil {
			return BulkResult{Result: res, Document: doc.Name}
		}
	}
	return BulkResult{Result: Result{Field: field}}
}
