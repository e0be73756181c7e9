// Package runner executes the cleaning pipeline across a worker pool.
// Records are embarrassingly parallel: each one runs Join -> Flatten -> Clean
// independently, with the counter sink as the only shared state. Results are
// collected into per-record slots so the document order seen by dedup is the
// input order regardless of worker scheduling, which is what makes the
// survivor choice deterministic.
package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jmylchreest/prodclean/internal/logger"
	"github.com/jmylchreest/prodclean/pkg/clean"
)

// Config holds runner configuration.
type Config struct {
	// Concurrency is the number of records processed in parallel.
	Concurrency int `validate:"gte=1"`
}

// DefaultConfig returns sensible runner defaults.
func DefaultConfig() Config {
	return Config{
		Concurrency: runtime.NumCPU(),
	}
}

// Runner orchestrates the per-record pipeline.
type Runner struct {
	config  Config
	metrics clean.Metrics
	cleaner *clean.ParagraphCleaner
}

// New creates a Runner. Counter events are reported to m; a nil m discards
// them.
func New(cfg Config, m clean.Metrics) (*Runner, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid runner config: %w", err)
	}
	return &Runner{
		config:  cfg,
		metrics: m,
		cleaner: clean.NewParagraphCleaner(m),
	}, nil
}

// Run processes every raw record against the label set and returns the
// deduplicated documents. A record that is filtered out at any stage never
// affects the others; the only hard failure is context cancellation.
func (r *Runner) Run(ctx context.Context, raws []clean.RawRecord, labels []clean.LabelRecord) ([]clean.Document, error) {
	index := clean.BuildLabelIndex(labels)
	logger.Debug("runner starting",
		"records", len(raws),
		"labels", len(index),
		"concurrency", r.config.Concurrency)

	// One slot per input record. A nil slot means the record was filtered.
	slots := make([]*clean.Document, len(raws))

	sem := make(chan struct{}, r.config.Concurrency)
	var wg sync.WaitGroup

	for i, raw := range raws {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		default:
		}

		sem <- struct{}{}
		wg.Add(1)
		go func(i int, raw clean.RawRecord) {
			defer wg.Done()
			defer func() { <-sem }()

			if doc, ok := r.process(raw, index); ok {
				slots[i] = &doc
			}
		}(i, raw)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Gather in input order, then pick one survivor per identifier.
	docs := make([]clean.Document, 0, len(slots))
	for _, doc := range slots {
		if doc != nil {
			docs = append(docs, *doc)
		}
	}
	survivors := clean.Dedupe(docs)

	logger.Debug("runner finished",
		"documents", len(docs),
		"survivors", len(survivors))
	return survivors, nil
}

// process runs one record through Join -> Flatten -> Clean.
func (r *Runner) process(raw clean.RawRecord, index clean.LabelIndex) (clean.Document, bool) {
	joined, ok := clean.Join(raw, index)
	if !ok {
		return clean.Document{}, false
	}
	return r.cleaner.CleanDocument(clean.Flatten(joined))
}
