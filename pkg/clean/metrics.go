package clean

import "sync"

// Counter names emitted by the cleaning pipeline. These are observability
// signals only and never affect control flow.
const (
	CounterParagraphs         = "num-paragraphs"
	CounterUnformattedTitle   = "num-paragraph-unformatted-title"
	CounterUnicodeBeforeClean = "num-paragraph-unicode-issue-before-css-removal"
	CounterHTMLCleaned        = "num-paragraph-html-cleaned"
	CounterEmptyWhitespace    = "num-paragraph-empty-after-whitespace-removed"
	CounterHTMLAfterClean     = "num-paragraph-html-after-all-clean"
	CounterCSSRemoved         = "num-paragraph-is-css-removed"
	CounterUnicodeAfterClean  = "num-paragraph-unicode-issue-after-all-clean"
	CounterNoTitle            = "num-document-no-title"
	CounterOutputDocuments    = "num-output-documents"
)

// Metrics receives named counter events from the pipeline. Implementations
// must be safe for concurrent use; the host is free to fan records out across
// many workers. Counts are eventually consistent while processing is in
// flight and exact once the pipeline drains.
type Metrics interface {
	Inc(name string)
}

// Counters is a Metrics implementation backed by an in-process map.
type Counters struct {
	mu     sync.Mutex
	counts map[string]int64
}

// NewCounters creates an empty counter set.
func NewCounters() *Counters {
	return &Counters{counts: make(map[string]int64)}
}

// Inc increments the named counter by one.
func (c *Counters) Inc(name string) {
	c.mu.Lock()
	c.counts[name]++
	c.mu.Unlock()
}

// Get returns the current value of the named counter.
func (c *Counters) Get(name string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[name]
}

// Snapshot returns a copy of all counters.
func (c *Counters) Snapshot() map[string]int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int64, len(c.counts))
	for name, v := range c.counts {
		out[name] = v
	}
	return out
}

// nopMetrics discards all events.
type nopMetrics struct{}

func (nopMetrics) Inc(string) {}
