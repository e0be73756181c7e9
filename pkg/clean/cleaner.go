package clean

import (
	"strings"

	"github.com/jmylchreest/prodclean/internal/logger"
)

// ParagraphCleaner applies the cleaning chain to each paragraph of a
// flattened record and gates the resulting document on title presence.
// It is stateless apart from the injected metrics sink and safe for
// concurrent use.
type ParagraphCleaner struct {
	metrics Metrics
}

// NewParagraphCleaner creates a cleaner reporting counter events to m.
// A nil m discards all events.
func NewParagraphCleaner(m Metrics) *ParagraphCleaner {
	if m == nil {
		m = nopMetrics{}
	}
	return &ParagraphCleaner{metrics: m}
}

// CleanDocument runs every paragraph of flat through the cleaning chain and
// assembles the surviving paragraphs into a Document. The second return
// value is false when the whole document is dropped because no title-sourced
// paragraph survived.
//
// The per-paragraph stages run in a fixed order; each can drop the paragraph
// or rewrite its text:
//
//  1. title paragraphs containing "getTime" are corrupted-timestamp
//     artifacts and dropped outright
//  2. the text is reduced to its valid-UTF-8 subsequence (change recorded)
//  3. style/script markup is stripped and visible text extracted
//  4. whitespace runs collapse to single spaces; empty results drop
//  5. residual HTML markers drop the paragraph
//  6. the CSS token heuristic drops the paragraph
//  7. the UTF-8 round-trip is re-checked (observability only)
func (c *ParagraphCleaner) CleanDocument(flat FlatRecord) (Document, bool) {
	paragraphs := make([]Paragraph, 0, len(flat.Paragraphs))
	for _, paragraph := range flat.Paragraphs {
		c.metrics.Inc(CounterParagraphs)
		text := paragraph.Text

		if paragraph.Source == SourceTitle && strings.Contains(text, "getTime") {
			c.metrics.Inc(CounterUnformattedTitle)
			continue
		}

		recovered := strings.ToValidUTF8(text, "")
		if recovered != text {
			c.metrics.Inc(CounterUnicodeBeforeClean)
		}

		stripped := StripTags(recovered)
		if stripped != recovered {
			c.metrics.Inc(CounterHTMLCleaned)
		}

		normalized := strings.Join(strings.Fields(stripped), " ")
		if normalized == "" {
			c.metrics.Inc(CounterEmptyWhitespace)
			continue
		}

		if IsHTML(normalized) {
			c.metrics.Inc(CounterHTMLAfterClean)
			continue
		}

		if IsCSS(normalized) {
			c.metrics.Inc(CounterCSSRemoved)
			continue
		}

		final := strings.ToValidUTF8(normalized, "")
		if final != normalized {
			c.metrics.Inc(CounterUnicodeAfterClean)
			logger.Debug("unicode issue after clean", "text", normalized)
		}

		paragraphs = append(paragraphs, Paragraph{Text: final, Source: paragraph.Source})
	}

	hasTitle := false
	for _, p := range paragraphs {
		if p.Source == SourceTitle {
			hasTitle = true
			break
		}
	}
	if !hasTitle {
		c.metrics.Inc(CounterNoTitle)
		return Document{}, false
	}

	c.metrics.Inc(CounterOutputDocuments)
	return Document{
		ID:         flat.Label.ID,
		Category:   flat.Label.Category,
		Paragraphs: paragraphs,
		Attributes: flat.Label.Attributes,
	}, true
}
