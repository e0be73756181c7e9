package clean

import (
	"strings"

	"github.com/jmylchreest/prodclean/internal/logger"
)

// Flatten extracts the text-bearing source fields of a joined record into an
// ordered paragraph list. Sources are visited in fixed field order; within a
// multi-valued field the original list order is preserved. A string value is
// treated as a single candidate, a list as one candidate per string element,
// and anything else as empty (logged, non-fatal). Candidates are trimmed and
// whitespace-only text never produces a paragraph.
func Flatten(joined JoinedRecord) FlatRecord {
	var paragraphs []Paragraph
	for _, source := range Sources {
		data, present := joined.Raw[source]
		if !present {
			continue
		}

		var texts []string
		switch v := data.(type) {
		case string:
			texts = []string{v}
		case []any:
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					logger.Debug("skipping non-string list element", "source", source, "asin", joined.Raw.ASIN())
					continue
				}
				texts = append(texts, s)
			}
		default:
			logger.Debug("invalid source field, not a string or a list", "source", source, "asin", joined.Raw.ASIN())
		}

		for _, text := range texts {
			text = strings.TrimSpace(text)
			if text == "" {
				continue
			}
			paragraphs = append(paragraphs, Paragraph{Text: text, Source: source})
		}
	}

	return FlatRecord{Paragraphs: paragraphs, Label: joined.Label}
}
