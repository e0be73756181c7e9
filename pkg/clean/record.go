// Package clean implements the per-record transformation pipeline for
// Amazon-style product metadata: joining raw records with attribute labels,
// flattening text-bearing fields into paragraphs, and a multi-stage
// deterministic cleaning pass that strips markup and styling noise.
package clean

import "encoding/json"

// Field names of a raw metadata record.
const (
	// FieldASIN is the product identifier, e.g. "0000031852".
	FieldASIN = "asin"

	// SourceTitle is the name of the product.
	SourceTitle = "title"
	// SourceDescription holds the product description, including
	// bullet-point descriptions under the title.
	SourceDescription = "description"
	// SourceFeature holds bullet-point format features of the product.
	SourceFeature = "feature"
	// SourcePrice is the price in US dollars at time of crawl.
	SourcePrice = "price"
	// SourceBrand is the brand name.
	SourceBrand = "brand"
)

// Sources lists the text-bearing fields in the fixed order paragraphs are
// extracted in.
var Sources = []string{SourceTitle, SourceDescription, SourceFeature, SourcePrice, SourceBrand}

// RawRecord is a JSON-decoded product metadata record. Fields may be absent,
// wrong-typed, or empty; the pipeline treats all three as empty.
type RawRecord map[string]any

// ASIN returns the record's product identifier, or "" if absent or not a
// string.
func (r RawRecord) ASIN() string {
	id, _ := r[FieldASIN].(string)
	return id
}

// LabelRecord is a JSON-decoded attribute label record, keyed by product
// identifier. Attributes is kept opaque; the pipeline never looks inside it.
type LabelRecord struct {
	ID         string          `json:"id"`
	Category   string          `json:"category"`
	Attributes json.RawMessage `json:"attributes"`
}

// IsZero reports whether the label carries no data at all.
func (l LabelRecord) IsZero() bool {
	return l.ID == "" && l.Category == "" && len(l.Attributes) == 0
}

// Clone returns a copy of the label with its own Attributes payload, so a
// document built from one join can never alias another document's state.
func (l LabelRecord) Clone() LabelRecord {
	c := l
	if l.Attributes != nil {
		c.Attributes = make(json.RawMessage, len(l.Attributes))
		copy(c.Attributes, l.Attributes)
	}
	return c
}

// JoinedRecord pairs a raw record with its matched label. It exists only
// transiently between Join and Flatten and is never persisted.
type JoinedRecord struct {
	Raw   RawRecord
	Label LabelRecord
}

// Paragraph is one unit of text tagged with the source field it came from.
type Paragraph struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// FlatRecord carries the flattened paragraph list together with the label it
// was joined with, ready for cleaning.
type FlatRecord struct {
	Paragraphs []Paragraph
	Label      LabelRecord
}

// Document is one cleaned output record. A Document is only ever emitted
// with at least one title-sourced paragraph, and every paragraph carries
// non-empty, markup-free text.
type Document struct {
	ID         string          `json:"id"`
	Category   string          `json:"category"`
	Paragraphs []Paragraph     `json:"paragraphs"`
	Attributes json.RawMessage `json:"attributes"`
}
