package clean

// LabelIndex maps product identifiers to their label record.
type LabelIndex map[string]LabelRecord

// BuildLabelIndex builds an index from a sequence of label records. If
// multiple records share an identifier, the last one encountered wins.
func BuildLabelIndex(labels []LabelRecord) LabelIndex {
	idx := make(LabelIndex, len(labels))
	for _, l := range labels {
		idx[l.ID] = l
	}
	return idx
}

// Lookup returns the label for the given identifier. Absence is reported via
// the second return value, never as an error.
func (idx LabelIndex) Lookup(id string) (LabelRecord, bool) {
	l, ok := idx[id]
	return l, ok
}

// Join matches a raw record against the label index. Records with a missing
// identifier, no index entry, or an empty label are dropped; this is a normal
// filtering outcome, not an error. The returned record carries a clone of the
// label so downstream mutation cannot leak across documents sharing a label.
func Join(raw RawRecord, idx LabelIndex) (JoinedRecord, bool) {
	label, ok := idx.Lookup(raw.ASIN())
	if !ok || label.IsZero() {
		return JoinedRecord{}, false
	}
	return JoinedRecord{Raw: raw, Label: label.Clone()}, true
}
