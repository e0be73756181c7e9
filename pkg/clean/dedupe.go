package clean

// Dedupe selects exactly one survivor per identifier: the first document
// supplied for that identifier wins. The component imposes no reordering of
// its own, so the outcome is deterministic whenever the caller delivers
// documents in a stable order. Survivors come back in first-occurrence
// order; consumers must not rely on any particular ordering across
// identifiers.
func Dedupe(docs []Document) []Document {
	seen := make(map[string]struct{}, len(docs))
	survivors := make([]Document, 0, len(docs))
	for _, doc := range docs {
		if _, ok := seen[doc.ID]; ok {
			continue
		}
		seen[doc.ID] = struct{}{}
		survivors = append(survivors, doc)
	}
	return survivors
}
