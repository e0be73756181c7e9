package clean

import (
	"reflect"
	"testing"
)

func TestDedupe(t *testing.T) {
	docs := []Document{
		{ID: "X1", Category: "first"},
		{ID: "X2", Category: "a"},
		{ID: "X1", Category: "second"},
		{ID: "X3", Category: "b"},
		{ID: "X2", Category: "c"},
	}

	got := Dedupe(docs)

	if len(got) != 3 {
		t.Fatalf("Dedupe() returned %d documents, want 3", len(got))
	}

	// First document per identifier wins, in first-occurrence order.
	want := []Document{
		{ID: "X1", Category: "first"},
		{ID: "X2", Category: "a"},
		{ID: "X3", Category: "b"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Dedupe() = %+v, want %+v", got, want)
	}
}

func TestDedupe_UniqueIdentifiers(t *testing.T) {
	docs := []Document{
		{ID: "X2"}, {ID: "X2"}, {ID: "X2"},
		{ID: "X1"}, {ID: "X1"},
	}

	got := Dedupe(docs)

	seen := make(map[string]int)
	for _, doc := range got {
		seen[doc.ID]++
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("identifier %q appears %d times in output, want 1", id, n)
		}
	}
	if len(got) != 2 {
		t.Errorf("Dedupe() returned %d documents, want 2", len(got))
	}
}

func TestDedupe_Deterministic(t *testing.T) {
	docs := []Document{
		{ID: "X1", Category: "keep"},
		{ID: "X1", Category: "drop"},
		{ID: "X2", Category: "only"},
	}

	first := Dedupe(docs)
	second := Dedupe(docs)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Dedupe() not deterministic: %+v != %+v", first, second)
	}
	if first[0].Category != "keep" {
		t.Errorf("survivor = %+v, want the first supplied document", first[0])
	}
}

func TestDedupe_Empty(t *testing.T) {
	if got := Dedupe(nil); len(got) != 0 {
		t.Errorf("Dedupe(nil) = %+v, want empty", got)
	}
}
