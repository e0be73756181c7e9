package jsonl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testRecord struct {
	ID       string `json:"id"`
	Category string `json:"category"`
}

func TestDecode(t *testing.T) {
	input := `{"id":"a","category":"x"}
{"id":"b","category":"y"}

{"id":"c","category":"z"}
`
	records, err := Decode[testRecord](strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Decode() returned %d records, want 3 (blank lines skipped)", len(records))
	}
	if records[1].ID != "b" || records[1].Category != "y" {
		t.Errorf("records[1] = %+v, want {b y}", records[1])
	}
}

func TestDecode_MalformedLine(t *testing.T) {
	input := `{"id":"a"}
not json at all
{"id":"c"}`

	_, err := Decode[testRecord](strings.NewReader(input))
	if err == nil {
		t.Fatal("Decode() error = nil, want parse failure")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Decode() error = %v, want line number 2", err)
	}
}

func TestDecode_GenericMaps(t *testing.T) {
	input := `{"asin":"X1","title":"Widget","feature":["a","b"]}`

	records, err := Decode[map[string]any](strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if records[0]["asin"] != "X1" {
		t.Errorf("records[0][asin] = %v, want X1", records[0]["asin"])
	}
	if _, ok := records[0]["feature"].([]any); !ok {
		t.Errorf("feature decoded as %T, want []any", records[0]["feature"])
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")
	if err := os.WriteFile(path, []byte(`{"id":"a"}`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := ReadFile[testRecord](path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(records) != 1 || records[0].ID != "a" {
		t.Errorf("ReadFile() = %+v, want one record with id a", records)
	}
}

func TestReadFile_Missing(t *testing.T) {
	if _, err := ReadFile[testRecord](filepath.Join(t.TempDir(), "absent.jsonl")); err == nil {
		t.Error("ReadFile() error = nil for missing file")
	}
}
