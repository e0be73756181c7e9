package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testDoc struct {
	ID       string `json:"id" yaml:"id"`
	Category string `json:"category" yaml:"category"`
}

func TestJSONLWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONLWriter(&buf)

	docs := []testDoc{{ID: "a", Category: "x"}, {ID: "b", Category: "y"}}
	for _, doc := range docs {
		if err := w.Write(doc); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("output has %d lines, want 2", len(lines))
	}
	for i, line := range lines {
		var got testDoc
		if err := json.Unmarshal([]byte(line), &got); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i+1, err)
		}
		if got != docs[i] {
			t.Errorf("line %d = %+v, want %+v", i+1, got, docs[i])
		}
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)

	if err := w.Write(testDoc{ID: "a"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Write(testDoc{ID: "b"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	var got []testDoc
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not a JSON array: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("array = %+v, want both documents in order", got)
	}
}

func TestYAMLWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewYAMLWriter(&buf)

	if err := w.Write(testDoc{ID: "a", Category: "x"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	var got []testDoc
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("documents = %+v, want one with id a", got)
	}
}

func TestNewWriter(t *testing.T) {
	tests := []struct {
		format  Format
		wantErr bool
	}{
		{FormatJSON, false},
		{FormatJSONL, false},
		{FormatYAML, false},
		{Format("xml"), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			_, err := NewWriter(&buf, tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewWriter(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}
