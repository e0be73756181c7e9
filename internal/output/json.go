package output

import (
	"bufio"
	"encoding/json"
	"io"
)

// JSONLWriter writes newline-delimited JSON, one document per line. This is
// the default output format; it is what downstream training jobs consume.
type JSONLWriter struct {
	w *bufio.Writer
}

// NewJSONLWriter creates a JSONL writer.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{
		w: bufio.NewWriter(w),
	}
}

// Write writes a single document as a JSON line.
func (w *JSONLWriter) Write(data any) error {
	out, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := w.w.Write(out); err != nil {
		return err
	}
	if _, err := w.w.WriteString("\n"); err != nil {
		return err
	}

	return nil
}

// Flush flushes the buffer.
func (w *JSONLWriter) Flush() error {
	return w.w.Flush()
}

// Close flushes the writer.
func (w *JSONLWriter) Close() error {
	return w.Flush()
}

// JSONWriter buffers documents and writes them as a single indented JSON
// array on Flush.
type JSONWriter struct {
	w     *bufio.Writer
	items []any
}

// NewJSONWriter creates a JSON array writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     bufio.NewWriter(w),
		items: make([]any, 0),
	}
}

// Write buffers a single document for array output.
func (w *JSONWriter) Write(data any) error {
	w.items = append(w.items, data)
	return nil
}

// Flush writes the buffered documents as a JSON array.
func (w *JSONWriter) Flush() error {
	out, err := json.MarshalIndent(w.items, "", "  ")
	if err != nil {
		return err
	}

	if _, err := w.w.Write(out); err != nil {
		return err
	}
	if _, err := w.w.WriteString("\n"); err != nil {
		return err
	}

	return w.w.Flush()
}

// Close flushes and closes the writer.
func (w *JSONWriter) Close() error {
	return w.Flush()
}
