package dataload

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

type recordingWriter struct {
	calls   int
	records []string
	fail    bool
}

func (w *recordingWriter) WriteRecord(_ context.Context, line ...string) error {
	w.calls++
	if w.fail {
		return errors.New("write refused")
	}
	w.records = append(w.records, line...)
	return nil
}

func lineFile(t *testing.T, content string) *FileSource {
	t.Helper()
	path := filepath.Join(t.TempDir(), "points.lp")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return &FileSource{Path: path}
}

func TestLoad_SkipsBlanksAndComments(t *testing.T) {
	source := lineFile(t, `
# measurement cpu
cpu,host=a usage=0.5 1

cpu,host=b usage=0.7 2
`)
	writer := &recordingWriter{}
	written, err := NewLoader(writer).Load(context.Background(), source)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if written != 2 {
		t.Errorf("expected 2 records written, got %d", written)
	}
	if len(writer.records) != 2 || !strings.HasPrefix(writer.records[1], "cpu,host=b") {
		t.Errorf("unexpected records: %v", writer.records)
	}
}

func TestLoad_Batches(t *testing.T) {
	var lines []string
	for i := 0; i < batchSize+1; i++ {
		lines = append(lines, "cpu usage=1 1")
	}
	source := lineFile(t, strings.Join(lines, "\n"))

	writer := &recordingWriter{}
	written, err := NewLoader(writer).Load(context.Background(), source)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if written != batchSize+1 {
		t.Errorf("expected %d records, got %d", batchSize+1, written)
	}
	if writer.calls != 2 {
		t.Errorf("expected 2 write calls, got %d", writer.calls)
	}
}

func TestLoad_WriteFailure(t *testing.T) {
	source := lineFile(t, "cpu usage=1 1")
	writer := &recordingWriter{fail: true}
	if _, err := NewLoader(writer).Load(context.Background(), source); err == nil {
		t.Fatal("expected write failure to surface")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	source := &FileSource{Path: filepath.Join(t.TempDir(), "nope.lp")}
	if _, err := NewLoader(&recordingWriter{}).Load(context.Background(), source); err == nil {
		t.Fatal("expected error for missing source file")
	}
}
