package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lineCode/mjs-1/internal/token"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestTokenizeReturnsEOFTerminatedStream(t *testing.T) {
	path := writeTempFile(t, "a.js", "var x = 1;")
	res, err := Tokenize(path, 16)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(res.Tokens) == 0 || res.Tokens[len(res.Tokens)-1].Kind != token.EOF {
		t.Fatalf("expected token stream ending in EOF, got %v", res.Tokens)
	}
}

func TestParseFileReportsNoErrorsOnValidInput(t *testing.T) {
	path := writeTempFile(t, "b.js", "function f(x) { return x + 1; }")
	res, err := ParseFile(path, 16)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", res.Bag.Items())
	}
}

func TestParseFilesPreservesOrder(t *testing.T) {
	paths := []string{
		writeTempFile(t, "c1.js", "var a = 1;"),
		writeTempFile(t, "c2.js", "var b = 2;"),
		writeTempFile(t, "c3.js", "var c = 3;"),
	}
	results, err := ParseFiles(paths, BatchOptions{MaxDiagnostics: 16})
	if err != nil {
		t.Fatalf("ParseFiles: %v", err)
	}
	if len(results) != len(paths) {
		t.Fatalf("got %d results, want %d", len(results), len(paths))
	}
	for i, res := range results {
		if res == nil || res.Bag.HasErrors() {
			t.Errorf("file %d: expected a clean parse, got %v", i, res)
		}
	}
}

func TestParseFilesRejectsBatchOverMaxFiles(t *testing.T) {
	paths := []string{
		writeTempFile(t, "d1.js", "var a = 1;"),
		writeTempFile(t, "d2.js", "var b = 2;"),
	}
	_, err := ParseFiles(paths, BatchOptions{MaxDiagnostics: 16, MaxFiles: 1})
	if err == nil {
		t.Fatal("expected an error when exceeding MaxFiles, got nil")
	}
}

func TestNewScratchHeapHasRequestedCapacity(t *testing.T) {
	h := NewScratchHeap(64)
	if got := h.Capacity(); got != 64 {
		t.Errorf("Capacity() = %d, want 64", got)
	}
}
