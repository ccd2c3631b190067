package io

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/beurling/pkg/beurling"
	errs "github.com/matzehuels/beurling/pkg/errors"
)

func TestWriteSnapshot(t *testing.T) {
	tr, err := beurling.Exhaustive(1)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, tr); err != nil {
		t.Fatalf("WriteSnapshot() error = %v", err)
	}

	want := "0,1[\n0,2[\n]\n1,1[\n]\n]\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteSnapshot() =\n%s\nwant\n%s", got, want)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	for _, build := range []func() (*beurling.Tree, error){
		func() (*beurling.Tree, error) { return beurling.Exhaustive(0) },
		func() (*beurling.Tree, error) { return beurling.Exhaustive(4) },
		func() (*beurling.Tree, error) { return beurling.PrimePower(3) },
		func() (*beurling.Tree, error) { return beurling.Restricted(2, 2, 4) },
	} {
		orig, err := build()
		if err != nil {
			t.Fatal(err)
		}

		var buf bytes.Buffer
		if err := WriteSnapshot(&buf, orig); err != nil {
			t.Fatal(err)
		}
		text := buf.String()

		got, err := ReadSnapshot(strings.NewReader(text))
		if err != nil {
			t.Fatalf("ReadSnapshot() error = %v", err)
		}
		if got.Len() != orig.Len() {
			t.Errorf("Len() = %d, want %d", got.Len(), orig.Len())
		}

		buf.Reset()
		if err := WriteSnapshot(&buf, got); err != nil {
			t.Fatal(err)
		}
		if buf.String() != text {
			t.Error("re-written snapshot differs from the original")
		}
	}
}

func TestReadSnapshotMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line int
	}{
		{"empty", "", 1},
		{"garbage", "0,1[\nhello\n]\n", 2},
		{"bad serial", "0,1[\n0,x[\n]\n]\n", 2},
		{"unsorted serial", "0,1[\n1,1|0,1[\n]\n]\n", 2},
		{"close first", "]\n", 1},
		{"unterminated", "0,1[\n0,2[\n]\n", 4},
		{"trailing", "0,1[\n]\n1,1[\n]\n", 3},
		{"blank line", "0,1[\n\n]\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadSnapshot(strings.NewReader(tt.in))
			var me *MalformedError
			if !errors.As(err, &me) {
				t.Fatalf("ReadSnapshot() error = %v, want *MalformedError", err)
			}
			if me.Line != tt.line {
				t.Errorf("Line = %d, want %d", me.Line, tt.line)
			}
			if !errs.Is(err, errs.ErrCodeMalformedSnapshot) {
				t.Errorf("code = %v", errs.GetCode(err))
			}
		})
	}
}

func TestReadSnapshotCRLF(t *testing.T) {
	tr, err := ReadSnapshot(strings.NewReader("0,1[\r\n1,1[\r\n]\r\n]\r\n"))
	if err != nil {
		t.Fatalf("ReadSnapshot() error = %v", err)
	}
	if tr.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tr.Len())
	}
}

func TestExportImportSnapshot(t *testing.T) {
	tr, err := beurling.Exhaustive(3)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "tree.txt")

	if err := ExportSnapshot(path, tr); err != nil {
		t.Fatalf("ExportSnapshot() error = %v", err)
	}
	got, err := ImportSnapshot(path)
	if err != nil {
		t.Fatalf("ImportSnapshot() error = %v", err)
	}
	if got.Len() != tr.Len() {
		t.Errorf("Len() = %d, want %d", got.Len(), tr.Len())
	}

	_, err = ImportSnapshot(filepath.Join(t.TempDir(), "missing.txt"))
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("missing file code = %v, want %v", errs.GetCode(err), errs.ErrCodeFileNotFound)
	}
}

func TestWriteJSON(t *testing.T) {
	tr, err := beurling.Exhaustive(2)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, tr); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var g graph
	if err := json.Unmarshal(buf.Bytes(), &g); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(g.Nodes) != tr.Len() || len(g.Edges) != tr.Len()-1 {
		t.Errorf("nodes=%d edges=%d, want %d and %d", len(g.Nodes), len(g.Edges), tr.Len(), tr.Len()-1)
	}
	if g.Nodes[0].Label != "{(1,1)}" || !g.Nodes[0].Prime {
		t.Errorf("root = %+v", g.Nodes[0])
	}
}
