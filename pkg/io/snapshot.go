package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/beurling/pkg/beurling"
	errs "github.com/matzehuels/beurling/pkg/errors"
	"github.com/matzehuels/beurling/pkg/factor"
	"github.com/matzehuels/beurling/pkg/tree"
)

const (
	openToken  = "["
	closeToken = "]"
)

// MalformedError reports a snapshot line that could not be read.
type MalformedError struct {
	Line   int    // 1-based line number
	Text   string // Offending line, empty at end of input
	Reason string
	Cause  error
}

func (e *MalformedError) Error() string {
	msg := fmt.Sprintf("snapshot line %d: %s", e.Line, e.Reason)
	if e.Text != "" {
		msg += fmt.Sprintf(" (%q)", e.Text)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *MalformedError) Unwrap() error { return e.Cause }

// Code returns [errs.ErrCodeMalformedSnapshot].
func (e *MalformedError) Code() errs.Code { return errs.ErrCodeMalformedSnapshot }

// WriteSnapshot writes t to w in snapshot format.
func WriteSnapshot(w io.Writer, t *beurling.Tree) error {
	bw := bufio.NewWriter(w)
	open := func(n *beurling.Node) error {
		_, err := bw.WriteString(n.Value().String() + openToken + "\n")
		return err
	}
	closeNode := func(*beurling.Node) error {
		_, err := bw.WriteString(closeToken + "\n")
		return err
	}
	err := t.DepthFirst(beurling.Visitor{
		Descend: open,
		Ascend:  closeNode,
	})
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot parses a snapshot from r. It does not close r.
func ReadSnapshot(r io.Reader) (*beurling.Tree, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		t     *beurling.Tree
		stack []*beurling.Node
		line  int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")

		if t != nil && len(stack) == 0 {
			return nil, &MalformedError{Line: line, Text: text, Reason: "content after root closed"}
		}

		if text == closeToken {
			if t == nil {
				return nil, &MalformedError{Line: line, Text: text, Reason: "close before root"}
			}
			stack = stack[:len(stack)-1]
			continue
		}

		serial, ok := strings.CutSuffix(text, openToken)
		if !ok {
			return nil, &MalformedError{Line: line, Text: text, Reason: "expected \"serial[\" or \"]\""}
		}
		f, err := factor.Parse(serial)
		if err != nil {
			return nil, &MalformedError{Line: line, Text: text, Reason: "bad factorization", Cause: err}
		}

		if t == nil {
			t = tree.New(f)
			stack = append(stack, t.Root())
			continue
		}
		stack = append(stack, t.Add(stack[len(stack)-1], f))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	switch {
	case t == nil:
		return nil, &MalformedError{Line: line + 1, Reason: "empty snapshot"}
	case len(stack) > 0:
		return nil, &MalformedError{Line: line + 1, Reason: fmt.Sprintf("end of input with %d open nodes", len(stack))}
	}
	return t, nil
}

// ExportSnapshot writes t to a snapshot file at path.
func ExportSnapshot(path string, t *beurling.Tree) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteSnapshot(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ImportSnapshot reads a snapshot file at path.
func ImportSnapshot(path string) (*beurling.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open snapshot %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadSnapshot(f)
}
