package tree

import (
	"errors"
	"strings"
	"testing"
)

// sample builds
//
//	a
//	├── b
//	│   ├── d
//	│   └── e
//	└── c
func sample() *Tree[string] {
	t := New("a")
	b := t.Add(t.Root(), "b")
	t.Add(t.Root(), "c")
	t.Add(b, "d")
	t.Add(b, "e")
	return t
}

func TestAdd(t *testing.T) {
	tr := sample()

	if tr.Len() != 5 {
		t.Errorf("Len() = %d, want 5", tr.Len())
	}
	if tr.Height() != 2 {
		t.Errorf("Height() = %d, want 2", tr.Height())
	}
	for i := 0; i < tr.Len(); i++ {
		if got := tr.Node(i).ID(); got != i {
			t.Errorf("Node(%d).ID() = %d", i, got)
		}
	}
	if tr.Node(5) != nil || tr.Node(-1) != nil {
		t.Error("out of range handles should yield nil")
	}

	d := tr.Node(3)
	if d.Value() != "d" || d.Depth() != 2 || d.Parent().Value() != "b" {
		t.Errorf("node 3 = %q at depth %d", d.Value(), d.Depth())
	}
}

func TestFind(t *testing.T) {
	tr := sample()
	root := tr.Root()

	if c := root.Find(func(v string) bool { return v == "c" }); c == nil || c.ID() != 2 {
		t.Errorf("Find(c) = %v", c)
	}
	if c := root.Find(func(v string) bool { return v == "d" }); c != nil {
		t.Errorf("Find(d) should only search direct children, got %v", c.Value())
	}
}

func TestDepthFirst(t *testing.T) {
	tr := sample()
	var trace []string

	err := tr.DepthFirst(Visitor[string]{
		Descend: func(n *Node[string]) error { trace = append(trace, "+"+n.Value()); return nil },
		Ascend:  func(n *Node[string]) error { trace = append(trace, "-"+n.Value()); return nil },
		Leaf:    func(n *Node[string]) error { trace = append(trace, "."+n.Value()); return nil },
	})
	if err != nil {
		t.Fatalf("DepthFirst() error = %v", err)
	}

	want := "+a +b .d .e -b .c -a"
	if got := strings.Join(trace, " "); got != want {
		t.Errorf("trace = %q, want %q", got, want)
	}
}

func TestDepthFirstNilLeaf(t *testing.T) {
	tr := sample()
	var trace []string

	_ = tr.DepthFirst(Visitor[string]{
		Descend: func(n *Node[string]) error { trace = append(trace, "+"+n.Value()); return nil },
		Ascend:  func(n *Node[string]) error { trace = append(trace, "-"+n.Value()); return nil },
	})

	want := "+a +b +d -d +e -e -b +c -c -a"
	if got := strings.Join(trace, " "); got != want {
		t.Errorf("trace = %q, want %q", got, want)
	}
}

func TestDepthFirstAbort(t *testing.T) {
	tr := sample()
	boom := errors.New("boom")
	visited := 0

	err := tr.DepthFirst(Visitor[string]{
		Leaf: func(n *Node[string]) error {
			visited++
			return boom
		},
	})
	if !errors.Is(err, boom) {
		t.Errorf("DepthFirst() error = %v, want boom", err)
	}
	if visited != 1 {
		t.Errorf("visited %d leaves after abort, want 1", visited)
	}

	err = tr.DepthFirst(Visitor[string]{
		Leaf: func(n *Node[string]) error { return ErrStop },
	})
	if err != nil {
		t.Errorf("ErrStop should not surface, got %v", err)
	}
}

func TestBreadthFirst(t *testing.T) {
	tr := sample()
	var nodes, edges []string

	err := tr.BreadthFirst(
		func(n *Node[string]) error { nodes = append(nodes, n.Value()); return nil },
		func(p, c *Node[string]) error { edges = append(edges, p.Value()+c.Value()); return nil },
	)
	if err != nil {
		t.Fatalf("BreadthFirst() error = %v", err)
	}

	if got := strings.Join(nodes, ""); got != "abcde" {
		t.Errorf("nodes = %q, want abcde", got)
	}
	if got := strings.Join(edges, " "); got != "ab ac bd be" {
		t.Errorf("edges = %q", got)
	}
}

func TestLevels(t *testing.T) {
	tr := sample()

	sizes := tr.LevelSizes()
	if len(sizes) != 3 || sizes[0] != 1 || sizes[1] != 2 || sizes[2] != 2 {
		t.Errorf("LevelSizes() = %v, want [1 2 2]", sizes)
	}
	if got := len(tr.Level(2)); got != 2 {
		t.Errorf("len(Level(2)) = %d, want 2", got)
	}
	if got := len(tr.Leaves()); got != 3 {
		t.Errorf("len(Leaves()) = %d, want 3", got)
	}

	path := tr.Node(4).Path()
	if len(path) != 3 || path[0].Value() != "a" || path[2].Value() != "e" {
		t.Errorf("Path() of e = %v", path)
	}
}

func TestClone(t *testing.T) {
	tr := sample()
	cp := tr.Clone()
	cp.Add(cp.Root(), "x")

	if tr.Len() != 5 {
		t.Errorf("original changed: Len() = %d", tr.Len())
	}
	if cp.Len() != 6 {
		t.Errorf("clone Len() = %d, want 6", cp.Len())
	}
	if got := cp.Node(2).Value(); got != "d" {
		t.Errorf("clone handles follow depth-first order, Node(2) = %q", got)
	}
}
