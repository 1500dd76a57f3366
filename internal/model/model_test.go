package model

import "testing"

func sampleTree() *Tree {
	return &Tree{Tasks: []Task{
		{Name: "A", Expanded: true, Subtasks: []Task{
			{Name: "B"},
			{Name: "C", Subtasks: []Task{{Name: "D"}}},
		}},
		{Name: "E"},
	}}
}

func TestTreeLookup(t *testing.T) {
	tree := sampleTree()

	tests := []struct {
		name string
		path Path
		want string
		ok   bool
	}{
		{name: "root", path: Path{0}, want: "A", ok: true},
		{name: "second root", path: Path{1}, want: "E", ok: true},
		{name: "child", path: Path{0, 1}, want: "C", ok: true},
		{name: "grandchild under collapsed", path: Path{0, 1, 0}, want: "D", ok: true},
		{name: "empty path", path: Path{}, ok: false},
		{name: "nil path", path: nil, ok: false},
		{name: "root out of range", path: Path{2}, ok: false},
		{name: "negative", path: Path{-1}, ok: false},
		{name: "child out of range", path: Path{0, 2}, ok: false},
		{name: "leaf has no children", path: Path{1, 0}, ok: false},
		{name: "too deep", path: Path{0, 1, 0, 0}, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tree.Lookup(tt.path)
			if ok != tt.ok {
				t.Fatalf("Lookup(%v) ok=%v, want %v", tt.path, ok, tt.ok)
			}
			if ok && got.Name != tt.want {
				t.Fatalf("Lookup(%v) name=%q, want %q", tt.path, got.Name, tt.want)
			}
		})
	}
}

func TestTreeLookupMutatesInPlace(t *testing.T) {
	tree := sampleTree()
	n, ok := tree.Lookup(Path{0, 0})
	if !ok {
		t.Fatalf("expected node")
	}
	n.Name = "B2"
	n.Expanded = true
	if tree.Tasks[0].Subtasks[0].Name != "B2" || !tree.Tasks[0].Subtasks[0].Expanded {
		t.Fatalf("expected mutation to reach the tree; got %+v", tree.Tasks[0].Subtasks[0])
	}
}

func TestTreeGetReturnsCopy(t *testing.T) {
	tree := sampleTree()
	got, ok := tree.Get(Path{0, 1})
	if !ok {
		t.Fatalf("expected node")
	}
	got.Name = "changed"
	got.Subtasks[0].Name = "changed too"
	if tree.Tasks[0].Subtasks[1].Name != "C" {
		t.Fatalf("Get must not alias the tree; got %q", tree.Tasks[0].Subtasks[1].Name)
	}
	if tree.Tasks[0].Subtasks[1].Subtasks[0].Name != "D" {
		t.Fatalf("Get must deep-copy subtasks; got %q", tree.Tasks[0].Subtasks[1].Subtasks[0].Name)
	}
}

func TestNilTree(t *testing.T) {
	var tree *Tree
	if _, ok := tree.Lookup(Path{0}); ok {
		t.Fatalf("expected nil tree lookup to fail")
	}
	if n := tree.Len(); n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}
}

func TestTreeLen(t *testing.T) {
	if n := sampleTree().Len(); n != 5 {
		t.Fatalf("expected 5 nodes, got %d", n)
	}
}

func TestPathHelpers(t *testing.T) {
	p := Path{0, 3, 1}
	if got := p.String(); got != "0.3.1" {
		t.Fatalf("String: got %q", got)
	}
	if got := p.Parent(); !got.Equal(Path{0, 3}) {
		t.Fatalf("Parent: got %v", got)
	}
	if got := (Path{4}).Parent(); got != nil {
		t.Fatalf("Parent of top-level: got %v", got)
	}
	if got := p.Last(); got != 1 {
		t.Fatalf("Last: got %d", got)
	}
	if got := (Path{}).Last(); got != -1 {
		t.Fatalf("Last of empty: got %d", got)
	}
	if got := p.Depth(); got != 2 {
		t.Fatalf("Depth: got %d", got)
	}

	// Child and Parent must never alias the receiver's backing array.
	parent := p.Parent()
	_ = append(parent, 9)
	if p[2] != 1 {
		t.Fatalf("Parent aliased receiver: %v", p)
	}
	c := p.Child(7)
	c[0] = 5
	if p[0] != 0 {
		t.Fatalf("Child aliased receiver: %v", p)
	}

	if (Path{}).Valid() || (Path{0, -1}).Valid() {
		t.Fatalf("expected empty/negative paths to be invalid")
	}
	if !(Path{0, 0}).Valid() {
		t.Fatalf("expected path to be valid")
	}
}
