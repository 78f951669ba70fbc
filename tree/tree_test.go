package tree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// createTreeForTest builds
//
//	1 ─┬─ 2 ─┬─ 4
//	   │     └─ 5
//	   └─ 3 ─── 6
func createTreeForTest(t *testing.T) []*Node[int] {
	nodes := []*Node[int]{nil}
	for i := 1; i <= 6; i++ {
		nodes = append(nodes, NewNode(i))
	}
	links := [][2]int{{1, 2}, {1, 3}, {2, 4}, {2, 5}, {3, 6}}
	for _, l := range links {
		if err := nodes[l[0]].AddChild(nodes[l[1]]); err != nil {
			t.Fatalf("cannot create tree for test: %v", err)
		}
	}
	return nodes
}

func payloads(nodes []*Node[int]) []int {
	r := make([]int, len(nodes))
	for i, n := range nodes {
		r[i] = n.Payload
	}
	return r
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestWalkerEmpty(t *testing.T) {
	w := NewWalker[int](nil)
	nodes, err := w.AllDescendents().Parent().Nodes()
	if err != ErrEmptyTree {
		t.Errorf("expected ErrEmptyTree for nil walker, got %v", err)
	}
	if len(nodes) != 0 {
		t.Errorf("expected empty selection, got %v", nodes)
	}
}

func TestWalkerParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.tree")
	defer teardown()
	//
	n := createTreeForTest(t)
	nodes, err := NewWalker(n[4]).Parent().Nodes()
	if err != nil {
		t.Fatal(err)
	}
	if !equalInts(payloads(nodes), []int{2}) {
		t.Errorf("expected parent of 4 to be 2, got %v", payloads(nodes))
	}
	nodes, _ = NewWalker(n[1]).Parent().Nodes()
	if len(nodes) != 0 {
		t.Errorf("expected root to have no parent, got %v", payloads(nodes))
	}
}

func TestWalkerDescendents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.tree")
	defer teardown()
	//
	n := createTreeForTest(t)
	nodes, err := NewWalker(n[1]).AllDescendents().Nodes()
	if err != nil {
		t.Fatal(err)
	}
	if !equalInts(payloads(nodes), []int{2, 4, 5, 3, 6}) {
		t.Errorf("expected descendents in document order, got %v", payloads(nodes))
	}
	nodes, _ = NewWalker(n[1]).DescendentsWith(NodeIsLeaf[int]()).Nodes()
	if !equalInts(payloads(nodes), []int{4, 5, 6}) {
		t.Errorf("expected leafs 4, 5, 6, got %v", payloads(nodes))
	}
}

func TestWalkerDescendentsThenParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.tree")
	defer teardown()
	//
	n := createTreeForTest(t)
	nodes, err := NewWalker(n[1]).DescendentsWith(NodeIsLeaf[int]()).Parent().Nodes()
	if err != nil {
		t.Fatal(err)
	}
	if !equalInts(payloads(nodes), []int{2, 3}) {
		t.Errorf("expected parents of leafs to be 2, 3 (without duplicates), got %v", payloads(nodes))
	}
}

func TestWalkerAncestorWith(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.tree")
	defer teardown()
	//
	n := createTreeForTest(t)
	isOdd := func(test *Node[int], node *Node[int]) (*Node[int], error) {
		if test.Payload%2 == 1 {
			return test, nil
		}
		return nil, nil
	}
	nodes, err := NewWalker(n[5]).AncestorWith(isOdd).Nodes()
	if err != nil {
		t.Fatal(err)
	}
	if !equalInts(payloads(nodes), []int{1}) {
		t.Errorf("expected odd ancestor of 5 to be 1, got %v", payloads(nodes))
	}
	nodes, _ = NewWalker(n[6]).AncestorWith(isOdd).Nodes()
	if !equalInts(payloads(nodes), []int{3}) {
		t.Errorf("expected odd ancestor of 6 to be 3, got %v", payloads(nodes))
	}
}

func TestWalkerFilter(t *testing.T) {
	n := createTreeForTest(t)
	greaterThree := func(test *Node[int], node *Node[int]) (*Node[int], error) {
		if test.Payload > 3 {
			return test, nil
		}
		return nil, nil
	}
	nodes, err := NewWalker(n[1]).AllDescendents().Filter(greaterThree).Nodes()
	if err != nil {
		t.Fatal(err)
	}
	if !equalInts(payloads(nodes), []int{4, 5, 6}) {
		t.Errorf("expected filtered nodes 4, 5, 6, got %v", payloads(nodes))
	}
}

func TestWalkerInvalidFilter(t *testing.T) {
	n := createTreeForTest(t)
	_, err := NewWalker(n[1]).Filter(nil).Nodes()
	if err != ErrInvalidFilter {
		t.Errorf("expected ErrInvalidFilter, got %v", err)
	}
	_, err = NewWalker(n[1]).TopDown(nil).AllDescendents().Nodes()
	if err != ErrInvalidFilter {
		t.Errorf("expected ErrInvalidFilter to survive later steps, got %v", err)
	}
}

func TestWalkerTopDown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.tree")
	defer teardown()
	//
	n := createTreeForTest(t)
	var visited []int
	positions := map[int]int{}
	action := func(node *Node[int], parent *Node[int], position int) (*Node[int], error) {
		visited = append(visited, node.Payload)
		positions[node.Payload] = position
		return node, nil
	}
	nodes, err := NewWalker(n[1]).TopDown(action).Nodes()
	if err != nil {
		t.Fatal(err)
	}
	if !equalInts(visited, []int{1, 2, 3, 4, 5, 6}) {
		t.Errorf("expected breadth first traversal, got %v", visited)
	}
	if len(nodes) != 6 {
		t.Errorf("expected 6 nodes in selection, got %d", len(nodes))
	}
	if positions[5] != 1 || positions[3] != 1 || positions[6] != 0 {
		t.Errorf("unexpected child positions %v", positions)
	}
}

func TestWalkerTopDownAbortsBranch(t *testing.T) {
	n := createTreeForTest(t)
	errStop := errors.New("stop")
	var visited []int
	action := func(node *Node[int], parent *Node[int], position int) (*Node[int], error) {
		visited = append(visited, node.Payload)
		if node.Payload == 2 {
			return nil, errStop
		}
		return node, nil
	}
	nodes, err := NewWalker(n[1]).TopDown(action).Nodes()
	if err != errStop {
		t.Errorf("expected action error to be reported, got %v", err)
	}
	if !equalInts(visited, []int{1, 2, 3, 6}) {
		t.Errorf("expected branch below 2 to be skipped, visited %v", visited)
	}
	if !equalInts(payloads(nodes), []int{1, 3, 6}) {
		t.Errorf("expected results 1, 3, 6, got %v", payloads(nodes))
	}
}
