// Package search enumerates the pair-sum generation tree breadth-first,
// deduplicating unordered pairs, to answer reachability exactly on bounded
// instances.
package search

import "math/big"

// state is one node of the generation tree: the unordered pair {x, y}.
// Never mutated after creation; its coordinates are shared with children.
type state struct {
	x, y *big.Int
}

// walker encapsulates mutable walk state for a single query.
type walker struct {
	target  *big.Int
	opts    Options
	queue   []state
	visited map[string]bool
}

// Reachable reports whether c appears in some state generated from (a, b)
// by the operations a ← a+b and b ← a+b, by exhaustive breadth-first
// enumeration up to the iteration budget.
//
// A true answer is always sound. A false answer proves unreachability only
// when the frontier drained before the budget ran out; the two cases are
// not distinguished (see the package doc). Inputs are not validated;
// positivity is caller discipline.
func Reachable(a, b, c *big.Int, opts ...Option) (bool, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return false, o.err
	}

	// Base cases mirror the decision engine: generators count as reached,
	// and nothing below both generators can ever be produced.
	if c.Cmp(a) == 0 || c.Cmp(b) == 0 {
		return true, nil
	}
	if c.Cmp(a) < 0 && c.Cmp(b) < 0 {
		return false, nil
	}

	w := &walker{
		target:  c,
		opts:    o,
		queue:   make([]state, 0, 64),
		visited: make(map[string]bool, 64),
	}
	root := state{x: a, y: b}
	w.visited[key(root)] = true
	w.queue = append(w.queue, root)

	return w.loop()
}

// loop dequeues and expands states until the target is found, the frontier
// drains, the budget is spent, or the context is cancelled.
func (w *walker) loop() (bool, error) {
	for iter := 0; len(w.queue) > 0; iter++ {
		// cancellation check (once per expansion)
		select {
		case <-w.opts.Ctx.Done():
			return false, w.opts.Ctx.Err()
		default:
		}
		if iter >= w.opts.MaxIterations {
			// budget exhausted: reported as plain false, same as an
			// exhaustive negative
			return false, nil
		}

		s := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnExpand(s.x, s.y, iter)

		sum := new(big.Int).Add(s.x, s.y)
		if w.visit(state{x: sum, y: s.y}) || w.visit(state{x: s.x, y: sum}) {
			return true, nil
		}
	}
	// frontier drained: every reachable state with a coordinate ≤ target
	// was enumerated, so this negative is sound
	return false, nil
}

// visit inspects one freshly generated child: reports true when a
// coordinate hits the target, discards children that overshot on both
// coordinates, and enqueues unseen states.
func (w *walker) visit(s state) bool {
	if s.x.Cmp(w.target) == 0 || s.y.Cmp(w.target) == 0 {
		return true
	}
	// values only grow; a state past the target on both coordinates can
	// never come back down
	if s.x.Cmp(w.target) > 0 && s.y.Cmp(w.target) > 0 {
		return false
	}
	if k := key(s); !w.visited[k] {
		w.visited[k] = true
		w.queue = append(w.queue, s)
	}
	return false
}

// key canonicalizes a state as "min|max", so {x, y} and {y, x} collapse to
// one visited-set entry.
func key(s state) string {
	if s.x.Cmp(s.y) <= 0 {
		return s.x.String() + "|" + s.y.String()
	}
	return s.y.String() + "|" + s.x.String()
}
