package quadtree

import (
	"github.com/chshersh-geo/planar/geom"
	"github.com/chshersh-geo/planar/randgen"
)

// Skip is a skip-compressed-quadtree: a growing sequence of Compressed
// quadtrees S0, S1, ... over the same box, where each level holds a
// geometrically thinned subset of the level below it. A point inserted
// at level 0 is promoted to level i+1 with the given threshold
// probability, independently at each level, exactly like a skip list's
// coin-flip promotion chain. Searches start at the sparsest (topmost)
// level and descend, which is what makes Find and RangeApproxAtLevel
// run in time roughly proportional to the local point density rather
// than the total point count.
type Skip struct {
	box       geom.Rect
	threshold float64
	levels    []*Compressed
	src       *randgen.Source
}

// NewSkip returns an empty Skip structure over box, using src for the
// promotion coin flips. threshold is the per-level promotion
// probability; 0.5 is the conventional choice matching a balanced skip
// list.
func NewSkip(box geom.Rect, threshold float64, src *randgen.Source) *Skip {
	return &Skip{
		box:       box,
		threshold: threshold,
		levels:    []*Compressed{NewCompressed(box)},
		src:       src,
	}
}

// Insert adds p to level 0 and promotes it upward through as many
// further levels as the coin flip allows.
func (s *Skip) Insert(p geom.Point) error {
	if !s.box.Contains(p) {
		return ErrOutOfBounds
	}

	locations := make([]Mask, len(s.levels))
	prev := rootMask
	for i := len(s.levels) - 1; i >= 0; i-- {
		prev = s.levels[i].findLowestInteresting(prev, p)
		locations[i] = prev
	}
	if err := s.levels[0].InsertFrom(locations[0], p); err != nil {
		return err
	}

	level := 1
	for s.src.Bool(s.threshold) {
		if level == len(s.levels) {
			s.levels = append(s.levels, NewCompressed(s.box))
			_ = s.levels[level].Insert(p)
			level++
			continue
		}
		if err := s.levels[level].InsertFrom(locations[len(locations)-level-1], p); err != nil {
			return err
		}
		level++
	}
	return nil
}

// Find locates p, descending homologous nodes level by level from the
// sparsest level down to level 0.
func (s *Skip) Find(p geom.Point) (Node, bool) {
	prev := rootMask
	for i := len(s.levels) - 1; i >= 0; i-- {
		prev = s.levels[i].findLowestInteresting(prev, p)
	}
	n, ok := s.levels[0].nodes[prev]
	if !ok {
		return Node{}, false
	}
	found := s.levels[0].find(n, p)
	if found == nil {
		return Node{}, false
	}
	return found.snapshot(), found.hasPoint && found.point == p
}

// Levels returns the number of compressed-quadtree levels currently in
// the structure, for tests and diagnostics.
func (s *Skip) Levels() int { return len(s.levels) }

func nodeRect(n *node) geom.Rect { return n.box }

// isCritical reports whether node n, at level-local box quadRect under
// the widened query epsRect, has no child whose (child ∩ epsRect) equals
// (quadRect ∩ epsRect) — i.e. no child fully absorbs the overlap n has
// with the query, so the search genuinely has to branch at n rather than
// jump straight to one promoted child.
func isCritical(epsRect, quadRect geom.Rect, n *node) bool {
	for i := 0; i < 4; i++ {
		c := n.children[i]
		if c == nil {
			continue
		}
		if rectEqual(intersect(nodeRect(c), epsRect), intersect(quadRect, epsRect)) {
			return false
		}
	}
	return true
}

func intersect(a, b geom.Rect) geom.Rect {
	lx := maxf(a.Lo.X, b.Lo.X)
	ly := maxf(a.Lo.Y, b.Lo.Y)
	hx := minf(a.Hi.X, b.Hi.X)
	hy := minf(a.Hi.Y, b.Hi.Y)
	if hx < lx || hy < ly {
		return geom.Rect{}
	}
	return geom.NewRect(lx, ly, hx, hy)
}

func rectEqual(a, b geom.Rect) bool {
	return a.Lo == b.Lo && a.Hi == b.Hi
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// findLowestCritical returns the deepest node, starting from node n at
// the given level, that is reachable by first jumping up through
// promoted copies of n at higher (sparser) levels while they remain
// non-critical, then descending back down through children that fully
// absorb the query overlap, stopping at the first node that is itself
// critical. This is the homologue-jump search skip_quadtree.h's
// find_lowest_critical performs, letting an approximate range query skip
// over long non-branching stretches of the tree in O(1) amortized
// levels instead of walking every level explicitly.
func (s *Skip) findLowestCritical(epsRect, quadRect geom.Rect, n *node, level int) *node {
	lastNonCritical := level
	for i := len(s.levels) - 1; i >= level+1; i-- {
		qn, ok := s.levels[i].nodes[n.mask]
		if ok && !isCritical(epsRect, quadRect, qn) {
			lastNonCritical = i
			break
		}
	}

	lastNode := s.levels[lastNonCritical].nodes[n.mask]
	for {
		levelBack := true
		for i := 0; i < 4; i++ {
			c := lastNode.children[i]
			if c == nil {
				continue
			}
			if rectEqual(intersect(nodeRect(c), epsRect), intersect(quadRect, epsRect)) {
				if lastNonCritical == level {
					levelBack = false
					lastNode = c
				} else if levelBack = c.isLeaf; !levelBack {
					lastNode = c
				}
				break
			}
		}

		if levelBack {
			if lastNonCritical == level {
				break
			}
			lastNonCritical--
			lastNode = s.levels[lastNonCritical].nodes[n.mask]
		}
	}

	return lastNode
}

// RangeApproxAtLevel returns every point within r (widened by eps)
// reachable from the given level's tree, using the critical/non-critical
// classification to skip whole non-branching stretches via
// findLowestCritical rather than walking every intermediate level
// explicitly.
func (s *Skip) RangeApproxAtLevel(r geom.Rect, eps float64, level int) []geom.Point {
	var out []geom.Point
	if level < 0 || level >= len(s.levels) {
		return out
	}

	root := s.levels[level].root
	if !root.box.Intersects(r) {
		return out
	}

	epsRect := r.Expanded(eps)
	queue := []*node{root}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		quadRect := nodeRect(n)

		switch {
		case n.isLeaf:
			if n.hasPoint && r.Contains(n.point) {
				out = append(out, n.point)
			}
		case epsRect.ContainsRect(quadRect):
			dumpAll(n, &out)
		case !isCritical(epsRect, quadRect, n):
			queue = append(queue, s.findLowestCritical(epsRect, quadRect, n, level))
		default:
			for i := 0; i < 4; i++ {
				c := n.children[i]
				if c != nil && c.box.Intersects(r) {
					queue = append(queue, c)
				}
			}
		}
	}

	return out
}
