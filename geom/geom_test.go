package geom

import "testing"

func TestRect_ContainsHalfOpen(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if !r.Contains(Point{X: 0, Y: 0}) {
		t.Fatal("expected low corner to be contained")
	}
	if r.Contains(Point{X: 10, Y: 5}) {
		t.Fatal("expected high edge to be excluded")
	}
}

func TestQuadrantOf_PartitionsBoxExhaustively(t *testing.T) {
	cases := []struct {
		p    Point
		want int
	}{
		{Point{X: 1, Y: 1}, 0},
		{Point{X: 9, Y: 1}, 1},
		{Point{X: 1, Y: 9}, 2},
		{Point{X: 9, Y: 9}, 3},
	}
	for _, c := range cases {
		if got := QuadrantOf(0, 0, 10, 10, c.p); got != c.want {
			t.Fatalf("QuadrantOf(%v) = %d, want %d", c.p, got, c.want)
		}
	}
}

func TestLine_InverseTwiceIsIdentity(t *testing.T) {
	l := Line{A: 2, B: -3, C: 5}
	if got := l.Inverse().Inverse(); got != l {
		t.Fatalf("double inverse = %v, want %v", got, l)
	}
}

func TestRect_ContainsRectAndIntersects(t *testing.T) {
	outer := NewRect(0, 0, 10, 10)
	inner := NewRect(2, 2, 8, 8)
	if !outer.ContainsRect(inner) {
		t.Fatal("expected outer to contain inner")
	}
	disjoint := NewRect(20, 20, 30, 30)
	if outer.Intersects(disjoint) {
		t.Fatal("expected outer and disjoint to not intersect")
	}
}
