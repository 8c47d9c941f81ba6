package predicates

import "testing"

func TestOrient2DSign(t *testing.T) {
	a := Point{0, 0}
	b := Point{1, 0}
	cases := []struct {
		name string
		c    Point
		want int
	}{
		{"left", Point{0, 1}, 1},
		{"right", Point{0, -1}, -1},
		{"collinear beyond", Point{2, 0}, 0},
		{"collinear behind", Point{-1, 0}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Orient2D(a, b, tc.c)
			switch {
			case tc.want > 0 && got <= 0:
				t.Fatalf("Orient2D(%v,%v,%v) = %v, want > 0", a, b, tc.c, got)
			case tc.want < 0 && got >= 0:
				t.Fatalf("Orient2D(%v,%v,%v) = %v, want < 0", a, b, tc.c, got)
			case tc.want == 0 && got != 0:
				t.Fatalf("Orient2D(%v,%v,%v) = %v, want exactly 0", a, b, tc.c, got)
			}
		})
	}
}

func TestOrient2DNearlyCollinear(t *testing.T) {
	// A classic near-degenerate case that defeats naive float arithmetic:
	// three points that are almost, but not exactly, collinear at the
	// scale of float64 rounding.
	a := Point{0, 0}
	b := Point{1e8, 1}
	c := Point{2e8, 2.0000000000000004}
	got := Orient2D(a, b, c)
	if got <= 0 {
		t.Fatalf("Orient2D(%v,%v,%v) = %v, want > 0 (c is left of a->b)", a, b, c, got)
	}
}

func TestInCircle(t *testing.T) {
	a := Point{0, 0}
	b := Point{1, 0}
	c := Point{0, 1}
	inside := Point{0.25, 0.25}
	outside := Point{10, 10}
	onCircle := Point{1, 1}

	if InCircle(a, b, c, inside) <= 0 {
		t.Fatalf("expected %v strictly inside circumcircle of %v,%v,%v", inside, a, b, c)
	}
	if InCircle(a, b, c, outside) >= 0 {
		t.Fatalf("expected %v strictly outside circumcircle of %v,%v,%v", outside, a, b, c)
	}
	if InCircle(a, b, c, onCircle) != 0 {
		t.Fatalf("expected %v exactly on circumcircle of %v,%v,%v, got %v", onCircle, a, b, c, InCircle(a, b, c, onCircle))
	}
}

func TestClassify(t *testing.T) {
	a := Point{0, 0}
	b := Point{10, 0}
	cases := []struct {
		name string
		c    Point
		want Classification
	}{
		{"left", Point{5, 1}, ClassLeft},
		{"right", Point{5, -1}, ClassRight},
		{"origin", Point{0, 0}, ClassOrigin},
		{"destination", Point{10, 0}, ClassDestination},
		{"between", Point{5, 0}, ClassBetween},
		{"behind", Point{-5, 0}, ClassBehind},
		{"beyond", Point{15, 0}, ClassBeyond},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(a, b, tc.c); got != tc.want {
				t.Fatalf("Classify(%v,%v,%v) = %v, want %v", a, b, tc.c, got, tc.want)
			}
		})
	}
}

func TestLeftLeftOnCollinear(t *testing.T) {
	a, b := Point{0, 0}, Point{1, 0}
	if !Left(a, b, Point{0, 1}) {
		t.Fatal("expected (0,1) left of (0,0)->(1,0)")
	}
	if Left(a, b, Point{2, 0}) {
		t.Fatal("expected collinear point not strictly left")
	}
	if !LeftOn(a, b, Point{2, 0}) {
		t.Fatal("expected collinear point to be left-on")
	}
	if !Collinear(a, b, Point{2, 0}) {
		t.Fatal("expected (2,0) collinear with (0,0)->(1,0)")
	}
	if Collinear(a, b, Point{0, 1}) {
		t.Fatal("expected (0,1) not collinear with (0,0)->(1,0)")
	}
}
