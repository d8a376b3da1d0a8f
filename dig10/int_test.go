package dig10

import (
	"fmt"
	"math"
	"testing"
)

func (z Int) V(t *testing.T) {
	t.Helper()
	for _, d := range z {
		if d >= base {
			t.Fatalf("bad digit: %d", d)
		}
	}
	if len(z) > 0 && z[len(z)-1] == 0 {
		t.Fatal("trailing zero")
	}
}

func TestNewInt(t *testing.T) {
	tests := []uint64{
		0,
		1,
		2,
		9,
		10,
		11,
		100,
		1000,
		234567,
		math.MaxUint64,
	}
	for _, tc := range tests {
		t.Run(fmt.Sprint(tc), func(t *testing.T) {
			a := NewInt(tc)
			if !a.Equal(NewInt(tc)) {
				t.Fatal("expected equal")
			}
			a.V(t)
			i := a.Uint64()
			if i != tc {
				t.Fatalf("got %d (%v), expected %v", i, a, tc)
			}
			got := a.String()
			s := fmt.Sprint(tc)
			if s != got {
				t.Fatalf("got %s, expected %s", got, s)
			}
		})
	}
}

func TestNewInt64(t *testing.T) {
	tests := map[int64]uint64{
		0:             0,
		1:             1,
		-1:            1,
		-10:           10,
		math.MaxInt64: math.MaxInt64,
		math.MinInt64: 1 << 63,
	}
	for in, want := range tests {
		t.Run(fmt.Sprint(in), func(t *testing.T) {
			a := NewInt64(in)
			a.V(t)
			if got := a.Uint64(); got != want {
				t.Fatalf("got %d, expected %d", got, want)
			}
		})
	}
}

func TestNewIntString(t *testing.T) {
	tests := []struct {
		s  string
		ok bool
		r  string
	}{
		{s: "", ok: true, r: "0"},
		{s: "0", ok: true, r: "0"},
		{s: "00012", ok: true, r: "12"},
		{s: "910", ok: true, r: "910"},
		{s: "91a0", ok: false},
		{s: "-12", ok: false},
	}
	for _, tc := range tests {
		t.Run(tc.s, func(t *testing.T) {
			a, ok := NewIntString(tc.s)
			if ok != tc.ok {
				t.Fatalf("ok: got %v, expected %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			a.V(t)
			if got := a.String(); got != tc.r {
				t.Fatalf("got %s, expected %s", got, tc.r)
			}
		})
	}
}

func TestAddSub(t *testing.T) {
	tests := []struct {
		a, b uint64
	}{
		{0, 0},
		{0, 1},
		{1, 1},
		{9, 1},
		{99, 1},
		{100, 99},
		{12345, 54321},
		{999999999, 1},
		{1 << 40, 1<<40 - 1},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d,%d", tc.a, tc.b), func(t *testing.T) {
			a, b := NewInt(tc.a), NewInt(tc.b)
			var z Int
			z.Add(a, b)
			z.V(t)
			if got := z.Uint64(); got != tc.a+tc.b {
				t.Fatalf("add: got %d, expected %d", got, tc.a+tc.b)
			}
			var w Int
			borrow := w.Diff(a, b)
			w.V(t)
			want := tc.a - tc.b
			if tc.b > tc.a {
				want = tc.b - tc.a
			}
			if got := w.Uint64(); got != want {
				t.Fatalf("diff: got %d, expected %d", got, want)
			}
			if borrow != (tc.b > tc.a) {
				t.Fatalf("borrow: got %v", borrow)
			}
			if tc.a >= tc.b {
				var s Int
				s.Sub(a, b)
				s.V(t)
				if got := s.Uint64(); got != tc.a-tc.b {
					t.Fatalf("sub: got %d, expected %d", got, tc.a-tc.b)
				}
			}
		})
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		a, b uint64
	}{
		{0, 5},
		{1, 5},
		{5, 5},
		{10, 10},
		{99, 99},
		{12345, 6789},
		{1 << 30, 1 << 30},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d,%d", tc.a, tc.b), func(t *testing.T) {
			z := NewInt(tc.a).Mul(NewInt(tc.b))
			z.V(t)
			if got := z.Uint64(); got != tc.a*tc.b {
				t.Fatalf("got %d, expected %d", got, tc.a*tc.b)
			}
		})
	}
}

func TestMul10(t *testing.T) {
	a := NewInt(123)
	a.Mul10(2)
	if got := a.String(); got != "12300" {
		t.Fatalf("got %s", got)
	}
	a.Mul10(-3)
	if got := a.String(); got != "12" {
		t.Fatalf("got %s", got)
	}
	a.Mul10(-5)
	if got := a.String(); got != "0" {
		t.Fatalf("got %s", got)
	}
}

func TestQuoRem(t *testing.T) {
	tests := []struct {
		a, b uint64
	}{
		{0, 3},
		{1, 3},
		{3, 3},
		{10, 3},
		{100, 7},
		{12345, 1},
		{12345, 12346},
		{999999999999, 999},
		{math.MaxUint64, 7},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d,%d", tc.a, tc.b), func(t *testing.T) {
			q, r := QuoRem(NewInt(tc.a), NewInt(tc.b))
			q.V(t)
			r.V(t)
			if got := q.Uint64(); got != tc.a/tc.b {
				t.Fatalf("q: got %d, expected %d", got, tc.a/tc.b)
			}
			if got := r.Uint64(); got != tc.a%tc.b {
				t.Fatalf("r: got %d, expected %d", got, tc.a%tc.b)
			}
		})
	}
}

func TestQuoRemUint(t *testing.T) {
	tests := []struct {
		a uint64
		v uint64
	}{
		{0, 16},
		{15, 16},
		{16, 16},
		{255, 16},
		{1000000, 16},
		{math.MaxUint64, 16},
		{12345, 7},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d,%d", tc.a, tc.v), func(t *testing.T) {
			q, r := NewInt(tc.a).QuoRemUint(tc.v)
			q.V(t)
			if got := q.Uint64(); got != tc.a/tc.v {
				t.Fatalf("q: got %d, expected %d", got, tc.a/tc.v)
			}
			if r != tc.a%tc.v {
				t.Fatalf("r: got %d, expected %d", r, tc.a%tc.v)
			}
		})
	}
}

func TestCmp(t *testing.T) {
	tests := []struct {
		a, b uint64
		r    int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{0, 1, -1},
		{10, 9, 1},
		{9, 10, -1},
		{12345, 12345, 0},
	}
	for _, tc := range tests {
		if got := NewInt(tc.a).Cmp(NewInt(tc.b)); got != tc.r {
			t.Errorf("%d cmp %d: got %d, expected %d", tc.a, tc.b, got, tc.r)
		}
	}
}
