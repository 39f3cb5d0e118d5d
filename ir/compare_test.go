package ir

import "testing"

func TestCompareScalars(t *testing.T) {
	for _, tc := range []struct {
		a, b *Node
		want int
	}{
		{Null(), Null(), 0},
		{Null(), FromBool(false), -1},
		{FromBool(false), FromBool(true), -1},
		{FromNumber(1), FromNumber(2), -1},
		{FromNumber(2), FromNumber(2), 0},
		{FromString("a"), FromString("b"), -1},
		{FromString("x"), FromNumber(1e9), 1},
	} {
		if got := Compare(tc.a, tc.b); got != tc.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
		if got := Compare(tc.b, tc.a); got != -tc.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", tc.b, tc.a, got, -tc.want)
		}
	}
}

func TestCompareContainers(t *testing.T) {
	a := FromSlice([]*Node{FromNumber(1), FromNumber(2)})
	b := FromSlice([]*Node{FromNumber(1), FromNumber(2), FromNumber(3)})
	if Compare(a, b) != -1 {
		t.Error("shorter array does not sort first")
	}

	o1 := FromKeyVals([]KeyVal{{Key: "a", Val: FromNumber(1)}})
	o2 := FromKeyVals([]KeyVal{{Key: "a", Val: FromNumber(1)}})
	if !Equal(o1, o2) {
		t.Error("identical objects unequal")
	}
	o3 := FromKeyVals([]KeyVal{{Key: "b", Val: FromNumber(1)}})
	if Equal(o1, o3) {
		t.Error("objects with different keys equal")
	}
}

func TestCompareKeyOrderSignificant(t *testing.T) {
	a := FromKeyVals([]KeyVal{
		{Key: "x", Val: Null()},
		{Key: "y", Val: Null()},
	})
	b := FromKeyVals([]KeyVal{
		{Key: "y", Val: Null()},
		{Key: "x", Val: Null()},
	})
	if Equal(a, b) {
		t.Error("objects with different key order compare equal")
	}
}
