package util

import "testing"

func TestModulo(t *testing.T) {
	tests := []struct {
		x int
		n int
		r int
	}{
		{6, 5, 1},
		{-1, 5, 4},
		{3, -5, -2},
		{1, 4, 1},
		{5, 4, 1},
		{-1, 1, 0},
		{97, 26, 19},
		{122, 26, 18},
	}

	for _, test := range tests {
		if res := Modulo(test.x, test.n); res != test.r {
			t.Errorf("Modulo(%d, %d) = %d but expected %d", test.x, test.n, res, test.r)
		}
	}
}

func TestMinMax(t *testing.T) {
	if res := Min(3, 7); res != 3 {
		t.Errorf("Min(3, 7) = %d but expected 3", res)
	}
	if res := Max(3, 7); res != 7 {
		t.Errorf("Max(3, 7) = %d but expected 7", res)
	}
}

func TestFingerprintOrderIndependent(t *testing.T) {
	a := Fingerprint([]string{"al", "bob", "bobby"})
	b := Fingerprint([]string{"bobby", "al", "bob"})

	if !a.Equals(b) {
		t.Errorf("Fingerprint over reordered keys differs: %s != %s",
			FingerprintHex(a), FingerprintHex(b))
	}
}

func TestFingerprintDistinguishesSets(t *testing.T) {
	a := Fingerprint([]string{"al", "bob"})
	b := Fingerprint([]string{"al", "bobby"})

	if a.Equals(b) {
		t.Error("Fingerprint over different key sets collides")
	}

	if FingerprintHex(a) == "" {
		t.Error("FingerprintHex returned an empty string")
	}
}
