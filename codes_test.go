package martini

import (
	"errors"
	"math"
	"testing"
)

func TestDecode(Te *testing.T) {
	F := defaultFF(Te)
	L := F.Levels
	lj, ok, err := L.Decode("Aa2")
	if err != nil || !ok {
		Te.Fatalf("Decode(Aa2): %v %v", ok, err)
	}
	c6 := 4 * 5.60 * 1.00 * math.Pow(0.47, 6)
	c12 := 4 * 5.60 * 1.00 * math.Pow(0.47, 12)
	if lj.C6 != c6 || lj.C12 != c12 {
		Te.Errorf("Decode(Aa2) = %g %g, expected %g %g", lj.C6, lj.C12, c6, c12)
	}
	if math.Abs(lj.C6-0.24145) > 1e-5 {
		Te.Errorf("Decode(Aa2) c6 = %g", lj.C6)
	}
	//Ring-ring interactions: 75% scaling, 0.43 nm.
	lj, _, _ = L.Decode("Cd1")
	if want := 4 * 4.50 * 0.75 * math.Pow(0.43, 6); lj.C6 != want {
		Te.Errorf("Decode(Cd1) c6 = %g, expected %g", lj.C6, want)
	}
	//Unity
	lj, ok, _ = L.Decode("Za5")
	if !ok || lj.C6 != 1 || lj.C12 != 1 {
		Te.Errorf("Decode(Za5) = %v %v, expected c6=c12=1", lj, ok)
	}
}

func TestDecodeNoInteraction(Te *testing.T) {
	F := defaultFF(Te)
	for _, c := range []Code{"0a2", "0", "0b4"} {
		lj, ok, err := F.Levels.Decode(c)
		if err != nil {
			Te.Errorf("Decode(%s): %v", c, err)
		}
		if ok || lj.C6 != 0 || lj.C12 != 0 {
			Te.Errorf("Decode(%s) should mean no interaction, got %v %v", c, lj, ok)
		}
	}
}

func TestShortCodes(Te *testing.T) {
	F := defaultFF(Te)
	L := F.Levels
	equiv := map[Code]Code{"A": "Aa2", "A3": "Aa3", "Ab": "Ab2", "I4": "Ia4"}
	for short, long := range equiv {
		s, _, err := L.Decode(short)
		if err != nil {
			Te.Fatal(err)
		}
		l, _, err := L.Decode(long)
		if err != nil {
			Te.Fatal(err)
		}
		if s != l {
			Te.Errorf("%s decoded to %v but %s to %v", short, s, long, l)
		}
	}
}

func TestDecodeErrors(Te *testing.T) {
	F := defaultFF(Te)
	for _, c := range []Code{"Xa2", "Ax2", "Aa9", "", "Aa2b"} {
		_, _, err := F.Levels.Decode(c)
		var cerr *CodeError
		if !errors.As(err, &cerr) {
			Te.Errorf("Decode(%q): expected a *CodeError, got %v", c, err)
			continue
		}
		if cerr.Code != c {
			Te.Errorf("CodeError for %q reports code %q", c, cerr.Code)
		}
		if d := cerr.Decorate(""); len(d) == 0 || d[0] != "Decode" {
			Te.Errorf("CodeError for %q not decorated: %v", c, d)
		}
	}
}

func TestSigmaEpsilon(Te *testing.T) {
	lj := LJFromSigmaEpsilon(0.47, 5.0)
	s, e := lj.SigmaEpsilon()
	if math.Abs(s-0.47) > 1e-12 || math.Abs(e-5.0) > 1e-12 {
		Te.Errorf("sigma/epsilon round trip gave %g %g", s, e)
	}
	if s, e := (LJ{}).SigmaEpsilon(); s != 0 || e != 0 {
		Te.Errorf("expected zeroes for an empty LJ, got %g %g", s, e)
	}
}

func TestLevelsCheck(Te *testing.T) {
	L := &Levels{
		Strength: map[byte]float64{'A': 5.6},
		Scale:    map[byte]float64{'a': 1, '2': 1},
		Distance: map[byte]float64{'2': 0.47},
	}
	if err := L.Check(); err == nil {
		Te.Error("expected an error for a key both in scale and distance")
	}
	delete(L.Scale, '2')
	if err := L.Check(); err != nil {
		Te.Error(err)
	}
	L.Strength['B'] = -1
	if err := L.Check(); err == nil {
		Te.Error("expected an error for a negative strength")
	}
}
