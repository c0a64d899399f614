package martini

import (
	"errors"
	"testing"
)

func smallRegistry(Te *testing.T) *Registry {
	Te.Helper()
	R, err := NewRegistry([]*ParticleType{
		{Name: "P4", Category: Standard, Mass: 72},
		{Name: "C1", Category: Standard, Mass: 72},
		{Name: "SC1", Category: Ring, Mass: 45},
	})
	if err != nil {
		Te.Fatal(err)
	}
	return R
}

func TestEntries(Te *testing.T) {
	S := &SubTable{Rows: Standard, Cols: Standard, Matrix: `
        P4   C1

  P4   Aa2  Ia2
  C1   Ia2  Ea2
`}
	e, err := S.Entries()
	if err != nil {
		Te.Fatal(err)
	}
	want := []Entry{{"P4", "P4", "Aa2"}, {"P4", "C1", "Ia2"}, {"C1", "P4", "Ia2"}, {"C1", "C1", "Ea2"}}
	if len(e) != len(want) {
		Te.Fatalf("expected %d entries, got %d", len(want), len(e))
	}
	for i := range want {
		if e[i] != want[i] {
			Te.Errorf("entry %d: expected %v, got %v", i, want[i], e[i])
		}
	}
}

func TestMalformedTable(Te *testing.T) {
	S := &SubTable{Rows: Ring, Cols: Standard, Matrix: "   P4  C1\nSC1  Aa2\n"}
	_, err := S.Entries()
	var terr *TableError
	if !errors.As(err, &terr) {
		Te.Fatalf("expected a *TableError, got %v", err)
	}
	if terr.Table != "ring/standard" || terr.Line != 2 {
		Te.Errorf("wrong table or line in error: %v", terr)
	}
	S = &SubTable{Rows: Ring, Cols: Ring, Matrix: "\n \n"}
	if _, err = S.Entries(); !errors.As(err, &terr) {
		Te.Errorf("expected a *TableError for an empty table, got %v", err)
	}
}

func TestMergeLastWins(Te *testing.T) {
	R := smallRegistry(Te)
	T := new(Tables)
	//merged first, as part of the standard row.
	T[Standard][Ring] = &SubTable{Rows: Standard, Cols: Ring, Matrix: "  SC1\nP4 Ca2\nC1 Ea2"}
	T[Ring][Standard] = &SubTable{Rows: Ring, Cols: Standard, Matrix: "  P4\nSC1 Ba2"}
	T[Standard][Standard] = &SubTable{Rows: Standard, Cols: Standard, Matrix: "   P4 C1\nP4 Aa2 Ia2\nC1 Ia2 Ea2"}
	order := T.Order()
	if len(order) != 3 || order[0] != T[Standard][Standard] || order[1] != T[Standard][Ring] || order[2] != T[Ring][Standard] {
		Te.Fatalf("unexpected merge order")
	}
	P, err := T.Merge(R)
	if err != nil {
		Te.Fatal(err)
	}
	if c, _ := P.Lookup("P4", "SC1"); c != "Ba2" {
		Te.Errorf("P4-SC1 should come from the last merged table, got %s", c)
	}
	if c, _ := P.Lookup("SC1", "C1"); c != "Ea2" {
		Te.Errorf("SC1-C1 expected Ea2, got %s", c)
	}
	if _, ok := P.Lookup("SC1", "SC1"); ok {
		Te.Errorf("SC1-SC1 has no table, and shouldn't have a code")
	}
	if P.Len() != 5 {
		Te.Errorf("expected 5 pairs, got %d", P.Len())
	}
}

func TestMergeMembership(Te *testing.T) {
	R := smallRegistry(Te)
	bad := map[string]*SubTable{
		"unknown":  {Rows: Standard, Cols: Standard, Matrix: "  P4\nQ0 Aa2"},
		"category": {Rows: Standard, Cols: Standard, Matrix: "  SC1\nP4 Aa2"},
		"short":    {Rows: Standard, Cols: Standard, Matrix: "  P4 C1\nP4 Aa2"},
	}
	for name, t := range bad {
		T := new(Tables)
		T[t.Rows][t.Cols] = t
		_, err := T.Merge(R)
		var terr *TableError
		if !errors.As(err, &terr) {
			Te.Errorf("%s: expected a *TableError, got %v", name, err)
		}
	}
}

func TestLookupSymmetry(Te *testing.T) {
	F := defaultFF(Te)
	all := F.Types.All()
	for _, a := range all {
		for _, b := range all {
			c1, ok1 := F.Codes.Lookup(a.Name, b.Name)
			c2, ok2 := F.Codes.Lookup(b.Name, a.Name)
			if c1 != c2 || ok1 != ok2 {
				Te.Fatalf("lookup not symmetric for %s-%s: %s/%v vs %s/%v", a.Name, b.Name, c1, ok1, c2, ok2)
			}
		}
	}
	//every pair not involving the dummy type is defined.
	if F.Codes.Len() != 3003 {
		Te.Errorf("expected 3003 defined pairs, got %d", F.Codes.Len())
	}
	if c, _ := F.Codes.Lookup("P4", "BP4"); c != "Aa3" {
		Te.Errorf("BP4-P4 should be Aa3, got %s", c)
	}
}
