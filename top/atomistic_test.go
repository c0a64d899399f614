package top

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

func TestReadAtomistic(Te *testing.T) {
	A, err := AtomisticFromFile("testdata/aa.top")
	if err != nil {
		Te.Fatal(err)
	}
	want := &Atomistic{
		Name: "testdata/aa.top",
		AtomTypes: []string{
			"; name  mass  charge ptype  sigma  epsilon",
			"XX 12.0 0.000 A 0.0 0.0",
			" HX  1.008  0.000  A  1.0e-01  1.0e-01",
			"#ifdef HEAVY_H",
			"HY 4.032 0.000 A 0.1 0.1",
			"#endif",
			"",
		},
		NonBond:   []string{"XX HX 1 0.2 0.3", ""},
		PairTypes: []string{"XX HX 1 0.25 0.35", ""},
	}
	if diff := cmp.Diff(want, A); diff != "" {
		Te.Errorf("unexpected sections (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"XX", "HX", "HY"}, A.TypeNames()); diff != "" {
		Te.Errorf("unexpected type names (-want +got):\n%s", diff)
	}
	//A bufio.Reader must give the same result, even without a final newline.
	B, err := ReadAtomistic(bufio.NewReader(strings.NewReader("garbage\n[ atomtypes ]\r\nXX 12.0 0.000 A 0.0 0.0")))
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff([]string{"XX 12.0 0.000 A 0.0 0.0"}, B.AtomTypes); diff != "" {
		Te.Errorf("unexpected atom types (-want +got):\n%s", diff)
	}
	if len(B.NonBond) != 0 || len(B.PairTypes) != 0 {
		Te.Errorf("lines outside the merged sections were kept: %+v", B)
	}
}

func lines(L *Lines) []string {
	ret := make([]string, 0, L.Len())
	for i := 0; i < L.Len(); i++ {
		ret = append(ret, L.Line(i))
	}
	return ret
}

func TestCompressedFiles(Te *testing.T) {
	plain, err := LinesFromFile("testdata/aa.top")
	if err != nil {
		Te.Fatal(err)
	}
	data, err := os.ReadFile("testdata/aa.top")
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	gzname := filepath.Join(dir, "aa.top.gz")
	f, err := os.Create(gzname)
	if err != nil {
		Te.Fatal(err)
	}
	gw := gzip.NewWriter(f)
	if _, err := gw.Write(data); err != nil {
		Te.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		Te.Fatal(err)
	}
	f.Close()
	zname := filepath.Join(dir, "aa.top.zst")
	f, err = os.Create(zname)
	if err != nil {
		Te.Fatal(err)
	}
	zw, err := zstd.NewWriter(f)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := zw.Write(data); err != nil {
		Te.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		Te.Fatal(err)
	}
	f.Close()
	for _, name := range []string{gzname, zname} {
		L, err := LinesFromFile(name)
		if err != nil {
			Te.Fatal(err)
		}
		if diff := cmp.Diff(lines(plain), lines(L)); diff != "" {
			Te.Errorf("%s: different contents (-plain +compressed):\n%s", name, diff)
		}
	}
	if _, err := LinesFromFile(filepath.Join(dir, "missing.top")); err == nil {
		Te.Error("expected an error for a missing file")
	}
}

func TestLines(Te *testing.T) {
	L := NewLines([]string{"a", "b"})
	L.WriteString("c\n")
	var got []string
	for s, err := L.ReadString('\n'); err == nil; s, err = L.ReadString('\n') {
		got = append(got, s)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		Te.Errorf("(-want +got):\n%s", diff)
	}
	if s, _ := L.ToGro(); s != "a\nb\nc\n" {
		Te.Errorf("unexpected text %q", s)
	}
}

func TestTypeNames(Te *testing.T) {
	A := &Atomistic{AtomTypes: []string{
		"HW 1 1.008 0.417 A 0.0 0.0 ; water hydrogen",
		"  opls_135 CT 6 12.011 -0.180 A 3.5e-01 2.76e-01",
		"C 12.0",
		"; comment",
		"#include \"extra.itp\"",
		"",
	}}
	if diff := cmp.Diff([]string{"HW", "opls_135", "C"}, A.TypeNames()); diff != "" {
		Te.Errorf("unexpected type names (-want +got):\n%s", diff)
	}
}
